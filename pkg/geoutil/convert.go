package geoutil

import "math"

const (
	xPI = math.Pi * 3000.0 / 180.0

	// Параметры эллипсоида для эмпирической модели смещения GCJ-02.
	semiMajorAxis       = 6378245.0
	eccentricitySquared = 0.00669342162296594323
)

// WGS84ToGCJ02 переводит координату из WGS-84 в GCJ-02 ("марсианские координаты").
// Вне ограничивающего прямоугольника материкового Китая смещение не применяется —
// координата возвращается как есть.
func WGS84ToGCJ02(lng, lat float64) Point {
	if outOfChina(lng, lat) {
		return Point{Lng: lng, Lat: lat}
	}

	dLng, dLat := deltaGCJ02(lng, lat)
	return Point{Lng: lng + dLng, Lat: lat + dLat}
}

// GCJ02ToWGS84 — приближённая обратная конвертация: вычитаем смещение,
// посчитанное в точке GCJ-02. Инверсия не точная (см. тесты), но для
// полевых данных погрешность в доли метра приемлема.
func GCJ02ToWGS84(lng, lat float64) Point {
	if outOfChina(lng, lat) {
		return Point{Lng: lng, Lat: lat}
	}

	dLng, dLat := deltaGCJ02(lng, lat)
	return Point{Lng: lng - dLng, Lat: lat - dLat}
}

// GCJ02ToBD09 переводит GCJ-02 в BD-09 (датум Baidu). Без проверки границ,
// как в исходной эмпирической модели.
func GCJ02ToBD09(lng, lat float64) Point {
	z := math.Sqrt(lng*lng+lat*lat) + 0.00002*math.Sin(lat*xPI)
	theta := math.Atan2(lat, lng) + 0.000003*math.Cos(lng*xPI)

	return Point{
		Lng: z*math.Cos(theta) + 0.0065,
		Lat: z*math.Sin(theta) + 0.006,
	}
}

// BD09ToGCJ02 — обратное преобразование полярной модели BD-09.
func BD09ToGCJ02(lng, lat float64) Point {
	x := lng - 0.0065
	y := lat - 0.006
	z := math.Sqrt(x*x+y*y) - 0.00002*math.Sin(y*xPI)
	theta := math.Atan2(y, x) - 0.000003*math.Cos(x*xPI)

	return Point{
		Lng: z * math.Cos(theta),
		Lat: z * math.Sin(theta),
	}
}

// deltaGCJ02 возвращает эмпирическое смещение (dLng, dLat) для точки внутри Китая.
func deltaGCJ02(lng, lat float64) (float64, float64) {
	dLat := transformLat(lng-105.0, lat-35.0)
	dLng := transformLng(lng-105.0, lat-35.0)

	radLat := lat / 180.0 * math.Pi
	magic := math.Sin(radLat)
	magic = 1 - eccentricitySquared*magic*magic
	sqrtMagic := math.Sqrt(magic)

	dLat = (dLat * 180.0) / ((semiMajorAxis * (1 - eccentricitySquared)) / (magic * sqrtMagic) * math.Pi)
	dLng = (dLng * 180.0) / (semiMajorAxis / sqrtMagic * math.Cos(radLat) * math.Pi)

	return dLng, dLat
}

// outOfChina — грубая аппроксимация границ материкового Китая.
// Это сознательное упрощение модели, а не географическое утверждение.
func outOfChina(lng, lat float64) bool {
	return lng < 72.004 || lng > 137.8347 || lat < 0.8293 || lat > 55.8271
}

func transformLat(lng, lat float64) float64 {
	ret := -100.0 + 2.0*lng + 3.0*lat + 0.2*lat*lat + 0.1*lng*lat + 0.2*math.Sqrt(math.Abs(lng))
	ret += (20.0*math.Sin(6.0*lng*math.Pi) + 20.0*math.Sin(2.0*lng*math.Pi)) * 2.0 / 3.0
	ret += (20.0*math.Sin(lat*math.Pi) + 40.0*math.Sin(lat/3.0*math.Pi)) * 2.0 / 3.0
	ret += (160.0*math.Sin(lat/12.0*math.Pi) + 320*math.Sin(lat*math.Pi/30.0)) * 2.0 / 3.0
	return ret
}

func transformLng(lng, lat float64) float64 {
	ret := 300.0 + lng + 2.0*lat + 0.1*lng*lng + 0.1*lng*lat + 0.1*math.Sqrt(math.Abs(lng))
	ret += (20.0*math.Sin(6.0*lng*math.Pi) + 20.0*math.Sin(2.0*lng*math.Pi)) * 2.0 / 3.0
	ret += (20.0*math.Sin(lng*math.Pi) + 40.0*math.Sin(lng/3.0*math.Pi)) * 2.0 / 3.0
	ret += (150.0*math.Sin(lng/12.0*math.Pi) + 300.0*math.Sin(lng/30.0*math.Pi)) * 2.0 / 3.0
	return ret
}
