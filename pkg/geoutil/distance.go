package geoutil

import "math"

// earthRadiusMeters — сферическая аппроксимация радиуса Земли.
const earthRadiusMeters = 6378137.0

// DistanceMeters возвращает расстояние по большому кругу между двумя точками
// в метрах, округлённое до 4 знаков после запятой.
func DistanceMeters(a, b Point) float64 {
	radLat1 := a.Lat * math.Pi / 180.0
	radLat2 := b.Lat * math.Pi / 180.0
	dLat := radLat1 - radLat2
	dLng := a.Lng*math.Pi/180.0 - b.Lng*math.Pi/180.0

	s := 2 * math.Asin(math.Sqrt(
		math.Pow(math.Sin(dLat/2), 2)+
			math.Cos(radLat1)*math.Cos(radLat2)*math.Pow(math.Sin(dLng/2), 2)))
	s *= earthRadiusMeters

	return math.Round(s*10000) / 10000
}
