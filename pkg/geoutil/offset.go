package geoutil

import (
	"math"
	"math/rand"
)

const (
	// duplicateThreshold — ~2 метра по каждой оси: ближе считаем совпадением.
	duplicateThreshold = 0.00002
	// offsetRadius — фиксированный радиус сдвига, ~5 метров.
	offsetRadius = 0.00010
)

// ApplyOffset сдвигает candidate на offsetRadius в случайном направлении, если
// среди existing есть координата ближе duplicateThreshold по обеим осям.
// Иначе возвращает candidate без изменений. Сдвиг вычисляется один раз при
// вставке новой записи против уже существующих координат — не против уже
// сдвинутых в той же партии.
func ApplyOffset(existing []Point, candidate Point) Point {
	duplicate := false
	for _, p := range existing {
		if math.Abs(p.Lng-candidate.Lng) < duplicateThreshold &&
			math.Abs(p.Lat-candidate.Lat) < duplicateThreshold {
			duplicate = true
			break
		}
	}

	if !duplicate {
		return candidate
	}

	angle := rand.Float64() * 2 * math.Pi
	return Point{
		Lng: candidate.Lng + math.Cos(angle)*offsetRadius,
		Lat: candidate.Lat + math.Sin(angle)*offsetRadius,
	}
}
