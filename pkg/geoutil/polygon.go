package geoutil

// PointInPolygon — стандартный ray-casting тест. Полигон из менее чем трёх
// вершин не имеет площади; вызывающая сторона обязана проверять это сама.
// Поведение на границе/вершинах не гарантируется ни в какую сторону.
func PointInPolygon(p Point, vertices []Point) bool {
	inside := false
	n := len(vertices)

	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi := vertices[i]
		vj := vertices[j]

		intersects := (vi.Lat > p.Lat) != (vj.Lat > p.Lat) &&
			p.Lng < (vj.Lng-vi.Lng)*(p.Lat-vi.Lat)/(vj.Lat-vi.Lat)+vi.Lng
		if intersects {
			inside = !inside
		}
	}

	return inside
}
