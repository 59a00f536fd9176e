// Package geoutil — чистые геодезические функции: конвертация датумов
// (WGS-84 / GCJ-02 / BD-09), расстояние по большому кругу, микросдвиг
// совпадающих координат и проверка попадания точки в полигон.
// Все функции без состояния и побочных эффектов.
package geoutil

// Point — географическая координата (долгота/широта), датум зависит от контекста.
type Point struct {
	Lng float64
	Lat float64
}
