package views

import (
	"fmt"

	"github.com/mmcloughlin/geohash"

	"rent-records-service/internal/core/domain"
)

// GroupByCoordinate группирует позиции по координате с точностью шесть
// знаков после запятой. Порядок групп — порядок первого появления ключа;
// позиции без координат в карту не попадают.
func GroupByCoordinate(items []domain.PropertyViewItem) []domain.MarkerGroup {
	index := make(map[string]int)
	groups := make([]domain.MarkerGroup, 0)

	for i := range items {
		it := &items[i]
		if it.GPS == nil {
			continue
		}
		key := fmt.Sprintf("%.6f,%.6f", it.GPS.Lng, it.GPS.Lat)
		gi, ok := index[key]
		if !ok {
			gi = len(groups)
			index[key] = gi
			groups = append(groups, domain.MarkerGroup{Key: key, GPS: *it.GPS})
		}
		groups[gi].Items = append(groups[gi].Items, *it)
		groups[gi].Count++
	}

	return groups
}

// GroupByGeohash — укрупнённая группировка для отдалённых масштабов карты:
// ключом служит геохеш заданной точности, координатой группы — центр
// ячейки. Точность ограничивается диапазоном [1, 12].
func GroupByGeohash(items []domain.PropertyViewItem, precision uint) []domain.MarkerGroup {
	if precision < 1 {
		precision = 1
	}
	if precision > 12 {
		precision = 12
	}

	index := make(map[string]int)
	groups := make([]domain.MarkerGroup, 0)

	for i := range items {
		it := &items[i]
		if it.GPS == nil {
			continue
		}
		key := geohash.EncodeWithPrecision(it.GPS.Lat, it.GPS.Lng, precision)
		gi, ok := index[key]
		if !ok {
			lat, lng := geohash.DecodeCenter(key)
			gi = len(groups)
			index[key] = gi
			groups = append(groups, domain.MarkerGroup{Key: key, GPS: domain.GPS{Lng: lng, Lat: lat}})
		}
		groups[gi].Items = append(groups[gi].Items, *it)
		groups[gi].Count++
	}

	return groups
}
