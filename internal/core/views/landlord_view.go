package views

import (
	"sort"
	"strings"

	"rent-records-service/internal/core/domain"
	"rent-records-service/pkg/geoutil"
)

// FilterLandlords применяет конфигурацию фильтров, ключевое слово и полигон
// к снимку коллекции. Предикаты — независимые проверки принадлежности,
// соединённые конъюнктивно: порядок влияет только на производительность.
// Результат — стабильная сортировка: избранные сначала, далее по убыванию
// updatedAt.
func FilterLandlords(landlords []domain.Landlord, counts map[string]int, f domain.FilterOptions, keyword string, polygon []domain.GPS) []domain.Landlord {
	result := make([]domain.Landlord, 0, len(landlords))

	vertices := polygonVertices(polygon)

	for i := range landlords {
		l := &landlords[i]
		if matchLandlord(l, counts, f, keyword, vertices) {
			result = append(result, *l)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].IsFavorite != result[j].IsFavorite {
			return result[i].IsFavorite
		}
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})

	return result
}

func matchLandlord(l *domain.Landlord, counts map[string]int, f domain.FilterOptions, keyword string, vertices []geoutil.Point) bool {
	if len(f.WechatStatus) > 0 && !containsWechat(f.WechatStatus, l.WechatStatus) {
		return false
	}
	if len(f.ContactStatus) > 0 && !containsContact(f.ContactStatus, l.ContactStatus) {
		return false
	}
	if len(f.LandlordType) > 0 && !containsLandlordType(f.LandlordType, l.LandlordType) {
		return false
	}

	if f.PhoneSearch != "" && !anyPhoneContains(l.PhoneNumbers, f.PhoneSearch) {
		return false
	}

	// Свободный поиск: псевдоним/ник, любой телефон, адрес.
	if keyword != "" {
		hit := containsFold(l.Alias, keyword) ||
			containsFold(l.WechatNickname, keyword) ||
			anyPhoneContains(l.PhoneNumbers, keyword) ||
			containsFold(l.Address, keyword)
		if !hit {
			return false
		}
	}

	if f.IsPerfect != nil && l.IsPerfect != *f.IsPerfect {
		return false
	}

	// Экзистенциальные проверки по вложенным комнатам.
	if f.Available != nil {
		found := false
		for i := range l.Properties {
			p := &l.Properties[i]
			if p.Available != nil && *p.Available == *f.Available {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.RentRange != nil {
		found := false
		for i := range l.Properties {
			p := &l.Properties[i]
			if p.Rent != nil && *p.Rent >= f.RentRange.Min && *p.Rent <= f.RentRange.Max {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if len(f.RoomTypes) > 0 {
		found := false
		for i := range l.Properties {
			if containsString(f.RoomTypes, l.Properties[i].RoomType) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if !matchWaterFee(l.CommonFees.Water, f.WaterType, f.WaterPriceMax) {
		return false
	}
	if !matchElectricityFee(l.CommonFees.Electricity, f.ElectricityType, f.ElectricityPriceMax) {
		return false
	}

	if !matchFavorite(l.IsFavorite, f.Favorite) {
		return false
	}

	if f.HideRepeatedPhones && holdsRepeatedPhone(l, counts) {
		return false
	}
	if f.ShowRepeatedPhones && !holdsRepeatedPhone(l, counts) {
		return false
	}

	// Активный полигон исключает записи без координат.
	if len(vertices) >= 3 {
		if l.GPS == nil || !geoutil.PointInPolygon(l.GPS.Point(), vertices) {
			return false
		}
	}

	return true
}

func polygonVertices(polygon []domain.GPS) []geoutil.Point {
	if len(polygon) < 3 {
		return nil
	}
	vertices := make([]geoutil.Point, len(polygon))
	for i, v := range polygon {
		vertices[i] = v.Point()
	}
	return vertices
}

func anyPhoneContains(phones []string, substr string) bool {
	for _, p := range phones {
		if strings.Contains(p, substr) {
			return true
		}
	}
	return false
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func containsWechat(list []domain.WechatStatus, v domain.WechatStatus) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func containsContact(list []domain.ContactStatus, v domain.ContactStatus) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func containsLandlordType(list []domain.LandlordType, v domain.LandlordType) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
