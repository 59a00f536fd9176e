package views

import (
	"sort"

	"rent-records-service/internal/core/domain"
	"rent-records-service/pkg/geoutil"
)

// roomTypeRank задаёт фиксированный порядок сортировки по типу комнаты.
// Неизвестный тип уходит в конец.
func roomTypeRank(roomType string) int {
	switch roomType {
	case domain.RoomTypeSingle:
		return 1
	case domain.RoomTypeOneRoom:
		return 2
	case domain.RoomTypeTwoRoom:
		return 3
	case domain.RoomTypeThreeRoom:
		return 4
	default:
		return 99
	}
}

// Flatten разворачивает коллекцию в плоский список комнат: одна позиция на
// комнату, поля владельца наследуются каждой позицией. Запись без комнат
// позиций не даёт.
func Flatten(landlords []domain.Landlord) []domain.PropertyViewItem {
	items := make([]domain.PropertyViewItem, 0, len(landlords))
	for i := range landlords {
		l := &landlords[i]
		for j := range l.Properties {
			p := &l.Properties[j]
			items = append(items, domain.PropertyViewItem{
				PropertyID:  p.ID,
				RoomType:    p.RoomType,
				Rent:        p.Rent,
				Floor:       p.Floor,
				Amenities:   p.Amenities,
				Available:   p.Available,
				Description: p.Description,
				Videos:      p.Videos,

				LandlordID:    l.ID,
				LandlordPhone: l.PrimaryPhone(),
				LandlordType:  l.LandlordType,
				Address:       l.Address,
				GPS:           l.GPS,

				Water:       l.CommonFees.Water,
				Electricity: l.CommonFees.Electricity,
				Deposit:     l.Deposit,

				Photo: l.PrimaryPhoto(),

				IsFavorite: p.IsFavorite,
			})
		}
	}
	return items
}

// FilterProperties применяет фильтры вида "по комнатам" к развёрнутому списку
// и сортирует результат согласно f.SortBy.
func FilterProperties(items []domain.PropertyViewItem, f domain.PropertyFilterOptions, polygon []domain.GPS) []domain.PropertyViewItem {
	result := make([]domain.PropertyViewItem, 0, len(items))

	vertices := polygonVertices(polygon)

	for i := range items {
		it := &items[i]
		if matchProperty(it, f, vertices) {
			result = append(result, *it)
		}
	}

	sortProperties(result, f.SortBy)
	return result
}

func matchProperty(it *domain.PropertyViewItem, f domain.PropertyFilterOptions, vertices []geoutil.Point) bool {
	if len(f.RoomTypes) > 0 && !containsString(f.RoomTypes, it.RoomType) {
		return false
	}

	if f.RentRange != nil {
		if it.Rent == nil || *it.Rent < f.RentRange.Min || *it.Rent > f.RentRange.Max {
			return false
		}
	}

	// Удобства: требуются все перечисленные.
	for _, a := range f.Amenities {
		if !containsString(it.Amenities, a) {
			return false
		}
	}

	if f.Available != nil {
		if it.Available == nil || *it.Available != *f.Available {
			return false
		}
	}

	if !matchFavorite(it.IsFavorite, f.Favorite) {
		return false
	}

	if len(f.LandlordType) > 0 && !containsLandlordType(f.LandlordType, it.LandlordType) {
		return false
	}

	if len(f.DepositMethods) > 0 && !containsString(f.DepositMethods, it.Deposit) {
		return false
	}

	if !matchWaterFee(it.Water, f.WaterType, f.WaterPriceMax) {
		return false
	}
	if !matchElectricityFee(it.Electricity, f.ElectricityType, f.ElectricityPriceMax) {
		return false
	}

	// Свободный поиск: адрес, описание комнаты, телефон владельца.
	if f.Keyword != "" {
		hit := containsFold(it.Address, f.Keyword) ||
			containsFold(it.Description, f.Keyword) ||
			containsFold(it.LandlordPhone, f.Keyword)
		if !hit {
			return false
		}
	}

	if len(vertices) >= 3 {
		if it.GPS == nil || !geoutil.PointInPolygon(it.GPS.Point(), vertices) {
			return false
		}
	}

	return true
}

func sortProperties(items []domain.PropertyViewItem, mode domain.SortMode) {
	rentOf := func(it *domain.PropertyViewItem) float64 {
		if it.Rent == nil {
			return 0
		}
		return *it.Rent
	}

	switch mode {
	case domain.SortRentAsc:
		sort.SliceStable(items, func(i, j int) bool {
			return rentOf(&items[i]) < rentOf(&items[j])
		})
	case domain.SortRentDesc:
		sort.SliceStable(items, func(i, j int) bool {
			return rentOf(&items[i]) > rentOf(&items[j])
		})
	case domain.SortRoomType:
		sort.SliceStable(items, func(i, j int) bool {
			return roomTypeRank(items[i].RoomType) < roomTypeRank(items[j].RoomType)
		})
	default:
		// Порядок развёртки (порядок владельцев, внутри — порядок комнат).
	}
}
