package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rent-records-service/internal/core/domain"
)

func f64(v float64) *float64 { return &v }
func b(v bool) *bool         { return &v }

func testLandlord(id string, mut ...func(*domain.Landlord)) domain.Landlord {
	l := domain.Landlord{
		ID:            id,
		PhoneNumbers:  []string{"13800000000"},
		LandlordType:  domain.LandlordFirstHand,
		WechatStatus:  domain.WechatNotAdded,
		ContactStatus: domain.ContactNotContacted,
		Address:       "Нанкинская улица, 12",
		GPS:           &domain.GPS{Lng: 121.47, Lat: 31.23},
		CommonFees: domain.CommonFees{
			Water:       domain.FeeItem{Type: domain.FeeTypeCivil},
			Electricity: domain.FeeItem{Type: domain.FeeTypeCivil},
		},
		Properties: []domain.RoomInfo{
			{ID: id + "-r1", RoomType: domain.RoomTypeSingle, Rent: f64(1500), Available: b(true)},
		},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	for _, m := range mut {
		m(&l)
	}
	return l
}

func TestFilterLandlordsNarrowsAndIsIdempotent(t *testing.T) {
	landlords := []domain.Landlord{
		testLandlord("a"),
		testLandlord("b", func(l *domain.Landlord) { l.WechatStatus = domain.WechatAdded }),
		testLandlord("c", func(l *domain.Landlord) { l.WechatStatus = domain.WechatAdded }),
	}
	counts := PhoneCounts(landlords)

	f := domain.FilterOptions{WechatStatus: []domain.WechatStatus{domain.WechatAdded}}
	first := FilterLandlords(landlords, counts, f, "", nil)
	require.Len(t, first, 2)

	// Повторное применение того же фильтра результат не меняет.
	second := FilterLandlords(first, PhoneCounts(first), f, "", nil)
	assert.Equal(t, first, second)
}

func TestFilterLandlordsKeywordAndPhoneSearch(t *testing.T) {
	landlords := []domain.Landlord{
		testLandlord("a", func(l *domain.Landlord) { l.Alias = "Дядя Ван" }),
		testLandlord("b", func(l *domain.Landlord) {
			l.PhoneNumbers = []string{"15912345678"}
			l.Address = "улица Хуайхай"
		}),
	}
	counts := PhoneCounts(landlords)

	got := FilterLandlords(landlords, counts, domain.FilterOptions{PhoneSearch: "12345"}, "", nil)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)

	got = FilterLandlords(landlords, counts, domain.FilterOptions{}, "хуайхай", nil)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)

	got = FilterLandlords(landlords, counts, domain.FilterOptions{}, "ван", nil)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}

func TestFilterLandlordsExistentialRoomPredicates(t *testing.T) {
	landlords := []domain.Landlord{
		testLandlord("cheap"),
		testLandlord("pricey", func(l *domain.Landlord) {
			l.Properties = []domain.RoomInfo{
				{ID: "p-r1", RoomType: domain.RoomTypeTwoRoom, Rent: f64(4200)},
				{ID: "p-r2", RoomType: domain.RoomTypeSingle, Rent: nil},
			}
		}),
		testLandlord("empty", func(l *domain.Landlord) { l.Properties = nil }),
	}
	counts := PhoneCounts(landlords)

	got := FilterLandlords(landlords, counts, domain.FilterOptions{
		RentRange: &domain.RentRange{Min: 4000, Max: 5000},
	}, "", nil)
	require.Len(t, got, 1)
	assert.Equal(t, "pricey", got[0].ID)

	// Комната без rent диапазону не удовлетворяет, но достаточно одной подходящей.
	got = FilterLandlords(landlords, counts, domain.FilterOptions{
		RoomTypes: []string{domain.RoomTypeTwoRoom},
	}, "", nil)
	require.Len(t, got, 1)
	assert.Equal(t, "pricey", got[0].ID)

	// Запись без комнат (и комната без available) экзистенциальный
	// предикат не проходит.
	got = FilterLandlords(landlords, counts, domain.FilterOptions{Available: b(true)}, "", nil)
	require.Len(t, got, 1)
	assert.Equal(t, "cheap", got[0].ID)
}

func TestFilterLandlordsCustomFeeAdmitsCivilUnderCap(t *testing.T) {
	landlords := []domain.Landlord{
		testLandlord("civil"),
		testLandlord("custom", func(l *domain.Landlord) {
			l.CommonFees.Water = domain.FeeItem{Type: domain.FeeTypeCustom, Price: f64(5)}
		}),
		testLandlord("expensive", func(l *domain.Landlord) {
			l.CommonFees.Water = domain.FeeItem{Type: domain.FeeTypeCustom, Price: f64(8)}
		}),
	}
	counts := PhoneCounts(landlords)

	// Потолок 5: проходит custom=5 и civil (ставка 3.0 ниже потолка).
	got := FilterLandlords(landlords, counts, domain.FilterOptions{
		WaterType:     domain.FeeTypeCustom,
		WaterPriceMax: f64(5),
	}, "", nil)
	require.Len(t, got, 2)

	// Потолок 2: ниже и гражданской ставки, и всех custom.
	got = FilterLandlords(landlords, counts, domain.FilterOptions{
		WaterType:     domain.FeeTypeCustom,
		WaterPriceMax: f64(2),
	}, "", nil)
	assert.Empty(t, got)
}

func TestFilterLandlordsRepeatedPhones(t *testing.T) {
	shared := func(l *domain.Landlord) { l.PhoneNumbers = []string{"12345"} }
	landlords := []domain.Landlord{
		testLandlord("a", shared),
		testLandlord("b", shared),
		testLandlord("c", shared),
		testLandlord("d", func(l *domain.Landlord) { l.PhoneNumbers = []string{"99999"} }),
	}
	counts := PhoneCounts(landlords)
	require.Equal(t, 3, counts["12345"])
	require.Equal(t, 1, counts["99999"])

	hidden := FilterLandlords(landlords, counts, domain.FilterOptions{HideRepeatedPhones: true}, "", nil)
	require.Len(t, hidden, 1)
	assert.Equal(t, "d", hidden[0].ID)

	shown := FilterLandlords(landlords, counts, domain.FilterOptions{ShowRepeatedPhones: true}, "", nil)
	assert.Len(t, shown, 3)

	// Оба флага сразу дают пустой результат.
	both := FilterLandlords(landlords, counts, domain.FilterOptions{
		HideRepeatedPhones: true,
		ShowRepeatedPhones: true,
	}, "", nil)
	assert.Empty(t, both)
}

func TestFilterLandlordsPolygon(t *testing.T) {
	landlords := []domain.Landlord{
		testLandlord("inside", func(l *domain.Landlord) { l.GPS = &domain.GPS{Lng: 0.5, Lat: 0.5} }),
		testLandlord("outside", func(l *domain.Landlord) { l.GPS = &domain.GPS{Lng: 2, Lat: 2} }),
		testLandlord("nogps", func(l *domain.Landlord) { l.GPS = nil }),
	}
	counts := PhoneCounts(landlords)
	square := []domain.GPS{{Lng: 0, Lat: 0}, {Lng: 1, Lat: 0}, {Lng: 1, Lat: 1}, {Lng: 0, Lat: 1}}

	got := FilterLandlords(landlords, counts, domain.FilterOptions{}, "", square)
	require.Len(t, got, 1)
	assert.Equal(t, "inside", got[0].ID)

	// Вырожденный полигон (меньше трёх вершин) не применяется.
	got = FilterLandlords(landlords, counts, domain.FilterOptions{}, "", square[:2])
	assert.Len(t, got, 3)
}

func TestFilterLandlordsSortFavoritesFirstThenRecency(t *testing.T) {
	now := time.Now()
	landlords := []domain.Landlord{
		testLandlord("old", func(l *domain.Landlord) { l.UpdatedAt = now.Add(-2 * time.Hour) }),
		testLandlord("fav", func(l *domain.Landlord) {
			l.IsFavorite = true
			l.UpdatedAt = now.Add(-3 * time.Hour)
		}),
		testLandlord("fresh", func(l *domain.Landlord) { l.UpdatedAt = now }),
	}
	got := FilterLandlords(landlords, PhoneCounts(landlords), domain.FilterOptions{}, "", nil)
	require.Len(t, got, 3)
	assert.Equal(t, "fav", got[0].ID)
	assert.Equal(t, "fresh", got[1].ID)
	assert.Equal(t, "old", got[2].ID)
}

func TestFlattenInheritsLandlordFields(t *testing.T) {
	landlords := []domain.Landlord{
		testLandlord("a", func(l *domain.Landlord) {
			l.Photos = []domain.Photo{{ID: "ph1", FileName: "a.jpg"}}
			l.Deposit = "1_month"
			l.Properties = []domain.RoomInfo{
				{ID: "a-r1", RoomType: domain.RoomTypeSingle, Rent: f64(1500), IsFavorite: true},
				{ID: "a-r2", RoomType: domain.RoomTypeTwoRoom, Rent: f64(3200)},
			}
		}),
		testLandlord("b", func(l *domain.Landlord) { l.Properties = nil }),
	}

	items := Flatten(landlords)
	require.Len(t, items, 2)

	first := items[0]
	assert.Equal(t, "a-r1", first.PropertyID)
	assert.Equal(t, "a", first.LandlordID)
	assert.Equal(t, "13800000000", first.LandlordPhone)
	assert.Equal(t, "1_month", first.Deposit)
	require.NotNil(t, first.Photo)
	assert.Equal(t, "ph1", first.Photo.ID)
	assert.True(t, first.IsFavorite)
	assert.False(t, items[1].IsFavorite)
}

func TestFilterPropertiesAmenitiesRequireAll(t *testing.T) {
	landlords := []domain.Landlord{
		testLandlord("a", func(l *domain.Landlord) {
			l.Properties = []domain.RoomInfo{
				{ID: "r1", RoomType: domain.RoomTypeSingle, Amenities: []string{"ac", "wifi", "washer"}},
				{ID: "r2", RoomType: domain.RoomTypeSingle, Amenities: []string{"ac"}},
			}
		}),
	}
	items := Flatten(landlords)

	got := FilterProperties(items, domain.PropertyFilterOptions{Amenities: []string{"ac", "wifi"}}, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "r1", got[0].PropertyID)
}

func TestFilterPropertiesSorts(t *testing.T) {
	landlords := []domain.Landlord{
		testLandlord("a", func(l *domain.Landlord) {
			l.Properties = []domain.RoomInfo{
				{ID: "r1", RoomType: domain.RoomTypeTwoRoom, Rent: f64(3000)},
				{ID: "r2", RoomType: domain.RoomTypeSingle, Rent: nil},
				{ID: "r3", RoomType: "loft", Rent: f64(1000)},
			}
		}),
	}
	items := Flatten(landlords)

	asc := FilterProperties(items, domain.PropertyFilterOptions{SortBy: domain.SortRentAsc}, nil)
	require.Len(t, asc, 3)
	// nil-аренда сортируется как ноль.
	assert.Equal(t, "r2", asc[0].PropertyID)
	assert.Equal(t, "r3", asc[1].PropertyID)
	assert.Equal(t, "r1", asc[2].PropertyID)

	desc := FilterProperties(items, domain.PropertyFilterOptions{SortBy: domain.SortRentDesc}, nil)
	assert.Equal(t, "r1", desc[0].PropertyID)

	byType := FilterProperties(items, domain.PropertyFilterOptions{SortBy: domain.SortRoomType}, nil)
	assert.Equal(t, "r2", byType[0].PropertyID)
	assert.Equal(t, "r1", byType[1].PropertyID)
	// Неизвестный тип комнаты уходит в конец.
	assert.Equal(t, "r3", byType[2].PropertyID)
}

func TestFilterPropertiesRentRangeIsStrictPerRoom(t *testing.T) {
	landlords := []domain.Landlord{
		testLandlord("a", func(l *domain.Landlord) {
			l.Properties = []domain.RoomInfo{
				{ID: "r1", RoomType: domain.RoomTypeSingle, Rent: f64(1500)},
				{ID: "r2", RoomType: domain.RoomTypeSingle, Rent: nil},
			}
		}),
	}
	items := Flatten(landlords)

	got := FilterProperties(items, domain.PropertyFilterOptions{
		RentRange: &domain.RentRange{Min: 1000, Max: 2000},
	}, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "r1", got[0].PropertyID)
}

func TestGroupByCoordinate(t *testing.T) {
	gps := domain.GPS{Lng: 121.473700, Lat: 31.230400}
	landlords := []domain.Landlord{
		testLandlord("a", func(l *domain.Landlord) {
			l.GPS = &gps
			l.Properties = []domain.RoomInfo{
				{ID: "r1", RoomType: domain.RoomTypeSingle},
				{ID: "r2", RoomType: domain.RoomTypeSingle},
			}
		}),
		testLandlord("b", func(l *domain.Landlord) { l.GPS = &gps }),
		testLandlord("c", func(l *domain.Landlord) { l.GPS = &domain.GPS{Lng: 120, Lat: 30} }),
		testLandlord("d", func(l *domain.Landlord) { l.GPS = nil }),
	}
	items := Flatten(landlords)

	groups := GroupByCoordinate(items)
	require.Len(t, groups, 2)
	assert.Equal(t, "121.473700,31.230400", groups[0].Key)
	assert.Equal(t, 3, groups[0].Count)
	assert.Len(t, groups[0].Items, 3)
	assert.Equal(t, 1, groups[1].Count)
}

func TestGroupByGeohashMergesNearbyPoints(t *testing.T) {
	landlords := []domain.Landlord{
		testLandlord("a", func(l *domain.Landlord) { l.GPS = &domain.GPS{Lng: 121.4737, Lat: 31.2304} }),
		testLandlord("b", func(l *domain.Landlord) { l.GPS = &domain.GPS{Lng: 121.4738, Lat: 31.2305} }),
		testLandlord("c", func(l *domain.Landlord) { l.GPS = &domain.GPS{Lng: 116.4, Lat: 39.9} }),
	}
	items := Flatten(landlords)

	groups := GroupByGeohash(items, 5)
	require.Len(t, groups, 2)
	assert.Equal(t, 2, groups[0].Count)
	assert.Len(t, groups[0].Key, 5)
}
