package domain

// RentRange — включительные границы аренды.
type RentRange struct {
	Min float64
	Max float64
}

// FilterOptions — конфигурация фильтров для вида "по владельцам".
// Все предикаты независимы и применяются конъюнктивно.
type FilterOptions struct {
	WechatStatus  []WechatStatus
	ContactStatus []ContactStatus
	LandlordType  []LandlordType

	IsPerfect *bool
	Available *bool
	RentRange *RentRange
	RoomTypes []string

	WaterType           string
	ElectricityType     string
	WaterPriceMax       *float64
	ElectricityPriceMax *float64

	PhoneSearch string
	Favorite    FavoriteFilter

	// Hide и Show по повторяющимся телефонам не взаимоисключающие: оба
	// включённых флага дают пустой результат (известный краевой случай,
	// семантика сохранена намеренно).
	HideRepeatedPhones bool
	ShowRepeatedPhones bool
}

// SortMode — сортировки вида "по комнатам".
type SortMode string

const (
	SortDefault  SortMode = "default"
	SortRentAsc  SortMode = "rentAsc"
	SortRentDesc SortMode = "rentDesc"
	SortRoomType SortMode = "roomType"
)

// PropertyFilterOptions — конфигурация фильтров для вида "по комнатам".
type PropertyFilterOptions struct {
	RoomTypes []string
	RentRange *RentRange
	Amenities []string // запись должна содержать ВСЕ перечисленные
	Available *bool
	Favorite  FavoriteFilter

	LandlordType        []LandlordType
	DepositMethods      []string
	WaterType           string
	ElectricityType     string
	WaterPriceMax       *float64
	ElectricityPriceMax *float64

	Keyword string
	SortBy  SortMode
}
