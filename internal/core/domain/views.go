package domain

// PropertyViewItem — развёрнутая комната: её собственные поля плюс
// унаследованные поля владельца. Избранность здесь — собственная,
// на уровне комнаты, независимая от избранности владельца.
type PropertyViewItem struct {
	PropertyID  string   `json:"propertyId"`
	RoomType    string   `json:"roomType"`
	Rent        *float64 `json:"rent,omitempty"`
	Floor       string   `json:"floor,omitempty"`
	Amenities   []string `json:"amenities"`
	Available   *bool    `json:"available,omitempty"`
	Description string   `json:"description,omitempty"`
	Videos      []Video  `json:"videos"`

	LandlordID    string       `json:"landlordId"`
	LandlordPhone string       `json:"landlordPhone"`
	LandlordType  LandlordType `json:"landlordType"`
	Address       string       `json:"address,omitempty"`
	GPS           *GPS         `json:"gps,omitempty"`

	Water       FeeItem `json:"water"`
	Electricity FeeItem `json:"electricity"`
	Deposit     string  `json:"deposit"`

	Photo *Photo `json:"photo,omitempty"`

	IsFavorite bool `json:"isFavorite,omitempty"`
}

// MarkerGroup — группа комнат под одним маркером карты.
type MarkerGroup struct {
	Key   string             `json:"key"`
	GPS   GPS                `json:"gps"`
	Items []PropertyViewItem `json:"items"`
	Count int                `json:"count"`
}

// CollectionStats — сводные счётчики по коллекции.
type CollectionStats struct {
	Total     int `json:"total"`
	Perfect   int `json:"perfect"`
	Imperfect int `json:"imperfect"`
	Contacted int `json:"contacted"`
	Rooms     int `json:"rooms"`
}
