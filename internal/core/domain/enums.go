package domain

// LandlordType — классификация владельца.
type LandlordType string

const (
	LandlordFirstHand  LandlordType = "first_hand"  // собственник
	LandlordSecondHand LandlordType = "second_hand" // субарендодатель
	LandlordAgent      LandlordType = "agent"       // агент
	LandlordOther      LandlordType = "other"
)

// WechatStatus — статус добавления в WeChat.
type WechatStatus string

const (
	WechatNotAdded WechatStatus = "not_added"
	WechatAdded    WechatStatus = "added"
	WechatRejected WechatStatus = "rejected"
)

// ContactStatus — статус контакта с владельцем.
type ContactStatus string

const (
	ContactNotContacted ContactStatus = "not_contacted"
	Contacted           ContactStatus = "contacted"
)

// Типы тарифов на воду/электричество.
const (
	FeeTypeUnset  = "unset"
	FeeTypeCivil  = "civil"
	FeeTypeCustom = "custom"
)

// Коммунальные тарифы по умолчанию ("гражданские"): фиксированные константы,
// используются фильтрами с верхней границей цены.
const (
	CivilWaterPrice       = 3.0 // юаней за тонну
	CivilElectricityPrice = 0.6 // юаней за кВт·ч
)

// Известные типы комнат; в данных допускаются и произвольные строки.
const (
	RoomTypeSingle    = "single"
	RoomTypeOneRoom   = "1_room_1_hall"
	RoomTypeTwoRoom   = "2_room_1_hall"
	RoomTypeThreeRoom = "3_room_1_hall"
	RoomTypeOther     = "other"
)

// FavoriteFilter — трёхпозиционный фильтр по избранному.
type FavoriteFilter string

const (
	FavoriteAll  FavoriteFilter = "all"
	FavoriteOnly FavoriteFilter = "favorite"
	Unfavorite   FavoriteFilter = "unfavorite"
)

// RepeatedPhoneThreshold — телефон, встречающийся в стольких записях (и более),
// считается "повторяющимся": эвристика субарендодателя, всплывающего под
// множеством дверей.
const RepeatedPhoneThreshold = 3
