package domain

import (
	"time"

	"rent-records-service/pkg/geoutil"
)

// GPS — координата в датуме GCJ-02. Конвертации датумов к уже сохранённому
// значению повторно не применяются.
type GPS struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

// Point переводит координату в представление pkg/geoutil.
func (g GPS) Point() geoutil.Point {
	return geoutil.Point{Lng: g.Lng, Lat: g.Lat}
}

// Photo — метаданные фотографии; сам файл живёт у файлового коллаборатора.
// Первая фотография записи считается главной.
type Photo struct {
	ID          string     `json:"id"`
	FileName    string     `json:"fileName"`
	FolderID    string     `json:"folderId"`
	CaptureTime *time.Time `json:"captureTime,omitempty"`
	GPS         *GPS       `json:"gps,omitempty"`
	RoomID      string     `json:"roomId,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

// Video — ссылка на видеофайл комнаты.
type Video struct {
	ID          string     `json:"id"`
	FileName    string     `json:"fileName"`
	FolderID    string     `json:"folderId"`
	CaptureTime *time.Time `json:"captureTime,omitempty"`
	RoomID      string     `json:"roomId,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

// FeeItem — один коммунальный тариф: тип (unset/civil/custom или конкретная
// ставка) и цена с единицей измерения для пользовательских тарифов.
type FeeItem struct {
	Type  string   `json:"type"`
	Price *float64 `json:"price,omitempty"`
	Unit  string   `json:"unit,omitempty"`
}

// CommonFees — платежи, общие для всех комнат владельца.
type CommonFees struct {
	Electricity FeeItem  `json:"electricity"`
	Water       FeeItem  `json:"water"`
	Internet    *float64 `json:"internet,omitempty"`
	Management  *float64 `json:"management,omitempty"`
	Garbage     *float64 `json:"garbage,omitempty"`
	Other       string   `json:"other,omitempty"`
}

// RoomInfo — комната (сдаваемая единица), принадлежит ровно одному владельцу
// и снаружи по id не адресуется.
type RoomInfo struct {
	ID          string    `json:"id"`
	RoomType    string    `json:"roomType"`
	Rent        *float64  `json:"rent,omitempty"`
	Floor       string    `json:"floor,omitempty"`
	Description string    `json:"description,omitempty"`
	Amenities   []string  `json:"amenities"`
	Videos      []Video   `json:"videos"`
	Available   *bool     `json:"available,omitempty"`
	IsFavorite  bool      `json:"isFavorite,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Landlord — запись полевого обследования: владелец с вложенными комнатами.
type Landlord struct {
	ID string `json:"id"`

	Photos       []Photo      `json:"photos"`
	PhoneNumbers []string     `json:"phoneNumbers"`
	LandlordType LandlordType `json:"landlordType"`
	Alias        string       `json:"alias,omitempty"`

	WechatStatus   WechatStatus  `json:"wechatStatus"`
	ContactStatus  ContactStatus `json:"contactStatus"`
	WechatNickname string        `json:"wechatNickname,omitempty"`
	IsFavorite     bool          `json:"isFavorite,omitempty"`

	GPS         *GPS       `json:"gps,omitempty"`
	Address     string     `json:"address,omitempty"`
	CaptureTime *time.Time `json:"captureTime,omitempty"`

	Deposit    string     `json:"deposit"`
	CommonFees CommonFees `json:"commonFees"`

	ContactNotes   string `json:"contactNotes,omitempty"`
	AdditionalInfo string `json:"additionalInfo,omitempty"`

	Properties []RoomInfo `json:"properties"`

	IsPerfect bool      `json:"isPerfect"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PrimaryPhone возвращает первый телефон или пустую строку.
func (l *Landlord) PrimaryPhone() string {
	if len(l.PhoneNumbers) == 0 {
		return ""
	}
	return l.PhoneNumbers[0]
}

// PrimaryPhoto возвращает главную (первую) фотографию, если она есть.
func (l *Landlord) PrimaryPhoto() *Photo {
	if len(l.Photos) == 0 {
		return nil
	}
	return &l.Photos[0]
}

// HasPhone — точное строковое совпадение, без нормализации номера.
func (l *Landlord) HasPhone(phone string) bool {
	for _, p := range l.PhoneNumbers {
		if p == phone {
			return true
		}
	}
	return false
}
