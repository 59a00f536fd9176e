package domain

import "time"

// LandlordPatch — частичное обновление записи: nil-поле означает "не трогать".
// Слайсы заменяются целиком, как в частичном merge исходного хранилища.
type LandlordPatch struct {
	Photos       *[]Photo
	PhoneNumbers *[]string
	LandlordType *LandlordType
	Alias        *string

	WechatStatus   *WechatStatus
	ContactStatus  *ContactStatus
	WechatNickname *string
	IsFavorite     *bool

	GPS         *GPS
	Address     *string
	CaptureTime *time.Time

	Deposit    *string
	CommonFees *CommonFees

	ContactNotes   *string
	AdditionalInfo *string

	Properties *[]RoomInfo

	IsPerfect *bool
}

// ApplyTo накладывает ненулевые поля патча на запись. Отметку времени
// обновления ставит вызывающая сторона.
func (p LandlordPatch) ApplyTo(l *Landlord) {
	if p.Photos != nil {
		l.Photos = *p.Photos
	}
	if p.PhoneNumbers != nil {
		l.PhoneNumbers = *p.PhoneNumbers
	}
	if p.LandlordType != nil {
		l.LandlordType = *p.LandlordType
	}
	if p.Alias != nil {
		l.Alias = *p.Alias
	}
	if p.WechatStatus != nil {
		l.WechatStatus = *p.WechatStatus
	}
	if p.ContactStatus != nil {
		l.ContactStatus = *p.ContactStatus
	}
	if p.WechatNickname != nil {
		l.WechatNickname = *p.WechatNickname
	}
	if p.IsFavorite != nil {
		l.IsFavorite = *p.IsFavorite
	}
	if p.GPS != nil {
		l.GPS = p.GPS
	}
	if p.Address != nil {
		l.Address = *p.Address
	}
	if p.CaptureTime != nil {
		l.CaptureTime = p.CaptureTime
	}
	if p.Deposit != nil {
		l.Deposit = *p.Deposit
	}
	if p.CommonFees != nil {
		l.CommonFees = *p.CommonFees
	}
	if p.ContactNotes != nil {
		l.ContactNotes = *p.ContactNotes
	}
	if p.AdditionalInfo != nil {
		l.AdditionalInfo = *p.AdditionalInfo
	}
	if p.Properties != nil {
		l.Properties = *p.Properties
	}
	if p.IsPerfect != nil {
		l.IsPerfect = *p.IsPerfect
	}
}

// RoomPatch — частичное обновление комнаты.
type RoomPatch struct {
	RoomType    *string
	Rent        *float64
	Floor       *string
	Description *string
	Amenities   *[]string
	Videos      *[]Video
	Available   *bool
	IsFavorite  *bool
}

// ApplyTo накладывает ненулевые поля патча на комнату.
func (p RoomPatch) ApplyTo(r *RoomInfo) {
	if p.RoomType != nil {
		r.RoomType = *p.RoomType
	}
	if p.Rent != nil {
		r.Rent = p.Rent
	}
	if p.Floor != nil {
		r.Floor = *p.Floor
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Amenities != nil {
		r.Amenities = *p.Amenities
	}
	if p.Videos != nil {
		r.Videos = *p.Videos
	}
	if p.Available != nil {
		r.Available = p.Available
	}
	if p.IsFavorite != nil {
		r.IsFavorite = *p.IsFavorite
	}
}
