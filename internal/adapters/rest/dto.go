package rest

import (
	"time"

	"rent-records-service/internal/core/collection"
	"rent-records-service/internal/core/domain"
)

// CreateLandlordRequest — тело POST /landlords: фотографии и их метаданные.
type CreateLandlordRequest struct {
	Photos      []domain.Photo `json:"photos"`
	GPS         *domain.GPS    `json:"gps,omitempty"`
	CaptureTime *time.Time     `json:"captureTime,omitempty"`
}

func (req CreateLandlordRequest) toInput() collection.CreateInput {
	return collection.CreateInput{
		Photos:      req.Photos,
		GPS:         req.GPS,
		CaptureTime: req.CaptureTime,
	}
}

// UpdateLandlordRequest — тело PATCH /landlords/{id}: nil-поле не трогается.
type UpdateLandlordRequest struct {
	Photos       *[]domain.Photo       `json:"photos,omitempty"`
	PhoneNumbers *[]string             `json:"phoneNumbers,omitempty"`
	LandlordType *domain.LandlordType  `json:"landlordType,omitempty"`
	Alias        *string               `json:"alias,omitempty"`
	WechatStatus *domain.WechatStatus  `json:"wechatStatus,omitempty"`
	ContactSt    *domain.ContactStatus `json:"contactStatus,omitempty"`
	WechatNick   *string               `json:"wechatNickname,omitempty"`
	IsFavorite   *bool                 `json:"isFavorite,omitempty"`
	GPS          *domain.GPS           `json:"gps,omitempty"`
	Address      *string               `json:"address,omitempty"`
	CaptureTime  *time.Time            `json:"captureTime,omitempty"`
	Deposit      *string               `json:"deposit,omitempty"`
	CommonFees   *domain.CommonFees    `json:"commonFees,omitempty"`
	ContactNotes *string               `json:"contactNotes,omitempty"`
	AdditionalIn *string               `json:"additionalInfo,omitempty"`
	IsPerfect    *bool                 `json:"isPerfect,omitempty"`
}

func (req UpdateLandlordRequest) toPatch() domain.LandlordPatch {
	return domain.LandlordPatch{
		Photos:         req.Photos,
		PhoneNumbers:   req.PhoneNumbers,
		LandlordType:   req.LandlordType,
		Alias:          req.Alias,
		WechatStatus:   req.WechatStatus,
		ContactStatus:  req.ContactSt,
		WechatNickname: req.WechatNick,
		IsFavorite:     req.IsFavorite,
		GPS:            req.GPS,
		Address:        req.Address,
		CaptureTime:    req.CaptureTime,
		Deposit:        req.Deposit,
		CommonFees:     req.CommonFees,
		ContactNotes:   req.ContactNotes,
		AdditionalInfo: req.AdditionalIn,
		IsPerfect:      req.IsPerfect,
	}
}

// AddRoomRequest — тело POST /landlords/{id}/rooms.
type AddRoomRequest struct {
	RoomType    string         `json:"roomType"`
	Rent        *float64       `json:"rent,omitempty"`
	Floor       string         `json:"floor,omitempty"`
	Description string         `json:"description,omitempty"`
	Amenities   []string       `json:"amenities,omitempty"`
	Videos      []domain.Video `json:"videos,omitempty"`
	Available   *bool          `json:"available,omitempty"`
	IsFavorite  bool           `json:"isFavorite,omitempty"`
}

func (req AddRoomRequest) toRoom() domain.RoomInfo {
	return domain.RoomInfo{
		RoomType:    req.RoomType,
		Rent:        req.Rent,
		Floor:       req.Floor,
		Description: req.Description,
		Amenities:   req.Amenities,
		Videos:      req.Videos,
		Available:   req.Available,
		IsFavorite:  req.IsFavorite,
	}
}

// UpdateRoomRequest — тело PATCH /landlords/{id}/rooms/{roomID}.
type UpdateRoomRequest struct {
	RoomType    *string         `json:"roomType,omitempty"`
	Rent        *float64        `json:"rent,omitempty"`
	Floor       *string         `json:"floor,omitempty"`
	Description *string         `json:"description,omitempty"`
	Amenities   *[]string       `json:"amenities,omitempty"`
	Videos      *[]domain.Video `json:"videos,omitempty"`
	Available   *bool           `json:"available,omitempty"`
	IsFavorite  *bool           `json:"isFavorite,omitempty"`
}

func (req UpdateRoomRequest) toPatch() domain.RoomPatch {
	return domain.RoomPatch{
		RoomType:    req.RoomType,
		Rent:        req.Rent,
		Floor:       req.Floor,
		Description: req.Description,
		Amenities:   req.Amenities,
		Videos:      req.Videos,
		Available:   req.Available,
		IsFavorite:  req.IsFavorite,
	}
}

// SelectLandlordRequest — тело PUT /landlords/selected.
type SelectLandlordRequest struct {
	ID string `json:"id"`
}

// ImportResponse — ответ POST /import.
type ImportResponse struct {
	Imported int                  `json:"imported"`
	Rejected []domain.ImportError `json:"rejected,omitempty"`
}
