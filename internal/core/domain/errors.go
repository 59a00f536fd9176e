package domain

import "errors"

// Ошибки, которые могут вернуть операции над коллекцией.
var (
	ErrLandlordNotFound = errors.New("landlord not found")
	ErrRoomNotFound     = errors.New("room not found")
)
