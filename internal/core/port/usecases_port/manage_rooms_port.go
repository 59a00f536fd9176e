package usecases_port

import (
	"context"

	"rent-records-service/internal/core/domain"
)

type ManageRoomsPort interface {
	AddRoom(ctx context.Context, landlordID string, room domain.RoomInfo) (domain.RoomInfo, error)
	UpdateRoom(ctx context.Context, landlordID, roomID string, patch domain.RoomPatch) (domain.RoomInfo, error)
	RemoveRoom(ctx context.Context, landlordID, roomID string) error
}
