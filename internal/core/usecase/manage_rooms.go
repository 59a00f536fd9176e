package usecase

import (
	"context"

	"rent-records-service/internal/contextkeys"
	"rent-records-service/internal/core/collection"
	"rent-records-service/internal/core/domain"
	"rent-records-service/internal/core/port"
)

// ManageRoomsUseCase — операции над комнатами; каждая идет через путь
// обновления записи-владельца.
type ManageRoomsUseCase struct {
	collection *collection.Collection
}

func NewManageRoomsUseCase(collection *collection.Collection) *ManageRoomsUseCase {
	return &ManageRoomsUseCase{collection: collection}
}

func (uc *ManageRoomsUseCase) AddRoom(ctx context.Context, landlordID string, room domain.RoomInfo) (domain.RoomInfo, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "AddRoom",
		"landlord_id": landlordID,
	})

	ucLogger.Info("Use case started", nil)

	added, err := uc.collection.AddRoom(ctx, landlordID, room)
	if err != nil {
		ucLogger.Error("Failed to add room", err, nil)
		return domain.RoomInfo{}, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"room_id": added.ID})
	return added, nil
}

func (uc *ManageRoomsUseCase) UpdateRoom(ctx context.Context, landlordID, roomID string, patch domain.RoomPatch) (domain.RoomInfo, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "UpdateRoom",
		"landlord_id": landlordID,
		"room_id":     roomID,
	})

	ucLogger.Info("Use case started", nil)

	updated, err := uc.collection.UpdateRoom(ctx, landlordID, roomID, patch)
	if err != nil {
		ucLogger.Error("Failed to update room", err, nil)
		return domain.RoomInfo{}, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return updated, nil
}

func (uc *ManageRoomsUseCase) RemoveRoom(ctx context.Context, landlordID, roomID string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "RemoveRoom",
		"landlord_id": landlordID,
		"room_id":     roomID,
	})

	ucLogger.Info("Use case started", nil)

	if err := uc.collection.RemoveRoom(ctx, landlordID, roomID); err != nil {
		ucLogger.Error("Failed to remove room", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
