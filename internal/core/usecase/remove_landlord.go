package usecase

import (
	"context"

	"rent-records-service/internal/contextkeys"
	"rent-records-service/internal/core/collection"
	"rent-records-service/internal/core/port"
)

// RemoveLandlordUseCase удаляет запись владельца, опционально вместе
// с осиротевшими медиафайлами.
type RemoveLandlordUseCase struct {
	collection *collection.Collection
}

func NewRemoveLandlordUseCase(collection *collection.Collection) *RemoveLandlordUseCase {
	return &RemoveLandlordUseCase{collection: collection}
}

func (uc *RemoveLandlordUseCase) Remove(ctx context.Context, id string, alsoDeleteMedia bool) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":     "RemoveLandlord",
		"landlord_id":  id,
		"delete_media": alsoDeleteMedia,
	})

	ucLogger.Info("Use case started", nil)

	if err := uc.collection.Remove(ctx, id, alsoDeleteMedia); err != nil {
		ucLogger.Error("Failed to remove landlord record", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
