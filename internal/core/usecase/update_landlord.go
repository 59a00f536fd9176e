package usecase

import (
	"context"

	"rent-records-service/internal/contextkeys"
	"rent-records-service/internal/core/collection"
	"rent-records-service/internal/core/domain"
	"rent-records-service/internal/core/port"
)

// UpdateLandlordUseCase накладывает частичное обновление на запись владельца.
type UpdateLandlordUseCase struct {
	collection *collection.Collection
}

func NewUpdateLandlordUseCase(collection *collection.Collection) *UpdateLandlordUseCase {
	return &UpdateLandlordUseCase{collection: collection}
}

func (uc *UpdateLandlordUseCase) Update(ctx context.Context, id string, patch domain.LandlordPatch) (domain.Landlord, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "UpdateLandlord",
		"landlord_id": id,
	})

	ucLogger.Info("Use case started", nil)

	updated, err := uc.collection.Update(ctx, id, patch)
	if err != nil {
		ucLogger.Error("Failed to update landlord record", err, nil)
		return domain.Landlord{}, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return updated, nil
}
