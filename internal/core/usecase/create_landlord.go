package usecase

import (
	"context"
	"fmt"

	"rent-records-service/internal/contextkeys"
	"rent-records-service/internal/core/collection"
	"rent-records-service/internal/core/domain"
	"rent-records-service/internal/core/port"
)

// CreateLandlordUseCase создает запись владельца из фотографий.
type CreateLandlordUseCase struct {
	collection *collection.Collection
}

func NewCreateLandlordUseCase(collection *collection.Collection) *CreateLandlordUseCase {
	return &CreateLandlordUseCase{collection: collection}
}

func (uc *CreateLandlordUseCase) Create(ctx context.Context, in collection.CreateInput) (domain.Landlord, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "CreateLandlord",
		"photo_count": len(in.Photos),
	})

	ucLogger.Info("Use case started", nil)

	created, err := uc.collection.Create(ctx, in)
	if err != nil {
		ucLogger.Error("Failed to create landlord record", err, nil)
		return domain.Landlord{}, fmt.Errorf("create landlord: %w", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"landlord_id": created.ID})
	return created, nil
}
