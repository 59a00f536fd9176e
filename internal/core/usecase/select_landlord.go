package usecase

import (
	"context"

	"rent-records-service/internal/contextkeys"
	"rent-records-service/internal/core/collection"
	"rent-records-service/internal/core/domain"
	"rent-records-service/internal/core/port"
)

// SelectLandlordUseCase — текущая выбранная запись: полевые операции
// (дозаполнение, фотографии комнат) идут против нее.
type SelectLandlordUseCase struct {
	collection *collection.Collection
}

func NewSelectLandlordUseCase(collection *collection.Collection) *SelectLandlordUseCase {
	return &SelectLandlordUseCase{collection: collection}
}

func (uc *SelectLandlordUseCase) Select(ctx context.Context, id string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "SelectLandlord",
		"landlord_id": id,
	})

	if err := uc.collection.Select(id); err != nil {
		ucLogger.Error("Failed to select landlord", err, nil)
		return err
	}

	ucLogger.Info("Landlord selected", nil)
	return nil
}

func (uc *SelectLandlordUseCase) Selected(ctx context.Context) (domain.Landlord, error) {
	selected, ok := uc.collection.Selected()
	if !ok {
		return domain.Landlord{}, domain.ErrLandlordNotFound
	}
	return selected, nil
}
