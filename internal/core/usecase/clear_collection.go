package usecase

import (
	"context"

	"rent-records-service/internal/contextkeys"
	"rent-records-service/internal/core/collection"
	"rent-records-service/internal/core/port"
)

// ClearCollectionUseCase полностью опустошает коллекцию и хранилище.
type ClearCollectionUseCase struct {
	collection *collection.Collection
}

func NewClearCollectionUseCase(collection *collection.Collection) *ClearCollectionUseCase {
	return &ClearCollectionUseCase{collection: collection}
}

func (uc *ClearCollectionUseCase) Clear(ctx context.Context) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "ClearCollection"})

	ucLogger.Info("Use case started", nil)

	if err := uc.collection.Clear(ctx); err != nil {
		ucLogger.Error("Failed to clear collection", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
