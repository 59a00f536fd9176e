package usecase

import (
	"context"

	"rent-records-service/internal/contextkeys"
	"rent-records-service/internal/core/collection"
	"rent-records-service/internal/core/port"
)

// LoadCollectionUseCase поднимает коллекцию из хранилища при старте
// и по явному запросу перечитывания.
type LoadCollectionUseCase struct {
	collection *collection.Collection
}

func NewLoadCollectionUseCase(collection *collection.Collection) *LoadCollectionUseCase {
	return &LoadCollectionUseCase{collection: collection}
}

func (uc *LoadCollectionUseCase) Load(ctx context.Context) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "LoadCollection"})

	ucLogger.Info("Use case started", nil)

	if err := uc.collection.Load(ctx); err != nil {
		ucLogger.Error("Failed to load collection from storage", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
