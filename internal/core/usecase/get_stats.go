package usecase

import (
	"context"

	"rent-records-service/internal/contextkeys"
	"rent-records-service/internal/core/collection"
	"rent-records-service/internal/core/domain"
	"rent-records-service/internal/core/port"
)

// GetStatsUseCase — сводные счетчики коллекции.
type GetStatsUseCase struct {
	collection *collection.Collection
}

func NewGetStatsUseCase(collection *collection.Collection) *GetStatsUseCase {
	return &GetStatsUseCase{collection: collection}
}

func (uc *GetStatsUseCase) Execute(ctx context.Context) (domain.CollectionStats, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetStats"})

	ucLogger.Info("Use case started", nil)
	stats := uc.collection.Stats()
	ucLogger.Info("Use case finished successfully", port.Fields{"total": stats.Total})
	return stats, nil
}
