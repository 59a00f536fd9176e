package usecase

import (
	"context"

	"rent-records-service/internal/contextkeys"
	"rent-records-service/internal/core/collection"
	"rent-records-service/internal/core/domain"
	"rent-records-service/internal/core/port"
	"rent-records-service/internal/core/views"
)

// GetLandlordViewUseCase — вид "по владельцам": фильтры, ключевое слово,
// полигон, сортировка избранные-сначала. Пересчитывается на каждый запрос.
type GetLandlordViewUseCase struct {
	collection *collection.Collection
}

func NewGetLandlordViewUseCase(collection *collection.Collection) *GetLandlordViewUseCase {
	return &GetLandlordViewUseCase{collection: collection}
}

func (uc *GetLandlordViewUseCase) Execute(ctx context.Context, f domain.FilterOptions, keyword string, polygon []domain.GPS) ([]domain.Landlord, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetLandlordView"})

	ucLogger.Info("Use case started", nil)

	snapshot := uc.collection.Snapshot()
	counts := views.PhoneCounts(snapshot)
	result := views.FilterLandlords(snapshot, counts, f, keyword, polygon)

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total":    len(snapshot),
		"filtered": len(result),
	})
	return result, nil
}
