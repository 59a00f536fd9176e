package usecase

import (
	"context"

	"rent-records-service/internal/contextkeys"
	"rent-records-service/internal/core/collection"
	"rent-records-service/internal/core/domain"
	"rent-records-service/internal/core/port"
	"rent-records-service/internal/core/views"
)

// GetPropertyViewUseCase — вид "по комнатам": развертка вложенных комнат
// в плоский список с наследованием полей владельца.
type GetPropertyViewUseCase struct {
	collection *collection.Collection
}

func NewGetPropertyViewUseCase(collection *collection.Collection) *GetPropertyViewUseCase {
	return &GetPropertyViewUseCase{collection: collection}
}

func (uc *GetPropertyViewUseCase) Execute(ctx context.Context, f domain.PropertyFilterOptions, polygon []domain.GPS) ([]domain.PropertyViewItem, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "GetPropertyView"})

	ucLogger.Info("Use case started", nil)

	items := views.Flatten(uc.collection.Snapshot())
	result := views.FilterProperties(items, f, polygon)

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total":    len(items),
		"filtered": len(result),
	})
	return result, nil
}
