package usecase

import (
	"context"

	"rent-records-service/internal/contextkeys"
	"rent-records-service/internal/core/collection"
	"rent-records-service/internal/core/domain"
	"rent-records-service/internal/core/port"
	"rent-records-service/internal/core/views"
)

// GetMapGroupsUseCase — маркеры карты: отфильтрованный вид "по комнатам",
// сгруппированный по точной координате или по ячейке геохеша.
type GetMapGroupsUseCase struct {
	collection *collection.Collection
}

func NewGetMapGroupsUseCase(collection *collection.Collection) *GetMapGroupsUseCase {
	return &GetMapGroupsUseCase{collection: collection}
}

// Execute группирует по координате с точностью 6 знаков. precision > 0
// переключает на укрупненную группировку по геохешу (отдаленные масштабы).
func (uc *GetMapGroupsUseCase) Execute(ctx context.Context, f domain.PropertyFilterOptions, polygon []domain.GPS, precision uint) ([]domain.MarkerGroup, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "GetMapGroups",
		"precision": precision,
	})

	ucLogger.Info("Use case started", nil)

	items := views.FilterProperties(views.Flatten(uc.collection.Snapshot()), f, polygon)

	var groups []domain.MarkerGroup
	if precision > 0 {
		groups = views.GroupByGeohash(items, precision)
	} else {
		groups = views.GroupByCoordinate(items)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"group_count": len(groups)})
	return groups, nil
}
