package usecases_port

import (
	"context"

	"rent-records-service/internal/core/domain"
)

type GetLandlordViewPort interface {
	Execute(ctx context.Context, f domain.FilterOptions, keyword string, polygon []domain.GPS) ([]domain.Landlord, error)
}

type GetPropertyViewPort interface {
	Execute(ctx context.Context, f domain.PropertyFilterOptions, polygon []domain.GPS) ([]domain.PropertyViewItem, error)
}

type GetMapGroupsPort interface {
	Execute(ctx context.Context, f domain.PropertyFilterOptions, polygon []domain.GPS, precision uint) ([]domain.MarkerGroup, error)
}

type GetStatsPort interface {
	Execute(ctx context.Context) (domain.CollectionStats, error)
}
