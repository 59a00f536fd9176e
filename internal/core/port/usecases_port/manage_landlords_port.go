package usecases_port

import (
	"context"

	"rent-records-service/internal/core/collection"
	"rent-records-service/internal/core/domain"
)

type LoadCollectionPort interface {
	Load(ctx context.Context) error
}

type CreateLandlordPort interface {
	Create(ctx context.Context, in collection.CreateInput) (domain.Landlord, error)
}

type UpdateLandlordPort interface {
	Update(ctx context.Context, id string, patch domain.LandlordPatch) (domain.Landlord, error)
}

type RemoveLandlordPort interface {
	Remove(ctx context.Context, id string, alsoDeleteMedia bool) error
}

type MergeLandlordsPort interface {
	Merge(ctx context.Context, targetID, sourceID string) (domain.Landlord, error)
}

type SelectLandlordPort interface {
	Select(ctx context.Context, id string) error
	Selected(ctx context.Context) (domain.Landlord, error)
}

type ClearCollectionPort interface {
	Clear(ctx context.Context) error
}
