package usecase

import (
	"context"

	"rent-records-service/internal/contextkeys"
	"rent-records-service/internal/core/collection"
	"rent-records-service/internal/core/domain"
	"rent-records-service/internal/core/port"
)

// MergeLandlordsUseCase сливает две записи: объединение уходит в target,
// source удаляется.
type MergeLandlordsUseCase struct {
	collection *collection.Collection
}

func NewMergeLandlordsUseCase(collection *collection.Collection) *MergeLandlordsUseCase {
	return &MergeLandlordsUseCase{collection: collection}
}

func (uc *MergeLandlordsUseCase) Merge(ctx context.Context, targetID, sourceID string) (domain.Landlord, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":  "MergeLandlords",
		"target_id": targetID,
		"source_id": sourceID,
	})

	ucLogger.Info("Use case started", nil)

	merged, err := uc.collection.Merge(ctx, targetID, sourceID)
	if err != nil {
		ucLogger.Error("Failed to merge landlord records", err, nil)
		return domain.Landlord{}, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return merged, nil
}
