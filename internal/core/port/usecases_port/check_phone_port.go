package usecases_port

import (
	"context"

	"rent-records-service/internal/core/domain"
)

type CheckPhonePort interface {
	Check(ctx context.Context, phone string) (domain.PhoneCheckResult, error)
}
