package usecases_port

import (
	"context"

	"rent-records-service/internal/core/domain"
)

type ExportRecordsPort interface {
	ExportXLSX(ctx context.Context) ([]byte, error)
	ExportJSON(ctx context.Context) ([]byte, error)
}

type ImportRecordsPort interface {
	Import(ctx context.Context, body []byte) (domain.ImportResult, error)
}
