package port

import (
	"context"

	"rent-records-service/internal/core/domain"
)

// WorkbookExporterPort — табличный экспорт коллекции (одна строка на запись).
type WorkbookExporterPort interface {
	ExportWorkbook(ctx context.Context, landlords []domain.Landlord) ([]byte, error)
}
