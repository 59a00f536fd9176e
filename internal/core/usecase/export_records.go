package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"rent-records-service/internal/contextkeys"
	"rent-records-service/internal/core/collection"
	"rent-records-service/internal/core/domain"
	"rent-records-service/internal/core/port"
)

// ExportDocument — полный дамп коллекции для переноса между устройствами.
type ExportDocument struct {
	Version    string            `json:"version"`
	ExportedAt time.Time         `json:"exportedAt"`
	Landlords  []domain.Landlord `json:"landlords"`
}

// ExportDocumentVersion — версия формата дампа, совпадает с версией схемы.
const ExportDocumentVersion = "1.0.0"

// ExportRecordsUseCase — выгрузка коллекции: табличная (xlsx) для просмотра
// и полная (json) для переноса.
type ExportRecordsUseCase struct {
	collection *collection.Collection
	workbook   port.WorkbookExporterPort
}

func NewExportRecordsUseCase(collection *collection.Collection, workbook port.WorkbookExporterPort) *ExportRecordsUseCase {
	return &ExportRecordsUseCase{collection: collection, workbook: workbook}
}

func (uc *ExportRecordsUseCase) ExportXLSX(ctx context.Context) ([]byte, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "ExportXLSX"})

	ucLogger.Info("Use case started", nil)

	snapshot := uc.collection.Snapshot()
	data, err := uc.workbook.ExportWorkbook(ctx, snapshot)
	if err != nil {
		ucLogger.Error("Failed to build workbook", err, nil)
		return nil, fmt.Errorf("export workbook: %w", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"record_count": len(snapshot)})
	return data, nil
}

func (uc *ExportRecordsUseCase) ExportJSON(ctx context.Context) ([]byte, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "ExportJSON"})

	ucLogger.Info("Use case started", nil)

	doc := ExportDocument{
		Version:    ExportDocumentVersion,
		ExportedAt: time.Now(),
		Landlords:  uc.collection.Snapshot(),
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		ucLogger.Error("Failed to marshal export document", err, nil)
		return nil, fmt.Errorf("marshal export document: %w", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"record_count": len(doc.Landlords)})
	return data, nil
}
