package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"rent-records-service/internal/contextkeys"
	"rent-records-service/internal/contracts"
	"rent-records-service/internal/core/collection"
	"rent-records-service/internal/core/domain"
	"rent-records-service/internal/core/port"
)

// ImportRecordsUseCase — загрузка дампа: каждая запись проверяется по
// JSON-схеме, валидные добавляются пачкой (upsert по id), невалидные
// отклоняются с указанием позиции.
type ImportRecordsUseCase struct {
	collection *collection.Collection
}

func NewImportRecordsUseCase(collection *collection.Collection) *ImportRecordsUseCase {
	return &ImportRecordsUseCase{collection: collection}
}

func (uc *ImportRecordsUseCase) Import(ctx context.Context, body []byte) (domain.ImportResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "ImportRecords"})

	ucLogger.Info("Use case started", nil)

	var doc struct {
		Version   string            `json:"version"`
		Landlords []json.RawMessage `json:"landlords"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		ucLogger.Error("Import document is not a valid JSON", err, nil)
		return domain.ImportResult{}, fmt.Errorf("parse import document: %w", err)
	}

	var result domain.ImportResult
	valid := make([]domain.Landlord, 0, len(doc.Landlords))
	for i, raw := range doc.Landlords {
		if err := contracts.ValidateRecord("Landlord", ExportDocumentVersion, raw); err != nil {
			result.Rejected = append(result.Rejected, domain.ImportError{Position: i, Reason: err.Error()})
			continue
		}
		var l domain.Landlord
		if err := json.Unmarshal(raw, &l); err != nil {
			result.Rejected = append(result.Rejected, domain.ImportError{Position: i, Reason: err.Error()})
			continue
		}
		valid = append(valid, l)
	}

	imported, err := uc.collection.Import(ctx, valid)
	result.Imported = imported
	if err != nil {
		ucLogger.Error("Batch import failed", err, port.Fields{"imported": imported})
		return result, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"imported": result.Imported,
		"rejected": len(result.Rejected),
	})
	return result, nil
}
