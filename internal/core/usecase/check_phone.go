package usecase

import (
	"context"
	"regexp"
	"strings"

	"rent-records-service/internal/contextkeys"
	"rent-records-service/internal/core/collection"
	"rent-records-service/internal/core/domain"
	"rent-records-service/internal/core/port"
)

var mobilePhonePattern = regexp.MustCompile(`^1\d{10}$`)

// CheckPhoneUseCase — проверка номера перед созданием записи: точные
// дубликаты в коллекции и best-effort справка о регионе.
type CheckPhoneUseCase struct {
	collection *collection.Collection
	directory  port.PhoneDirectoryPort
}

func NewCheckPhoneUseCase(collection *collection.Collection, directory port.PhoneDirectoryPort) *CheckPhoneUseCase {
	return &CheckPhoneUseCase{collection: collection, directory: directory}
}

func (uc *CheckPhoneUseCase) Check(ctx context.Context, phone string) (domain.PhoneCheckResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{"use_case": "CheckPhone"})

	ucLogger.Info("Use case started", nil)

	normalized := normalizePhone(phone)
	result := domain.PhoneCheckResult{
		Phone:      normalized,
		Duplicates: uc.collection.FindByPhone(normalized),
	}

	// Регион запрашивается только для похожего на мобильный номера.
	if uc.directory != nil && mobilePhonePattern.MatchString(normalized) {
		region, err := uc.directory.Locate(ctx, normalized)
		if err != nil {
			ucLogger.Warn("Phone directory lookup failed", port.Fields{"error": err.Error()})
		} else {
			result.Region = region
		}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"duplicate_count": len(result.Duplicates),
	})
	return result, nil
}

func normalizePhone(phone string) string {
	replacer := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
	return replacer.Replace(strings.TrimSpace(phone))
}
