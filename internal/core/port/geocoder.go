package port

import (
	"context"

	"rent-records-service/internal/core/domain"
)

// ReverseGeocoderPort — обратное геокодирование. Вызовы best-effort:
// ошибку ловит вызывающая сторона и подставляет "адрес неизвестен".
type ReverseGeocoderPort interface {
	ResolveAddress(ctx context.Context, gps domain.GPS) (string, error)
}
