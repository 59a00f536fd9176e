package port

import (
	"context"

	"rent-records-service/internal/core/domain"
)

// LandlordStoragePort — key-value хранилище записей, ключ — id.
// Хранилище обязано обращаться с записью как с непрозрачной структурой.
type LandlordStoragePort interface {
	// GetAll возвращает все записи коллекции.
	GetAll(ctx context.Context) ([]domain.Landlord, error)

	// Add добавляет новую запись; ошибка, если id уже занят.
	Add(ctx context.Context, landlord domain.Landlord) error

	// Put — upsert по id.
	Put(ctx context.Context, landlord domain.Landlord) error

	// Delete удаляет запись по id.
	Delete(ctx context.Context, id string) error

	// Clear очищает хранилище целиком.
	Clear(ctx context.Context) error
}
