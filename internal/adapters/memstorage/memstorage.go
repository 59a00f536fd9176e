// Package memstorage — реализация хранилища в памяти процесса: автономный
// режим без базы и тестовые стенды.
package memstorage

import (
	"context"
	"fmt"
	"sync"

	"rent-records-service/internal/core/domain"
)

type MemStorageAdapter struct {
	mu      sync.Mutex
	records map[string]domain.Landlord
	order   []string
}

func NewMemStorageAdapter() *MemStorageAdapter {
	return &MemStorageAdapter{records: make(map[string]domain.Landlord)}
}

func (a *MemStorageAdapter) GetAll(context.Context) ([]domain.Landlord, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]domain.Landlord, 0, len(a.order))
	for _, id := range a.order {
		out = append(out, a.records[id])
	}
	return out, nil
}

func (a *MemStorageAdapter) Add(_ context.Context, l domain.Landlord) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.records[l.ID]; ok {
		return fmt.Errorf("landlord %s already exists", l.ID)
	}
	a.records[l.ID] = l
	a.order = append(a.order, l.ID)
	return nil
}

func (a *MemStorageAdapter) Put(_ context.Context, l domain.Landlord) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.records[l.ID]; !ok {
		a.order = append(a.order, l.ID)
	}
	a.records[l.ID] = l
	return nil
}

func (a *MemStorageAdapter) Delete(_ context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.records[id]; !ok {
		return nil
	}
	delete(a.records, id)
	for i, known := range a.order {
		if known == id {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
	return nil
}

func (a *MemStorageAdapter) Clear(context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.records = make(map[string]domain.Landlord)
	a.order = nil
	return nil
}
