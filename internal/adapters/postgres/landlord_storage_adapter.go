package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mmcloughlin/geohash"

	"rent-records-service/internal/core/domain"
)

// LandlordStorageAdapter реализует LandlordStoragePort для PostgreSQL.
// Запись хранится целиком как JSONB (непрозрачная структура с ключом id);
// рядом лежат геохеш и отметки времени для индексов и сортировки выборки.
type LandlordStorageAdapter struct {
	pool *pgxpool.Pool
}

// NewLandlordStorageAdapter создает новый экземпляр адаптера.
func NewLandlordStorageAdapter(pool *pgxpool.Pool) (*LandlordStorageAdapter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &LandlordStorageAdapter{pool: pool}, nil
}

// EnsureSchema создает таблицу и индексы, если их еще нет.
func (a *LandlordStorageAdapter) EnsureSchema(ctx context.Context) error {
	const sql = `
		CREATE TABLE IF NOT EXISTS landlords (
			id         TEXT PRIMARY KEY,
			record     JSONB NOT NULL,
			geohash    TEXT,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_landlords_geohash ON landlords (geohash);
		CREATE INDEX IF NOT EXISTS idx_landlords_created_at ON landlords (created_at);
	`
	if _, err := a.pool.Exec(ctx, sql); err != nil {
		return fmt.Errorf("failed to ensure landlords schema: %w", err)
	}
	return nil
}

// GetAll возвращает все записи в порядке их создания.
func (a *LandlordStorageAdapter) GetAll(ctx context.Context) ([]domain.Landlord, error) {
	rows, err := a.pool.Query(ctx, `SELECT record FROM landlords ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query landlords: %w", err)
	}
	defer rows.Close()

	var landlords []domain.Landlord
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan landlord row: %w", err)
		}
		var l domain.Landlord
		if err := json.Unmarshal(raw, &l); err != nil {
			return nil, fmt.Errorf("failed to unmarshal landlord record: %w", err)
		}
		landlords = append(landlords, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read landlord rows: %w", err)
	}
	return landlords, nil
}

// Add вставляет новую запись; занятый id — ошибка.
func (a *LandlordStorageAdapter) Add(ctx context.Context, l domain.Landlord) error {
	raw, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("failed to marshal landlord %s: %w", l.ID, err)
	}

	const sql = `
		INSERT INTO landlords (id, record, geohash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = a.pool.Exec(ctx, sql, l.ID, raw, geohashOf(&l), l.CreatedAt, l.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("landlord %s already exists: %w", l.ID, err)
		}
		return fmt.Errorf("failed to insert landlord %s: %w", l.ID, err)
	}
	return nil
}

// Put — upsert по id.
func (a *LandlordStorageAdapter) Put(ctx context.Context, l domain.Landlord) error {
	raw, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("failed to marshal landlord %s: %w", l.ID, err)
	}

	const sql = `
		INSERT INTO landlords (id, record, geohash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			record     = EXCLUDED.record,
			geohash    = EXCLUDED.geohash,
			updated_at = EXCLUDED.updated_at
	`
	if _, err := a.pool.Exec(ctx, sql, l.ID, raw, geohashOf(&l), l.CreatedAt, l.UpdatedAt); err != nil {
		return fmt.Errorf("failed to upsert landlord %s: %w", l.ID, err)
	}
	return nil
}

// Delete удаляет запись; отсутствующий id не считается ошибкой.
func (a *LandlordStorageAdapter) Delete(ctx context.Context, id string) error {
	if _, err := a.pool.Exec(ctx, `DELETE FROM landlords WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete landlord %s: %w", id, err)
	}
	return nil
}

// Clear опустошает таблицу.
func (a *LandlordStorageAdapter) Clear(ctx context.Context) error {
	if _, err := a.pool.Exec(ctx, `TRUNCATE landlords`); err != nil {
		return fmt.Errorf("failed to clear landlords: %w", err)
	}
	return nil
}

func geohashOf(l *domain.Landlord) *string {
	if l.GPS == nil {
		return nil
	}
	h := geohash.Encode(l.GPS.Lat, l.GPS.Lng)
	return &h
}
