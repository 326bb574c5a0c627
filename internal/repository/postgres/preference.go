package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/avc/checkout-gateway/internal/domain"
)

// PreferenceRepository реализует domain.PreferenceRepository.
// Значения не кешируются: изменение действует со следующего чтения.
type PreferenceRepository struct {
	db DBTX
}

// NewPreferenceRepository создает новый PreferenceRepository
func NewPreferenceRepository(db DBTX) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// GetPreference получает настройку по ключу
func (r *PreferenceRepository) GetPreference(ctx context.Context, key string) (*domain.SystemPreference, error) {
	pref, err := scanPreference(r.db.QueryRow(ctx,
		`SELECT pref_key, pref_value, data_type, description, updated_at
		 FROM system_preferences
		 WHERE pref_key = $1`,
		key,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPreferenceMissing
		}
		return nil, fmt.Errorf("repository: failed to get preference %q: %w", key, err)
	}

	return pref, nil
}

// CreatePreference создает настройку
func (r *PreferenceRepository) CreatePreference(ctx context.Context, pref *domain.SystemPreference) (*domain.SystemPreference, error) {
	created, err := scanPreference(r.db.QueryRow(ctx,
		`INSERT INTO system_preferences (pref_key, pref_value, data_type, description)
		 VALUES ($1, $2, $3, $4)
		 RETURNING pref_key, pref_value, data_type, description, updated_at`,
		pref.Key, pref.Value, pref.DataType, pref.Description,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrPreferenceExists
		}
		return nil, fmt.Errorf("repository: failed to create preference %q: %w", pref.Key, err)
	}

	return created, nil
}

// UpdatePreference обновляет значение настройки.
// Пустое описание оставляет прежнее.
func (r *PreferenceRepository) UpdatePreference(ctx context.Context, pref *domain.SystemPreference) (*domain.SystemPreference, error) {
	updated, err := scanPreference(r.db.QueryRow(ctx,
		`UPDATE system_preferences
		 SET pref_value = $2,
		     data_type = $3,
		     description = COALESCE(NULLIF($4, ''), description),
		     updated_at = NOW()
		 WHERE pref_key = $1
		 RETURNING pref_key, pref_value, data_type, description, updated_at`,
		pref.Key, pref.Value, pref.DataType, pref.Description,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPreferenceMissing
		}
		return nil, fmt.Errorf("repository: failed to update preference %q: %w", pref.Key, err)
	}

	return updated, nil
}

func scanPreference(row pgx.Row) (*domain.SystemPreference, error) {
	p := &domain.SystemPreference{}
	if err := row.Scan(&p.Key, &p.Value, &p.DataType, &p.Description, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return p, nil
}
