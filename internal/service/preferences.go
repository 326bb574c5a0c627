package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/avc/checkout-gateway/internal/domain"
)

// PreferenceService реализует domain.PreferenceService и domain.PreferenceProvider.
// Значения читаются из хранилища при каждом вызове.
type PreferenceService struct {
	prefRepo domain.PreferenceRepository
}

// NewPreferenceService создает новый PreferenceService
func NewPreferenceService(prefRepo domain.PreferenceRepository) *PreferenceService {
	return &PreferenceService{prefRepo: prefRepo}
}

// GetInt возвращает целочисленное значение настройки
func (s *PreferenceService) GetInt(ctx context.Context, key string) (int, error) {
	pref, err := s.prefRepo.GetPreference(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrPreferenceMissing) {
			return 0, err
		}
		return 0, fmt.Errorf("preference service: failed to read %q: %w", key, err)
	}

	value, err := strconv.Atoi(strings.TrimSpace(pref.Value))
	if err != nil {
		return 0, domain.ErrPreferenceNotInteger
	}

	return value, nil
}

// GetPreference возвращает настройку по ключу
func (s *PreferenceService) GetPreference(ctx context.Context, key string) (*domain.SystemPreference, error) {
	pref, err := s.prefRepo.GetPreference(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrPreferenceMissing) {
			return nil, err
		}
		return nil, fmt.Errorf("preference service: failed to get %q: %w", key, err)
	}
	return pref, nil
}

// CreatePreference создает настройку
func (s *PreferenceService) CreatePreference(ctx context.Context, pref domain.SystemPreference) (*domain.SystemPreference, error) {
	if pref.Key == "" {
		return nil, ErrInvalidInput
	}
	if pref.DataType == "" {
		pref.DataType = domain.PreferenceTypeString
	}
	if err := checkPreferenceValue(pref.DataType, pref.Value); err != nil {
		return nil, err
	}

	created, err := s.prefRepo.CreatePreference(ctx, &pref)
	if err != nil {
		if errors.Is(err, domain.ErrPreferenceExists) {
			return nil, err
		}
		return nil, fmt.Errorf("preference service: failed to create %q: %w", pref.Key, err)
	}

	return created, nil
}

// UpdatePreference меняет значение существующей настройки.
// Пустой тип данных сохраняет прежний.
func (s *PreferenceService) UpdatePreference(ctx context.Context, pref domain.SystemPreference) (*domain.SystemPreference, error) {
	if pref.Key == "" {
		return nil, ErrInvalidInput
	}

	if pref.DataType == "" {
		current, err := s.GetPreference(ctx, pref.Key)
		if err != nil {
			return nil, err
		}
		pref.DataType = current.DataType
	}
	if err := checkPreferenceValue(pref.DataType, pref.Value); err != nil {
		return nil, err
	}

	updated, err := s.prefRepo.UpdatePreference(ctx, &pref)
	if err != nil {
		if errors.Is(err, domain.ErrPreferenceMissing) {
			return nil, err
		}
		return nil, fmt.Errorf("preference service: failed to update %q: %w", pref.Key, err)
	}

	return updated, nil
}

func checkPreferenceValue(dataType domain.PreferenceDataType, value string) error {
	switch dataType {
	case domain.PreferenceTypeInteger:
		if _, err := strconv.Atoi(strings.TrimSpace(value)); err != nil {
			return ErrInvalidPreferenceValue
		}
	case domain.PreferenceTypeBoolean:
		if _, err := strconv.ParseBool(value); err != nil {
			return ErrInvalidPreferenceValue
		}
	case domain.PreferenceTypeString:
	default:
		return fmt.Errorf("%w: unknown data type %q", ErrInvalidInput, dataType)
	}
	return nil
}
