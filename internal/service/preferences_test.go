package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/avc/checkout-gateway/internal/domain"
	domainmocks "github.com/avc/checkout-gateway/internal/domain/mocks"
)

func TestPreferenceService_GetInt(t *testing.T) {
	repo := domainmocks.NewPreferenceRepositoryMock(t)
	svc := NewPreferenceService(repo)
	ctx := context.Background()

	tests := []struct {
		name    string
		pref    *domain.SystemPreference
		repoErr error
		want    int
		wantErr error
	}{
		{
			name: "Integer value",
			pref: &domain.SystemPreference{Key: domain.PrefPaymentMaxAttempts, Value: "3", DataType: domain.PreferenceTypeInteger},
			want: 3,
		},
		{
			name: "Value with spaces",
			pref: &domain.SystemPreference{Key: domain.PrefPaymentMaxAttempts, Value: " 20 ", DataType: domain.PreferenceTypeInteger},
			want: 20,
		},
		{
			name:    "Not an integer",
			pref:    &domain.SystemPreference{Key: domain.PrefPaymentMaxAttempts, Value: "tres", DataType: domain.PreferenceTypeString},
			wantErr: domain.ErrPreferenceNotInteger,
		},
		{
			name:    "Missing",
			repoErr: domain.ErrPreferenceMissing,
			wantErr: domain.ErrPreferenceMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo.EXPECT().GetPreference(mock.Anything, domain.PrefPaymentMaxAttempts).Return(tt.pref, tt.repoErr).Once()

			got, err := svc.GetInt(ctx, domain.PrefPaymentMaxAttempts)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("Database error", func(t *testing.T) {
		dbErr := errors.New("database error")
		repo.EXPECT().GetPreference(mock.Anything, domain.PrefTokenRejectionRate).Return(nil, dbErr).Once()

		_, err := svc.GetInt(ctx, domain.PrefTokenRejectionRate)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestPreferenceService_CreatePreference(t *testing.T) {
	repo := domainmocks.NewPreferenceRepositoryMock(t)
	svc := NewPreferenceService(repo)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		pref := domain.SystemPreference{Key: "checkout.max_items", Value: "10", DataType: domain.PreferenceTypeInteger}
		repo.EXPECT().CreatePreference(mock.Anything, &pref).Return(&pref, nil).Once()

		created, err := svc.CreatePreference(ctx, pref)
		require.NoError(t, err)
		assert.Equal(t, "10", created.Value)
	})

	t.Run("Default data type is STRING", func(t *testing.T) {
		pref := domain.SystemPreference{Key: "checkout.banner", Value: "hola"}
		repo.EXPECT().CreatePreference(mock.Anything, mock.MatchedBy(func(p *domain.SystemPreference) bool {
			return p.DataType == domain.PreferenceTypeString
		})).Return(&pref, nil).Once()

		_, err := svc.CreatePreference(ctx, pref)
		require.NoError(t, err)
	})

	t.Run("Integer type with text value", func(t *testing.T) {
		_, err := svc.CreatePreference(ctx, domain.SystemPreference{Key: "x", Value: "abc", DataType: domain.PreferenceTypeInteger})
		assert.ErrorIs(t, err, ErrInvalidPreferenceValue)
	})

	t.Run("Boolean type", func(t *testing.T) {
		_, err := svc.CreatePreference(ctx, domain.SystemPreference{Key: "x", Value: "maybe", DataType: domain.PreferenceTypeBoolean})
		assert.ErrorIs(t, err, ErrInvalidPreferenceValue)
	})

	t.Run("Unknown type", func(t *testing.T) {
		_, err := svc.CreatePreference(ctx, domain.SystemPreference{Key: "x", Value: "1", DataType: "DECIMAL"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Empty key", func(t *testing.T) {
		_, err := svc.CreatePreference(ctx, domain.SystemPreference{Value: "1"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Already exists", func(t *testing.T) {
		pref := domain.SystemPreference{Key: domain.PrefPaymentMaxAttempts, Value: "3", DataType: domain.PreferenceTypeInteger}
		repo.EXPECT().CreatePreference(mock.Anything, &pref).Return(nil, domain.ErrPreferenceExists).Once()

		_, err := svc.CreatePreference(ctx, pref)
		assert.Equal(t, domain.ErrPreferenceExists, err)
	})
}

func TestPreferenceService_UpdatePreference(t *testing.T) {
	repo := domainmocks.NewPreferenceRepositoryMock(t)
	svc := NewPreferenceService(repo)
	ctx := context.Background()

	current := &domain.SystemPreference{Key: domain.PrefPaymentRejectionRate, Value: "20", DataType: domain.PreferenceTypeInteger}

	t.Run("Keeps current data type", func(t *testing.T) {
		repo.EXPECT().GetPreference(mock.Anything, current.Key).Return(current, nil).Once()
		repo.EXPECT().UpdatePreference(mock.Anything, mock.MatchedBy(func(p *domain.SystemPreference) bool {
			return p.Value == "0" && p.DataType == domain.PreferenceTypeInteger
		})).Return(&domain.SystemPreference{Key: current.Key, Value: "0", DataType: domain.PreferenceTypeInteger}, nil).Once()

		updated, err := svc.UpdatePreference(ctx, domain.SystemPreference{Key: current.Key, Value: "0"})
		require.NoError(t, err)
		assert.Equal(t, "0", updated.Value)
	})

	t.Run("Rejects non-integer for integer preference", func(t *testing.T) {
		repo.EXPECT().GetPreference(mock.Anything, current.Key).Return(current, nil).Once()

		_, err := svc.UpdatePreference(ctx, domain.SystemPreference{Key: current.Key, Value: "veinte"})
		assert.ErrorIs(t, err, ErrInvalidPreferenceValue)
	})

	t.Run("Missing", func(t *testing.T) {
		repo.EXPECT().GetPreference(mock.Anything, "unknown").Return(nil, domain.ErrPreferenceMissing).Once()

		_, err := svc.UpdatePreference(ctx, domain.SystemPreference{Key: "unknown", Value: "1"})
		assert.ErrorIs(t, err, domain.ErrPreferenceMissing)
	})

	t.Run("Missing with explicit type", func(t *testing.T) {
		pref := domain.SystemPreference{Key: "unknown", Value: "1", DataType: domain.PreferenceTypeInteger}
		repo.EXPECT().UpdatePreference(mock.Anything, &pref).Return(nil, domain.ErrPreferenceMissing).Once()

		_, err := svc.UpdatePreference(ctx, pref)
		assert.ErrorIs(t, err, domain.ErrPreferenceMissing)
	})
}
