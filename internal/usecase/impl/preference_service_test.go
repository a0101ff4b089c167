package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	mockRepo "beacon/internal/mocks/repository"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestPreferenceService(t *testing.T) (usecase.PreferenceUsecase, *mockRepo.MockPreferenceRepository) {
	prefRepo := mockRepo.NewMockPreferenceRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewPreferenceService(prefRepo, logger)

	return service, prefRepo
}

func boolPtr(b bool) *bool {
	return &b
}

func prefsWithUpdates(profileID uuid.UUID, updates *bool) *entity.Preferences {
	return &entity.Preferences{
		ProfileID: profileID,
		Notifications: &entity.NotificationPreferences{
			Email: &entity.EmailPreferences{Updates: updates},
		},
	}
}

func TestPreferenceService_GetPreferences_Found(t *testing.T) {
	service, prefRepo := createTestPreferenceService(t)

	ctx := context.Background()
	profileID := uuid.New()
	stored := prefsWithUpdates(profileID, boolPtr(true))

	prefRepo.EXPECT().FindByProfileID(ctx, profileID).Return(stored, nil)

	got, err := service.GetPreferences(ctx, profileID)

	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestPreferenceService_GetPreferences_NotFoundReturnsEmptyDocument(t *testing.T) {
	service, prefRepo := createTestPreferenceService(t)

	ctx := context.Background()
	profileID := uuid.New()

	prefRepo.EXPECT().FindByProfileID(ctx, profileID).
		Return(nil, repository.ErrPreferencesNotFound)

	got, err := service.GetPreferences(ctx, profileID)

	require.NoError(t, err)
	assert.Equal(t, profileID, got.ProfileID)
	assert.Nil(t, got.Notifications)
	assert.False(t, got.EmailUpdatesEnabled())
}

func TestPreferenceService_GetPreferences_RepositoryError(t *testing.T) {
	service, prefRepo := createTestPreferenceService(t)

	ctx := context.Background()
	profileID := uuid.New()

	prefRepo.EXPECT().FindByProfileID(ctx, profileID).
		Return(nil, errors.New("connection reset"))

	got, err := service.GetPreferences(ctx, profileID)

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.Contains(t, err.Error(), "failed to get preferences")
}

func TestPreferenceService_UpdatePreferences_Success(t *testing.T) {
	service, prefRepo := createTestPreferenceService(t)

	ctx := context.Background()
	profileID := uuid.New()
	input := &usecase.UpdatePreferencesInput{
		Notifications: &entity.NotificationPreferences{
			Email: &entity.EmailPreferences{Updates: boolPtr(true), Marketing: boolPtr(false)},
		},
	}

	prefRepo.EXPECT().Upsert(ctx, mock.MatchedBy(func(p *entity.Preferences) bool {
		return p.ProfileID == profileID && p.EmailUpdatesEnabled() && !p.EmailMarketingEnabled()
	})).Return(nil)

	got, err := service.UpdatePreferences(ctx, profileID, input)

	require.NoError(t, err)
	assert.Equal(t, profileID, got.ProfileID)
	assert.False(t, got.UpdatedAt.IsZero())
}

func TestPreferenceService_UpdatePreferences_UpsertError(t *testing.T) {
	service, prefRepo := createTestPreferenceService(t)

	ctx := context.Background()
	profileID := uuid.New()

	prefRepo.EXPECT().Upsert(ctx, mock.Anything).Return(errors.New("deadlock"))

	got, err := service.UpdatePreferences(ctx, profileID, &usecase.UpdatePreferencesInput{})

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.Contains(t, err.Error(), "failed to save preferences")
}

func TestPreferenceService_NotifyOnUpdates_FailClosed(t *testing.T) {
	tests := []struct {
		name  string
		prefs *entity.Preferences
		err   error
		want  bool
	}{
		{
			name:  "enabled",
			prefs: prefsWithUpdates(uuid.New(), boolPtr(true)),
			want:  true,
		},
		{
			name:  "explicitly disabled",
			prefs: prefsWithUpdates(uuid.New(), boolPtr(false)),
			want:  false,
		},
		{
			name:  "updates field absent",
			prefs: prefsWithUpdates(uuid.New(), nil),
			want:  false,
		},
		{
			name:  "email block absent",
			prefs: &entity.Preferences{Notifications: &entity.NotificationPreferences{}},
			want:  false,
		},
		{
			name:  "document absent",
			err:   repository.ErrPreferencesNotFound,
			want:  false,
		},
		{
			name: "store error",
			err:  errors.New("connection reset"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, prefRepo := createTestPreferenceService(t)

			ctx := context.Background()
			profileID := uuid.New()

			prefRepo.EXPECT().FindByProfileID(ctx, profileID).Return(tt.prefs, tt.err)

			assert.Equal(t, tt.want, service.NotifyOnUpdates(ctx, profileID))
		})
	}
}
