package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/repository"
	mockRepo "beacon/internal/mocks/repository"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProfessionalService(t *testing.T) (usecase.ProfessionalUsecase, *mockRepo.MockProfessionalRepository) {
	proRepo := mockRepo.NewMockProfessionalRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewProfessionalService(proRepo, logger)

	return service, proRepo
}

func TestProfessionalService_GetProfessionalInfo_Success(t *testing.T) {
	service, proRepo := createTestProfessionalService(t)

	ctx := context.Background()
	profileID := uuid.New()
	stored := &entity.ProfessionalInfo{
		ProfileID:  profileID,
		Profession: "electrician",
		OperatingArea: &entity.OperatingArea{
			Center:   entity.Location{Latitude: 37.98, Longitude: 23.72},
			RadiusKm: 30,
		},
	}

	proRepo.EXPECT().FindByProfileID(ctx, profileID).Return(stored, nil)

	got, err := service.GetProfessionalInfo(ctx, profileID)

	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestProfessionalService_GetProfessionalInfo_NotFound(t *testing.T) {
	service, proRepo := createTestProfessionalService(t)

	ctx := context.Background()
	profileID := uuid.New()

	proRepo.EXPECT().FindByProfileID(ctx, profileID).
		Return(nil, repository.ErrProfessionalInfoNotFound)

	got, err := service.GetProfessionalInfo(ctx, profileID)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrProfessionalInfoNotFound)
}

func TestProfessionalService_UpdateProfessionalInfo_Success(t *testing.T) {
	service, proRepo := createTestProfessionalService(t)

	ctx := context.Background()
	profileID := uuid.New()
	input := &usecase.UpdateProfessionalInfoInput{
		Profession: "plumber",
		Bio:        "20 years of residential work",
		OperatingArea: &usecase.OperatingAreaInput{
			Latitude:  37.98,
			Longitude: 23.72,
			RadiusKm:  25,
		},
	}

	proRepo.EXPECT().Upsert(ctx, mock.MatchedBy(func(info *entity.ProfessionalInfo) bool {
		return info.ProfileID == profileID &&
			info.Profession == "plumber" &&
			info.OperatingArea != nil &&
			info.OperatingArea.RadiusKm == 25
	})).Return(nil)

	got, err := service.UpdateProfessionalInfo(ctx, profileID, input)

	require.NoError(t, err)
	assert.Equal(t, entity.Location{Latitude: 37.98, Longitude: 23.72}, got.OperatingArea.Center)
}

func TestProfessionalService_UpdateProfessionalInfo_NilAreaWithdrawsCatchment(t *testing.T) {
	service, proRepo := createTestProfessionalService(t)

	ctx := context.Background()
	profileID := uuid.New()

	proRepo.EXPECT().Upsert(ctx, mock.MatchedBy(func(info *entity.ProfessionalInfo) bool {
		return info.OperatingArea == nil
	})).Return(nil)

	got, err := service.UpdateProfessionalInfo(ctx, profileID, &usecase.UpdateProfessionalInfoInput{
		Profession: "plumber",
	})

	require.NoError(t, err)
	assert.Nil(t, got.OperatingArea)
}

func TestProfessionalService_UpdateProfessionalInfo_ZeroRadiusAccepted(t *testing.T) {
	service, proRepo := createTestProfessionalService(t)

	ctx := context.Background()
	profileID := uuid.New()

	proRepo.EXPECT().Upsert(ctx, mock.MatchedBy(func(info *entity.ProfessionalInfo) bool {
		return info.OperatingArea != nil && info.OperatingArea.RadiusKm == 0
	})).Return(nil)

	// A zero-radius catchment is a point: it matches opportunities at the
	// exact center and nothing else.
	got, err := service.UpdateProfessionalInfo(ctx, profileID, &usecase.UpdateProfessionalInfoInput{
		Profession:    "plumber",
		OperatingArea: &usecase.OperatingAreaInput{Latitude: 37.98, Longitude: 23.72, RadiusKm: 0},
	})

	require.NoError(t, err)
	assert.Equal(t, 0.0, got.OperatingArea.RadiusKm)
}

func TestProfessionalService_UpdateProfessionalInfo_InvalidArea(t *testing.T) {
	tests := []struct {
		name string
		area usecase.OperatingAreaInput
	}{
		{"latitude above range", usecase.OperatingAreaInput{Latitude: 91, Longitude: 0, RadiusKm: 10}},
		{"latitude below range", usecase.OperatingAreaInput{Latitude: -91, Longitude: 0, RadiusKm: 10}},
		{"longitude above range", usecase.OperatingAreaInput{Latitude: 0, Longitude: 181, RadiusKm: 10}},
		{"longitude below range", usecase.OperatingAreaInput{Latitude: 0, Longitude: -181, RadiusKm: 10}},
		{"negative radius", usecase.OperatingAreaInput{Latitude: 0, Longitude: 0, RadiusKm: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := createTestProfessionalService(t)

			got, err := service.UpdateProfessionalInfo(context.Background(), uuid.New(), &usecase.UpdateProfessionalInfoInput{
				Profession:    "plumber",
				OperatingArea: &tt.area,
			})

			assert.Nil(t, got)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidOperatingArea)
		})
	}
}

func TestProfessionalService_UpdateProfessionalInfo_UpsertError(t *testing.T) {
	service, proRepo := createTestProfessionalService(t)

	ctx := context.Background()

	proRepo.EXPECT().Upsert(ctx, mock.Anything).Return(errors.New("deadlock"))

	got, err := service.UpdateProfessionalInfo(ctx, uuid.New(), &usecase.UpdateProfessionalInfoInput{
		Profession: "plumber",
	})

	assert.Nil(t, got)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save professional info")
}
