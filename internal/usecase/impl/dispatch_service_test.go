package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/repository"
	mockRepo "beacon/internal/mocks/repository"
	mockSvc "beacon/internal/mocks/service"
	mockUC "beacon/internal/mocks/usecase"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestDispatchService(t *testing.T) (
	usecase.DispatchUsecase,
	*mockRepo.MockSubscriberDirectory,
	*mockUC.MockPreferenceGate,
	*mockRepo.MockProfessionalRepository,
	*mockSvc.MockMailService,
) {
	directory := mockRepo.NewMockSubscriberDirectory(t)
	gate := mockUC.NewMockPreferenceGate(t)
	proRepo := mockRepo.NewMockProfessionalRepository(t)
	mailSvc := mockSvc.NewMockMailService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	service := NewDispatchService(logger, directory, gate, proRepo, mailSvc)

	return service, directory, gate, proRepo, mailSvc
}

func testOpportunity() *entity.Opportunity {
	return &entity.Opportunity{
		ID:          "opp-123",
		Title:       "Kitchen renovation",
		Description: "Full remodel, start next month",
		Location:    &entity.Location{Latitude: 37.9838, Longitude: 23.7275},
	}
}

func areaAround(lat, lng, radiusKm float64) *entity.OperatingArea {
	return &entity.OperatingArea{
		Center:   entity.Location{Latitude: lat, Longitude: lng},
		RadiusKm: radiusKm,
	}
}

func TestDispatchService_Dispatch_MixedCandidates(t *testing.T) {
	service, directory, gate, proRepo, mailSvc := createTestDispatchService(t)

	ctx := context.Background()
	opp := testOpportunity()

	noEmailID := uuid.New()
	outsideID := uuid.New()
	matchID := uuid.New()

	directory.EXPECT().ListVerifiedSubscribers(ctx).Return([]*entity.Subscriber{
		{ID: noEmailID, Email: ""},
		{ID: outsideID, Email: "far@example.com"},
		{ID: matchID, Email: "near@example.com"},
	}, nil)

	gate.EXPECT().NotifyOnUpdates(ctx, outsideID).Return(true)
	gate.EXPECT().NotifyOnUpdates(ctx, matchID).Return(true)

	// Thessaloniki center, ~300 km from the Athens opportunity
	proRepo.EXPECT().FindOperatingArea(ctx, outsideID).
		Return(areaAround(40.6401, 22.9444, 50), nil)
	proRepo.EXPECT().FindOperatingArea(ctx, matchID).
		Return(areaAround(37.98, 23.72, 25), nil)

	mailSvc.EXPECT().SendOpportunityMail(ctx, "near@example.com", opp).Return(nil)

	report, err := service.Dispatch(ctx, opp)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Sent)
	assert.Equal(t, 2, report.Skipped)
	assert.Equal(t, 0, report.Failed)
	require.Len(t, report.Results, 3)
	assert.Equal(t, entity.ReasonNoEmail, report.Results[0].Reason)
	assert.Equal(t, entity.ReasonOutsideArea, report.Results[1].Reason)
	assert.Equal(t, entity.OutcomeSent, report.Results[2].Outcome)
}

func TestDispatchService_Dispatch_DirectoryError(t *testing.T) {
	service, directory, _, _, _ := createTestDispatchService(t)

	ctx := context.Background()

	directory.EXPECT().ListVerifiedSubscribers(ctx).Return(nil, errors.New("db down"))

	report, err := service.Dispatch(ctx, testOpportunity())

	assert.Error(t, err)
	assert.Nil(t, report)
	assert.Contains(t, err.Error(), "failed to list verified subscribers")
}

func TestDispatchService_Dispatch_NoCandidates(t *testing.T) {
	service, directory, _, _, _ := createTestDispatchService(t)

	ctx := context.Background()

	directory.EXPECT().ListVerifiedSubscribers(ctx).Return([]*entity.Subscriber{}, nil)

	report, err := service.Dispatch(ctx, testOpportunity())

	require.NoError(t, err)
	assert.Equal(t, 0, report.Sent)
	assert.Empty(t, report.Results)
}

func TestDispatchService_Dispatch_PreferenceDisabledSkipsAreaLookup(t *testing.T) {
	service, directory, gate, _, _ := createTestDispatchService(t)

	ctx := context.Background()
	subscriberID := uuid.New()

	directory.EXPECT().ListVerifiedSubscribers(ctx).Return([]*entity.Subscriber{
		{ID: subscriberID, Email: "quiet@example.com"},
	}, nil)
	gate.EXPECT().NotifyOnUpdates(ctx, subscriberID).Return(false)

	// No FindOperatingArea or SendOpportunityMail expectations: the
	// mock constructors assert that neither collaborator is touched.
	report, err := service.Dispatch(ctx, testOpportunity())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, entity.ReasonPreferenceDisabled, report.Results[0].Reason)
}

func TestDispatchService_Dispatch_NoOperatingArea(t *testing.T) {
	service, directory, gate, proRepo, _ := createTestDispatchService(t)

	ctx := context.Background()
	missingID := uuid.New()
	nilAreaID := uuid.New()

	directory.EXPECT().ListVerifiedSubscribers(ctx).Return([]*entity.Subscriber{
		{ID: missingID, Email: "new@example.com"},
		{ID: nilAreaID, Email: "retired@example.com"},
	}, nil)
	gate.EXPECT().NotifyOnUpdates(ctx, missingID).Return(true)
	gate.EXPECT().NotifyOnUpdates(ctx, nilAreaID).Return(true)

	proRepo.EXPECT().FindOperatingArea(ctx, missingID).
		Return(nil, repository.ErrProfessionalInfoNotFound)
	proRepo.EXPECT().FindOperatingArea(ctx, nilAreaID).
		Return(nil, nil)

	report, err := service.Dispatch(ctx, testOpportunity())

	require.NoError(t, err)
	assert.Equal(t, 2, report.Skipped)
	assert.Equal(t, entity.ReasonNoOperatingArea, report.Results[0].Reason)
	assert.Equal(t, entity.ReasonNoOperatingArea, report.Results[1].Reason)
}

func TestDispatchService_Dispatch_AreaLookupErrorDoesNotAbortBatch(t *testing.T) {
	service, directory, gate, proRepo, mailSvc := createTestDispatchService(t)

	ctx := context.Background()
	opp := testOpportunity()
	brokenID := uuid.New()
	healthyID := uuid.New()

	directory.EXPECT().ListVerifiedSubscribers(ctx).Return([]*entity.Subscriber{
		{ID: brokenID, Email: "broken@example.com"},
		{ID: healthyID, Email: "healthy@example.com"},
	}, nil)
	gate.EXPECT().NotifyOnUpdates(ctx, brokenID).Return(true)
	gate.EXPECT().NotifyOnUpdates(ctx, healthyID).Return(true)

	proRepo.EXPECT().FindOperatingArea(ctx, brokenID).
		Return(nil, errors.New("query timeout"))
	proRepo.EXPECT().FindOperatingArea(ctx, healthyID).
		Return(areaAround(37.98, 23.72, 25), nil)

	mailSvc.EXPECT().SendOpportunityMail(ctx, "healthy@example.com", opp).Return(nil)

	report, err := service.Dispatch(ctx, opp)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Sent)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, entity.ReasonAreaLookupFailed, report.Results[0].Reason)
	assert.Error(t, report.Results[0].Err)
}

func TestDispatchService_Dispatch_MissingOpportunityLocation(t *testing.T) {
	service, directory, gate, proRepo, _ := createTestDispatchService(t)

	ctx := context.Background()
	subscriberID := uuid.New()

	opp := testOpportunity()
	opp.Location = nil

	directory.EXPECT().ListVerifiedSubscribers(ctx).Return([]*entity.Subscriber{
		{ID: subscriberID, Email: "pro@example.com"},
	}, nil)
	gate.EXPECT().NotifyOnUpdates(ctx, subscriberID).Return(true)
	proRepo.EXPECT().FindOperatingArea(ctx, subscriberID).
		Return(areaAround(37.98, 23.72, 25), nil)

	report, err := service.Dispatch(ctx, opp)

	require.NoError(t, err)
	assert.Equal(t, 0, report.Sent)
	assert.Equal(t, entity.ReasonNoLocation, report.Results[0].Reason)
}

func TestDispatchService_Dispatch_SendFailureDoesNotAbortBatch(t *testing.T) {
	service, directory, gate, proRepo, mailSvc := createTestDispatchService(t)

	ctx := context.Background()
	opp := testOpportunity()
	firstID := uuid.New()
	secondID := uuid.New()

	directory.EXPECT().ListVerifiedSubscribers(ctx).Return([]*entity.Subscriber{
		{ID: firstID, Email: "bounce@example.com"},
		{ID: secondID, Email: "ok@example.com"},
	}, nil)
	gate.EXPECT().NotifyOnUpdates(ctx, firstID).Return(true)
	gate.EXPECT().NotifyOnUpdates(ctx, secondID).Return(true)

	proRepo.EXPECT().FindOperatingArea(ctx, firstID).
		Return(areaAround(37.98, 23.72, 25), nil)
	proRepo.EXPECT().FindOperatingArea(ctx, secondID).
		Return(areaAround(37.98, 23.72, 25), nil)

	mailSvc.EXPECT().SendOpportunityMail(ctx, "bounce@example.com", opp).
		Return(errors.New("smtp 550"))
	mailSvc.EXPECT().SendOpportunityMail(ctx, "ok@example.com", opp).Return(nil)

	report, err := service.Dispatch(ctx, opp)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Sent)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, entity.ReasonSendFailed, report.Results[0].Reason)
	assert.Equal(t, entity.OutcomeSent, report.Results[1].Outcome)
}

func TestDispatchService_Dispatch_BoundaryDistanceStillMatches(t *testing.T) {
	service, directory, gate, proRepo, mailSvc := createTestDispatchService(t)

	ctx := context.Background()
	subscriberID := uuid.New()

	// Opportunity sits exactly at the area center, so distance is zero
	// and any non-negative radius matches.
	opp := testOpportunity()
	opp.Location = &entity.Location{Latitude: 40.0, Longitude: 22.0}

	directory.EXPECT().ListVerifiedSubscribers(ctx).Return([]*entity.Subscriber{
		{ID: subscriberID, Email: "edge@example.com"},
	}, nil)
	gate.EXPECT().NotifyOnUpdates(ctx, subscriberID).Return(true)
	proRepo.EXPECT().FindOperatingArea(ctx, subscriberID).
		Return(areaAround(40.0, 22.0, 0), nil)

	mailSvc.EXPECT().SendOpportunityMail(ctx, "edge@example.com", opp).Return(nil)

	report, err := service.Dispatch(ctx, opp)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Sent)
}
