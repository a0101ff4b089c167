// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/geo"
	"beacon/internal/domain/repository"
	"beacon/internal/domain/service"
	"beacon/internal/usecase"

	"github.com/pkg/errors"
)

// dispatchService implements the DispatchUsecase interface. It fans one
// opportunity out across every verified subscriber, applying the preference
// gate, then the geographic filter, then the mail send, per candidate.
type dispatchService struct {
	logger    *slog.Logger
	directory repository.SubscriberDirectory
	gate      usecase.PreferenceGate
	proRepo   repository.ProfessionalRepository
	mailSvc   service.MailService
}

// NewDispatchService is the constructor for dispatchService.
func NewDispatchService(
	logger *slog.Logger,
	directory repository.SubscriberDirectory,
	gate usecase.PreferenceGate,
	proRepo repository.ProfessionalRepository,
	mailSvc service.MailService,
) usecase.DispatchUsecase {
	return &dispatchService{
		logger:    logger,
		directory: directory,
		gate:      gate,
		proRepo:   proRepo,
		mailSvc:   mailSvc,
	}
}

// Dispatch processes one opportunity. The candidate list failing to load is
// the only error that propagates; everything that goes wrong for a single
// candidate is recorded in the report and the loop moves on.
func (srv *dispatchService) Dispatch(ctx context.Context, opportunity *entity.Opportunity) (*entity.DispatchReport, error) {
	candidates, err := srv.directory.ListVerifiedSubscribers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list verified subscribers")
	}

	report := &entity.DispatchReport{OpportunityID: opportunity.ID}

	for _, candidate := range candidates {
		report.Add(srv.processCandidate(ctx, opportunity, candidate))
	}

	srv.logger.Info("Opportunity dispatch completed",
		slog.String("opportunity_id", opportunity.ID),
		slog.Int("candidates", len(candidates)),
		slog.Int("sent", report.Sent),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed),
	)

	return report, nil
}

// processCandidate runs the per-candidate pipeline. Steps are strictly
// sequential and short-circuiting: the first failing predicate skips the
// remaining checks, saving the preference-store and mail calls.
func (srv *dispatchService) processCandidate(ctx context.Context, opportunity *entity.Opportunity, candidate *entity.Subscriber) entity.CandidateResult {
	result := entity.CandidateResult{SubscriberID: candidate.ID}

	if candidate.Email == "" {
		result.Outcome = entity.OutcomeSkipped
		result.Reason = entity.ReasonNoEmail

		return result
	}

	if !srv.gate.NotifyOnUpdates(ctx, candidate.ID) {
		result.Outcome = entity.OutcomeSkipped
		result.Reason = entity.ReasonPreferenceDisabled

		return result
	}

	area, err := srv.proRepo.FindOperatingArea(ctx, candidate.ID)
	switch {
	case errors.Is(err, repository.ErrProfessionalInfoNotFound):
		result.Outcome = entity.OutcomeSkipped
		result.Reason = entity.ReasonNoOperatingArea

		return result
	case err != nil:
		srv.logger.Warn("Operating area lookup failed",
			slog.String("opportunity_id", opportunity.ID),
			slog.String("subscriber_id", candidate.ID.String()),
			slog.Any("error", err),
		)
		result.Outcome = entity.OutcomeFailed
		result.Reason = entity.ReasonAreaLookupFailed
		result.Err = err

		return result
	case area == nil:
		result.Outcome = entity.OutcomeSkipped
		result.Reason = entity.ReasonNoOperatingArea

		return result
	}

	// An opportunity without a location matches nobody. This is deliberate:
	// the containment check is indeterminate, and uncertain state never
	// triggers a notification.
	if opportunity.Location == nil {
		result.Outcome = entity.OutcomeSkipped
		result.Reason = entity.ReasonNoLocation

		return result
	}

	if !geo.WithinRadius(*area, *opportunity.Location) {
		result.Outcome = entity.OutcomeSkipped
		result.Reason = entity.ReasonOutsideArea

		return result
	}

	if err := srv.mailSvc.SendOpportunityMail(ctx, candidate.Email, opportunity); err != nil {
		srv.logger.Warn("Opportunity mail send failed",
			slog.String("opportunity_id", opportunity.ID),
			slog.String("subscriber_id", candidate.ID.String()),
			slog.String("recipient", candidate.Email),
			slog.Any("error", err),
		)
		result.Outcome = entity.OutcomeFailed
		result.Reason = entity.ReasonSendFailed
		result.Err = err

		return result
	}

	result.Outcome = entity.OutcomeSent

	return result
}
