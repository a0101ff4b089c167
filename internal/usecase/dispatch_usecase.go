package usecase

import (
	"context"

	"beacon/internal/domain/entity"
)

// DispatchUsecase runs the opportunity fan-out: directory lookup, preference
// gate, geographic containment, and per-recipient mail dispatch.
type DispatchUsecase interface {
	// Dispatch processes one opportunity against every verified subscriber.
	// It returns an error only when the candidate list itself cannot be
	// retrieved; per-candidate failures are recorded in the report and
	// never abort the batch.
	Dispatch(ctx context.Context, opportunity *entity.Opportunity) (*entity.DispatchReport, error)
}
