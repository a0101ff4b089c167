// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// CandidateOutcome classifies what happened to one candidate during an
// opportunity dispatch pass.
type CandidateOutcome string

const (
	// OutcomeSent means an email was handed to the mail transport.
	OutcomeSent CandidateOutcome = "sent"
	// OutcomeSkipped means a predicate ruled the candidate out before any send.
	OutcomeSkipped CandidateOutcome = "skipped"
	// OutcomeFailed means a per-candidate step errored; the batch continued.
	OutcomeFailed CandidateOutcome = "failed"
)

// CandidateReason explains a skipped or failed outcome.
type CandidateReason string

const (
	ReasonNoEmail            CandidateReason = "no_email"
	ReasonPreferenceDisabled CandidateReason = "preference_disabled"
	ReasonNoOperatingArea    CandidateReason = "no_operating_area"
	ReasonNoLocation         CandidateReason = "opportunity_has_no_location"
	ReasonOutsideArea        CandidateReason = "outside_operating_area"
	ReasonAreaLookupFailed   CandidateReason = "operating_area_lookup_failed"
	ReasonSendFailed         CandidateReason = "send_failed"
)

// CandidateResult records the outcome of the dispatch pipeline for a single
// candidate, so tests and logs can assert on why a candidate was or was not
// notified instead of only observing the absence of a send.
type CandidateResult struct {
	SubscriberID uuid.UUID        `json:"subscriber_id"`
	Outcome      CandidateOutcome `json:"outcome"`
	Reason       CandidateReason  `json:"reason,omitempty"`
	Err          error            `json:"-"`
}

// DispatchReport aggregates the per-candidate results of one opportunity
// dispatch pass.
type DispatchReport struct {
	OpportunityID string            `json:"opportunity_id"`
	Results       []CandidateResult `json:"results"`
	Sent          int               `json:"sent"`
	Skipped       int               `json:"skipped"`
	Failed        int               `json:"failed"`
}

// Add appends a result and bumps the matching counter.
func (r *DispatchReport) Add(result CandidateResult) {
	r.Results = append(r.Results, result)

	switch result.Outcome {
	case OutcomeSent:
		r.Sent++
	case OutcomeSkipped:
		r.Skipped++
	case OutcomeFailed:
		r.Failed++
	}
}
