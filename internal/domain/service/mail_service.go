// Package service defines the interfaces for domain services implemented by
// the infrastructure layer.
package service

import (
	"context"

	"beacon/internal/domain/entity"
)

// MailService defines the outbound mail transport used by the opportunity
// dispatch pipeline. Implementations render a fixed template from the
// opportunity and hand it to the configured transport.
type MailService interface {
	// SendOpportunityMail sends one opportunity notification to one
	// recipient. An error covers only this recipient; the caller decides
	// whether to continue with others.
	SendOpportunityMail(ctx context.Context, to string, opportunity *entity.Opportunity) error
}
