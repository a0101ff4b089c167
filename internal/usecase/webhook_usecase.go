package usecase

import (
	"context"
)

// Identity-provider event types consumed from the webhook queue.
const (
	IdentityEventUserCreated = "user.created"
	IdentityEventUserUpdated = "user.updated"
	IdentityEventUserDeleted = "user.deleted"
)

// IdentityUser is the user snapshot carried by an identity-provider event.
type IdentityUser struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
}

// IdentityEvent is one identity-provider lifecycle event.
type IdentityEvent struct {
	Type string       `json:"type"`
	User IdentityUser `json:"user"`
}

// WebhookUsecase syncs local profile records from identity-provider events.
type WebhookUsecase interface {
	// HandleIdentityEvent applies one lifecycle event to the profile store.
	HandleIdentityEvent(ctx context.Context, event *IdentityEvent) error
}
