// Package delivery defines the contract shared by every transport that
// serves the application, whether HTTP or queue consumer.
package delivery

import "context"

// Delivery is a long-running transport. Serve blocks until the context is
// cancelled or the transport fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
