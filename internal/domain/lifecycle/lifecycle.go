// Package lifecycle holds shared timeouts for process startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown steps, such as server
// shutdown, broker channel close, and database ping.
const DefaultTimeout = 10 * time.Second
