// Package delivery defines the contract every transport entrypoint
// (HTTP server, workers) fulfills for the application runner.
package delivery

import "context"

// Delivery is a long-running transport entrypoint. Serve blocks until
// the entrypoint stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
