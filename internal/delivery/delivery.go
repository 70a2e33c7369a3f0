// Package delivery defines the contract every transport implementation satisfies.
package delivery

import "context"

// Delivery is a long-running transport (e.g., the HTTP server) managed by the
// application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
