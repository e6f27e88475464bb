// Package delivery defines the contract every transport entry point satisfies.
package delivery

import "context"

// Delivery is a long-running transport server (HTTP today). Serve blocks until
// the server stops; shutdown is wired through the Fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
