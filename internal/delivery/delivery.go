// Package delivery defines the inbound transport boundary of the application.
package delivery

import "context"

// Delivery is implemented by every transport that serves the application,
// letting the entrypoint start them uniformly.
type Delivery interface {
	Serve(ctx context.Context) error
}
