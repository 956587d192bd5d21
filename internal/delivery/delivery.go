// Package delivery defines the contract every transport front end satisfies.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the application root.
type Delivery interface {
	// Serve blocks until the underlying server stops.
	Serve(ctx context.Context) error
}
