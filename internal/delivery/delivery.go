// Package delivery defines the contract every transport front end of the
// service fulfils.
package delivery

import "context"

// Delivery is a transport that serves the application until ctx is done or
// the transport is shut down.
type Delivery interface {
	Serve(ctx context.Context) error
}
