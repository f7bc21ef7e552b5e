package model

import "context"

// Notifier announces confirmed bookings. Delivery is best-effort.
type Notifier interface {
	Notify(ctx context.Context, service, ownerEmail string) error
}
