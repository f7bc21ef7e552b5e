package notify

import (
	"context"
	"errors"

	"github.com/dtroode/travelgo-server/internal/model"
)

var _ model.Notifier = Multi(nil)

// Multi fans out to every notifier and joins their errors. An empty Multi does nothing.
type Multi []model.Notifier

func (m Multi) Notify(ctx context.Context, service, ownerEmail string) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, service, ownerEmail); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
