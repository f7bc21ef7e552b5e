package minio

import (
	"context"
	"fmt"
	"io"

	"github.com/dtroode/travelgo-server/internal/model"
)

var _ model.Storage = Unavailable{}

// Unavailable stands in for object storage that could not be reached at startup.
// Every call fails with model.ErrStorageUnavailable so bookings keep working without tickets.
type Unavailable struct {
	Cause error
}

func (u Unavailable) err() error {
	return fmt.Errorf("%w: %v", model.ErrStorageUnavailable, u.Cause)
}

func (u Unavailable) Upload(_ context.Context, _ string, _ io.Reader, _ int64, _ string) error {
	return u.err()
}

func (u Unavailable) Download(_ context.Context, _ string) (io.ReadCloser, error) {
	return nil, u.err()
}

func (u Unavailable) Exists(_ context.Context, _ string) (bool, error) {
	return false, u.err()
}
