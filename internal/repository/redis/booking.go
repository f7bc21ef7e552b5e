package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dtroode/travelgo-server/internal/model"
)

var _ model.BookingStore = (*BookingRepository)(nil)

type bookingDocument struct {
	ID         string              `json:"id"`
	OwnerEmail string              `json:"owner_email"`
	Service    string              `json:"service"`
	Time       string              `json:"time"`
	Price      string              `json:"price"`
	Status     model.BookingStatus `json:"status"`
	Date       string              `json:"date"`
	CreatedAt  time.Time           `json:"created_at"`
}

type BookingRepository struct {
	api redisAPI
}

func NewBookingRepository(api redisAPI) *BookingRepository {
	return &BookingRepository{
		api: api,
	}
}

// Create stores the booking under a fresh UUID and appends it to the owner index.
func (r *BookingRepository) Create(ctx context.Context, booking model.Booking) (model.Booking, error) {
	booking.ID = uuid.NewString()
	booking.Status = booking.Status.OrDefault()
	booking.Date = booking.DisplayDate()
	booking.CreatedAt = time.Now().UTC()

	raw, err := json.Marshal(bookingDocument(booking))
	if err != nil {
		return model.Booking{}, fmt.Errorf("failed to encode booking: %w", err)
	}

	err = r.api.SetAndPush(ctx, bookingKey(booking.ID), raw, accountBookingsKey(booking.OwnerEmail), booking.ID)
	if err != nil {
		return model.Booking{}, fmt.Errorf("failed to create booking: %w", err)
	}

	return booking, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (model.Booking, error) {
	raw, err := r.api.Get(ctx, bookingKey(id))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.Booking{}, model.ErrNotFound
		}
		return model.Booking{}, fmt.Errorf("failed to get booking by id: %w", err)
	}

	return decodeBooking(raw)
}

func (r *BookingRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]model.Booking, error) {
	ids, err := r.api.LRange(ctx, accountBookingsKey(ownerEmail))
	if err != nil {
		return nil, fmt.Errorf("failed to list booking ids: %w", err)
	}

	bookings := make([]model.Booking, 0, len(ids))
	for _, id := range ids {
		booking, err := r.GetByID(ctx, id)
		if errors.Is(err, model.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

// Cancel walks the owner index in insertion order and flips the first live
// booking matching service and date. Each flip is a WATCH/MULTI on one key.
func (r *BookingRepository) Cancel(ctx context.Context, ownerEmail, service, date string) (bool, error) {
	bookings, err := r.ListByOwner(ctx, ownerEmail)
	if err != nil {
		return false, err
	}

	for _, booking := range bookings {
		if !matchesLive(booking, service, date) {
			continue
		}

		err := r.api.Update(ctx, bookingKey(booking.ID), func(current []byte) ([]byte, error) {
			var doc bookingDocument
			if err := json.Unmarshal(current, &doc); err != nil {
				return nil, fmt.Errorf("failed to decode booking: %w", err)
			}
			if !matchesLive(model.Booking(doc), service, date) {
				return nil, errSkipWrite
			}
			doc.Status = model.BookingStatusCancelled
			return json.Marshal(doc)
		})
		switch {
		case err == nil:
			return true, nil
		case errors.Is(err, errSkipWrite), errors.Is(err, redis.Nil):
			continue
		default:
			return false, fmt.Errorf("failed to cancel booking: %w", err)
		}
	}

	return false, nil
}

func matchesLive(b model.Booking, service, date string) bool {
	return b.Service == service && b.Date == date && !b.Status.IsCancelled()
}

func decodeBooking(raw []byte) (model.Booking, error) {
	var doc bookingDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return model.Booking{}, fmt.Errorf("failed to decode booking: %w", err)
	}
	return model.Booking(doc), nil
}
