package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dtroode/travelgo-server/internal/logger"
	"github.com/dtroode/travelgo-server/internal/model"
	"github.com/dtroode/travelgo-server/internal/ticket"
)

// notifyTimeout bounds how long a confirmation waits on notification delivery.
const notifyTimeout = 5 * time.Second

// Booking implements the booking lifecycle on top of the account and booking stores.
type Booking struct {
	accountStore  model.AccountStore
	bookingStore  model.BookingStore
	notifier      model.Notifier
	storage       model.Storage
	renderer      model.TicketRenderer
	notifyTimeout time.Duration
	logger        *logger.Logger
}

func NewBooking(
	accountStore model.AccountStore,
	bookingStore model.BookingStore,
	notifier model.Notifier,
	storage model.Storage,
	renderer model.TicketRenderer,
	logger *logger.Logger,
) *Booking {
	return &Booking{
		accountStore:  accountStore,
		bookingStore:  bookingStore,
		notifier:      notifier,
		storage:       storage,
		renderer:      renderer,
		notifyTimeout: notifyTimeout,
		logger:        logger,
	}
}

// GetHistory returns every booking of the owner, newest first, with live and cancelled counts.
func (s *Booking) GetHistory(ctx context.Context, ownerEmail string) (model.History, error) {
	if _, err := s.getAccount(ctx, ownerEmail); err != nil {
		return model.History{}, err
	}

	bookings, err := s.bookingStore.ListByOwner(ctx, ownerEmail)
	if err != nil {
		return model.History{}, fmt.Errorf("failed to list bookings: %w", err)
	}

	history := model.History{
		Bookings: make([]model.BookingView, 0, len(bookings)),
	}
	for i := len(bookings) - 1; i >= 0; i-- {
		if bookings[i].Status.IsCancelled() {
			history.CancelledCount++
		} else {
			history.ActiveCount++
		}
		history.Bookings = append(history.Bookings, toView(bookings[i]))
	}

	return history, nil
}

// GetProfileView returns account details and the owner's live bookings, newest first.
func (s *Booking) GetProfileView(ctx context.Context, ownerEmail string) (model.ProfileView, error) {
	account, err := s.getAccount(ctx, ownerEmail)
	if err != nil {
		return model.ProfileView{}, err
	}

	bookings, err := s.bookingStore.ListByOwner(ctx, ownerEmail)
	if err != nil {
		return model.ProfileView{}, fmt.Errorf("failed to list bookings: %w", err)
	}

	view := model.ProfileView{
		Account: model.AccountDetails{
			Name:        account.Name,
			Email:       account.Email,
			Phone:       orDefault(account.Phone, model.DefaultPhone),
			Preferences: orDefault(account.Preferences, model.DefaultPreferences),
		},
		ActiveBookings: make([]model.BookingView, 0, len(bookings)),
	}
	for i := len(bookings) - 1; i >= 0; i-- {
		if bookings[i].Status.IsCancelled() {
			view.CancelledCount++
			continue
		}
		view.ActiveCount++
		view.ActiveBookings = append(view.ActiveBookings, toView(bookings[i]))
	}

	return view, nil
}

// ConfirmBooking stores a Confirmed booking dated at bookingTime and announces it.
// Notification failures are logged and never fail the booking.
func (s *Booking) ConfirmBooking(ctx context.Context, ownerEmail, service, bookingTime, price string) (model.Booking, error) {
	if _, err := s.getAccount(ctx, ownerEmail); err != nil {
		return model.Booking{}, err
	}

	booking, err := s.bookingStore.Create(ctx, model.Booking{
		OwnerEmail: ownerEmail,
		Service:    service,
		Time:       bookingTime,
		Price:      price,
		Status:     model.BookingStatusConfirmed,
		Date:       bookingTime,
	})
	if errors.Is(err, model.ErrNotFound) {
		return model.Booking{}, model.ErrAccountNotFound
	}
	if err != nil {
		s.logger.Error("Booking service: failed to create booking",
			"owner_email", ownerEmail,
			"service", service,
			"error", err.Error())
		return model.Booking{}, fmt.Errorf("failed to create booking: %w", err)
	}

	s.logger.Info("Booking service: booking confirmed",
		"booking_id", booking.ID,
		"owner_email", ownerEmail,
		"service", service)

	notifyCtx, cancel := context.WithTimeout(ctx, s.notifyTimeout)
	defer cancel()
	if err := s.notifier.Notify(notifyCtx, service, ownerEmail); err != nil {
		s.logger.Warn("Booking service: failed to send booking notification",
			"booking_id", booking.ID,
			"error", err.Error())
	}

	return booking, nil
}

// CancelBooking cancels the oldest live booking matching service and date.
// It reports false when there is nothing to cancel.
func (s *Booking) CancelBooking(ctx context.Context, ownerEmail, service, date string) (bool, error) {
	cancelled, err := s.bookingStore.Cancel(ctx, ownerEmail, service, date)
	if err != nil {
		s.logger.Error("Booking service: failed to cancel booking",
			"owner_email", ownerEmail,
			"service", service,
			"date", date,
			"error", err.Error())
		return false, fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.logger.Info("Booking service: cancel requested",
		"owner_email", ownerEmail,
		"service", service,
		"date", date,
		"cancelled", cancelled)

	return cancelled, nil
}

// QuoteBooking prepares the booking for a listing. Hotels always check in at noon.
func (s *Booking) QuoteBooking(itemType model.ItemType, name, departure, price string) (model.Quote, error) {
	switch itemType {
	case model.ItemTypeBus:
		return model.Quote{Service: name, Time: departure, Price: price}, nil
	case model.ItemTypeHotel:
		return model.Quote{Service: name, Time: model.HotelCheckIn, Price: price}, nil
	default:
		return model.Quote{}, fmt.Errorf("%w: unknown item type %q", model.ErrInvalidRequest, itemType)
	}
}

// GetTicket returns the confirmation PDF of a booking owned by ownerEmail,
// rendering and storing it on first request.
func (s *Booking) GetTicket(ctx context.Context, ownerEmail, bookingID string) (io.ReadCloser, error) {
	booking, err := s.bookingStore.GetByID(ctx, bookingID)
	if errors.Is(err, model.ErrNotFound) {
		return nil, model.ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking by id: %w", err)
	}
	if booking.OwnerEmail != ownerEmail {
		return nil, model.ErrBookingNotFound
	}

	key := ticket.Key(booking)
	exists, err := s.storage.Exists(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to check ticket: %w", err)
	}
	if exists {
		return s.storage.Download(ctx, key)
	}

	doc, err := s.renderer.Render(booking)
	if err != nil {
		return nil, fmt.Errorf("failed to render ticket: %w", err)
	}

	if err := s.storage.Upload(ctx, key, bytes.NewReader(doc), int64(len(doc)), ticket.ContentType); err != nil {
		s.logger.Warn("Booking service: failed to store ticket",
			"booking_id", booking.ID,
			"error", err.Error())
	}

	return io.NopCloser(bytes.NewReader(doc)), nil
}

func (s *Booking) getAccount(ctx context.Context, email string) (model.Account, error) {
	account, err := s.accountStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.Account{}, model.ErrAccountNotFound
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to get account by email: %w", err)
	}
	return account, nil
}

func toView(b model.Booking) model.BookingView {
	return model.BookingView{
		ID:      b.ID,
		Service: b.Service,
		Details: b.Time,
		Date:    b.DisplayDate(),
		Status:  b.Status.OrDefault(),
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
