package model

import (
	"context"
	"strings"
	"time"
)

// BookingStore defines persistence operations for bookings.
type BookingStore interface {
	Create(ctx context.Context, booking Booking) (Booking, error)
	GetByID(ctx context.Context, id string) (Booking, error)
	ListByOwner(ctx context.Context, ownerEmail string) ([]Booking, error)
	Cancel(ctx context.Context, ownerEmail, service, date string) (bool, error)
}

// BookingStatus enumerates booking states.
type BookingStatus string

const (
	// BookingStatusConfirmed is the initial state of every booking.
	BookingStatusConfirmed BookingStatus = "Confirmed"
	// BookingStatusCancelled is terminal.
	BookingStatusCancelled BookingStatus = "Cancelled"
)

// IsCancelled compares case-insensitively; an empty status counts as Confirmed.
func (s BookingStatus) IsCancelled() bool {
	return strings.EqualFold(string(s), string(BookingStatusCancelled))
}

// OrDefault returns Confirmed for an empty status.
func (s BookingStatus) OrDefault() BookingStatus {
	if s == "" {
		return BookingStatusConfirmed
	}
	return s
}

// Booking represents a stored booking entity.
type Booking struct {
	ID         string
	OwnerEmail string
	Service    string
	Time       string
	Price      string
	Status     BookingStatus
	Date       string
	CreatedAt  time.Time
}

// DisplayDate falls back to Time when Date was never set.
func (b Booking) DisplayDate() string {
	if b.Date == "" {
		return b.Time
	}
	return b.Date
}

// ItemType enumerates bookable listing kinds.
type ItemType string

const (
	ItemTypeBus   ItemType = "bus"
	ItemTypeHotel ItemType = "hotel"
)

// HotelCheckIn is the fixed time recorded for hotel bookings.
const HotelCheckIn = "Check-in: 12:00 PM"

// Quote is a booking prepared from a listing, ready to be confirmed.
type Quote struct {
	Service string
	Time    string
	Price   string
}

// BookingView is a booking projected for display.
type BookingView struct {
	ID      string
	Service string
	Details string
	Date    string
	Status  BookingStatus
}

// History is the booking history of one account, most recent first.
type History struct {
	ActiveCount    int
	CancelledCount int
	Bookings       []BookingView
}

// Placeholders shown on the profile for unset account fields.
const (
	DefaultPhone       = "+91 9876543210"
	DefaultPreferences = "Sleeper Bus, Budget Hotels"
)

// AccountDetails are the account fields shown on the profile.
type AccountDetails struct {
	Name        string
	Email       string
	Phone       string
	Preferences string
}

// ProfileView is the profile page: account details and live bookings only.
type ProfileView struct {
	Account        AccountDetails
	ActiveCount    int
	CancelledCount int
	ActiveBookings []BookingView
}

// TicketRenderer renders the confirmation document of a booking.
type TicketRenderer interface {
	Render(booking Booking) ([]byte, error)
}
