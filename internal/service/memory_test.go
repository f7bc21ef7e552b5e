package service

import (
	"context"
	"strconv"
	"sync"

	"github.com/dtroode/travelgo-server/internal/model"
)

// memoryStore is an in-memory AccountStore and BookingStore for scenario tests.
type memoryStore struct {
	mu       sync.Mutex
	accounts map[string]model.Account
	bookings []model.Booking
}

func newMemoryStore() *memoryStore {
	return &memoryStore{accounts: make(map[string]model.Account)}
}

type memoryAccounts struct{ *memoryStore }

type memoryBookings struct{ *memoryStore }

func (s memoryAccounts) GetByEmail(_ context.Context, email string) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[email]
	if !ok {
		return model.Account{}, model.ErrNotFound
	}
	return a, nil
}

func (s memoryAccounts) Create(_ context.Context, account model.Account) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[account.Email]; ok {
		return model.Account{}, model.ErrDuplicateAccount
	}
	s.accounts[account.Email] = account
	return account, nil
}

func (s memoryAccounts) UpdateProfile(_ context.Context, email, name, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[email]
	if !ok {
		return model.ErrNotFound
	}
	a.Name, a.Phone = name, phone
	s.accounts[email] = a
	return nil
}

func (s memoryBookings) Create(_ context.Context, booking model.Booking) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	booking.ID = strconv.Itoa(len(s.bookings) + 1)
	booking.Status = booking.Status.OrDefault()
	booking.Date = booking.DisplayDate()
	s.bookings = append(s.bookings, booking)
	return booking, nil
}

func (s memoryBookings) GetByID(_ context.Context, id string) (model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return model.Booking{}, model.ErrNotFound
}

func (s memoryBookings) ListByOwner(_ context.Context, ownerEmail string) ([]model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Booking
	for _, b := range s.bookings {
		if b.OwnerEmail == ownerEmail {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s memoryBookings) Cancel(_ context.Context, ownerEmail, service, date string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.bookings {
		if b.OwnerEmail == ownerEmail && b.Service == service && b.Date == date && !b.Status.IsCancelled() {
			s.bookings[i].Status = model.BookingStatusCancelled
			return true, nil
		}
	}
	return false, nil
}

// plainHasher stores passwords with a marker prefix so tests stay fast.
type plainHasher struct{}

func (plainHasher) Hash(plaintext string) (string, error) { return "hashed:" + plaintext, nil }

func (plainHasher) Verify(hash, plaintext string) bool { return hash == "hashed:"+plaintext }
