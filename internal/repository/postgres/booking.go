package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/dtroode/travelgo-server/internal/model"
)

var _ model.BookingStore = (*BookingRepository)(nil)

type BookingRepository struct {
	db *Connection
}

func NewBookingRepository(db *Connection) *BookingRepository {
	return &BookingRepository{
		db: db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, booking model.Booking) (model.Booking, error) {
	booking.Status = booking.Status.OrDefault()
	booking.Date = booking.DisplayDate()

	query := `INSERT INTO bookings (owner_email, service, time, price, status, date)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		booking.OwnerEmail, booking.Service, booking.Time, booking.Price, booking.Status, booking.Date,
	).Scan(&id, &booking.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return model.Booking{}, model.ErrNotFound
		}
		return model.Booking{}, fmt.Errorf("failed to create booking: %w", err)
	}

	booking.ID = strconv.FormatInt(id, 10)
	return booking, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (model.Booking, error) {
	numericID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return model.Booking{}, model.ErrNotFound
	}

	query := `SELECT id, owner_email, service, time, price, status, date, created_at
			  FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, numericID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Booking{}, model.ErrNotFound
		}
		return model.Booking{}, fmt.Errorf("failed to get booking by id: %w", err)
	}

	return booking, nil
}

func (r *BookingRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]model.Booking, error) {
	query := `SELECT id, owner_email, service, time, price, status, date, created_at
			  FROM bookings WHERE owner_email = $1 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, ownerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]model.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bookings: %w", err)
	}

	return bookings, nil
}

// Cancel flips the oldest live booking matching the tuple. Earlier
// cancellations are skipped so duplicates are cancelled one per call.
func (r *BookingRepository) Cancel(ctx context.Context, ownerEmail, service, date string) (bool, error) {
	query := `UPDATE bookings SET status = $4
			  WHERE id = (
				  SELECT id FROM bookings
				  WHERE owner_email = $1 AND service = $2 AND date = $3 AND LOWER(status) <> LOWER($4)
				  ORDER BY id
				  LIMIT 1
				  FOR UPDATE
			  )`

	res, err := r.db.ExecContext(ctx, query, ownerEmail, service, date, model.BookingStatusCancelled)
	if err != nil {
		return false, fmt.Errorf("failed to cancel booking: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (model.Booking, error) {
	var (
		booking model.Booking
		id      int64
	)
	err := row.Scan(
		&id, &booking.OwnerEmail, &booking.Service, &booking.Time, &booking.Price,
		&booking.Status, &booking.Date, &booking.CreatedAt,
	)
	if err != nil {
		return model.Booking{}, err
	}
	booking.ID = strconv.FormatInt(id, 10)
	return booking, nil
}
