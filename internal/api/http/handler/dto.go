package handler

import "github.com/dtroode/travelgo-server/internal/model"

type signupRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,maxbytes=72"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Phone string `json:"phone" validate:"max=32"`
}

type sessionResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Token string `json:"token"`
}

type quoteRequest struct {
	ItemType  string `json:"item_type" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Departure string `json:"departure"`
	Price     string `json:"price" validate:"required"`
}

type quoteResponse struct {
	Service string `json:"service"`
	Time    string `json:"time"`
	Price   string `json:"price"`
}

type confirmRequest struct {
	Service string `json:"service" validate:"required"`
	Time    string `json:"time" validate:"required"`
	Price   string `json:"price" validate:"required"`
}

type cancelRequest struct {
	Service string `json:"service" validate:"required"`
	Date    string `json:"date" validate:"required"`
}

type cancelResponse struct {
	Cancelled bool `json:"cancelled"`
}

type bookingResponse struct {
	ID         string `json:"id"`
	OwnerEmail string `json:"owner_email"`
	Service    string `json:"service"`
	Time       string `json:"time"`
	Price      string `json:"price"`
	Status     string `json:"status"`
	Date       string `json:"date"`
}

type bookingViewResponse struct {
	ID      string `json:"id"`
	Service string `json:"service"`
	Details string `json:"details"`
	Date    string `json:"date"`
	Status  string `json:"status"`
}

type historyResponse struct {
	ActiveCount    int                   `json:"active_count"`
	CancelledCount int                   `json:"cancelled_count"`
	Bookings       []bookingViewResponse `json:"bookings"`
}

type accountResponse struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Preferences string `json:"preferences"`
}

type profileResponse struct {
	Account        accountResponse       `json:"account"`
	ActiveCount    int                   `json:"active_count"`
	CancelledCount int                   `json:"cancelled_count"`
	ActiveBookings []bookingViewResponse `json:"active_bookings"`
}

func newBookingResponse(b model.Booking) bookingResponse {
	return bookingResponse{
		ID:         b.ID,
		OwnerEmail: b.OwnerEmail,
		Service:    b.Service,
		Time:       b.Time,
		Price:      b.Price,
		Status:     string(b.Status),
		Date:       b.Date,
	}
}

func newBookingViews(views []model.BookingView) []bookingViewResponse {
	out := make([]bookingViewResponse, 0, len(views))
	for _, v := range views {
		out = append(out, bookingViewResponse{
			ID:      v.ID,
			Service: v.Service,
			Details: v.Details,
			Date:    v.Date,
			Status:  string(v.Status),
		})
	}
	return out
}
