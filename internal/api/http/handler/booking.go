package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dtroode/travelgo-server/internal/logger"
	"github.com/dtroode/travelgo-server/internal/model"
)

// BookingService defines booking lifecycle operations exposed over HTTP.
type BookingService interface {
	GetHistory(ctx context.Context, ownerEmail string) (model.History, error)
	GetProfileView(ctx context.Context, ownerEmail string) (model.ProfileView, error)
	ConfirmBooking(ctx context.Context, ownerEmail, service, bookingTime, price string) (model.Booking, error)
	CancelBooking(ctx context.Context, ownerEmail, service, date string) (bool, error)
	QuoteBooking(itemType model.ItemType, name, departure, price string) (model.Quote, error)
	GetTicket(ctx context.Context, ownerEmail, bookingID string) (io.ReadCloser, error)
}

// Booking handles profile, history and booking endpoints for the session owner.
type Booking struct {
	bookingService BookingService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewBooking(bookingService BookingService, contextManager model.ContextManager, logger *logger.Logger) *Booking {
	return &Booking{
		bookingService: bookingService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Booking) session(w http.ResponseWriter, r *http.Request) (model.Session, bool) {
	session, ok := h.contextManager.GetSessionFromContext(r.Context())
	if !ok {
		respondError(w, h.logger, http.StatusUnauthorized, "unauthorized")
	}
	return session, ok
}

func (h *Booking) Profile(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	view, err := h.bookingService.GetProfileView(r.Context(), session.Email)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, profileResponse{
		Account: accountResponse{
			Name:        view.Account.Name,
			Email:       view.Account.Email,
			Phone:       view.Account.Phone,
			Preferences: view.Account.Preferences,
		},
		ActiveCount:    view.ActiveCount,
		CancelledCount: view.CancelledCount,
		ActiveBookings: newBookingViews(view.ActiveBookings),
	})
}

func (h *Booking) History(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	history, err := h.bookingService.GetHistory(r.Context(), session.Email)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, historyResponse{
		ActiveCount:    history.ActiveCount,
		CancelledCount: history.CancelledCount,
		Bookings:       newBookingViews(history.Bookings),
	})
}

func (h *Booking) Quote(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.session(w, r); !ok {
		return
	}

	var req quoteRequest
	if err := decodeRequest(w, r, &req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	quote, err := h.bookingService.QuoteBooking(model.ItemType(req.ItemType), req.Name, req.Departure, req.Price)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, quoteResponse{Service: quote.Service, Time: quote.Time, Price: quote.Price})
}

func (h *Booking) Confirm(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req confirmRequest
	if err := decodeRequest(w, r, &req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	booking, err := h.bookingService.ConfirmBooking(r.Context(), session.Email, req.Service, req.Time, req.Price)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, newBookingResponse(booking))
}

func (h *Booking) Cancel(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var req cancelRequest
	if err := decodeRequest(w, r, &req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	cancelled, err := h.bookingService.CancelBooking(r.Context(), session.Email, req.Service, req.Date)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	if !cancelled {
		respondError(w, h.logger, http.StatusNotFound, model.ErrBookingNotFound.Error())
		return
	}

	respondJSON(w, h.logger, http.StatusOK, cancelResponse{Cancelled: true})
}

func (h *Booking) Ticket(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	bookingID := chi.URLParam(r, "id")
	doc, err := h.bookingService.GetTicket(r.Context(), session.Email, bookingID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	defer doc.Close()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="ticket-`+bookingID+`.pdf"`)
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, doc); err != nil {
		h.logger.Error("Booking handler: failed to stream ticket",
			"booking_id", bookingID,
			"error", err.Error())
	}
}
