package router

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dtroode/travelgo-server/internal/api/http/handler"
	"github.com/dtroode/travelgo-server/internal/api/http/middleware"
	"github.com/dtroode/travelgo-server/internal/logger"
	"github.com/dtroode/travelgo-server/internal/model"
)

// AccountService is satisfied by the account service: it both issues and verifies tokens.
type AccountService interface {
	handler.AccountService
	middleware.Authenticator
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Router represents the HTTP router for TravelGo operations.
type Router struct {
	accountService AccountService
	bookingService handler.BookingService
	contextManager model.ContextManager
	rateLimiter    *middleware.RateLimiter
	store          Pinger
	trustProxy     bool
	logger         *logger.Logger
}

// New creates new HTTP Router instance.
func New(
	accountService AccountService,
	bookingService handler.BookingService,
	contextManager model.ContextManager,
	rateLimiter *middleware.RateLimiter,
	store Pinger,
	trustProxy bool,
	logger *logger.Logger,
) *Router {
	return &Router{
		accountService: accountService,
		bookingService: bookingService,
		contextManager: contextManager,
		rateLimiter:    rateLimiter,
		store:          store,
		trustProxy:     trustProxy,
		logger:         logger,
	}
}

// Register builds the handler tree. Everything under /api except /api/auth requires a bearer token.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.accountService, r.contextManager, r.logger)
	accountHandler := handler.NewAccount(r.accountService, r.contextManager, r.logger)
	bookingHandler := handler.NewBooking(r.bookingService, r.contextManager, r.logger)

	mux := chi.NewRouter()
	mux.Use(chimw.RequestID)
	// forwarding headers are client-controlled unless a proxy rewrites them
	if r.trustProxy {
		mux.Use(chimw.RealIP)
	}
	mux.Use(logging.Handle)
	mux.Use(chimw.Recoverer)

	mux.Get("/health", r.health)

	mux.Route("/api", func(api chi.Router) {
		api.Route("/auth", func(auth chi.Router) {
			if r.rateLimiter != nil {
				auth.Use(r.rateLimiter.Handle)
			}
			auth.Post("/signup", accountHandler.Signup)
			auth.Post("/login", accountHandler.Login)
		})

		api.Group(func(protected chi.Router) {
			protected.Use(authenticate.Handle)

			protected.Get("/profile", bookingHandler.Profile)
			protected.Put("/profile", accountHandler.UpdateProfile)

			protected.Route("/bookings", func(bookings chi.Router) {
				bookings.Get("/", bookingHandler.History)
				bookings.Post("/", bookingHandler.Confirm)
				bookings.Post("/quote", bookingHandler.Quote)
				bookings.Post("/cancel", bookingHandler.Cancel)
				bookings.Get("/{id}/ticket", bookingHandler.Ticket)
			})
		})
	})

	return mux
}

func (r *Router) health(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if r.store != nil {
		if err := r.store.Ping(req.Context()); err != nil {
			r.logger.Error("health check failed", "error", err.Error())
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("UNAVAILABLE"))
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
