package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	apicontext "github.com/dtroode/travelgo-server/internal/api/http/context"
	"github.com/dtroode/travelgo-server/internal/api/http/middleware"
	"github.com/dtroode/travelgo-server/internal/api/http/router"
	httpServer "github.com/dtroode/travelgo-server/internal/api/http/server"
	"github.com/dtroode/travelgo-server/internal/config"
	"github.com/dtroode/travelgo-server/internal/logger"
	"github.com/dtroode/travelgo-server/internal/model"
	"github.com/dtroode/travelgo-server/internal/notify"
	"github.com/dtroode/travelgo-server/internal/password"
	"github.com/dtroode/travelgo-server/internal/repository/postgres"
	"github.com/dtroode/travelgo-server/internal/repository/redis"
	"github.com/dtroode/travelgo-server/internal/service"
	storage "github.com/dtroode/travelgo-server/internal/storage/minio"
	"github.com/dtroode/travelgo-server/internal/ticket"
	"github.com/dtroode/travelgo-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

// stores bundles the backend-specific pieces selected by STORE_BACKEND.
type stores struct {
	accounts  model.AccountStore
	bookings  model.BookingStore
	notifiers notify.Multi
	pinger    router.Pinger
	closer    io.Closer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("failed to load .env file: %v", err)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	st, err := openStores(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize storage", "backend", cfg.Backend, "error", err)
	}
	defer st.closer.Close()

	if cfg.Twilio.Enabled() {
		st.notifiers = append(st.notifiers, notify.NewSMS(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.From, cfg.Twilio.To))
	}

	var ticketStorage model.Storage
	ticketStorage, err = storage.Connect(ctx, cfg.Storage.Endpoint, cfg.Storage.AccessKey, cfg.Storage.SecretKey, cfg.Storage.Bucket, cfg.Storage.UseSSL)
	if err != nil {
		logger.Error("ticket storage unavailable, serving without tickets", "endpoint", cfg.Storage.Endpoint, "error", err)
		ticketStorage = storage.Unavailable{Cause: err}
	}

	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.AccessTTL)
	hasher := password.NewBcrypt(0)

	accountService := service.NewAccount(st.accounts, hasher, tokenManager, logger)
	bookingService := service.NewBooking(st.accounts, st.bookings, st.notifiers, ticketStorage, ticket.NewPDF(), logger)

	r := router.New(
		accountService,
		bookingService,
		apicontext.NewManager(),
		middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst),
		st.pinger,
		cfg.HTTP.TrustProxy,
		logger,
	)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port), cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout)

	sl := httpServer.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "backend", cfg.Backend, "https", cfg.HTTP.EnableHTTPS)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	switch cfg.Backend {
	case config.BackendRedis:
		client, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		return &stores{
			accounts:  redis.NewAccountRepository(client),
			bookings:  redis.NewBookingRepository(client),
			notifiers: notify.Multi{notify.NewPubSub(client, cfg.Redis.Channel)},
			pinger:    client,
			closer:    client,
		}, nil
	default:
		db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, err
		}
		return &stores{
			accounts: postgres.NewAccountRepository(db),
			bookings: postgres.NewBookingRepository(db),
			pinger:   db,
			closer:   db,
		}, nil
	}
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
