package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/sriteja123gujjari/RentalManagement/internal/auth"
	"github.com/sriteja123gujjari/RentalManagement/internal/backend"
	"github.com/sriteja123gujjari/RentalManagement/internal/config"
	"github.com/sriteja123gujjari/RentalManagement/internal/service"
	"github.com/sriteja123gujjari/RentalManagement/pkg/logging"
)

func main() {
	configPath := flag.String("config", os.Getenv("RENTAL_CONFIG"), "Path to the TOML config file")
	flag.Parse()

	_ = godotenv.Load()

	if err := run(*configPath); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logging.SetupWithLevel(logging.ParseLevel(cfg.Log.Level))
	if err := cfg.Validate(); err != nil {
		return err
	}

	owners, err := cfg.OwnerSet()
	if err != nil {
		return err
	}
	ttl, err := cfg.TokenDuration()
	if err != nil {
		return err
	}
	defaultUnits, err := cfg.DefaultUnits()
	if err != nil {
		return err
	}

	b, err := backend.Open(cfg, slog.Default())
	if err != nil {
		return err
	}
	defer b.Close()

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, ttl)
	authenticator := auth.NewPasswordAuthenticator(b.Store, owners)

	router := newRouter(routerDeps{
		rental:     service.NewRentalService(b.Store, owners, cfg.Currency, defaultUnits, b.Publisher),
		auth:       service.NewAuthService(authenticator, jwtManager, slog.Default()),
		jwtManager: jwtManager,
		owners:     owners,
	})

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	server := &http.Server{
		Addr:              cfg.Address(),
		Handler:           h2c.NewHandler(router, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Connect server starting",
			"address", server.Addr,
			"owners", owners.Strings(),
			"backend", cfg.Database.Backend,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
