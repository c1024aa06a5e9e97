package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	domainRepo "github.com/rajatvats23/swizzleFENg19-sub001/internal/domain/repository"
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/infrastructure/database"
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/infrastructure/repository"
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/presentation/http/handler"
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/presentation/http/middleware"
	"github.com/rajatvats23/swizzleFENg19-sub001/internal/presentation/http/routes"
	"github.com/rajatvats23/swizzleFENg19-sub001/pkg/utils"
	"github.com/spf13/cobra"
)

const (
	shutdownTimeout   = 10 * time.Second
	idempotencyPurge  = time.Hour
	readHeaderTimeout = 10 * time.Second
)

func newServeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the payments HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	cfg := a.cfg

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	idempotencyRepo, closeStore, err := a.idempotencyStore()
	if err != nil {
		return err
	}
	defer closeStore()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go repository.PurgeExpiredKeys(ctx, idempotencyRepo, idempotencyPurge, a.log)

	rateLimiter := middleware.NewUserRateLimiter(
		middleware.RateLimiterConfigFor(cfg.RateLimit.Requests, cfg.RateLimit.Duration))
	defer rateLimiter.Close()

	payments := a.paymentsClient()
	router := routes.Setup(&routes.Handlers{
		Payment: handler.NewPaymentHandler(payments, a.log),
		Report:  handler.NewReportHandler(payments, a.log, time.Now),
	}, &routes.Deps{
		JWTManager:      utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours),
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		Log:             a.log,
		RateLimiter:     rateLimiter,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.WithField("port", port).WithField("env", cfg.App.Env).Info("starting payments API")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	a.log.Info("shutting down payments API")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	return srv.Shutdown(shutdownCtx)
}

// idempotencyStore opens the configured idempotency store and returns a
// function releasing it
func (a *app) idempotencyStore() (domainRepo.IdempotencyRepository, func(), error) {
	if !a.cfg.UsesPostgres() {
		return repository.NewMemoryIdempotencyRepository(), func() {}, nil
	}

	db, err := database.NewPostgresDB(&a.cfg.Database, a.cfg.App.Debug, a.log)
	if err != nil {
		return nil, nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		_ = database.Close(db)
		return nil, nil, err
	}

	closeDB := func() {
		if err := database.Close(db); err != nil {
			a.log.WithError(err).Warn("failed to close database")
		}
	}
	return repository.NewIdempotencyRepository(db), closeDB, nil
}
