// @title						POS Server API
// @version					3.0.0
// @description				Products, user accounts and balances for a point-of-sale terminal.
// @BasePath					/api/v3
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/space-market/pos-server/internal/api"
	"github.com/space-market/pos-server/internal/api/handler"
	"github.com/space-market/pos-server/internal/core/ports"
	"github.com/space-market/pos-server/internal/core/service"
	"github.com/space-market/pos-server/internal/infrastructure/db/mongo"
	"github.com/space-market/pos-server/internal/infrastructure/db/redis"
	"github.com/space-market/pos-server/internal/infrastructure/db/sqldb"
	"github.com/space-market/pos-server/internal/infrastructure/queue"
	"github.com/space-market/pos-server/internal/pkg/config"
	"github.com/space-market/pos-server/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// --- Relational store ---
	db, err := sqldb.Open(ctx, sqldb.Config{
		URL:             cfg.Database.URL,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		return err
	}
	defer db.Close()
	log.Info().Str("driver", db.DriverName()).Msg("database connected")

	if cfg.Database.AutoMigrate {
		if err := sqldb.Migrate(db); err != nil {
			return err
		}
		log.Info().Msg("migrations applied")
	}

	checks := map[string]handler.Check{"database": db.PingContext}

	// --- Balance journal (optional) ---
	var (
		journal    ports.Journal
		history    ports.JournalStore
		dispatcher *queue.Dispatcher
	)
	if cfg.Mongo.URI != "" {
		client, mdb, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return err
		}
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Warn().Err(err).Msg("mongo disconnect")
			}
		}()

		repo := mongo.NewJournalRepository(mdb)
		if err := repo.EnsureIndexes(ctx); err != nil {
			return err
		}
		dispatcher = queue.NewDispatcher(cfg.Mongo.Workers, repo, log)
		dispatcher.Start(context.Background())
		journal, history = dispatcher, repo
		checks["mongodb"] = mongo.Ping(client)
		log.Info().Str("database", cfg.Mongo.Database).Msg("balance journal enabled")
	}

	// --- Idempotency guard (optional) ---
	var guard ports.IdempotencyGuard
	if cfg.Redis.Addr != "" {
		rdb, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()

		guard = redis.NewIdempotencyGuard(rdb, cfg.Redis.IdempotencyTTL)
		checks["redis"] = redis.Ping(rdb)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("idempotency guard enabled")
	}

	// --- Services ---
	userRepo := sqldb.NewUserRepository(db)
	products := service.NewProductService(sqldb.NewProductRepository(db), cfg.Product(), log)
	users := service.NewUserService(userRepo, log)
	balance := service.NewBalanceService(userRepo, sqldb.NewBalanceRepository(db), journal, history, guard, log)

	if cfg.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET not set, write routes are unauthenticated")
	}

	e := api.NewRouter(api.Deps{
		Products:       products,
		Users:          users,
		Balance:        balance,
		Info:           cfg.ServerInfo(),
		Checks:         checks,
		JWTSecret:      cfg.JWTSecret,
		RequestTimeout: cfg.RequestTimeout,
		Log:            log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	// In-flight requests are done; flush the journal before its store closes.
	if dispatcher != nil {
		dispatcher.Stop()
	}
	log.Info().Msg("server stopped")
	return nil
}
