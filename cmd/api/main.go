// Command api serves the LightBnB listing API. Run with "seed" to load the
// JSON snapshot into Postgres instead.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/lightbnb/lightbnb-api/internal/api"
	"github.com/lightbnb/lightbnb-api/internal/core/ports"
	"github.com/lightbnb/lightbnb-api/internal/infrastructure/config"
	"github.com/lightbnb/lightbnb-api/internal/infrastructure/db/memory"
	"github.com/lightbnb/lightbnb-api/internal/infrastructure/db/mongo"
	"github.com/lightbnb/lightbnb-api/internal/infrastructure/db/postgres"
	redisstore "github.com/lightbnb/lightbnb-api/internal/infrastructure/db/redis"
	"github.com/lightbnb/lightbnb-api/pkg/logger"
)

const shutdownTimeout = 30 * time.Second

//	@title						LightBnB API
//	@version					1.0
//	@description				Users, property listings and reservations for LightBnB.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the JWT.
func main() {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "lightbnb-api",
	})
	log := logger.Get()

	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "serve":
		err = serve(ctx, cfg, log)
	case "seed":
		err = seed(ctx, cfg, logger.Component("seed"))
	default:
		err = fmt.Errorf("unknown command %q (want serve or seed)", cmd)
	}
	if err != nil {
		log.Fatal().Err(err).Str("command", cmd).Msg("exiting")
	}
}

func connectPostgres(ctx context.Context, cfg config.PostgresConfig) (*sqlx.DB, error) {
	return postgres.Connect(ctx, postgres.Config{
		DSN:             cfg.DSN(),
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
}

func serve(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	db, err := connectPostgres(ctx, cfg.Postgres)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Info().Str("host", cfg.Postgres.Host).Str("database", cfg.Postgres.Database).Msg("postgres connected")

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer rdb.Close()
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected, idempotency guard enabled")
	}

	writer, mongoClient, err := propertyWriter(ctx, cfg, log)
	if err != nil {
		return err
	}
	if mongoClient != nil {
		defer func() {
			dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = mongoClient.Disconnect(dctx)
		}()
	}

	e := api.NewRouter(api.Dependencies{
		DB:             db,
		Redis:          rdb,
		Mongo:          mongoClient,
		PropertyWriter: writer,
		PropertyStore:  cfg.PropertyStore,
		JWTSecret:      cfg.JWTSecret,
		TokenTTL:       cfg.TokenTTL,
		QueryTimeout:   cfg.Postgres.QueryTimeout,
		IdempotencyTTL: cfg.Redis.IdempotencyTTL,
		Logger:         log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("property_store", cfg.PropertyStore).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

// propertyWriter returns the store new properties are written to. A nil
// writer means the router falls back to Postgres.
func propertyWriter(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.PropertyWriter, *mongodriver.Client, error) {
	switch cfg.PropertyStore {
	case config.PropertyStoreMemory:
		snap, err := memory.LoadSnapshot(cfg.SnapshotDir)
		if err != nil {
			return nil, nil, err
		}
		log.Info().
			Str("dir", cfg.SnapshotDir).
			Int("users", len(snap.Users)).
			Int("properties", len(snap.Properties)).
			Msg("snapshot loaded")
		return memory.NewPropertyRepository(snap.Properties), nil, nil
	case config.PropertyStoreMongo:
		client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("mongodb connected")
		return mongo.NewPropertyRepository(db), client, nil
	default:
		return nil, nil, nil
	}
}
