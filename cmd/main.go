package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"golang.org/x/sync/errgroup"

	"github.com/sbilibin2017/gw-points-gateway/internal/database"
	"github.com/sbilibin2017/gw-points-gateway/internal/facades"
	"github.com/sbilibin2017/gw-points-gateway/internal/handlers"
	"github.com/sbilibin2017/gw-points-gateway/internal/jwt"
	"github.com/sbilibin2017/gw-points-gateway/internal/logger"
	"github.com/sbilibin2017/gw-points-gateway/internal/middlewares"
	"github.com/sbilibin2017/gw-points-gateway/internal/models"
	"github.com/sbilibin2017/gw-points-gateway/internal/repositories"
	"github.com/sbilibin2017/gw-points-gateway/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// shutdownTimeout bounds graceful HTTP shutdown.
const shutdownTimeout = 10 * time.Second

// redisConfig configures the session store and base URL cache.
// An empty Host selects the in-memory session store.
type redisConfig struct {
	Host         string
	Port         int
	DB           int
	Password     string
	PoolSize     int
	MinIdleConns int
	KeyPrefix    string
	BaseURLTTL   time.Duration
}

// postgresConfig configures the transfer journal. An empty Host disables it.
type postgresConfig struct {
	database.PostgresSettings
	MaxOpenConns int
	MaxIdleConns int
}

type config struct {
	AppHost   string
	AppPort   string
	LogLevel  string
	LogFormat string

	DiscoveryURL string
	SiteCode     string
	HTTPTimeout  time.Duration
	JWTLeeway    time.Duration

	Limits         models.Limits
	ExchangeRate   int64
	SuccessDisplay time.Duration

	Redis    redisConfig
	Postgres postgresConfig

	KafkaBrokers []string
	KafkaTopic   string
}

// @title gw-points-gateway API
// @version 1.0.0
// @description Gateway converting wallet points into game credit on the gaming backend
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the gateway configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("APP_LOG_FORMAT", logger.EncodingJSON)

	// Backend config
	cfg.DiscoveryURL = getEnv("DISCOVERY_URL", "https://cdntracker0019.com")
	cfg.SiteCode = getEnv("SITE_CODE", "staging")
	timeoutSec, err := getInt("HTTP_TIMEOUT_SECOND", "15")
	if err != nil {
		return
	}
	cfg.HTTPTimeout = time.Duration(timeoutSec) * time.Second
	leewaySec, err := getInt("JWT_LEEWAY_SECOND", "30")
	if err != nil {
		return
	}
	cfg.JWTLeeway = time.Duration(leewaySec) * time.Second

	// Transfer config
	switch profile := getEnv("TRANSFER_LIMITS_PROFILE", models.LimitsProfileModal); profile {
	case models.LimitsProfileModal:
		cfg.Limits = models.LimitsModal
	case models.LimitsProfilePoints:
		cfg.Limits = models.LimitsPoints
	default:
		err = fmt.Errorf("TRANSFER_LIMITS_PROFILE: unknown profile %q", profile)
		return
	}
	if cfg.Limits.Min, err = strconv.ParseInt(getEnv("TRANSFER_MIN", strconv.FormatInt(cfg.Limits.Min, 10)), 10, 64); err != nil {
		err = fmt.Errorf("TRANSFER_MIN: %w", err)
		return
	}
	if cfg.Limits.Max, err = strconv.ParseInt(getEnv("TRANSFER_MAX", strconv.FormatInt(cfg.Limits.Max, 10)), 10, 64); err != nil {
		err = fmt.Errorf("TRANSFER_MAX: %w", err)
		return
	}
	if cfg.Limits.Min < 0 || cfg.Limits.Min > cfg.Limits.Max {
		err = fmt.Errorf("invalid transfer limits %d..%d", cfg.Limits.Min, cfg.Limits.Max)
		return
	}
	if cfg.ExchangeRate, err = strconv.ParseInt(getEnv("EXCHANGE_RATE", "30"), 10, 64); err != nil {
		err = fmt.Errorf("EXCHANGE_RATE: %w", err)
		return
	}
	if cfg.ExchangeRate <= 0 {
		err = fmt.Errorf("EXCHANGE_RATE must be positive, got %d", cfg.ExchangeRate)
		return
	}
	displayMs, err := getInt("SUCCESS_DISPLAY_MS", "2000")
	if err != nil {
		return
	}
	cfg.SuccessDisplay = time.Duration(displayMs) * time.Millisecond

	// Redis config
	cfg.Redis.Host = getEnv("REDIS_HOST", "")
	if cfg.Redis.Port, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.Redis.DB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	if cfg.Redis.PoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.Redis.MinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	cfg.Redis.KeyPrefix = getEnv("REDIS_KEY_PREFIX", "gw")
	ttlSec, err := getInt("BASE_URL_CACHE_SECOND", "300")
	if err != nil {
		return
	}
	cfg.Redis.BaseURLTTL = time.Duration(ttlSec) * time.Second

	// PostgreSQL config
	cfg.Postgres.Host = getEnv("POSTGRES_HOST", "")
	cfg.Postgres.User = getEnv("POSTGRES_USER", "user")
	cfg.Postgres.Password = getEnv("POSTGRES_PASSWORD", "password")
	cfg.Postgres.DBName = getEnv("POSTGRES_DB", "database")
	if cfg.Postgres.Port, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.Postgres.MaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.Postgres.MaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Kafka config
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "points-transfers")

	return cfg, nil
}

// run initializes the logger, optional Redis, PostgreSQL and Kafka, and the HTTP server.
// It blocks until ctx is cancelled or a termination signal arrives.
func run(ctx context.Context, cfg config) error {
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	var (
		store   services.SessionStore
		cache   services.BaseURLCache
		journal services.TransferWriter
		history services.TransferReader
		writer  services.KafkaWriter
		db      *sqlx.DB
	)

	// Session store and base URL cache
	if cfg.Redis.Host != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password:     cfg.Redis.Password,
			DB:           cfg.Redis.DB,
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()

		store = repositories.NewSessionRedisRepository(rdb, cfg.Redis.KeyPrefix)
		cache = repositories.NewBaseURLCacheRepository(rdb, cfg.Redis.KeyPrefix, cfg.SiteCode, cfg.Redis.BaseURLTTL)
		logger.Log.Infow("Using Redis session store", "addr", rdb.Options().Addr)
	} else {
		store = repositories.NewSessionMemoryRepository()
		logger.Log.Warn("REDIS_HOST not set, using in-memory session store")
	}

	// Transfer journal
	if cfg.Postgres.Host != "" {
		var err error
		db, err = sqlx.ConnectContext(ctx, "pgx", cfg.Postgres.DSN())
		if err != nil {
			return fmt.Errorf("postgres connection error: %w", err)
		}
		defer db.Close()
		db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

		if err := database.MigrateDatabase(db.DB, database.Migrations(), "migrations"); err != nil {
			return err
		}

		journal = repositories.NewTransferWriteRepository(db, middlewares.GetTxFromContext)
		history = repositories.NewTransferReadRepository(db, middlewares.GetTxFromContext)
		logger.Log.Infow("Transfer journal enabled", "host", cfg.Postgres.Host, "db", cfg.Postgres.DBName)
	} else {
		logger.Log.Warn("POSTGRES_HOST not set, transfer journal disabled")
	}

	// Transfer events
	if len(cfg.KafkaBrokers) > 0 {
		kw := &kafka.Writer{
			Addr:         kafka.TCP(cfg.KafkaBrokers...),
			Topic:        cfg.KafkaTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		}
		defer kw.Close()
		writer = kw
		logger.Log.Infow("Publishing transfers to Kafka", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	backend := facades.NewBackendHTTPFacade(cfg.DiscoveryURL, cfg.SiteCode, cfg.HTTPTimeout)
	coordinator := services.NewCoordinator(backend, store, cache, journal, history, writer, services.CoordinatorConfig{
		Limits:         cfg.Limits,
		ExchangeRate:   cfg.ExchangeRate,
		SuccessDisplay: cfg.SuccessDisplay,
	})
	inspector := jwt.New(jwt.WithLeeway(cfg.JWTLeeway))

	swaggerURL := fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)
	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           newRouter(coordinator, inspector, db, swaggerURL),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	g, gctx := errgroup.WithContext(ctxShutdown)
	g.Go(func() error {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Log.Errorw("HTTP server shutdown error", "error", err)
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter wires the gateway routes. db may be nil when the journal is disabled.
func newRouter(coordinator *services.Coordinator, validator middlewares.TokenValidator, db *sqlx.DB, swaggerURL string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/login", handlers.NewLoginHandler(coordinator))
		r.Post("/logout", handlers.NewLogoutHandler(coordinator))

		// Routes requiring a stored session
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(coordinator, validator))

			r.Get("/categories", handlers.NewCategoriesHandler(coordinator))
			r.Get("/links", handlers.NewLinksHandler(coordinator))
			r.Put("/selection", handlers.NewSelectionHandler(coordinator))
			r.Get("/balance", handlers.NewBalanceHandler(coordinator))
			r.Post("/transfer/preview", handlers.NewTransferPreviewHandler(coordinator))
			r.Post("/transfer", handlers.NewTransferHandler(coordinator))
			r.Get("/transfer/state", handlers.NewTransferStateHandler(coordinator))

			transfers := handlers.NewTransfersHandler(coordinator)
			if db != nil {
				r.With(middlewares.TxMiddleware(db)).Get("/transfers", transfers)
			} else {
				r.Get("/transfers", transfers)
			}
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerURL)))

	return r
}
