package main

import (
	"context"
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

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/student-diary/internal/facades"
	"github.com/sbilibin2017/student-diary/internal/handlers"
	"github.com/sbilibin2017/student-diary/internal/jwt"
	"github.com/sbilibin2017/student-diary/internal/logger"
	"github.com/sbilibin2017/student-diary/internal/middlewares"
	"github.com/sbilibin2017/student-diary/internal/migrations"
	"github.com/sbilibin2017/student-diary/internal/repositories"
	"github.com/sbilibin2017/student-diary/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds every setting read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	JWTSecretKey       string
	SessionIdleTimeout time.Duration
	SessionMaxAge      time.Duration

	LockoutMaxFailedAttempts int
	LockoutDuration          time.Duration
	ResetTokenTTL            time.Duration

	KafkaBrokers    []string
	KafkaResetTopic string

	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string

	RateLimitRPS   float64
	RateLimitBurst int
}

// @title Student Diary API
// @version 1.0.0
// @description Personal diary service with accounts, sessions and password reset
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
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
	fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", buildVersion, buildDate, buildCommit)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, database, Redis, session, Kafka and S3 configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) int {
		if err != nil {
			return 0
		}
		var n int
		if n, err = strconv.Atoi(getEnv(key, defaultValue)); err != nil {
			err = fmt.Errorf("%s: %w", key, err)
		}
		return n
	}
	getSeconds := func(key, defaultValue string) time.Duration {
		return time.Duration(getInt(key, defaultValue)) * time.Second
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGPort = getInt("POSTGRES_PORT", "5432")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	cfg.PGMaxOpenConns = getInt("POSTGRES_MAX_OPEN_CONNS", "16")
	cfg.PGMaxIdleConns = getInt("POSTGRES_MAX_IDLE_CONNS", "8")

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPort = getInt("REDIS_PORT", "6379")
	cfg.RedisDB = getInt("REDIS_DB", "0")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.RedisPoolSize = getInt("REDIS_POOL_SIZE", "10")
	cfg.RedisMinIdleConns = getInt("REDIS_MIN_IDLE_CONNS", "2")

	// Session config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	cfg.SessionIdleTimeout = getSeconds("SESSION_IDLE_TIMEOUT_SECOND", "1800")
	cfg.SessionMaxAge = getSeconds("SESSION_MAX_AGE_SECOND", "86400")

	// Lockout and password reset config
	cfg.LockoutMaxFailedAttempts = getInt("LOCKOUT_MAX_FAILED_ATTEMPTS", "5")
	cfg.LockoutDuration = getSeconds("LOCKOUT_DURATION_SECOND", "900")
	cfg.ResetTokenTTL = getSeconds("RESET_TOKEN_TTL_SECOND", "3600")

	// Kafka config, publishing is disabled without brokers
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	cfg.KafkaResetTopic = getEnv("KAFKA_RESET_TOPIC", "password-reset")

	// S3 config
	cfg.S3Endpoint = getEnv("S3_ENDPOINT", "http://localhost:9000")
	cfg.S3Region = getEnv("S3_REGION", "us-east-1")
	cfg.S3AccessKey = getEnv("S3_ACCESS_KEY", "minioadmin")
	cfg.S3SecretKey = getEnv("S3_SECRET_KEY", "minioadmin")
	cfg.S3Bucket = getEnv("S3_BUCKET", "profile-pictures")

	// Rate limit config
	cfg.RateLimitBurst = getInt("RATE_LIMIT_BURST", "10")
	if err != nil {
		return cfg, err
	}
	if cfg.RateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "5"), 64); err != nil {
		return cfg, fmt.Errorf("RATE_LIMIT_RPS: %w", err)
	}

	return cfg, nil
}

// run initializes the logger, database, Redis, Kafka, S3 and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	if err := migrations.Up(ctx, db.DB); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for password reset notifications
	var resetWriter facades.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		writer := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaResetTopic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			BatchTimeout:           10 * time.Millisecond,
			AllowAutoTopicCreation: true,
		}
		defer writer.Close()
		resetWriter = writer
	} else {
		log.Warn("KAFKA_BROKERS is empty, password reset notifications are disabled")
	}

	// S3 client for profile pictures
	s3Client, err := facades.NewS3Client(ctx, facades.S3Config{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
	})
	if err != nil {
		return fmt.Errorf("failed to create S3 client: %w", err)
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(cfg.SessionMaxAge),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db, middlewares.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	entryReadRepo := repositories.NewDiaryEntryReadRepository(db, middlewares.GetTxFromContext)
	entryWriteRepo := repositories.NewDiaryEntryWriteRepository(db, middlewares.GetTxFromContext)
	sessionRepo := repositories.NewSessionRepository(rdb)

	// Initialize facades
	resetNotifier := facades.NewPasswordResetKafkaFacade(resetWriter)
	pictures := facades.NewProfilePictureS3Facade(s3Client, s3.NewPresignClient(s3Client), cfg.S3Bucket)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, resetNotifier, services.AuthPolicy{
		MaxFailedAttempts: cfg.LockoutMaxFailedAttempts,
		LockoutDuration:   cfg.LockoutDuration,
		ResetTokenTTL:     cfg.ResetTokenTTL,
	}, services.WithTxHook(middlewares.OnTxDone))
	diaryService := services.NewDiaryService(entryReadRepo, entryWriteRepo)
	sessionService := services.NewSessionService(sessionRepo, tokens, cfg.SessionIdleTimeout)

	limiter := middlewares.NewIPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	limiterCtx, stopLimiter := context.WithCancel(ctx)
	defer stopLimiter()
	go limiter.Run(limiterCtx)

	r := newRouter(routerDeps{
		db:            db,
		tokens:        tokens,
		auth:          authService,
		diary:         diaryService,
		sessions:      sessionService,
		pictures:      pictures,
		limiter:       limiter,
		sessionMaxAge: tokens.Expiration(),
		swaggerURL:    fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}
	authService.Wait()

	log.Info("HTTP server stopped gracefully")
	return nil
}

// routerDeps are the components the HTTP routes are built from.
type routerDeps struct {
	db            *sqlx.DB
	tokens        *jwt.JWT
	auth          *services.AuthService
	diary         *services.DiaryService
	sessions      *services.SessionService
	pictures      *facades.ProfilePictureS3Facade
	limiter       *middlewares.IPRateLimiter
	sessionMaxAge time.Duration
	swaggerURL    string
}

// newRouter mounts the API under /api/v1. Mutating routes run in a transaction.
func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.RateLimitMiddleware(d.limiter))
			r.Use(middlewares.TxMiddleware(d.db))

			r.Post("/register", handlers.NewRegisterHandler(d.auth))
			r.Post("/login", handlers.NewLoginHandler(d.auth, d.sessions, d.sessionMaxAge))
			r.Post("/forgot-password", handlers.NewForgotPasswordHandler(d.auth))
			r.Post("/reset-password", handlers.NewResetPasswordHandler(d.auth))
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(d.tokens, d.sessions))

			r.Post("/logout", handlers.NewLogoutHandler(d.tokens, d.sessions))
			r.Get("/profile", handlers.NewGetProfileHandler(d.auth))
			r.Get("/profile/picture", handlers.NewGetPictureHandler(d.auth, d.pictures))
			r.Get("/entries", handlers.NewListEntriesHandler(d.diary))
			r.Get("/entries/{id}", handlers.NewGetEntryHandler(d.diary))

			r.Group(func(r chi.Router) {
				r.Use(middlewares.TxMiddleware(d.db))

				r.Put("/profile", handlers.NewUpdateProfileHandler(d.auth))
				r.Delete("/profile", handlers.NewDeleteAccountHandler(d.auth, d.tokens, d.sessions))
				r.Post("/profile/picture", handlers.NewUploadPictureHandler(d.pictures, d.auth, d.auth))
				r.Post("/entries", handlers.NewCreateEntryHandler(d.diary))
				r.Put("/entries/{id}", handlers.NewUpdateEntryHandler(d.diary))
				r.Delete("/entries/{id}", handlers.NewDeleteEntryHandler(d.diary))
			})
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(d.swaggerURL),
	))

	return r
}
