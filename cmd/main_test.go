package main

import (
	"bytes"
	"context"
	"flag"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/student-diary/internal/jwt"
	"github.com/sbilibin2017/student-diary/internal/middlewares"
	"github.com/sbilibin2017/student-diary/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	assert.Contains(t, output, "Build version: v1.0.0")
	assert.Contains(t, output, "Build commit: abcd1234")
	assert.Contains(t, output, "Build date: 2025-09-26")
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.AppHost)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "info", cfg.LogLevel)

	assert.Equal(t, 5432, cfg.PGPort)
	assert.Equal(t, 16, cfg.PGMaxOpenConns)
	assert.Equal(t, 8, cfg.PGMaxIdleConns)

	assert.Equal(t, 6379, cfg.RedisPort)
	assert.Equal(t, 10, cfg.RedisPoolSize)

	assert.Equal(t, 30*time.Minute, cfg.SessionIdleTimeout)
	assert.Equal(t, 24*time.Hour, cfg.SessionMaxAge)
	assert.Equal(t, 5, cfg.LockoutMaxFailedAttempts)
	assert.Equal(t, 15*time.Minute, cfg.LockoutDuration)
	assert.Equal(t, time.Hour, cfg.ResetTokenTTL)

	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "password-reset", cfg.KafkaResetTopic)
	assert.Equal(t, "profile-pictures", cfg.S3Bucket)

	assert.Equal(t, 5.0, cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
}

func TestParseConfig_CustomEnv(t *testing.T) {
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_LOG_LEVEL", "debug")

	t.Setenv("POSTGRES_HOST", "pg.example.com")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("POSTGRES_USER", "admin")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "mydb")

	t.Setenv("REDIS_HOST", "redis.example.com")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("REDIS_PASSWORD", "redispass")

	t.Setenv("JWT_SECRET_KEY", "supersecret")
	t.Setenv("SESSION_IDLE_TIMEOUT_SECOND", "600")
	t.Setenv("SESSION_MAX_AGE_SECOND", "3600")
	t.Setenv("LOCKOUT_MAX_FAILED_ATTEMPTS", "3")
	t.Setenv("LOCKOUT_DURATION_SECOND", "60")
	t.Setenv("RESET_TOKEN_TTL_SECOND", "120")

	t.Setenv("KAFKA_BROKERS", "kafka1:9092, kafka2:9092,")
	t.Setenv("KAFKA_RESET_TOPIC", "resets")

	t.Setenv("S3_ENDPOINT", "http://minio:9000")
	t.Setenv("S3_BUCKET", "avatars")

	t.Setenv("RATE_LIMIT_RPS", "0.5")
	t.Setenv("RATE_LIMIT_BURST", "3")

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.AppHost)
	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "debug", cfg.LogLevel)

	assert.Equal(t, "pg.example.com", cfg.PGHost)
	assert.Equal(t, 5433, cfg.PGPort)
	assert.Equal(t, "admin", cfg.PGUser)
	assert.Equal(t, "secret", cfg.PGPassword)
	assert.Equal(t, "mydb", cfg.PGDB)

	assert.Equal(t, "redis.example.com", cfg.RedisHost)
	assert.Equal(t, 6380, cfg.RedisPort)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, "redispass", cfg.RedisPassword)

	assert.Equal(t, "supersecret", cfg.JWTSecretKey)
	assert.Equal(t, 10*time.Minute, cfg.SessionIdleTimeout)
	assert.Equal(t, time.Hour, cfg.SessionMaxAge)
	assert.Equal(t, 3, cfg.LockoutMaxFailedAttempts)
	assert.Equal(t, time.Minute, cfg.LockoutDuration)
	assert.Equal(t, 2*time.Minute, cfg.ResetTokenTTL)

	assert.Equal(t, []string{"kafka1:9092", "kafka2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "resets", cfg.KafkaResetTopic)

	assert.Equal(t, "http://minio:9000", cfg.S3Endpoint)
	assert.Equal(t, "avatars", cfg.S3Bucket)

	assert.Equal(t, 0.5, cfg.RateLimitRPS)
	assert.Equal(t, 3, cfg.RateLimitBurst)
}

func TestParseConfig_InvalidNumber(t *testing.T) {
	t.Setenv("POSTGRES_PORT", "not-a-port")

	_, err := parseConfig("nonexistent.env")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POSTGRES_PORT")
}

func TestParseConfig_InvalidRate(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPS", "fast")

	_, err := parseConfig("nonexistent.env")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RATE_LIMIT_RPS")
}

func TestParseConfig_FromFile(t *testing.T) {
	path := t.TempDir() + "/config.env"
	require.NoError(t, os.WriteFile(path, []byte("APP_PORT=7070\nS3_BUCKET=from-file\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("APP_PORT")
		os.Unsetenv("S3_BUCKET")
	})

	cfg, err := parseConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.AppPort)
	assert.Equal(t, "from-file", cfg.S3Bucket)
}

func newTestRouter(t *testing.T) (http.Handler, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	tokens := jwt.New(jwt.WithSecretKey("test-secret"))

	return newRouter(routerDeps{
		db:            sqlx.NewDb(db, "sqlmock"),
		tokens:        tokens,
		auth:          services.NewAuthService(nil, nil, nil, services.DefaultAuthPolicy()),
		diary:         services.NewDiaryService(nil, nil),
		sessions:      services.NewSessionService(nil, tokens, time.Minute),
		limiter:       middlewares.NewIPRateLimiter(100, 100),
		sessionMaxAge: time.Hour,
		swaggerURL:    "http://localhost:8080/swagger/doc.json",
	}), mock
}

func TestRouter_ProtectedRoutesRequireSession(t *testing.T) {
	router, _ := newTestRouter(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/logout"},
		{http.MethodGet, "/api/v1/profile"},
		{http.MethodPut, "/api/v1/profile"},
		{http.MethodDelete, "/api/v1/profile"},
		{http.MethodGet, "/api/v1/profile/picture"},
		{http.MethodPost, "/api/v1/profile/picture"},
		{http.MethodGet, "/api/v1/entries"},
		{http.MethodPost, "/api/v1/entries"},
		{http.MethodGet, "/api/v1/entries/0b6f1f2e-4f7e-4a8e-9b0b-7a6f5c1d2e3f"},
		{http.MethodPut, "/api/v1/entries/0b6f1f2e-4f7e-4a8e-9b0b-7a6f5c1d2e3f"},
		{http.MethodDelete, "/api/v1/entries/0b6f1f2e-4f7e-4a8e-9b0b-7a6f5c1d2e3f"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			req := httptest.NewRequest(rt.method, rt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}

func TestRouter_PublicRouteRunsInTransaction(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/register", strings.NewReader("{broken"))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid request body"}`, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_Success(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	require.NoError(t, err)
	defer pgContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	require.NoError(t, err)
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	testCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cfg := config{
		AppHost:  "127.0.0.1",
		AppPort:  "8086",
		LogLevel: "debug",

		PGHost:         pgHost,
		PGPort:         pgPort.Int(),
		PGUser:         "user",
		PGPassword:     "password",
		PGDB:           "testdb",
		PGMaxOpenConns: 5,
		PGMaxIdleConns: 2,

		RedisHost:         redisHost,
		RedisPort:         redisPort.Int(),
		RedisPoolSize:     10,
		RedisMinIdleConns: 2,

		JWTSecretKey:       "testsecret",
		SessionIdleTimeout: time.Minute,
		SessionMaxAge:      time.Hour,

		LockoutMaxFailedAttempts: 5,
		LockoutDuration:          time.Minute,
		ResetTokenTTL:            time.Hour,

		S3Endpoint:  "http://127.0.0.1:9000",
		S3Region:    "us-east-1",
		S3AccessKey: "minioadmin",
		S3SecretKey: "minioadmin",
		S3Bucket:    "profile-pictures",

		RateLimitRPS:   10,
		RateLimitBurst: 10,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx, cfg)
	}()

	select {
	case <-time.After(15 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		require.NoError(t, err)
	}
}
