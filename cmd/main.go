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
	"github.com/segmentio/kafka-go"
	"github.com/sethvargo/go-retry"

	"github.com/sbilibin2017/gw-todo-list/internal/handlers"
	"github.com/sbilibin2017/gw-todo-list/internal/hasher"
	"github.com/sbilibin2017/gw-todo-list/internal/jwt"
	"github.com/sbilibin2017/gw-todo-list/internal/logger"
	"github.com/sbilibin2017/gw-todo-list/internal/middlewares"
	"github.com/sbilibin2017/gw-todo-list/internal/migrations"
	"github.com/sbilibin2017/gw-todo-list/internal/repositories"
	"github.com/sbilibin2017/gw-todo-list/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/gw-todo-list/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

var (
	errMissingDatabaseURL = errors.New("DATABASE_URL is required")
	errMissingJWTSecret   = errors.New("JWT_SECRET_KEY is required")
)

// @title gw-todo-list API
// @version 1.0.0
// @description Multi-user todo list with JWT authentication
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel, logFile,
		databaseURL, pgMaxOpenConns, pgMaxIdleConns,
		jwtSecret, jwtExp, bcryptCost,
		kafkaBrokers, kafkaTopic, corsOrigins,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel, logFile,
		databaseURL, pgMaxOpenConns, pgMaxIdleConns,
		jwtSecret, jwtExp, bcryptCost,
		kafkaBrokers, kafkaTopic, corsOrigins,
	); err != nil {
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

// parseConfig loads environment variables from a file and returns
// all application, database, auth, Kafka, and CORS configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel, logFile string,
	databaseURL string, pgMaxOpenConns, pgMaxIdleConns int,
	jwtSecretKey string, jwtExpSecond int, bcryptCost int,
	kafkaBrokers []string, kafkaTopic string,
	corsOrigins []string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")
	logFile = getEnv("LOG_FILE", "")

	// PostgreSQL config
	databaseURL = getEnv("DATABASE_URL", "")
	if databaseURL == "" {
		err = errMissingDatabaseURL
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "")
	if jwtSecretKey == "" {
		err = errMissingJWTSecret
		return
	}
	if len(jwtSecretKey) < jwt.MinSecretLength {
		err = jwt.ErrSecretTooShort
		return
	}
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "86400")); err != nil {
		return
	}

	// Password hashing config
	if bcryptCost, err = strconv.Atoi(getEnv("BCRYPT_COST", strconv.Itoa(hasher.DefaultCost))); err != nil {
		return
	}

	// Kafka config
	kafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	kafkaTopic = getEnv("KAFKA_TOPIC", "task-events")

	// CORS config
	corsOrigins = splitList(getEnv("CORS_ORIGINS", ""))

	return
}

// splitList splits a comma-separated value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// run initializes the logger, database, Kafka writer, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel, logFile string,
	databaseURL string, pgMaxOpenConns, pgMaxIdleConns int,
	jwtSecretKey string, jwtExpSecond int, bcryptCost int,
	kafkaBrokers []string, kafkaTopic string,
	corsOrigins []string,
) error {
	// Initialize logger
	var logOpts []logger.Option
	if logFile != "" {
		logOpts = append(logOpts, logger.WithFile(logFile, 100, 3, 28))
	}
	if err := logger.Initialize(logLevel, logOpts...); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	db, err := connectDB(ctx, databaseURL, pgMaxOpenConns, pgMaxIdleConns)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migrations.Up(db.DB); err != nil {
		return err
	}
	logger.Log.Info("Database migrations applied")

	// Initialize JWT service
	tokens, err := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)
	if err != nil {
		return err
	}

	// Initialize password hasher
	passwordHasher, err := hasher.New(bcryptCost)
	if err != nil {
		return err
	}

	// Initialize Kafka writer
	var kafkaWriter services.KafkaWriter
	if len(kafkaBrokers) > 0 {
		w := newKafkaWriter(kafkaBrokers, kafkaTopic)
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("Kafka publishing enabled", "brokers", kafkaBrokers, "topic", kafkaTopic)
	} else {
		logger.Log.Warn("KAFKA_BROKERS not set, task events are disabled")
	}

	swaggerURL := fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)
	r := newRouter(db, tokens, passwordHasher, kafkaWriter, corsOrigins, swaggerURL)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", appHost, appPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// connectDB opens the PostgreSQL pool, retrying with exponential backoff
// while the database is starting up.
// kafkaBatchTimeout bounds how long a single event waits for its batch to fill.
const kafkaBatchTimeout = 10 * time.Millisecond

// newKafkaWriter returns a task event writer keyed by user id.
// Events are written inside the request transaction, so batching stays short.
func newKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: kafkaBatchTimeout,
	}
}

func connectDB(ctx context.Context, databaseURL string, maxOpenConns, maxIdleConns int) (*sqlx.DB, error) {
	var db *sqlx.DB

	backoff := retry.WithMaxRetries(5, retry.NewExponential(500*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		db, err = sqlx.ConnectContext(ctx, "pgx", databaseURL)
		if err != nil {
			logger.Log.Warnw("PostgreSQL connection attempt failed", "error", err)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("PostgreSQL connection error: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	logger.Log.Info("Connected to PostgreSQL")

	return db, nil
}

// newRouter wires repositories, services, and handlers into the HTTP router.
func newRouter(
	db *sqlx.DB,
	tokens *jwt.JWT,
	passwordHasher *hasher.Bcrypt,
	kafkaWriter services.KafkaWriter,
	corsOrigins []string,
	swaggerURL string,
) http.Handler {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, middlewares.GetTxFromContext)
	taskRepo := repositories.NewTaskRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	authService := services.NewAuthService(userRepo, userRepo, passwordHasher, tokens)
	taskService := services.NewTaskService(taskRepo, kafkaWriter)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.CORSMiddleware(corsOrigins))

	// Public routes
	r.Get("/", handlers.NewRootHandler(buildVersion))
	r.Get("/health", handlers.NewHealthHandler(buildVersion, db))

	r.Route("/api", func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(db))

		r.Post("/auth/signup", handlers.NewSignupHandler(authService))
		r.Post("/auth/login", handlers.NewLoginHandler(authService))

		r.With(middlewares.OptionalAuthMiddleware(tokens, userRepo)).
			Get("/auth/session", handlers.NewSessionHandler())

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(tokens, userRepo))

			r.Get("/tasks", handlers.NewListTasksHandler(taskService))
			r.Post("/tasks", handlers.NewCreateTaskHandler(taskService))
			r.Get("/tasks/{taskID}", handlers.NewGetTaskHandler(taskService))
			r.Put("/tasks/{taskID}", handlers.NewUpdateTaskHandler(taskService))
			r.Patch("/tasks/{taskID}/complete", handlers.NewToggleTaskHandler(taskService))
			r.Delete("/tasks/{taskID}", handlers.NewDeleteTaskHandler(taskService))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(swaggerURL),
	))

	return r
}
