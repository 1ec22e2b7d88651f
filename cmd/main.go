package main

import (
	"context"
	"encoding/json"
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
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/gw-job-tracker/docs"
	"github.com/sbilibin2017/gw-job-tracker/internal/handlers"
	"github.com/sbilibin2017/gw-job-tracker/internal/jwt"
	"github.com/sbilibin2017/gw-job-tracker/internal/logger"
	"github.com/sbilibin2017/gw-job-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-job-tracker/internal/repositories"
	"github.com/sbilibin2017/gw-job-tracker/internal/services"
	"github.com/sbilibin2017/gw-job-tracker/internal/web"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Tenancy modes.
const (
	tenancySingle  = "single"
	tenancyPerUser = "per_user"
)

// @title gw-job-tracker API
// @version 1.0.0
// @description Job application tracker: applications, tags, stages and users
// @host localhost:8080
// @BasePath /
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
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

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
	PGAutoMigrate  bool

	RedisAddr     string
	RedisDB       int
	RedisPassword string
	RedisPoolSize int
	TagCacheTTL   time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	JWTSecretKey string
	JWTExp       time.Duration

	TenancyMode        string
	CORSAllowedOrigins []string
	WebEnabled         bool
}

// dsn returns the PostgreSQL connection string.
func (c config) dsn() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}

// parseConfig loads environment variables from a file and returns the
// application, database, Redis, Kafka, JWT and HTTP configuration.
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
	getBool := func(key, defaultValue string) (bool, error) {
		v, err := strconv.ParseBool(getEnv(key, defaultValue))
		if err != nil {
			return false, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}
	if cfg.PGAutoMigrate, err = getBool("POSTGRES_AUTO_MIGRATE", "true"); err != nil {
		return
	}

	// Redis config
	cfg.RedisAddr = getEnv("REDIS_ADDR", "")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	ttl, err := getInt("TAG_CACHE_TTL_SECOND", "300")
	if err != nil {
		return
	}
	cfg.TagCacheTTL = time.Duration(ttl) * time.Second

	// Kafka config
	cfg.KafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "job-application-events")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	jwtExp, err := getInt("JWT_EXP_SECOND", "604800")
	if err != nil {
		return
	}
	cfg.JWTExp = time.Duration(jwtExp) * time.Second

	// HTTP config
	cfg.TenancyMode = getEnv("TENANCY_MODE", tenancySingle)
	if cfg.TenancyMode != tenancySingle && cfg.TenancyMode != tenancyPerUser {
		err = fmt.Errorf("TENANCY_MODE: unknown mode %q", cfg.TenancyMode)
		return
	}
	cfg.CORSAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"))
	if cfg.WebEnabled, err = getBool("WEB_ENABLED", "true"); err != nil {
		return
	}

	return
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// run initializes the logger, database, Redis, Kafka writer, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.dsn())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if cfg.PGAutoMigrate {
		if err := repositories.Migrate(ctx, db); err != nil {
			return fmt.Errorf("schema migration failed: %w", err)
		}
		logger.Log.Info("Database schema is up to date")
	}

	// Connect to Redis, when configured
	var tagCache services.TagCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			PoolSize: cfg.RedisPoolSize,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		defer rdb.Close()
		tagCache = repositories.NewTagCacheRepository(rdb, cfg.TagCacheTTL)
		logger.Log.Infof("Tag cache enabled on %s", cfg.RedisAddr)
	}

	// Kafka writer, when configured
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           10 * time.Millisecond,
			AllowAutoTopicCreation: true,
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Publishing job application events to %s", cfg.KafkaTopic)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           newRouter(cfg, db, tagCache, kafkaWriter),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s (tenancy %s)", cfg.AppHost, cfg.AppPort, cfg.TenancyMode)
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

// newRouter wires repositories, services and handlers into the HTTP router.
// tagCache and kafkaWriter are optional.
func newRouter(cfg config, db *sqlx.DB, tagCache services.TagCache, kafkaWriter services.KafkaWriter) http.Handler {
	tokens := jwt.New(jwt.WithSecretKey(cfg.JWTSecretKey), jwt.WithExpiration(cfg.JWTExp))
	tx := middlewares.TxMiddleware(db)
	txGetter := middlewares.GetTxFromContext
	onCommit := services.CommitHook(middlewares.OnCommit)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	jobRepo := repositories.NewJobApplicationRepository(db, txGetter)
	tagRepo := repositories.NewTagRepository(db, txGetter)
	linkRepo := repositories.NewApplicationTagRepository(db, txGetter)
	stageRepo := repositories.NewApplicationStageRepository(db, txGetter)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens)
	userService := services.NewUserService(userReadRepo, userWriteRepo, tagCache)
	jobService := services.NewJobApplicationService(jobRepo, tagRepo, linkRepo, tagCache,
		services.NewKafkaPublisher(kafkaWriter), onCommit)
	tagService := services.NewTagService(tagRepo, tagCache, onCommit)
	linkService := services.NewApplicationTagService(linkRepo, jobRepo, tagRepo, tagCache, onCommit)
	stageService := services.NewApplicationStageService(stageRepo, jobRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Location", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", newHealthHandler(db))
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	// Public routes
	r.Post("/auth/register", handlers.NewRegisterHandler(authService))
	r.Post("/auth/login", handlers.NewLoginHandler(authService))
	r.Post("/users", handlers.NewCreateUserHandler(userService))

	r.Group(func(r chi.Router) {
		if cfg.TenancyMode == tenancyPerUser {
			r.Use(middlewares.AuthMiddleware(tokens))
		}

		r.Route("/job-applications", func(r chi.Router) {
			r.Get("/", handlers.NewListJobApplicationsHandler(jobService))
			r.With(tx).Post("/", handlers.NewCreateJobApplicationHandler(jobService))
			r.Get("/{id}", handlers.NewGetJobApplicationHandler(jobService))
			r.With(tx).Put("/{id}", handlers.NewUpdateJobApplicationHandler(jobService))
			r.Delete("/{id}", handlers.NewDeleteJobApplicationHandler(jobService))
			r.Get("/{id}/stages", handlers.NewListApplicationStagesHandler(stageService))
		})

		r.Route("/tags", func(r chi.Router) {
			r.Get("/", handlers.NewListTagsHandler(tagService))
			r.Post("/", handlers.NewCreateTagHandler(tagService))
			r.Get("/{id}", handlers.NewGetTagHandler(tagService))
			r.Patch("/{id}", handlers.NewUpdateTagHandler(tagService))
			r.Delete("/{id}", handlers.NewDeleteTagHandler(tagService))
		})

		r.Route("/application-tags", func(r chi.Router) {
			r.Post("/", handlers.NewCreateApplicationTagHandler(linkService))
			r.With(tx).Post("/by-name", handlers.NewCreateApplicationTagByNameHandler(linkService))
			r.Delete("/by-composite", handlers.NewDeleteApplicationTagByPairHandler(linkService))
			r.Get("/job/{jobId}", handlers.NewListApplicationTagsHandler(linkService))
			r.Delete("/{id}", handlers.NewDeleteApplicationTagHandler(linkService))
		})

		r.Route("/application-stages", func(r chi.Router) {
			r.Post("/", handlers.NewCreateApplicationStageHandler(stageService))
			r.Get("/{id}", handlers.NewGetApplicationStageHandler(stageService))
			r.Put("/{id}", handlers.NewUpdateApplicationStageHandler(stageService))
			r.Patch("/{id}", handlers.NewPatchApplicationStageHandler(stageService))
			r.Delete("/{id}", handlers.NewDeleteApplicationStageHandler(stageService))
		})

		r.Route("/users/{id}", func(r chi.Router) {
			r.Get("/", handlers.NewGetUserHandler(userService))
			r.Patch("/", handlers.NewUpdateUserHandler(userService))
			r.Delete("/", handlers.NewDeleteUserHandler(userService))
		})
	})

	// Server-rendered pages act on the shared namespace only.
	if cfg.WebEnabled && cfg.TenancyMode == tenancySingle {
		pages, err := web.NewHandler(jobService, linkService)
		if err != nil {
			logger.Log.Errorw("web client disabled", "error", err)
		} else {
			r.Mount(web.BasePath, pages.Routes(tx))
			r.Get("/", func(w http.ResponseWriter, r *http.Request) {
				http.Redirect(w, r, web.BasePath+"/", http.StatusFound)
			})
		}
	}

	return r
}

// newHealthHandler reports whether PostgreSQL answers.
func newHealthHandler(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			logger.Log.Errorw("health check failed", "error", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]string{"status": "unavailable"})
			return
		}

		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}
}
