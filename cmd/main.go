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

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/spf13/afero"

	"github.com/okulab/microscope-backend/internal/facades"
	"github.com/okulab/microscope-backend/internal/handlers"
	"github.com/okulab/microscope-backend/internal/jwt"
	"github.com/okulab/microscope-backend/internal/logger"
	"github.com/okulab/microscope-backend/internal/middlewares"
	"github.com/okulab/microscope-backend/internal/password"
	"github.com/okulab/microscope-backend/internal/repositories"
	"github.com/okulab/microscope-backend/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title microscope-backend API
// @version 1.0.0
// @description Backend service for remote microscope control: auth, capture records, camera settings and stage lighting
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		cameraSettingsTTLSecond,
		cameraURL, stageURL, serviceTimeoutSecond,
		imagesDir, videosDir,
		kafkaBrokers, kafkaTopic,
		jwtSecret, jwtExpSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		cameraSettingsTTLSecond,
		cameraURL, stageURL, serviceTimeoutSecond,
		imagesDir, videosDir,
		kafkaBrokers, kafkaTopic,
		jwtSecret, jwtExpSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, external service, storage, Kafka,
// logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	cameraSettingsTTLSecond int,
	cameraURL, stageURL string, serviceTimeoutSecond int,
	imagesDir, videosDir string,
	kafkaBrokers, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
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

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "microscope")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if cameraSettingsTTLSecond, err = strconv.Atoi(getEnv("CAMERA_SETTINGS_TTL_SECOND", "30")); err != nil {
		return
	}

	// External services config
	cameraURL = getEnv("CAMERA_SERVICE_URL", "http://localhost:8001")
	stageURL = getEnv("STAGE_SERVICE_URL", "http://localhost:8002")
	if serviceTimeoutSecond, err = strconv.Atoi(getEnv("SERVICE_TIMEOUT_SECOND", "30")); err != nil {
		return
	}

	// Media storage config
	imagesDir = getEnv("IMAGES_DIR", "/data/captures/images")
	videosDir = getEnv("VIDEOS_DIR", "/data/captures/videos")

	// Kafka config, empty brokers disable event publishing
	kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "media-events")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "604800")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, external service
// facades, and HTTP server. It sets up routes, applies middleware,
// and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	cameraSettingsTTLSecond int,
	cameraURL, stageURL string, serviceTimeoutSecond int,
	imagesDir, videosDir string,
	kafkaBrokers, kafkaTopic string,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer, nil when no brokers are configured
	var kafkaWriter services.KafkaWriter
	if kafkaBrokers != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(kafkaBrokers, ",")...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka event publishing enabled, topic %s", kafkaTopic)
	}

	// External service facades
	serviceTimeout := time.Duration(serviceTimeoutSecond) * time.Second
	cameraFacade := facades.NewCameraHTTPFacade(cameraURL, serviceTimeout)
	stageFacade := facades.NewStageHTTPFacade(stageURL, serviceTimeout)

	// Initialize JWT service
	tokener := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	imageReadRepo := repositories.NewMediaReadRepository(db, repositories.ImagesTable)
	imageWriteRepo := repositories.NewMediaWriteRepository(db, repositories.ImagesTable)
	videoReadRepo := repositories.NewMediaReadRepository(db, repositories.VideosTable)
	videoWriteRepo := repositories.NewMediaWriteRepository(db, repositories.VideosTable)
	positionReadRepo := repositories.NewPositionReadRepository(db)
	positionWriteRepo := repositories.NewPositionWriteRepository(db)
	cameraSettingsCache := repositories.NewCameraSettingsCacheRepository(
		rdb, time.Duration(cameraSettingsTTLSecond)*time.Second)

	// Initialize services
	fs := afero.NewOsFs()
	hasher := password.Hasher{}
	authService := services.NewAuthService(userReadRepo, userWriteRepo, hasher, tokener)
	profileService := services.NewProfileService(userReadRepo, userWriteRepo, hasher)
	imageService := services.NewMediaService(
		repositories.ImagesTable, imageReadRepo, imageWriteRepo, fs, imagesDir, kafkaWriter)
	videoService := services.NewMediaService(
		repositories.VideosTable, videoReadRepo, videoWriteRepo, fs, videosDir, kafkaWriter)
	cameraService := services.NewCameraService(
		cameraFacade, cameraFacade, cameraSettingsCache, imageWriteRepo, kafkaWriter)
	positionService := services.NewPositionService(positionReadRepo, positionWriteRepo)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	profileHandler := handlers.NewProfileHandler(tokener, profileService)
	profileUpdateHandler := handlers.NewProfileUpdateHandler(tokener, profileService)
	imageListHandler := handlers.NewMediaListHandler(tokener, imageService)
	imageDeleteHandler := handlers.NewMediaDeleteHandler(tokener, imageService)
	videoListHandler := handlers.NewMediaListHandler(tokener, videoService)
	videoDeleteHandler := handlers.NewMediaDeleteHandler(tokener, videoService)
	captureHandler := handlers.NewCaptureHandler(tokener, cameraService)
	cameraSettingsHandler := handlers.NewCameraSettingsHandler(tokener, cameraService)
	cameraSettingsUpdateHandler := handlers.NewCameraSettingsUpdateHandler(tokener, cameraService)
	stageLightStateHandler := handlers.NewStageLightStateHandler(tokener, stageFacade)
	stageLightToggleHandler := handlers.NewStageLightToggleHandler(tokener, stageFacade)
	positionListHandler := handlers.NewPositionListHandler(tokener, positionService)
	positionSaveHandler := handlers.NewPositionSaveHandler(tokener, positionService)
	positionDeleteHandler := handlers.NewPositionDeleteHandler(tokener, positionService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Post("/register", registerHandler)
	r.Post("/login", loginHandler)

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokener))

		r.Get("/profile", profileHandler)
		r.Put("/profile", profileUpdateHandler)

		r.Get("/images", imageListHandler)
		r.Delete("/images/{id}", imageDeleteHandler)
		r.Get("/videos", videoListHandler)
		r.Delete("/videos/{id}", videoDeleteHandler)

		r.Post("/camera/capture", captureHandler)
		r.Get("/camera/settings", cameraSettingsHandler)
		r.Put("/camera/settings", cameraSettingsUpdateHandler)

		r.Get("/stage/light/{channel}", stageLightStateHandler)
		r.Post("/stage/light/{channel}/toggle", stageLightToggleHandler)

		r.Get("/positions", positionListHandler)
		r.Post("/positions", positionSaveHandler)
		r.Delete("/positions/{id}", positionDeleteHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
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

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
