package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/rajesh2024-krita/fintcs/internal/adapter/http"
	"github.com/rajesh2024-krita/fintcs/internal/adapter/http/handler"
	postgresRepo "github.com/rajesh2024-krita/fintcs/internal/adapter/repository/postgres"
	redisRepo "github.com/rajesh2024-krita/fintcs/internal/adapter/repository/redis"
	"github.com/rajesh2024-krita/fintcs/internal/infrastructure/auth"
	"github.com/rajesh2024-krita/fintcs/internal/infrastructure/config"
	"github.com/rajesh2024-krita/fintcs/internal/infrastructure/logging"
	"github.com/rajesh2024-krita/fintcs/internal/infrastructure/metrics"
	"github.com/rajesh2024-krita/fintcs/internal/infrastructure/postgres"
	"github.com/rajesh2024-krita/fintcs/internal/infrastructure/redis"
	"github.com/rajesh2024-krita/fintcs/internal/usecase"
)

func main() {
	// Setup logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("LOG_FORMAT") != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup log level
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Apply schema migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	societyRepo := postgresRepo.NewSocietyRepository(pool)
	memberRepo := postgresRepo.NewMemberRepository(pool)
	loanRepo := postgresRepo.NewLoanRepository(pool)
	voucherRepo := postgresRepo.NewVoucherRepository(pool)
	demandRepo := postgresRepo.NewDemandRepository(pool)
	userRepo := postgresRepo.NewUserRepository(pool)
	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)
	idGen := postgresRepo.NewULIDGenerator()

	appLogger := logging.New(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)
	retrier := postgresRepo.NewRetrier(appLogger.Logger)
	m := metrics.New()

	// Initialize use cases
	societyUC := usecase.NewSocietyUseCase(societyRepo, idGen)
	memberUC := usecase.NewMemberUseCase(memberRepo, societyRepo, idGen, retrier, cache, m)
	loanUC := usecase.NewLoanUseCase(loanRepo, memberRepo, societyRepo, idGen, retrier, m)
	voucherUC := usecase.NewVoucherUseCase(txManager, voucherRepo, societyRepo, idGen, retrier, m)
	demandUC := usecase.NewDemandUseCase(txManager, demandRepo, memberRepo, loanRepo, societyRepo, idGen, appLogger, m)
	userUC := usecase.NewUserUseCase(userRepo, idGen, m)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)
	if cfg.AuthEnabled && cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set when AUTH_ENABLED is true")
	}

	// Initialize handlers
	societyHandler := handler.NewSocietyHandler(societyUC)
	memberHandler := handler.NewMemberHandler(memberUC)
	loanHandler := handler.NewLoanHandler(loanUC)
	voucherHandler := handler.NewVoucherHandler(voucherUC)
	demandHandler := handler.NewDemandHandler(demandUC)
	userHandler := handler.NewUserHandler(userUC)
	authHandler := handler.NewAuthHandler(userUC, jwtManager)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		SocietyHandler:   societyHandler,
		MemberHandler:    memberHandler,
		LoanHandler:      loanHandler,
		VoucherHandler:   voucherHandler,
		DemandHandler:    demandHandler,
		UserHandler:      userHandler,
		AuthHandler:      authHandler,
		HealthHandler:    healthHandler,
		IdempotencyStore: idempotencyStore,
		JWTManager:       jwtManager,
		AuthEnabled:      cfg.AuthEnabled,
		RateLimitRPS:     cfg.RateLimitRPS,
		RateLimitBurst:   cfg.RateLimitBurst,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
