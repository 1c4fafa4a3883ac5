package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/christian-keitri/my-app/internal/application/auth"
	"github.com/christian-keitri/my-app/internal/config"
	infraauth "github.com/christian-keitri/my-app/internal/infrastructure/auth"
	httprouter "github.com/christian-keitri/my-app/internal/infrastructure/http"
	"github.com/christian-keitri/my-app/internal/infrastructure/http/handlers"
	"github.com/christian-keitri/my-app/internal/infrastructure/http/middleware"
	"github.com/christian-keitri/my-app/internal/infrastructure/persistence"
	"github.com/christian-keitri/my-app/internal/infrastructure/persistence/db"
	"github.com/christian-keitri/my-app/internal/infrastructure/persistence/postgres"
	"github.com/christian-keitri/my-app/internal/infrastructure/security"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	if err := persistence.RunMigrations(cfg.Database.URL); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("ping database")
	}

	var redisClient *redis.Client
	if cfg.Redis.URL != "" {
		opt, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("parse REDIS_URL")
		}
		redisClient = redis.NewClient(opt)
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("redis ping failed; continuing without redis")
			redisClient = nil
		}
	}

	queries := db.New(pool)
	userRepo := postgres.NewUserRepository(queries)
	orgRepo := postgres.NewOrganizationRepository(queries)
	branchRepo := postgres.NewBranchRepository(queries)
	codeRepo := postgres.NewPortalCodeRepository(queries)

	hasher := security.NewBcryptHasher(cfg.Bcrypt.Cost)
	issuer := infraauth.NewTokenIssuer([]byte(cfg.JWT.Secret), time.Duration(cfg.JWT.ExpirySecs)*time.Second)

	registerUC := auth.NewRegisterUser(userRepo, hasher)
	loginUC := auth.NewLogin(userRepo, hasher, issuer)

	authHandler := handlers.NewAuthHandler(registerUC, loginUC, handlers.CookieSettings{
		MaxAge: int(cfg.JWT.ExpirySecs),
		Secure: cfg.Cookie.Secure,
	}, log)
	usersHandler := handlers.NewUsersHandler(userRepo, hasher, log)
	orgsHandler := handlers.NewOrganizationsHandler(orgRepo, userRepo, log)
	branchesHandler := handlers.NewBranchesHandler(branchRepo, orgRepo, log)
	codesHandler := handlers.NewPortalCodesHandler(codeRepo, branchRepo, log)
	healthHandler := handlers.NewHealthHandler(pool, redisClient)

	ipLimit, err := middleware.NewIPRateLimiter(cfg.RateLimit.RatePerIP, redisClient)
	if err != nil {
		log.Fatal().Err(err).Msg("create IP rate limiter")
	}
	requireSession := middleware.NewSessionValidator(issuer).Handler
	secureMiddleware := middleware.NewSecure(middleware.SecureOptions(cfg.Secure.IsDevelopment))

	router := httprouter.NewRouter(httprouter.RouterConfig{
		AuthHandler:          authHandler,
		HealthHandler:        healthHandler,
		UsersHandler:         usersHandler,
		OrganizationsHandler: orgsHandler,
		BranchesHandler:      branchesHandler,
		PortalCodesHandler:   codesHandler,
		RequireSession:       requireSession,
		CORS:                 middleware.CORS(cfg.CORS.Origin),
		Secure:               secureMiddleware,
		IPRateLimit:          ipLimit,
		RequestTimeout:       time.Duration(cfg.Server.RequestTimeoutSecs) * time.Second,
		Log:                  log,
		Metrics:              true,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	log.Info().Msg("server stopped")
}
