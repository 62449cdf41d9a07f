package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"tooldex/internal/common/pagination"
	seccfg "tooldex/internal/config"
	pgRepo "tooldex/internal/infra/adapter/persistence/postgres"
	"tooldex/internal/infra/db"
	"tooldex/internal/infra/fetcher"
	"tooldex/internal/observability/logging"
	obsmetrics "tooldex/internal/observability/metrics"
	"tooldex/internal/observability/tracing"
	"tooldex/internal/resilience/circuitbreaker"
	pkgconfig "tooldex/pkg/config"

	affUC "tooldex/internal/usecase/affiliate"
	catUC "tooldex/internal/usecase/category"
	spUC "tooldex/internal/usecase/sponsorship"
	tagUC "tooldex/internal/usecase/tag"
	toolUC "tooldex/internal/usecase/tool"

	hhttp "tooldex/internal/handler/http"
	haffiliate "tooldex/internal/handler/http/affiliate"
	hauth "tooldex/internal/handler/http/auth"
	hcategory "tooldex/internal/handler/http/category"
	"tooldex/internal/handler/http/middleware"
	"tooldex/internal/handler/http/requestid"
	hsponsorship "tooldex/internal/handler/http/sponsorship"
	htag "tooldex/internal/handler/http/tag"
	htool "tooldex/internal/handler/http/tool"
	authservice "tooldex/internal/service/auth"

	_ "tooldex/docs" // swagger docs
)

// @title           ToolDex API
// @version         1.0
// @description     Developer tool directory with cursor pagination, sponsorship
// @description     ranking, and affiliate link management.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT authentication. Provide the token as "Bearer {token}".

func main() {
	logger := initLogger()
	validateAdminCredentials(logger)
	validateJWTSecret(logger)
	cursorSecret := loadCursorSecret(logger)

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := getVersion()

	shutdownTracing := tracing.Setup("tooldex-api", version)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Error("tracer shutdown failed", slog.Any("error", err))
		}
	}()

	components := setupServer(logger, database, cursorSecret, version)

	runServer(logger, database, components, version)
}

// initLogger initializes the structured logger and installs it as the
// process default.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// validateAdminCredentials validates the admin credentials at startup.
// This prevents the server from starting with empty or weak admin credentials.
func validateAdminCredentials(logger *slog.Logger) {
	if err := hauth.ValidateAdminCredentials(); err != nil {
		logger.Error("admin credentials validation failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// validateJWTSecret validates the JWT_SECRET environment variable for security requirements.
func validateJWTSecret(logger *slog.Logger) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		logger.Error("JWT_SECRET must be set")
		os.Exit(1)
	}
	// Enforce a minimum of 32 characters (256 bits).
	if len(secret) < 32 {
		logger.Error("JWT_SECRET must be at least 32 characters (256 bits)")
		os.Exit(1)
	}
	// Reject common weak secrets.
	weakSecrets := []string{"secret", "password", "test", "admin", "default"}
	for _, weak := range weakSecrets {
		if secret == weak || secret == weak+"123" {
			logger.Error("JWT_SECRET must not be a common weak value", slog.String("weak_value", weak))
			os.Exit(1)
		}
	}
}

// loadCursorSecret loads and validates the HMAC key used to sign
// continuation tokens. A dedicated key keeps cursor signing independent of
// JWT rotation: rotating one does not invalidate the other's artifacts.
//
// Outside production a missing key falls back to a fixed dev value so local
// stacks start without ceremony; in production it is required.
func loadCursorSecret(logger *slog.Logger) []byte {
	secret := os.Getenv("CURSOR_SIGNING_SECRET")
	if secret == "" {
		if os.Getenv("APP_ENV") == "production" {
			logger.Error("CURSOR_SIGNING_SECRET must be set in production")
			os.Exit(1)
		}
		logger.Warn("CURSOR_SIGNING_SECRET not set, using insecure dev key; tokens are forgeable")
		return []byte("dev-cursor-secret-do-not-use-in-prod")
	}
	if len(secret) < 32 {
		logger.Error("CURSOR_SIGNING_SECRET must be at least 32 characters (256 bits)")
		os.Exit(1)
	}
	return []byte(secret)
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database := db.Open()
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	return pkgconfig.GetEnvString("VERSION", "dev")
}

// serverComponents holds what runServer needs beyond the handler itself.
type serverComponents struct {
	handler     http.Handler
	authLimiter *middleware.RateLimiter
	statsRepo   *pgRepo.StatsRepo
}

// setupServer wires repositories, services, routes, and middleware.
func setupServer(logger *slog.Logger, database *sql.DB, cursorSecret []byte, version string) *serverComponents {
	paginationCfg := pagination.LoadFromEnv()
	codec := pagination.NewCodec(cursorSecret, paginationCfg.TokenTTL)

	toolRepo := pgRepo.NewToolRepo(database, codec, paginationCfg)
	categoryRepo := pgRepo.NewCategoryRepo(database, codec, paginationCfg)
	tagRepo := pgRepo.NewTagRepo(database, codec, paginationCfg)
	sponsorshipRepo := pgRepo.NewSponsorshipRepo(database)
	affiliateRepo := pgRepo.NewAffiliateLinkRepo(database)
	statsRepo := pgRepo.NewStatsRepo(database)

	fetcherCfg, err := fetcher.LoadConfigFromEnv()
	if err != nil {
		logger.Error("failed to load metadata fetch configuration", slog.Any("error", err))
		os.Exit(1)
	}
	var metadataFetcher *fetcher.MetadataFetcher
	if fetcherCfg.Enabled {
		metadataFetcher = fetcher.NewMetadataFetcher(fetcherCfg)
		logger.Info("metadata enrichment enabled",
			slog.Duration("timeout", fetcherCfg.Timeout),
			slog.Bool("deny_private_ips", fetcherCfg.DenyPrivateIPs))
	} else {
		logger.Warn("metadata enrichment disabled")
	}

	toolSvc := &toolUC.Service{Repo: toolRepo, Tags: tagRepo, Logger: logger}
	if metadataFetcher != nil {
		toolSvc.Fetcher = metadataFetcher
	}
	categorySvc := &catUC.Service{Repo: categoryRepo}
	tagSvc := &tagUC.Service{Repo: tagRepo}
	sponsorshipSvc := &spUC.Service{Repo: sponsorshipRepo, Logger: logger}
	affiliateSvc := &affUC.Service{Repo: affiliateRepo}

	secCfg := loadSecurityConfig(logger)
	authProvider := hauth.NewBasicAuthProvider(secCfg.GetMinPasswordLength(), secCfg.GetWeakPasswords())
	authService := authservice.NewAuthService(authProvider, secCfg.GetPublicEndpoints())

	// Trusted proxy configuration controls which IP the auth rate limiter
	// keys on when the service runs behind a load balancer.
	proxyConfig, err := middleware.LoadTrustedProxyConfig()
	if err != nil {
		logger.Error("failed to load trusted proxy configuration", slog.Any("error", err))
		os.Exit(1)
	}
	var ipExtractor middleware.IPExtractor
	if proxyConfig.Enabled {
		ipExtractor = middleware.NewTrustedProxyExtractor(*proxyConfig)
		logger.Info("trusted proxy mode enabled",
			slog.Int("trusted_proxies_count", len(proxyConfig.AllowedCIDRs)))
	} else {
		ipExtractor = &middleware.RemoteAddrExtractor{}
		logger.Info("using RemoteAddr for client IPs (proxy headers ignored)")
	}

	// The token endpoint gets a much tighter limit than the catalogue:
	// 5 requests per minute per IP.
	authLimiter := middleware.NewRateLimiter(5, 1*time.Minute, ipExtractor)

	mux := http.NewServeMux()
	mux.Handle("POST   /auth/token", authLimiter.Middleware(hauth.TokenHandler(authService)))

	var breaker *circuitbreaker.CircuitBreaker
	if metadataFetcher != nil {
		breaker = metadataFetcher.Breaker()
	}
	mux.Handle("/health", &hhttp.HealthHandler{DB: database, Version: version, FetcherBreaker: breaker})
	mux.Handle("/ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("/live", &hhttp.LiveHandler{})
	mux.Handle("/metrics", hhttp.MetricsHandler())
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	htool.Register(mux, toolSvc, paginationCfg, logger)
	hcategory.Register(mux, categorySvc, paginationCfg, logger)
	htag.Register(mux, tagSvc, paginationCfg, logger)
	hsponsorship.Register(mux, sponsorshipSvc)
	haffiliate.Register(mux, affiliateSvc)

	handler := applyMiddleware(logger, mux)

	return &serverComponents{
		handler:     handler,
		authLimiter: authLimiter,
		statsRepo:   statsRepo,
	}
}

// loadSecurityConfig loads the security policy from SECURITY_CONFIG_PATH.
// When no file is configured the built-in defaults apply.
func loadSecurityConfig(logger *slog.Logger) *seccfg.SecurityConfig {
	path := os.Getenv("SECURITY_CONFIG_PATH")
	if path == "" {
		logger.Info("no security config file, using defaults")
		return seccfg.DefaultSecurityConfig()
	}
	cfg, err := seccfg.LoadSecurityConfig(path)
	if err != nil {
		logger.Error("failed to load security configuration",
			slog.String("path", path), slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("security config loaded",
		slog.String("path", path),
		slog.String("provider", cfg.GetAuthProvider()),
		slog.Int("jwt_expiry_hours", cfg.GetJWTExpiryHours()))
	return cfg
}

// applyMiddleware wraps the handler with the middleware chain.
// Order (outermost first): CORS, request ID, tracing, global rate limit,
// recovery, logging, timeout, body limit, input validation, metrics.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	corsConfig, err := middleware.LoadCORSConfig()
	if err != nil {
		logger.Error("failed to load CORS configuration", slog.Any("error", err))
		os.Exit(1)
	}
	corsConfig.Logger = &middleware.SlogAdapter{Logger: logger}
	logger.Info("CORS enabled",
		slog.Int("allowed_origins_count", len(corsConfig.Validator.GetAllowedOrigins())),
		slog.Any("allowed_methods", corsConfig.AllowedMethods),
		slog.Int("max_age", corsConfig.MaxAge))

	// Global IP rate limit. The sliding window cleans itself up, no
	// background goroutine needed.
	globalLimiter := hhttp.NewRateLimiter(300, 1*time.Minute)

	chain := handler
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.InputValidation()(chain)
	chain = hhttp.LimitRequestBody(1 << 20)(chain) // 1MB limit
	chain = hhttp.Timeout(30 * time.Second)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = globalLimiter.Limit(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)
	chain = middleware.CORS(*corsConfig)(chain)

	return chain
}

// runServer starts the HTTP server, the background collectors, and handles
// graceful shutdown.
func runServer(logger *slog.Logger, database *sql.DB, components *serverComponents, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cleanupCfg := hhttp.LoadCleanupConfigFromEnv()
	go hhttp.StartRateLimitCleanup(ctx, components.authLimiter, cleanupCfg.Interval, "auth")

	hhttp.StartSLOReporter(ctx, logger, 1*time.Minute)
	startStatsCollector(ctx, logger, database, components.statsRepo)

	srv := &http.Server{
		Addr:              ":8080",
		Handler:           components.handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", ":8080"),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	// Stop background goroutines first so they do not race teardown.
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}

// startStatsCollector refreshes the catalogue gauges (tool counts by
// status, active sponsorships, category/tag/affiliate totals) and the DB
// pool gauges on a fixed interval.
func startStatsCollector(ctx context.Context, logger *slog.Logger, database *sql.DB, statsRepo *pgRepo.StatsRepo) {
	interval := statsRefreshInterval()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				logger.Info("stats collector stopped")
				return
			case <-ticker.C:
				refreshStats(ctx, logger, database, statsRepo)
			}
		}
	}()
	logger.Info("stats collector started", slog.Duration("interval", interval))
}

func statsRefreshInterval() time.Duration {
	interval := pkgconfig.GetEnvDuration("STATS_REFRESH_INTERVAL", 1*time.Minute)
	if err := pkgconfig.ValidatePositiveDuration(interval); err != nil {
		return 1 * time.Minute
	}
	return interval
}

func refreshStats(ctx context.Context, logger *slog.Logger, database *sql.DB, statsRepo *pgRepo.StatsRepo) {
	queryCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	stats, err := statsRepo.Snapshot(queryCtx, time.Now())
	if err != nil {
		logger.Warn("stats snapshot failed", slog.Any("error", err))
		return
	}

	for status, count := range stats.ToolsByStatus {
		hhttp.UpdateToolsTotal(status, count)
	}
	hhttp.UpdateSponsorshipsActive(stats.ActiveSponsorships)
	obsmetrics.UpdateCatalogueTotals(stats.Categories, stats.Tags, stats.AffiliateLinks)
	obsmetrics.UpdateDBPoolStats(database.Stats())
}
