package internal

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	token_adapter "real-estate-agency/internal/adapters/jwt"
	logger_adapter "real-estate-agency/internal/adapters/logger"
	"real-estate-agency/internal/adapters/memory"
	"real-estate-agency/internal/adapters/metrics"
	postgres_adapter "real-estate-agency/internal/adapters/postgres"
	rabbitmq_adapter "real-estate-agency/internal/adapters/rabbitmq"
	redis_adapter "real-estate-agency/internal/adapters/redis"
	"real-estate-agency/internal/adapters/rest"
	"real-estate-agency/internal/configs"
	"real-estate-agency/internal/constants"
	"real-estate-agency/internal/core/port"
	"real-estate-agency/internal/core/search"
	"real-estate-agency/internal/core/usecase"
	fluentlogger "real-estate-agency/pkg/fluent_logger"
	"real-estate-agency/pkg/postgres"
	"real-estate-agency/pkg/rabbitmq/rabbitmq_common"
	"real-estate-agency/pkg/rabbitmq/rabbitmq_producer"
	redisclient "real-estate-agency/pkg/redis"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
)

// App - основная структура приложения
type App struct {
	server *rest.Server
	logger port.LoggerPort

	fluentClient *fluent.Fluent
	pool         *pgxpool.Pool
	redisClient  *redis.Client
	connManager  *rabbitmq_common.ConnectionManager
	publisher    *rabbitmq_producer.Publisher
}

// storage - набор портов хранения, общий для обоих бэкендов
type storage struct {
	listings    port.ListingStoragePort
	suggestions port.SuggestionRepositoryPort
	filters     port.FilterOptionsRepositoryPort
	stats       port.StatsRepositoryPort
	blog        port.BlogRepositoryPort
	pingers     []rest.Pinger
}

// NewApp создает и настраивает все компоненты приложения
func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	app := &App{}
	ok := false
	defer func() {
		if !ok {
			app.closeResources()
		}
	}()

	// инициализация логеров
	var activeLoggers []port.LoggerPort

	stdoutLogger := logger_adapter.NewSlogAdapter(logger_adapter.SlogConfig{
		Level:    logger_adapter.ParseLevel(appConfig.StdoutLogger.Level),
		IsJSON:   appConfig.StdoutLogger.IsJSON,
		UseColor: !appConfig.StdoutLogger.IsJSON,
	})
	activeLoggers = append(activeLoggers, stdoutLogger)

	if appConfig.FluentBit.Enabled {
		app.fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
			Async:     true,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(app.fluentClient, "", logger_adapter.ParseLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiLoggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{"service_name": appConfig.AppName})
	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	app.logger = appLogger
	appLogger.Debug("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	initCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// хранилище
	var store *storage
	switch appConfig.StorageBackend {
	case configs.StorageMemory:
		store = newMemoryStorage()
		appLogger.Warn("Using in-memory storage, data is not persisted", nil)
	default:
		app.pool, err = postgres.NewClient(initCtx, postgres.Config{
			DatabaseURL:    appConfig.Database.URL,
			MaxConns:       int32(appConfig.Database.MaxConns),
			ConnectTimeout: 10 * time.Second,
		})
		if err != nil {
			appLogger.Error("Failed to connect to database", err, nil)
			return nil, err
		}
		store, err = newPostgresStorage(app.pool)
		if err != nil {
			return nil, err
		}
		appLogger.Info("PostgreSQL storage initialized", nil)
	}

	// ограничение частоты поиска
	var limiter port.RateLimiterPort
	if appConfig.Redis.Enabled {
		app.redisClient, err = redisclient.NewClient(initCtx, redisclient.Config{
			Addr:     appConfig.Redis.Addr,
			Password: appConfig.Redis.Password,
			DB:       appConfig.Redis.DB,
		})
		if err != nil {
			appLogger.Error("Failed to connect to redis", err, nil)
			return nil, err
		}
		limiter, err = redis_adapter.NewRateLimiter(app.redisClient, appConfig.RateLimit.Requests, appConfig.RateLimit.Window)
		if err != nil {
			return nil, err
		}
		store.pingers = append(store.pingers, redis_adapter.NewHealthChecker(app.redisClient))
		appLogger.Info("Redis rate limiter initialized", port.Fields{"addr": appConfig.Redis.Addr})
	} else {
		limiter = memory.NewRateLimiter(appConfig.RateLimit.Requests, appConfig.RateLimit.Window)
		appLogger.Debug("In-memory rate limiter initialized", nil)
	}

	// события
	var events port.ListingEventPublisherPort = rabbitmq_adapter.NoopEventsAdapter{}
	if appConfig.RabbitMQ.URL != "" {
		rmqLogger := rabbitmq_adapter.NewPkgLoggerBridge(baseLogger.WithFields(port.Fields{"component": "rabbitmq"}))

		app.connManager, err = rabbitmq_common.NewManager(rabbitmq_common.Config{URL: appConfig.RabbitMQ.URL}, rmqLogger)
		if err != nil {
			appLogger.Error("Failed to connect to RabbitMQ", err, nil)
			return nil, err
		}

		app.publisher, err = rabbitmq_producer.NewPublisher(rabbitmq_producer.PublisherConfig{
			Config:                   rabbitmq_common.Config{URL: appConfig.RabbitMQ.URL},
			ExchangeName:             appConfig.RabbitMQ.Exchange,
			ExchangeType:             constants.ListingsExchangeType,
			DurableExchange:          true,
			ExchangeArgs:             amqp.Table{},
			DeclareExchangeIfMissing: true,
			Logger:                   rmqLogger,
		}, app.connManager)
		if err != nil {
			appLogger.Error("Failed to create listing events publisher", err, nil)
			return nil, err
		}

		eventsAdapter, err := rabbitmq_adapter.NewListingEventsAdapter(app.publisher)
		if err != nil {
			return nil, err
		}
		events = eventsAdapter
		appLogger.Info("Listing events publisher initialized", port.Fields{"exchange": appConfig.RabbitMQ.Exchange})
	}

	verifier, err := token_adapter.NewTokenVerifier(appConfig.JWTSecret)
	if err != nil {
		return nil, err
	}

	appMetrics := metrics.New("listing_service")

	// сценарии
	listingUC := rest.ListingUseCases{
		Search:       usecase.NewSearchListingsUseCase(store.listings),
		Autocomplete: usecase.NewAutocompleteUseCase(store.suggestions),
		Details:      usecase.NewGetListingDetailsUseCase(store.listings),
		Featured:     usecase.NewGetFeaturedListingsUseCase(store.listings, appConfig.Search.MaxLimit),
		Create:       usecase.NewCreateListingUseCase(store.listings, events),
		Update:       usecase.NewUpdateListingUseCase(store.listings, events),
		Delete:       usecase.NewDeleteListingUseCase(store.listings, events),
	}

	limits := search.Limits{Default: appConfig.Search.DefaultLimit, Max: appConfig.Search.MaxLimit}

	handlers := rest.Handlers{
		Listings: rest.NewListingHandler(listingUC, limits, appMetrics),
		Filters:  rest.NewFilterHandler(usecase.NewGetFilterOptionsUseCase(store.filters, store.listings)),
		Blog: rest.NewBlogHandler(
			usecase.NewListBlogPostsUseCase(store.blog),
			usecase.NewGetBlogPostUseCase(store.blog),
			search.Limits{Default: appConfig.Search.BlogDefaultLimit, Max: appConfig.Search.MaxLimit},
		),
		Admin:   rest.NewAdminHandler(usecase.NewGetDashboardStatsUseCase(store.stats)),
		Health:  rest.NewHealthHandler(store.pingers...),
		Metrics: appMetrics.Handler(),
	}

	middlewares := rest.Middlewares{
		Auth:        rest.NewAuthMiddleware(verifier),
		SearchLimit: rest.RateLimitMiddleware(limiter, "search", appMetrics),
		HTTPMetrics: &rest.HTTPMetrics{
			Requests: appMetrics.HTTPRequestsTotal,
			Duration: appMetrics.HTTPRequestDuration,
		},
	}

	app.server = rest.NewServer(rest.ServerConfig{
		Port:           appConfig.Rest.Port,
		AllowedOrigins: appConfig.Rest.AllowedOrigins,
	}, handlers, middlewares, baseLogger)

	ok = true
	return app, nil
}

func newPostgresStorage(pool *pgxpool.Pool) (*storage, error) {
	listings, err := postgres_adapter.NewListingStorageAdapter(pool)
	if err != nil {
		return nil, err
	}
	suggestions, err := postgres_adapter.NewSuggestionRepository(pool)
	if err != nil {
		return nil, err
	}
	filters, err := postgres_adapter.NewFilterRepository(pool)
	if err != nil {
		return nil, err
	}
	stats, err := postgres_adapter.NewStatsRepository(pool)
	if err != nil {
		return nil, err
	}
	blog, err := postgres_adapter.NewBlogRepository(pool)
	if err != nil {
		return nil, err
	}
	return &storage{
		listings:    listings,
		suggestions: suggestions,
		filters:     filters,
		stats:       stats,
		blog:        blog,
		pingers:     []rest.Pinger{postgres_adapter.NewHealthChecker(pool)},
	}, nil
}

func newMemoryStorage() *storage {
	listings := memory.NewListingStore()
	blog := memory.NewBlogStore()
	return &storage{
		listings:    listings,
		suggestions: listings,
		filters:     listings,
		stats:       memory.NewStatsRepository(listings, blog),
		blog:        blog,
	}
}

// Run запускает приложение и управляет его жизненным циклом
func (a *App) Run() error {
	serverErr := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		a.logger.Debug("Listing service is shutting down...", port.Fields{"signal": sig.String()})
	case err := <-serverErr:
		a.logger.Error("Failed to start REST server", err, nil)
		a.closeResources()
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var shutdownErr error
	if err := a.server.Stop(ctx); err != nil {
		a.logger.Error("REST server shutdown failed", err, nil)
		shutdownErr = err
	}

	a.closeResources()
	a.logger.Info("Application shut down gracefully.", nil)
	return shutdownErr
}

// closeResources закрывает клиентов в обратном порядке создания
func (a *App) closeResources() {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Error("Error closing RabbitMQ publisher", err, nil)
		}
	}
	if a.connManager != nil {
		if err := a.connManager.Close(); err != nil {
			a.logger.Error("Error closing RabbitMQ connection", err, nil)
		}
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Error("Error closing redis client", err, nil)
		}
	}
	if a.pool != nil {
		a.pool.Close()
	}
	if a.fluentClient != nil {
		if err := a.fluentClient.Close(); err != nil {
			fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
		}
	}
}
