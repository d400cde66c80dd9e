package rest

import (
	"context"
	"net/http"
	"time"

	"real-estate-agency/internal/constants"
	"real-estate-agency/internal/core/domain"
	core_port "real-estate-agency/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

type Handlers struct {
	Listings *ListingHandler
	Filters  *FilterHandler
	Blog     *BlogHandler
	Admin    *AdminHandler
	Health   *HealthHandler
	Metrics  http.Handler // nil - /metrics не публикуется
}

type Middlewares struct {
	Auth        *AuthMiddleware
	SearchLimit func(http.Handler) http.Handler // nil - без ограничения частоты
	HTTPMetrics *HTTPMetrics
}

type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

// NewRouter собирает маршруты API
func NewRouter(cfg ServerConfig, h Handlers, mw Middlewares, baseLogger core_port.LoggerPort) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)
	if mw.HTTPMetrics != nil {
		r.Use(MetricsMiddleware(*mw.HTTPMetrics))
	}

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", constants.HTTPHeaderTraceID},
		ExposedHeaders:   []string{constants.HTTPHeaderTraceID, "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if h.Health != nil {
		r.Get("/healthz", h.Health.Health)
	}
	if h.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.Metrics)
	}

	limited := func(next http.Handler) http.Handler { return next }
	if mw.SearchLimit != nil {
		limited = mw.SearchLimit
	}

	r.Route(constants.APIPrefix, func(r chi.Router) {
		// публичные маршруты, токен необязателен
		r.Group(func(r chi.Router) {
			r.Use(mw.Auth.Optional)

			r.With(limited).Get("/properties/search", h.Listings.Search)
			r.With(limited).Get("/properties/autocomplete", h.Listings.Autocomplete)
			r.Get("/properties/featured", h.Listings.Featured)
			r.Get("/properties/filters/options", h.Filters.GetFilterOptions)
			r.Get("/properties/{id}", h.Listings.Details)

			r.Get("/blog", h.Blog.List)
			r.Get("/blog/{slug}", h.Blog.Get)
		})

		// агенты и администраторы
		r.Group(func(r chi.Router) {
			r.Use(mw.Auth.Authenticate)
			r.Use(mw.Auth.RequireRole(ElevatedRoles...))

			r.Post("/properties", h.Listings.Create)
			r.Put("/properties/{id}", h.Listings.Update)
			r.Delete("/properties/{id}", h.Listings.Delete)
		})

		// только администраторы
		r.Group(func(r chi.Router) {
			r.Use(mw.Auth.Authenticate)
			r.Use(mw.Auth.RequireRole(domain.RoleAdmin))

			r.Get("/admin/dashboard", h.Admin.Dashboard)
		})
	})

	return r
}

func NewServer(cfg ServerConfig, h Handlers, mw Middlewares, baseLogger core_port.LoggerPort) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           NewRouter(cfg, h, mw, baseLogger),
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: baseLogger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("Starting REST server", core_port.Fields{"address": s.httpServer.Addr})
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST server...", nil)
	return s.httpServer.Shutdown(ctx)
}
