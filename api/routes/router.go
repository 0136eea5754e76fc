package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/projectscope/projectscope-backend/api/controllers"
	"github.com/projectscope/projectscope-backend/api/middleware"
	"github.com/projectscope/projectscope-backend/internal/auth"
	"github.com/projectscope/projectscope-backend/internal/markets"
	"github.com/projectscope/projectscope-backend/internal/preferences"
	"github.com/projectscope/projectscope-backend/internal/projects"
	"github.com/projectscope/projectscope-backend/internal/users"
	"github.com/projectscope/projectscope-backend/pkg/config"
	"github.com/projectscope/projectscope-backend/pkg/db"
	"github.com/projectscope/projectscope-backend/pkg/logger"
	"github.com/projectscope/projectscope-backend/pkg/metrics"
	"github.com/projectscope/projectscope-backend/pkg/redis"
)

// Deps bundles everything the router wires into handlers.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	DB          db.Pinger
	Redis       *redis.Client
	Metrics     *metrics.HTTPMetrics
	Registry    *prometheus.Registry
	Auth        auth.Service
	Users       users.Service
	Preferences *preferences.Service
	Catalog     *projects.Store
	Markets     *markets.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.Metrics),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.DB, deps.Redis, logg))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		// Catalog and market surfaces are public reads.
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", controllers.ProjectsList(deps.Catalog, logg))
			r.Get("/{id}", controllers.ProjectsGet(deps.Catalog, logg))
		})
		r.Get("/market-indicators", controllers.MarketIndicators(deps.Markets, logg))
		r.Get("/trending-sectors", controllers.TrendingSectors(deps.Markets, logg))
		r.Get("/filter-options", controllers.FilterOptions(deps.Catalog, logg))
		r.Get("/cities/{country}", controllers.Cities(deps.Catalog, logg))
		r.Get("/districts/{country}/{city}", controllers.Districts(deps.Catalog, logg))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", controllers.AuthRegister(deps.Auth, cfg, logg))
			r.Post("/login", controllers.AuthLogin(deps.Auth, cfg, logg))
			r.Post("/logout", controllers.AuthLogout(deps.Auth, cfg, logg))
			r.With(middleware.Auth(deps.Auth, logg)).Get("/me", controllers.AuthMe(deps.Users, logg))
		})

		r.Route("/account", func(r chi.Router) {
			r.Use(middleware.Auth(deps.Auth, logg))
			r.Put("/profile", controllers.AccountUpdateProfile(deps.Users, logg))
			r.Put("/password", controllers.AccountChangePassword(deps.Users, logg))
		})

		r.Route("/preferences", func(r chi.Router) {
			r.Post("/", controllers.PreferencesUpsert(deps.Preferences, logg))
			r.Get("/{sessionId}", controllers.PreferencesGet(deps.Preferences, logg))
		})
	})

	return r
}
