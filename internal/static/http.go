package static

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"ShopLite/pkg/kit"
)

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string

	RateLimiter *kit.IPRateLimiter

	// Faults receives request-handler panics; the process owner stops
	// serving on the first one. Nil means faults are logged and the
	// connection aborted, but nothing listens.
	Faults chan<- error
}

// NewHandler assembles the full request surface: /api routes first,
// then the static catch-all. API paths never fall through to the
// filesystem chain; an unknown /api path is a JSON 404.
func NewHandler(s *Server, deps HTTPDeps) http.Handler {
	r := chi.NewRouter()

	setupMiddleware(r, deps)
	setupMetrics(r, deps)

	r.Route("/api", func(ar chi.Router) {
		ar.Get("/status", s.status)
		ar.Get("/info", s.info)
		ar.NotFound(func(w http.ResponseWriter, r *http.Request) {
			kit.WriteError(w, r, http.StatusNotFound, "not found", nil)
		})
	})

	r.Handle("/*", http.HandlerFunc(s.ServeStatic))
	return r
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps) {
	r.Use(chimw.RequestID)
	r.Use(kit.FaultRecoverer(deps.Log, deps.Faults))
	r.Use(kit.Logging(deps.Log))

	if deps.RateLimiter != nil {
		r.Use(deps.RateLimiter.Middleware)
	}
}

func setupMetrics(r *chi.Mux, deps HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	metrics := kit.NewMetrics(deps.Registry)
	r.Use(metrics.Middleware(deps.Service, kit.ChiRoutePatternOrPath))

	if !deps.MetricsEnabled {
		return
	}

	r.With(kit.BearerAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}
