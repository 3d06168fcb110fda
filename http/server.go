package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"flowfinance/config"
	"flowfinance/metrics"
	"flowfinance/service"
)

// Services are the calculators exposed over HTTP.
type Services struct {
	Loans      *service.LoanService
	Notes      *service.NoteService
	Funds      *service.FundService
	Indicators *service.IndicatorService
	History    *service.HistoryService
}

type Server struct {
	Router *chi.Mux

	loans      *LoanHandler
	notes      *NoteHandler
	funds      *FundHandler
	indicators *IndicatorHandler
	history    *HistoryHandler

	limiter  *RateLimiter
	metrics  *metrics.Registry
	gatherer prometheus.Gatherer
}

// NewServer builds the router. gatherer backs /metrics and may be nil to leave it out.
func NewServer(
	svc Services,
	limiter *RateLimiter,
	m *metrics.Registry,
	gatherer prometheus.Gatherer,
) *Server {
	server := &Server{
		Router:     chi.NewRouter(),
		loans:      NewLoanHandler(svc.Loans),
		notes:      NewNoteHandler(svc.Notes),
		funds:      NewFundHandler(svc.Funds),
		indicators: NewIndicatorHandler(svc.Indicators),
		history:    NewHistoryHandler(svc.History),
		limiter:    limiter,
		metrics:    m,
		gatherer:   gatherer,
	}
	server.InitRoutes()
	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitRoutes() {
	s.Router.Use(middleware.Recoverer)
	s.Router.Use(Instrument(s.metrics))

	s.Router.Get("/alive", Healthcheck)
	if s.gatherer != nil {
		s.Router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	s.Router.Route("/api", func(r chi.Router) {
		r.Use(RateLimitMiddleware(s.limiter, s.metrics))

		r.Post("/indicators", s.indicators.ComputeIndicators)
		r.Post("/simulations", s.indicators.Simulate)

		r.Route("/funds", func(r chi.Router) {
			r.Post("/convert", s.funds.Convert)
			r.Post("/project", s.funds.Project)
			r.Post("/available", s.funds.AvailableAmount)
			r.Post("/costs", s.funds.TotalCosts)
		})

		r.Post("/notes", s.notes.EvaluateNote)

		r.Post("/loans", s.loans.CalculateLoan)
		r.Post("/loans/installment", s.loans.CalculateInstallment)

		r.Get("/calculations", s.history.ListCalculations)
	})
}

func Healthcheck(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func NewHTTPServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}
