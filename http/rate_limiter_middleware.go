package http

import (
	"net"
	"net/http"

	"github.com/rs/zerolog/log"

	"flowfinance/metrics"
)

func RateLimitMiddleware(limiter *RateLimiter, m *metrics.Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			if !limiter.Allow(ip) {
				m.Throttled()
				log.Debug().Str("client", ip).Msg("rate limit exceeded")
				writeErrorStatus(w, http.StatusTooManyRequests, "rate limit exceeded", "rate_limited")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
