package engine

import (
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimit rejects requests with a 429 once the limiter's budget is spent.
// The limiter is shared by every request passing through the returned handler.
func RateLimit(limiter *rate.Limiter, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			w.Header().Set("Retry-After", "1")
			ClientError(w, "Too Many Requests", "Too many submissions - please wait a moment and try again", http.StatusTooManyRequests)
			return
		}
		next(w, r)
	}
}

// NewSubmitLimiter returns a limiter allowing rps requests per second with an equal burst.
// A non-positive rps disables limiting.
func NewSubmitLimiter(rps int) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Limit(rps), rps)
}
