package rest

import (
	"math"
	"net"
	"net/http"
	"strconv"

	"real-estate-agency/internal/contextkeys"
	"real-estate-agency/internal/core/port"
)

// RateLimitObserver считает отклоненные запросы
type RateLimitObserver interface {
	ObserveRateLimited(route string)
}

// RateLimitMiddleware ограничивает запросы с одного адреса в пределах scope.
// При недоступном хранилище счетчиков запрос пропускается.
func RateLimitMiddleware(limiter port.RateLimiterPort, scope string, observer RateLimitObserver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := scope + ":" + clientIP(r)
			allowed, retryAfter, err := limiter.Allow(r.Context(), key)
			if err != nil {
				contextkeys.LoggerFromContext(r.Context()).Warn("Rate limiter unavailable, request allowed", port.Fields{
					"error": err.Error(),
					"scope": scope,
				})
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				if observer != nil {
					observer.ObserveRateLimited(scope)
				}
				seconds := int(math.Ceil(retryAfter.Seconds()))
				if seconds < 1 {
					seconds = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(seconds))
				WriteJSONError(w, http.StatusTooManyRequests, "Too many requests, please try again later")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP - RemoteAddr без порта; RealIP уже подставил адрес из заголовков прокси
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
