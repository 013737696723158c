package httpapi

import (
	"net/http"

	"github.com/riskibarqy/seriea-gateway/internal/platform/logging"
)

type RouterConfig struct {
	APIKey             string
	CORSAllowedOrigins []string
	RateLimit          RateLimitConfig
}

func NewRouter(handler *Handler, cfg RouterConfig, logger *logging.Logger) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerClubRoutes(mux, handler, cfg.APIKey)

	var limiter *IPRateLimiter
	if cfg.RateLimit.Enabled {
		limiter = NewIPRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	}

	return RequestTracing(
		RequestLogging(logger,
			SecurityHeaders(
				CORS(cfg.CORSAllowedOrigins,
					RateLimit(limiter,
						recoverPanic(logger, mux))))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
