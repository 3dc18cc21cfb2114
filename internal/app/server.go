package app

import (
	"io"
	"net/http"

	"github.com/gorilla/handlers"

	"rides/internal/config"
	"rides/internal/middleware"
)

// NewServer wraps router with CORS and an Apache combined-format access log
// written to accessLog.
func NewServer(cfg config.ServerConfig, router http.Handler, accessLog io.Writer) *http.Server {
	var h http.Handler = router
	if accessLog != nil {
		h = handlers.CombinedLoggingHandler(accessLog, h)
	}
	h = handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", middleware.IdempotencyHeader, middleware.RequestIDHeader}),
		handlers.ExposedHeaders([]string{middleware.RequestIDHeader}),
	)(h)

	return &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}
