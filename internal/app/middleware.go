package app

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/wfhlog/wfhlog/internal/config"
)

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Tag every request with an id so log lines from one request can be
	// correlated. An incoming X-Request-Id is kept, otherwise one is minted.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			requestId := req.Header.Get("X-Request-Id")
			if requestId == "" {
				requestId = uuid.NewString()
			}
			w.Header().Set("X-Request-Id", requestId)

			start := deps.Clock.Now()
			log.WithFields(log.Fields{
				"requestId": requestId,
				"method":    req.Method,
				"path":      req.URL.Path,
			}).Debug("Handling request")

			next.ServeHTTP(w, req)

			log.WithFields(log.Fields{
				"requestId": requestId,
				"method":    req.Method,
				"path":      req.URL.Path,
				"duration":  time.Since(start).String(),
			}).Debug("Handled request")
		})
	})
}
