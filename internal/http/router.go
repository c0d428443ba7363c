package http

import (
	nethttp "net/http"

	"github.com/rs/cors"

	"fantasy-hud-service/internal/http/handlers"
	"fantasy-hud-service/internal/http/requestutil"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/players", handler.Players)
	mux.HandleFunc("/players/", handler.PlayerByID)
	mux.HandleFunc("/trending", handler.Trending)
	mux.HandleFunc("/league", handler.League)
	return mux
}

// WithCORS allows browser clients from origins to call the API. An empty list allows any origin.
func WithCORS(next nethttp.Handler, origins []string) nethttp.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodPut, nethttp.MethodOptions},
		AllowedHeaders: []string{"Content-Type", requestutil.HeaderRequestID},
		ExposedHeaders: []string{requestutil.HeaderRequestID},
	})
	return c.Handler(next)
}
