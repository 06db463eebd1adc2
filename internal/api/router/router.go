package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/smilecare/whatsapp-assistant/internal/channels/whatsapp"
	httpmiddleware "github.com/smilecare/whatsapp-assistant/internal/http/middleware"
	"github.com/smilecare/whatsapp-assistant/pkg/logging"
)

// Config holds router configuration.
type Config struct {
	Logger         *logging.Logger
	Webhook        *whatsapp.WebhookHandler
	MetricsHandler http.Handler
}

// New creates a new Chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/", healthCheck)
	r.Get("/webhook", cfg.Webhook.HandleVerification)
	r.Post("/webhook", cfg.Webhook.HandleInbound)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	return r
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"OK"}`))
}
