package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type healthHandler struct {
	responder Responder
	logger    zerolog.Logger
}

func newHealthHandler() healthHandler {
	logger := log.With().Str("handlerName", "healthHandler").Logger()

	return healthHandler{
		responder: NewResponder(logger),
		logger:    logger,
	}
}

// healthCheck reports liveness
func (h healthHandler) healthCheck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]string{
			"status":  "healthy",
			"message": "Inkwell API is running",
		})
	}
}
