package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/inkwell-app/backend/database"
	"github.com/inkwell-app/backend/errs"
)

type settingHandler struct {
	responder   Responder
	logger      zerolog.Logger
	settingRepo *database.SettingRepo
}

func newSettingHandler(settingRepo *database.SettingRepo) settingHandler {
	logger := log.With().Str("handlerName", "settingHandler").Logger()

	return settingHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		settingRepo: settingRepo,
	}
}

type settingRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// getSetting retrieves a setting by key
func (h settingHandler) getSetting() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		if key == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("key"))
			return
		}

		setting, err := h.settingRepo.Get(key)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "setting", err))
			return
		}

		if setting == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("setting not found"))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"key":   setting.Key,
			"value": setting.Value,
		})
	}
}

// setSetting upserts a setting
func (h settingHandler) setSetting() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req settingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode setting request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("setting", err))
			return
		}

		if req.Key == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("key"))
			return
		}

		if err := h.settingRepo.Set(req.Key, req.Value); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("set", "setting", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "setting updated successfully",
		})
	}
}
