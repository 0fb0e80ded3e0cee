package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/inkwell-app/backend/database"
	"github.com/inkwell-app/backend/errs"
	"github.com/inkwell-app/backend/models"
)

type promptHandler struct {
	responder  Responder
	logger     zerolog.Logger
	promptRepo *database.PromptRepo
}

func newPromptHandler(promptRepo *database.PromptRepo) promptHandler {
	logger := log.With().Str("handlerName", "promptHandler").Logger()

	return promptHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		promptRepo: promptRepo,
	}
}

type promptCreateRequest struct {
	Name      string  `json:"name"`
	Status    string  `json:"status"`
	Content   *string `json:"content"`
	ProjectID *uint   `json:"project_id"`
}

type reorderRequest struct {
	PromptIDs []uint `json:"prompt_ids"`
	ProjectID *uint  `json:"project_id"`
}

// getAllPrompts retrieves prompts, optionally filtered by project and status
func (h promptHandler) getAllPrompts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filter database.PromptFilter

		if raw := r.URL.Query().Get("project_id"); raw != "" {
			id, err := strconv.ParseUint(raw, 10, 32)
			if err != nil {
				h.responder.WriteError(w,
					errs.NewInvalidFieldError("project_id", "must be a positive integer"))
				return
			}
			projectID := uint(id)
			filter.ProjectID = &projectID
		}

		if status := r.URL.Query().Get("status"); status != "" {
			if !models.ValidStatus(status) {
				h.responder.WriteError(w, statusEnumError())
				return
			}
			filter.Status = status
		}

		prompts, err := h.promptRepo.FindAll(filter)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "prompts", err))
			return
		}

		h.responder.WriteJSON(w, prompts)
	}
}

// getPrompt retrieves a specific prompt by ID
func (h promptHandler) getPrompt() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		promptID, err := parseID(r, "promptID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		prompt, err := h.promptRepo.FindByID(promptID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "prompt", err))
			return
		}

		if prompt == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("prompt not found"))
			return
		}

		h.responder.WriteJSON(w, prompt)
	}
}

// createPrompt creates a new prompt; a missing project_id resolves to the
// Default project at write time
func (h promptHandler) createPrompt() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req promptCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode prompt request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("prompt", err))
			return
		}

		if req.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		if req.Status != "" && !models.ValidStatus(req.Status) {
			h.responder.WriteError(w, statusEnumError())
			return
		}

		prompt := models.Prompt{
			Name:      req.Name,
			Status:    req.Status,
			Content:   req.Content,
			ProjectID: req.ProjectID,
		}
		if err := h.promptRepo.Add(&prompt); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "prompt", err))
			return
		}

		created, err := h.promptRepo.FindByID(prompt.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "prompt", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, created)
	}
}

// updatePrompt applies a sparse update to an existing prompt
func (h promptHandler) updatePrompt() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		promptID, err := parseID(r, "promptID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.promptRepo.FindByID(promptID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "prompt", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("prompt not found"))
			return
		}

		var patch models.PromptPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode prompt request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("prompt", err))
			return
		}

		if patch.Status != nil && !models.ValidStatus(*patch.Status) {
			h.responder.WriteError(w, statusEnumError())
			return
		}

		if err := h.promptRepo.Update(promptID, patch); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "prompt", err))
			return
		}

		updated, err := h.promptRepo.FindByID(promptID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "prompt", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// reorderPrompts rewrites order_number to match the submitted id sequence
func (h promptHandler) reorderPrompts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reorderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode reorder request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("reorder", err))
			return
		}

		if len(req.PromptIDs) == 0 {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("prompt_ids"))
			return
		}

		if err := h.promptRepo.Reorder(req.PromptIDs, req.ProjectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("reorder", "prompts", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "prompts reordered successfully",
		})
	}
}

// deletePrompt deletes a prompt; no cascading side effects
func (h promptHandler) deletePrompt() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		promptID, err := parseID(r, "promptID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.promptRepo.FindByID(promptID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "prompt", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("prompt not found"))
			return
		}

		if err := h.promptRepo.Delete(promptID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "prompt", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "prompt deleted successfully",
		})
	}
}

func statusEnumError() error {
	return errs.NewInvalidFieldError("status",
		fmt.Sprintf("must be one of %s, %s, %s",
			models.StatusDraft, models.StatusActive, models.StatusArchived))
}
