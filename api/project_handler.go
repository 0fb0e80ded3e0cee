package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/inkwell-app/backend/database"
	"github.com/inkwell-app/backend/errs"
	"github.com/inkwell-app/backend/models"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

type projectCreateRequest struct {
	Name string `json:"name"`
}

type whiteboardUpdateRequest struct {
	Whiteboard *string `json:"whiteboard"`
}

// parseID reads a chi URL parameter as an entity id.
func parseID(r *http.Request, param string) (uint, error) {
	raw := chi.URLParam(r, param)
	if raw == "" {
		return 0, errs.NewMissingRequiredFieldError(param)
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errs.NewInvalidFieldError(param, "must be a positive integer")
	}
	return uint(id), nil
}

// getAllProjects retrieves all projects ordered by name
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		h.responder.WriteJSON(w, projects)
	}
}

// getProject retrieves a specific project by ID
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseID(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject creates a new project
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req projectCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("project", err))
			return
		}

		if req.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}

		project := models.Project{Name: req.Name}
		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, project)
	}
}

// updateProject applies a sparse update to an existing project
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseID(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		// Verify project exists
		existing, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		var patch models.ProjectPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("project", err))
			return
		}

		if patch.Name != nil && *patch.Name == "" {
			h.responder.WriteError(w, errs.NewInvalidFieldError("name", "must not be empty"))
			return
		}

		if err := h.projectRepo.Update(projectID, patch); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		updated, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "project", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// updateWhiteboard updates only the whiteboard content of a project
func (h projectHandler) updateWhiteboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseID(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		var req whiteboardUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode whiteboard request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("whiteboard", err))
			return
		}
		if req.Whiteboard == nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("whiteboard"))
			return
		}

		patch := models.ProjectPatch{Whiteboard: req.Whiteboard}
		if err := h.projectRepo.Update(projectID, patch); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		updated, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "project", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

// deleteProject deletes a project; its prompts are reassigned to Default
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseID(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}
