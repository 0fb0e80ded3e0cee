package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/inkwell-app/backend/database"
	"github.com/inkwell-app/backend/errs"
	"github.com/inkwell-app/backend/models"
)

// itemHandler serves the legacy items record set.
type itemHandler struct {
	responder Responder
	logger    zerolog.Logger
	itemRepo  *database.ItemRepo
}

func newItemHandler(itemRepo *database.ItemRepo) itemHandler {
	logger := log.With().Str("handlerName", "itemHandler").Logger()

	return itemHandler{
		responder: NewResponder(logger),
		logger:    logger,
		itemRepo:  itemRepo,
	}
}

type itemCreateRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (h itemHandler) getAllItems() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.itemRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "items", err))
			return
		}

		h.responder.WriteJSON(w, items)
	}
}

func (h itemHandler) getItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, err := parseID(r, "itemID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		item, err := h.itemRepo.FindByID(itemID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "item", err))
			return
		}

		if item == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("item not found"))
			return
		}

		h.responder.WriteJSON(w, item)
	}
}

func (h itemHandler) createItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req itemCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode item request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("item", err))
			return
		}

		if req.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}

		item := models.Item{Name: req.Name, Description: req.Description}
		if err := h.itemRepo.Add(&item); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "item", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, item)
	}
}

func (h itemHandler) updateItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, err := parseID(r, "itemID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.itemRepo.FindByID(itemID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "item", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("item not found"))
			return
		}

		var patch models.ItemPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode item request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("item", err))
			return
		}

		if err := h.itemRepo.Update(itemID, patch); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "item", err))
			return
		}

		updated, err := h.itemRepo.FindByID(itemID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "item", err))
			return
		}

		h.responder.WriteJSON(w, updated)
	}
}

func (h itemHandler) deleteItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemID, err := parseID(r, "itemID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing, err := h.itemRepo.FindByID(itemID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "item", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("item not found"))
			return
		}

		if err := h.itemRepo.Delete(itemID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "item", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "item deleted successfully",
		})
	}
}
