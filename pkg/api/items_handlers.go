// Handlers for the item resource.

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/getitemd/itemd/pkg/item"
	"github.com/getitemd/itemd/pkg/store"
)

// itemID parses the {id} path segment. A non-integer id is a validation
// error, rejected before it ever reaches the store.
func itemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid_id", "item id must be an integer")
		return 0, false
	}
	return id, true
}

// handleListItems handles GET /items/.
func (a *API) handleListItems(w http.ResponseWriter, r *http.Request) {
	skip := 0
	if v := r.URL.Query().Get("skip"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusUnprocessableEntity, "invalid_skip", "skip must be a non-negative integer")
			return
		}
		skip = n
	}

	items, err := a.store.List(r.Context(), skip)
	if err != nil {
		a.log.Error("failed to list items", "error", err)
		writeError(w, http.StatusInternalServerError, "store_error", ErrMsgInternalError)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// handleGetItem handles GET /items/{id}.
func (a *API) handleGetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	it, err := a.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", ErrMsgItemNotFound)
			return
		}
		a.log.Error("failed to get item", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "store_error", ErrMsgInternalError)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

// handleCreateItem handles POST /items/.
func (a *API) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	var req item.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid_json", ErrMsgInvalidJSON)
		return
	}
	if err := req.Validate(); err != nil {
		a.writeValidationError(w, err)
		return
	}

	it := &item.Item{Nom: req.Nom, Prix: *req.Prix}
	if err := a.store.Create(r.Context(), it); err != nil {
		a.log.Error("failed to create item", "error", err)
		writeError(w, http.StatusInternalServerError, "store_error", ErrMsgInternalError)
		return
	}
	writeJSON(w, http.StatusCreated, it)
}

// handleUpdateItem handles PUT /items/{id}. The lookup runs before payload
// validation, so a missing id answers 404 even when the payload is bad.
func (a *API) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}
	ctx := r.Context()

	existing, err := a.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", ErrMsgItemNotFound)
			return
		}
		a.log.Error("failed to get item for update", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "store_error", ErrMsgInternalError)
		return
	}

	var req item.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "invalid_json", ErrMsgInvalidJSON)
		return
	}
	if err := req.Validate(); err != nil {
		a.writeValidationError(w, err)
		return
	}

	req.Apply(existing)
	if err := a.store.Update(ctx, existing); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", ErrMsgItemNotFound)
			return
		}
		a.log.Error("failed to update item", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "store_error", ErrMsgInternalError)
		return
	}
	writeJSON(w, http.StatusOK, existing)
}

// handleDeleteItem handles DELETE /items/{id}.
func (a *API) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	if err := a.store.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", ErrMsgItemNotFound)
			return
		}
		a.log.Error("failed to delete item", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "store_error", ErrMsgInternalError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// writeValidationError maps a validation failure onto a 422 reply. Field
// constraint messages are safe to echo; anything else stays generic.
func (a *API) writeValidationError(w http.ResponseWriter, err error) {
	var verr *item.ValidationError
	if errors.As(err, &verr) {
		a.log.Warn("validation failed", "error", err)
		writeError(w, http.StatusUnprocessableEntity, "validation_error", verr.Error())
		return
	}
	a.log.Error("validation internal error", "error", err)
	writeError(w, http.StatusInternalServerError, "internal_error", ErrMsgInternalError)
}
