package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/trovehq/trove/internal/api/respond"
	"github.com/trovehq/trove/internal/model"
	"github.com/trovehq/trove/internal/services"
)

// ItemHandler exposes the item service over HTTP.
type ItemHandler struct {
	svc *services.ItemService
}

func NewItemHandler(svc *services.ItemService) *ItemHandler {
	return &ItemHandler{svc: svc}
}

// ListItems GET /items
// With ?type= or ?tags=a,b this is the filter operation; without query
// parameters it lists everything.
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	typ := q.Get("type")
	var tags []string
	if raw := q.Get("tags"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			tags = append(tags, strings.TrimSpace(t))
		}
	}

	var (
		items []*model.Item
		err   error
	)
	if typ == "" && len(tags) == 0 {
		items, err = h.svc.List(r.Context())
	} else {
		items, err = h.svc.Filter(r.Context(), typ, tags)
	}
	if err != nil {
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, items)
}

// GetItem GET /items/{id}
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	item, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, item)
}

// CreateItem POST /items
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req model.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	item, err := h.svc.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, item)
}

// UpdateItem PUT/PATCH /items/{id}
// The payload is a field-level merge; id and created_at keys are ignored.
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var patch model.ItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	item, err := h.svc.Update(r.Context(), id, &patch)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, item)
}

// DeleteItem DELETE /items/{id}
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CaptureItem POST /items/capture
func (h *ItemHandler) CaptureItem(w http.ResponseWriter, r *http.Request) {
	var req model.CaptureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	item, err := h.svc.Capture(r.Context(), req.Text)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusCreated, item)
}

// writeServiceError maps service errors onto distinct statuses: missing ids
// are 404, a corrupt record on direct fetch is 500, bad payloads are 400, and
// anything else is a storage-layer failure.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrNotFound):
		respond.WriteNotFound(w, "Item not found")
	case errors.Is(err, model.ErrCorruptRecord):
		respond.WriteInternalError(w, "Stored record is unreadable")
	case errors.Is(err, model.ErrValidation):
		respond.WriteBadRequest(w, err.Error())
	default:
		respond.WriteInternalError(w, err.Error())
	}
}
