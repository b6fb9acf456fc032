package http

import (
	"net/http"

	"github.com/you-humble/parts-inventory/internal/converter"
	inventoryv1 "github.com/you-humble/parts-inventory/pkg/api/inventory/v1"
)

func (h *handler) ListParts(w http.ResponseWriter, r *http.Request) {
	parts, err := h.parts.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.PartsFromModel(parts))
}

func (h *handler) SearchParts(w http.ResponseWriter, r *http.Request) {
	parts, err := h.parts.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.PartsFromModel(parts))
}

func (h *handler) GetPart(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	p, err := h.parts.Part(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.PartFromModel(p))
}

func (h *handler) CreatePart(w http.ResponseWriter, r *http.Request) {
	var req inventoryv1.PartRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.parts.Create(r.Context(), converter.PartRequestToParams(req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, converter.PartFromModel(p))
}

func (h *handler) UpdatePart(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req inventoryv1.PartRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.parts.Update(r.Context(), id, converter.PartRequestToParams(req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.PartFromModel(p))
}

func (h *handler) DeletePart(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.parts.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
