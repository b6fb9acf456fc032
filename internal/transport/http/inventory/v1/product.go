package http

import (
	"net/http"

	"github.com/you-humble/parts-inventory/internal/converter"
	inventoryv1 "github.com/you-humble/parts-inventory/pkg/api/inventory/v1"
)

func (h *handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.ProductsFromModel(products))
}

func (h *handler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.ProductsFromModel(products))
}

func (h *handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	p, err := h.products.Product(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.ProductFromModel(p))
}

func (h *handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req inventoryv1.ProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.products.Create(r.Context(), converter.ProductRequestToParams(req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, converter.ProductFromModel(p))
}

func (h *handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req inventoryv1.ProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.products.Update(r.Context(), id, converter.ProductRequestToParams(req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.ProductFromModel(p))
}

func (h *handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.products.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) AddAssociatedPart(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	partID, ok := pathID(w, r, "partID")
	if !ok {
		return
	}

	p, err := h.products.AddAssociatedPart(r.Context(), id, partID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.ProductFromModel(p))
}

func (h *handler) RemoveAssociatedPart(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	partID, ok := pathID(w, r, "partID")
	if !ok {
		return
	}

	p, err := h.products.RemoveAssociatedPart(r.Context(), id, partID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.ProductFromModel(p))
}
