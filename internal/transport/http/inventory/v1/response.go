package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/you-humble/parts-inventory/internal/model"
	inventoryv1 "github.com/you-humble/parts-inventory/pkg/api/inventory/v1"
	"github.com/you-humble/parts-inventory/platform/logger"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error(r.Context(), "failed to encode response", logger.ErrorF(err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed", logger.ErrorF(err))
	}

	writeJSON(w, r, status, inventoryv1.Error{
		Code:    status,
		Message: err.Error(),
	})
}

func writeBadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	writeJSON(w, r, http.StatusBadRequest, inventoryv1.Error{
		Code:    http.StatusBadRequest,
		Message: msg,
	})
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrPartNotFound),
		errors.Is(err, model.ErrProductNotFound),
		errors.Is(err, model.ErrAssociatedPartNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrProductHasParts):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func pathID(w http.ResponseWriter, r *http.Request, key string) (int, bool) {
	raw := chi.URLParam(r, key)
	id, err := strconv.Atoi(raw)
	if err != nil {
		writeBadRequest(w, r, "invalid "+key+": "+strconv.Quote(raw))
		return 0, false
	}
	return id, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeBadRequest(w, r, "malformed request body: "+err.Error())
		return false
	}
	return true
}
