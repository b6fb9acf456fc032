package health

import (
	"encoding/json"
	"net/http"

	"github.com/you-humble/parts-inventory/internal/model"
	inventoryv1 "github.com/you-humble/parts-inventory/pkg/api/inventory/v1"
	"github.com/you-humble/parts-inventory/platform/logger"
)

const StatusServing = "SERVING"

type Inventory interface {
	Parts() []*model.Part
	Products() []*model.Product
}

// Handler reports SERVING together with the current inventory size.
func Handler(inv Inventory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(inventoryv1.Health{
			Status:   StatusServing,
			Parts:    len(inv.Parts()),
			Products: len(inv.Products()),
		})
		if err != nil {
			logger.Error(r.Context(), "health check", logger.ErrorF(err))
		}
	}
}
