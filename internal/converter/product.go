package converter

import (
	"github.com/samber/lo"

	"github.com/you-humble/parts-inventory/internal/model"
	inventoryv1 "github.com/you-humble/parts-inventory/pkg/api/inventory/v1"
)

func ProductFromModel(p *model.Product) inventoryv1.Product {
	return inventoryv1.Product{
		ID:              p.ID(),
		Name:            p.Name,
		Price:           p.Price,
		Stock:           p.Stock,
		Min:             p.Min,
		Max:             p.Max,
		AssociatedParts: PartsFromModel(p.AssociatedParts()),
	}
}

func ProductsFromModel(products []*model.Product) []inventoryv1.Product {
	return lo.Map(products, func(p *model.Product, _ int) inventoryv1.Product {
		return ProductFromModel(p)
	})
}

func ProductRequestToParams(req inventoryv1.ProductRequest) model.ProductParams {
	return model.ProductParams{
		Name:    req.Name,
		Price:   req.Price,
		Stock:   req.Stock,
		Min:     req.Min,
		Max:     req.Max,
		PartIDs: append([]int(nil), req.PartIDs...),
	}
}
