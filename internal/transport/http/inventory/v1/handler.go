package http

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/you-humble/parts-inventory/internal/model"
)

type PartService interface {
	Create(ctx context.Context, params model.PartParams) (*model.Part, error)
	Update(ctx context.Context, id int, params model.PartParams) (*model.Part, error)
	Part(ctx context.Context, id int) (*model.Part, error)
	List(ctx context.Context) ([]*model.Part, error)
	Search(ctx context.Context, query string) ([]*model.Part, error)
	Delete(ctx context.Context, id int) error
}

type ProductService interface {
	Create(ctx context.Context, params model.ProductParams) (*model.Product, error)
	Update(ctx context.Context, id int, params model.ProductParams) (*model.Product, error)
	Product(ctx context.Context, id int) (*model.Product, error)
	List(ctx context.Context) ([]*model.Product, error)
	Search(ctx context.Context, query string) ([]*model.Product, error)
	AddAssociatedPart(ctx context.Context, productID, partID int) (*model.Product, error)
	RemoveAssociatedPart(ctx context.Context, productID, partID int) (*model.Product, error)
	Delete(ctx context.Context, id int) error
}

type handler struct {
	parts    PartService
	products ProductService
}

func NewInventoryHandler(parts PartService, products ProductService) *handler {
	return &handler{parts: parts, products: products}
}

// Routes mounts the v1 API under /api/v1 on r.
func (h *handler) Routes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/parts", func(r chi.Router) {
			r.Get("/", h.ListParts)
			r.Post("/", h.CreatePart)
			r.Get("/search", h.SearchParts)
			r.Get("/{id}", h.GetPart)
			r.Put("/{id}", h.UpdatePart)
			r.Delete("/{id}", h.DeletePart)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.ListProducts)
			r.Post("/", h.CreateProduct)
			r.Get("/search", h.SearchProducts)
			r.Get("/{id}", h.GetProduct)
			r.Put("/{id}", h.UpdateProduct)
			r.Delete("/{id}", h.DeleteProduct)
			r.Post("/{id}/parts/{partID}", h.AddAssociatedPart)
			r.Delete("/{id}/parts/{partID}", h.RemoveAssociatedPart)
		})
	})
}
