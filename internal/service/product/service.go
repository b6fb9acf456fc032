package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/you-humble/parts-inventory/internal/model"
	"github.com/you-humble/parts-inventory/platform/logger"
)

type ProductRepository interface {
	NextID() int
	AddProduct(p *model.Product)
	ProductByID(id int) (*model.Product, bool)
	ProductsByName(query string) []*model.Product
	ReplaceProduct(id int, p *model.Product) bool
	DeleteProduct(p *model.Product) bool
	Products() []*model.Product
}

type PartFinder interface {
	PartByID(id int) (*model.Part, bool)
}

type EventSender interface {
	Send(ctx context.Context, event model.InventoryEvent) error
}

type service struct {
	// Products are copied, changed and swapped back under mu.
	mu       sync.Mutex
	repo     ProductRepository
	partRepo PartFinder
	events   EventSender
}

func NewProductService(repo ProductRepository, parts PartFinder, events EventSender) *service {
	return &service{repo: repo, partRepo: parts, events: events}
}

func (s *service) Create(ctx context.Context, params model.ProductParams) (*model.Product, error) {
	const op = "product.service.Create"
	log := logger.With(logger.String("name", params.Name))

	if err := params.Validate(); err != nil {
		log.Warn(ctx, "validation failed", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	parts, err := s.resolveParts(params.PartIDs)
	if err != nil {
		log.Warn(ctx, "resolve associated parts", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := model.NewProduct(s.repo.NextID(), params.Name, params.Price, params.Stock, params.Min, params.Max)
	for _, part := range parts {
		p.AddAssociatedPart(part)
	}
	s.repo.AddProduct(p)

	log.Info(ctx, "product created",
		logger.Int("product_id", p.ID()),
		logger.Int("parts", len(parts)),
	)
	s.publish(ctx, model.ProductEvent(model.EventCreated, p))
	return p, nil
}

// Update rebuilds the product with the given id from params, including its
// associated parts.
func (s *service) Update(ctx context.Context, id int, params model.ProductParams) (*model.Product, error) {
	const op = "product.service.Update"
	log := logger.With(logger.Int("product_id", id))

	if err := params.Validate(); err != nil {
		log.Warn(ctx, "validation failed", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	parts, err := s.resolveParts(params.PartIDs)
	if err != nil {
		log.Warn(ctx, "resolve associated parts", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := model.NewProduct(id, params.Name, params.Price, params.Stock, params.Min, params.Max)
	for _, part := range parts {
		p.AddAssociatedPart(part)
	}
	if !s.repo.ReplaceProduct(id, p) {
		log.Warn(ctx, "product not found")
		return nil, fmt.Errorf("%s: %w", op, model.ErrProductNotFound)
	}

	log.Info(ctx, "product updated")
	s.publish(ctx, model.ProductEvent(model.EventUpdated, p))
	return p, nil
}

func (s *service) Product(ctx context.Context, id int) (*model.Product, error) {
	const op = "product.service.Product"

	p, ok := s.repo.ProductByID(id)
	if !ok {
		logger.Debug(ctx, "product not found", logger.Int("product_id", id))
		return nil, fmt.Errorf("%s: %w", op, model.ErrProductNotFound)
	}
	return p, nil
}

func (s *service) List(_ context.Context) ([]*model.Product, error) {
	return s.repo.Products(), nil
}

// Search treats an integer query as an id and anything else as a name
// fragment.
func (s *service) Search(ctx context.Context, query string) ([]*model.Product, error) {
	query = strings.TrimSpace(query)

	if id, err := strconv.Atoi(query); err == nil {
		p, ok := s.repo.ProductByID(id)
		if !ok {
			return []*model.Product{}, nil
		}
		return []*model.Product{p}, nil
	}

	res := s.repo.ProductsByName(query)
	logger.Debug(ctx, "products search",
		logger.String("query", query),
		logger.Int("found", len(res)),
	)
	return res, nil
}

func (s *service) AddAssociatedPart(ctx context.Context, productID, partID int) (*model.Product, error) {
	const op = "product.service.AddAssociatedPart"
	log := logger.With(
		logger.Int("product_id", productID),
		logger.Int("part_id", partID),
	)

	part, ok := s.partRepo.PartByID(partID)
	if !ok {
		log.Warn(ctx, "part not found")
		return nil, fmt.Errorf("%s: %w", op, model.ErrPartNotFound)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.repo.ProductByID(productID)
	if !ok {
		log.Warn(ctx, "product not found")
		return nil, fmt.Errorf("%s: %w", op, model.ErrProductNotFound)
	}

	next := cur.Clone()
	next.AddAssociatedPart(part)
	if !s.repo.ReplaceProduct(productID, next) {
		return nil, fmt.Errorf("%s: %w", op, model.ErrProductNotFound)
	}

	log.Info(ctx, "part associated")
	s.publish(ctx, model.ProductEvent(model.EventUpdated, next))
	return next, nil
}

// RemoveAssociatedPart drops the first association with partID. The part
// does not have to exist in the inventory any more.
func (s *service) RemoveAssociatedPart(ctx context.Context, productID, partID int) (*model.Product, error) {
	const op = "product.service.RemoveAssociatedPart"
	log := logger.With(
		logger.Int("product_id", productID),
		logger.Int("part_id", partID),
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.repo.ProductByID(productID)
	if !ok {
		log.Warn(ctx, "product not found")
		return nil, fmt.Errorf("%s: %w", op, model.ErrProductNotFound)
	}

	next := cur.Clone()
	removed := false
	for _, ap := range next.AssociatedParts() {
		if ap.ID() == partID {
			removed = next.DeleteAssociatedPart(ap)
			break
		}
	}
	if !removed {
		log.Warn(ctx, "part is not associated")
		return nil, fmt.Errorf("%s: %w", op, model.ErrAssociatedPartNotFound)
	}

	if !s.repo.ReplaceProduct(productID, next) {
		return nil, fmt.Errorf("%s: %w", op, model.ErrProductNotFound)
	}

	log.Info(ctx, "part disassociated")
	s.publish(ctx, model.ProductEvent(model.EventUpdated, next))
	return next, nil
}

// Delete refuses to remove a product that still has associated parts.
func (s *service) Delete(ctx context.Context, id int) error {
	const op = "product.service.Delete"
	log := logger.With(logger.Int("product_id", id))

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.repo.ProductByID(id)
	if !ok {
		log.Warn(ctx, "product not found")
		return fmt.Errorf("%s: %w", op, model.ErrProductNotFound)
	}

	if p.HasAssociatedParts() {
		log.Warn(ctx, "product has associated parts")
		return fmt.Errorf("%s: %w", op, errors.Join(
			model.ErrProductHasParts,
			errors.New("can't delete a product with associated parts"),
		))
	}

	if !s.repo.DeleteProduct(p) {
		return fmt.Errorf("%s: %w", op, model.ErrProductNotFound)
	}

	log.Info(ctx, "product deleted")
	s.publish(ctx, model.ProductEvent(model.EventDeleted, p))
	return nil
}

func (s *service) publish(ctx context.Context, e model.InventoryEvent) {
	if err := s.events.Send(ctx, e); err != nil {
		logger.Warn(ctx, "failed to publish inventory event",
			logger.String("type", string(e.Type)),
			logger.Int("product_id", e.EntityID),
			logger.ErrorF(err),
		)
	}
}

func (s *service) resolveParts(ids []int) ([]*model.Part, error) {
	parts := make([]*model.Part, 0, len(ids))
	for _, id := range ids {
		p, ok := s.partRepo.PartByID(id)
		if !ok {
			return nil, errors.Join(model.ErrPartNotFound, fmt.Errorf("part id %d", id))
		}
		parts = append(parts, p)
	}
	return parts, nil
}
