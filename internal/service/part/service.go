package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/you-humble/parts-inventory/internal/model"
	"github.com/you-humble/parts-inventory/platform/logger"
)

type PartRepository interface {
	NextID() int
	AddPart(p *model.Part)
	PartByID(id int) (*model.Part, bool)
	PartsByName(query string) []*model.Part
	ReplacePart(id int, p *model.Part) bool
	DeletePart(p *model.Part) bool
	Parts() []*model.Part
}

type EventSender interface {
	Send(ctx context.Context, event model.InventoryEvent) error
}

type service struct {
	// Serializes lookup-then-write sequences against the repository.
	mu     sync.Mutex
	repo   PartRepository
	events EventSender
}

func NewPartService(repo PartRepository, events EventSender) *service {
	return &service{repo: repo, events: events}
}

func (s *service) Create(ctx context.Context, params model.PartParams) (*model.Part, error) {
	const op = "part.service.Create"
	log := logger.With(
		logger.String("name", params.Name),
		logger.String("kind", params.Kind.String()),
	)

	if err := params.Validate(); err != nil {
		log.Warn(ctx, "validation failed", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := params.Build(s.repo.NextID())
	s.repo.AddPart(p)

	log.Info(ctx, "part created", logger.Int("part_id", p.ID()))
	s.publish(ctx, model.PartEvent(model.EventCreated, p))
	return p, nil
}

// Update replaces the part with the given id, keeping the id. The variant
// may change.
func (s *service) Update(ctx context.Context, id int, params model.PartParams) (*model.Part, error) {
	const op = "part.service.Update"
	log := logger.With(logger.Int("part_id", id))

	if err := params.Validate(); err != nil {
		log.Warn(ctx, "validation failed", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := params.Build(id)
	if !s.repo.ReplacePart(id, p) {
		log.Warn(ctx, "part not found")
		return nil, fmt.Errorf("%s: %w", op, model.ErrPartNotFound)
	}

	log.Info(ctx, "part updated")
	s.publish(ctx, model.PartEvent(model.EventUpdated, p))
	return p, nil
}

func (s *service) Part(ctx context.Context, id int) (*model.Part, error) {
	const op = "part.service.Part"

	p, ok := s.repo.PartByID(id)
	if !ok {
		logger.Debug(ctx, "part not found", logger.Int("part_id", id))
		return nil, fmt.Errorf("%s: %w", op, model.ErrPartNotFound)
	}
	return p, nil
}

func (s *service) List(_ context.Context) ([]*model.Part, error) {
	return s.repo.Parts(), nil
}

// Search treats an integer query as an id and anything else as a name
// fragment. A miss is an empty result, not an error.
func (s *service) Search(ctx context.Context, query string) ([]*model.Part, error) {
	query = strings.TrimSpace(query)

	if id, err := strconv.Atoi(query); err == nil {
		p, ok := s.repo.PartByID(id)
		if !ok {
			return []*model.Part{}, nil
		}
		return []*model.Part{p}, nil
	}

	res := s.repo.PartsByName(query)
	logger.Debug(ctx, "parts search",
		logger.String("query", query),
		logger.Int("found", len(res)),
	)
	return res, nil
}

// Delete removes the part from the inventory. Products that reference it are
// left as they are.
func (s *service) Delete(ctx context.Context, id int) error {
	const op = "part.service.Delete"
	log := logger.With(logger.Int("part_id", id))

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.repo.PartByID(id)
	if !ok || !s.repo.DeletePart(p) {
		log.Warn(ctx, "part not found")
		return fmt.Errorf("%s: %w", op, model.ErrPartNotFound)
	}

	log.Info(ctx, "part deleted")
	s.publish(ctx, model.PartEvent(model.EventDeleted, p))
	return nil
}

// publish never fails the operation: the store is already updated.
func (s *service) publish(ctx context.Context, e model.InventoryEvent) {
	if err := s.events.Send(ctx, e); err != nil {
		logger.Warn(ctx, "failed to publish inventory event",
			logger.String("type", string(e.Type)),
			logger.Int("part_id", e.EntityID),
			logger.ErrorF(err),
		)
	}
}
