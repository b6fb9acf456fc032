package service

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/parts-inventory/internal/model"
	"github.com/you-humble/parts-inventory/internal/service/mocks"
	"github.com/you-humble/parts-inventory/platform/logger"
)

type deps struct {
	repository *mocks.MockProductRepository
	parts      *mocks.MockPartFinder
	events     *mocks.MockEventSender
}

func newDeps(t *testing.T) deps {
	d := deps{
		repository: mocks.NewMockProductRepository(t),
		parts:      mocks.NewMockPartFinder(t),
		events:     mocks.NewMockEventSender(t),
	}
	d.events.On("Send", mock.Anything, mock.Anything).Return(nil).Maybe()
	return d
}

func newSvc(d deps) *service {
	return NewProductService(d.repository, d.parts, d.events)
}

func sentEvent(typ model.EventType, id int) any {
	return mock.MatchedBy(func(e model.InventoryEvent) bool {
		return e.Type == typ && e.Entity == model.EntityProduct && e.EntityID == id
	})
}

func validParams(partIDs ...int) model.ProductParams {
	return model.ProductParams{
		Name:    gofakeit.ProductName(),
		Price:   gofakeit.Price(10, 500),
		Stock:   3,
		Min:     1,
		Max:     10,
		PartIDs: partIDs,
	}
}

func TestServiceCreate(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	wheel := model.NewInHouse(1, "Wheel", 5, 4, 1, 10, 9)
	seat := model.NewOutsourced(2, "Seat", 12, 2, 1, 5, "Acme")

	badRange := validParams()
	badRange.Stock = 0

	type testCase struct {
		name   string
		params model.ProductParams
		setup  func(d deps)
		assert func(t *testing.T, res *model.Product, err error, d deps)
	}

	tests := []testCase{
		{
			name:   "validation error: stock below min",
			params: badRange,
			assert: func(t *testing.T, res *model.Product, err error, d deps) {
				require.ErrorIs(t, err, model.ErrValidation)
				assert.ErrorContains(t, err, "Inventory must be between min and max.")
				assert.Nil(t, res)
				d.repository.AssertNotCalled(t, "AddProduct", mock.Anything)
			},
		},
		{
			name:   "unknown associated part",
			params: validParams(1, 42),
			setup: func(d deps) {
				d.parts.On("PartByID", 1).Return(wheel, true).Once()
				d.parts.On("PartByID", 42).Return((*model.Part)(nil), false).Once()
			},
			assert: func(t *testing.T, res *model.Product, err error, d deps) {
				require.ErrorIs(t, err, model.ErrPartNotFound)
				assert.ErrorContains(t, err, "part id 42")
				assert.Nil(t, res)
				d.repository.AssertNotCalled(t, "NextID")
			},
		},
		{
			name:   "success: parts attached in order",
			params: validParams(2, 1, 2),
			setup: func(d deps) {
				d.parts.On("PartByID", 1).Return(wheel, true).Once()
				d.parts.On("PartByID", 2).Return(seat, true).Twice()
				d.repository.On("NextID").Return(5).Once()
				d.repository.
					On("AddProduct", mock.MatchedBy(func(p *model.Product) bool { return p.ID() == 5 })).
					Return().
					Once()
			},
			assert: func(t *testing.T, res *model.Product, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, 5, res.ID())
				assert.Equal(t, []*model.Part{seat, wheel, seat}, res.AssociatedParts())
				d.events.AssertCalled(t, "Send", mock.Anything, sentEvent(model.EventCreated, 5))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			if tt.setup != nil {
				tt.setup(d)
			}

			res, err := newSvc(d).Create(context.Background(), tt.params)
			tt.assert(t, res, err, d)
		})
	}
}

func TestServiceUpdate(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	wheel := model.NewInHouse(1, "Wheel", 5, 4, 1, 10, 9)

	t.Run("success: rebuilds with same id", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.parts.On("PartByID", 1).Return(wheel, true).Once()
		d.repository.
			On("ReplaceProduct", 9, mock.MatchedBy(func(p *model.Product) bool {
				return p.ID() == 9 && len(p.AssociatedParts()) == 1
			})).
			Return(true).
			Once()

		res, err := newSvc(d).Update(context.Background(), 9, validParams(1))
		require.NoError(t, err)
		assert.Equal(t, 9, res.ID())
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.repository.On("ReplaceProduct", 9, mock.Anything).Return(false).Once()

		res, err := newSvc(d).Update(context.Background(), 9, validParams())
		require.ErrorIs(t, err, model.ErrProductNotFound)
		assert.Nil(t, res)
	})
}

func TestServiceAssociatedParts(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	wheel := model.NewInHouse(1, "Wheel", 5, 4, 1, 10, 9)

	t.Run("add: copies product and replaces it", func(t *testing.T) {
		t.Parallel()

		bike := model.NewProduct(3, "Bike", 150, 1, 0, 3)

		d := newDeps(t)
		d.parts.On("PartByID", 1).Return(wheel, true).Once()
		d.repository.On("ProductByID", 3).Return(bike, true).Once()
		d.repository.
			On("ReplaceProduct", 3, mock.MatchedBy(func(p *model.Product) bool { return p != bike })).
			Return(true).
			Once()

		res, err := newSvc(d).AddAssociatedPart(context.Background(), 3, 1)
		require.NoError(t, err)
		assert.Equal(t, []*model.Part{wheel}, res.AssociatedParts())
		assert.Empty(t, bike.AssociatedParts(), "stored product must not be mutated in place")
	})

	t.Run("add: unknown part", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.parts.On("PartByID", 7).Return((*model.Part)(nil), false).Once()

		_, err := newSvc(d).AddAssociatedPart(context.Background(), 3, 7)
		require.ErrorIs(t, err, model.ErrPartNotFound)
		d.repository.AssertNotCalled(t, "ProductByID", mock.Anything)
	})

	t.Run("add: unknown product", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.parts.On("PartByID", 1).Return(wheel, true).Once()
		d.repository.On("ProductByID", 3).Return((*model.Product)(nil), false).Once()

		_, err := newSvc(d).AddAssociatedPart(context.Background(), 3, 1)
		require.ErrorIs(t, err, model.ErrProductNotFound)
	})

	t.Run("remove: then remove again", func(t *testing.T) {
		t.Parallel()

		bike := model.NewProduct(3, "Bike", 150, 1, 0, 3)
		bike.AddAssociatedPart(wheel)

		d := newDeps(t)
		d.repository.On("ProductByID", 3).Return(bike, true).Once()
		d.repository.On("ReplaceProduct", 3, mock.Anything).Return(true).Once()

		svc := newSvc(d)
		res, err := svc.RemoveAssociatedPart(context.Background(), 3, 1)
		require.NoError(t, err)
		assert.Empty(t, res.AssociatedParts())

		d.repository.On("ProductByID", 3).Return(res, true).Once()
		_, err = svc.RemoveAssociatedPart(context.Background(), 3, 1)
		require.ErrorIs(t, err, model.ErrAssociatedPartNotFound)
	})
}

func TestServiceDelete(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	type testCase struct {
		name   string
		setup  func(d deps)
		assert func(t *testing.T, err error, d deps)
	}

	empty := model.NewProduct(4, "Tricycle", 99, 1, 0, 3)
	withParts := model.NewProduct(5, "Bike", 150, 1, 0, 3)
	withParts.AddAssociatedPart(model.NewInHouse(1, "Wheel", 5, 4, 1, 10, 9))

	tests := []testCase{
		{
			name: "not found",
			setup: func(d deps) {
				d.repository.On("ProductByID", 4).Return((*model.Product)(nil), false).Once()
			},
			assert: func(t *testing.T, err error, d deps) {
				require.ErrorIs(t, err, model.ErrProductNotFound)
			},
		},
		{
			name: "refuses product with parts",
			setup: func(d deps) {
				d.repository.On("ProductByID", 4).Return(withParts, true).Once()
			},
			assert: func(t *testing.T, err error, d deps) {
				require.ErrorIs(t, err, model.ErrProductHasParts)
				d.repository.AssertNotCalled(t, "DeleteProduct", mock.Anything)
				d.events.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
			},
		},
		{
			name: "success",
			setup: func(d deps) {
				d.repository.On("ProductByID", 4).Return(empty, true).Once()
				d.repository.On("DeleteProduct", empty).Return(true).Once()
			},
			assert: func(t *testing.T, err error, d deps) {
				require.NoError(t, err)
				d.events.AssertCalled(t, "Send", mock.Anything, sentEvent(model.EventDeleted, 4))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			tt.setup(d)

			err := newSvc(d).Delete(context.Background(), 4)
			tt.assert(t, err, d)
		})
	}
}

func TestServiceSearch(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	bike := model.NewProduct(3, "Giant Bike", 150, 1, 0, 3)

	d := newDeps(t)
	d.repository.On("ProductByID", 3).Return(bike, true).Once()
	d.repository.On("ProductsByName", "giant").Return([]*model.Product{bike}).Once()
	d.repository.On("Products").Return([]*model.Product{bike}).Once()

	svc := newSvc(d)

	res, err := svc.Search(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, []*model.Product{bike}, res)

	res, err = svc.Search(context.Background(), "giant")
	require.NoError(t, err)
	assert.Equal(t, []*model.Product{bike}, res)

	res, err = svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []*model.Product{bike}, res)
}
