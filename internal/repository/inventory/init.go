package repository

import (
	"github.com/samber/lo"

	"github.com/you-humble/parts-inventory/internal/model"
)

type Seeder interface {
	NextID() int
	AddPart(p *model.Part)
	AddProduct(p *model.Product)
}

// Bootstrap fills an empty inventory with sample parts and products. Ids are
// taken from the shared counter, so it must run before any other insert for
// the ids to start at 1.
func Bootstrap(s Seeder) {
	parts := []func(id int) *model.Part{
		func(id int) *model.Part { return model.NewInHouse(id, "Brakes", 15.00, 10, 1, 50, 101) },
		func(id int) *model.Part { return model.NewInHouse(id, "Wheel", 11.00, 16, 2, 40, 102) },
		func(id int) *model.Part { return model.NewOutsourced(id, "Seat", 15.00, 10, 1, 20, "Saddle Works") },
		func(id int) *model.Part { return model.NewOutsourced(id, "Chain", 9.50, 25, 5, 60, "Link & Co") },
	}

	created := lo.Map(parts, func(build func(int) *model.Part, _ int) *model.Part {
		p := build(s.NextID())
		s.AddPart(p)
		return p
	})

	bike := model.NewProduct(s.NextID(), "Giant Bike", 299.99, 5, 1, 10)
	for _, p := range created {
		bike.AddAssociatedPart(p)
	}
	s.AddProduct(bike)

	tricycle := model.NewProduct(s.NextID(), "Tricycle", 99.99, 3, 1, 10)
	s.AddProduct(tricycle)
}
