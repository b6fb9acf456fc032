package model

// Product is a sellable item made of zero or more parts. Associated parts are
// references to parts owned by the inventory; removing a part from the
// inventory leaves it here.
//
// A Product is not safe for concurrent mutation.
type Product struct {
	id int

	Name  string
	Price float64
	Stock int
	Min   int
	Max   int

	associatedParts []*Part
}

func NewProduct(id int, name string, price float64, stock, min, max int) *Product {
	return &Product{
		id:    id,
		Name:  name,
		Price: price,
		Stock: stock,
		Min:   min,
		Max:   max,
	}
}

func (p *Product) ID() int { return p.id }

// AddAssociatedPart appends part. The same part may be added more than once.
func (p *Product) AddAssociatedPart(part *Part) {
	p.associatedParts = append(p.associatedParts, part)
}

// DeleteAssociatedPart removes the first reference to part.
func (p *Product) DeleteAssociatedPart(part *Part) bool {
	for i, ap := range p.associatedParts {
		if ap == part {
			p.associatedParts = append(p.associatedParts[:i:i], p.associatedParts[i+1:]...)
			return true
		}
	}
	return false
}

// AssociatedParts returns a copy of the list; changing it does not change p.
func (p *Product) AssociatedParts() []*Part {
	out := make([]*Part, len(p.associatedParts))
	copy(out, p.associatedParts)
	return out
}

func (p *Product) HasAssociatedParts() bool { return len(p.associatedParts) > 0 }

// Clone copies the product and its associated list. Parts are shared.
func (p *Product) Clone() *Product {
	cp := *p
	cp.associatedParts = p.AssociatedParts()
	return &cp
}
