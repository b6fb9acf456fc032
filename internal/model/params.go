package model

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// PartParams is the input for creating or modifying a part.
type PartParams struct {
	Name  string
	Price float64 `validate:"gte=0"`
	Stock int     `validate:"gtefield=Min,ltefield=Max"`
	Min   int     `validate:"ltefield=Max"`
	Max   int

	Kind        PartKind `validate:"oneof=1 2"`
	MachineID   *int     `validate:"required_if=Kind 1"`
	CompanyName string
}

// Build constructs the part variant selected by Kind. Call Validate first.
func (p PartParams) Build(id int) *Part {
	switch p.Kind {
	case PartKindInHouse:
		return NewInHouse(id, p.Name, p.Price, p.Stock, p.Min, p.Max, lo.FromPtr(p.MachineID))
	case PartKindOutsourced:
		return NewOutsourced(id, p.Name, p.Price, p.Stock, p.Min, p.Max, p.CompanyName)
	default:
		return nil
	}
}

func (p PartParams) Validate() error {
	return validationError(validate.Struct(p))
}

// ProductParams is the input for creating or modifying a product.
// PartIDs lists the associated parts in order.
type ProductParams struct {
	Name  string
	Price float64 `validate:"gte=0"`
	Stock int     `validate:"gtefield=Min,ltefield=Max"`
	Min   int     `validate:"ltefield=Max"`
	Max   int

	PartIDs []int
}

func (p ProductParams) Validate() error {
	return validationError(validate.Struct(p))
}

func validationError(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Join(ErrValidation, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}

	return errors.Join(ErrValidation, errors.New(strings.Join(lo.Uniq(msgs), "; ")))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "Price":
		return "Price must be a non-negative number."
	case "Min":
		return "Min must be less than max."
	case "Stock":
		return "Inventory must be between min and max."
	case "Kind":
		return "Part must be in-house or outsourced."
	case "MachineID":
		return "Machine ID must be an integer."
	default:
		return fe.Error()
	}
}
