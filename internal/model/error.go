package model

import "errors"

var (
	ErrValidation             = errors.New("validation error")
	ErrPartNotFound           = errors.New("part not found")
	ErrProductNotFound        = errors.New("product not found")
	ErrAssociatedPartNotFound = errors.New("part is not associated with product")
	ErrProductHasParts        = errors.New("product has associated parts")
)
