// Package errors provides custom error types for catalog and cart operations.
package errors

import "errors"

var (
	ErrProductNotFound = errors.New("product not found")
	ErrCartNotFound    = errors.New("cart not found")

	// ErrInvalidProduct is returned when a product is created without one of its mandatory fields.
	ErrInvalidProduct  = errors.New("invalid product")
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")

	// ErrCorruptCollection is returned when a collection file exists but cannot be decoded.
	ErrCorruptCollection = errors.New("corrupt collection file")
)
