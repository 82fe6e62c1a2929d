package product

import "errors"

var (
	ErrEmptyName     = errors.New("product name is empty")
	ErrNegativePrice = errors.New("price must not be negative")
)

const UnknownStore = "Unknown"
