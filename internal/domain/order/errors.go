package order

import "errors"

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrEmptyOrder        = errors.New("order must contain at least one item")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInsufficientStock = errors.New("insufficient stock for variant")
	ErrOrderNumberExists = errors.New("order number already exists")
)
