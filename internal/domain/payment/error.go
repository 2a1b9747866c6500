package payment

import "errors"

var (
	ErrNotFound    = errors.New("payment not found")
	ErrInvalidData = errors.New("invalid payment")
)
