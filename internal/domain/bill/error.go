package bill

import "errors"

var (
	ErrNotFound    = errors.New("bill not found")
	ErrInvalidData = errors.New("invalid bill")
)
