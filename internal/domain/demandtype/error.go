package demandtype

import "errors"

var (
	ErrNotFound    = errors.New("demand type not found")
	ErrInvalidData = errors.New("invalid demand type")
)
