package branch

import "errors"

var (
	ErrNotFound    = errors.New("branch not found")
	ErrInvalidData = errors.New("invalid branch")
)
