package domain

import "errors"

var (
	ErrInvalidVariant = errors.New("invalid calculator variant")
	ErrNotFound       = errors.New("calculator result not found")
)
