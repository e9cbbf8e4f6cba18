package domain

import "errors"

var (
	ErrInvalidID    = errors.New("invalid contact message id")
	ErrInvalidKind  = errors.New("invalid contact kind")
	ErrInvalidName  = errors.New("invalid contact name")
	ErrInvalidEmail = errors.New("invalid contact email")
	ErrInvalidBody  = errors.New("invalid contact body")
	ErrNotFound     = errors.New("contact message not found")
)
