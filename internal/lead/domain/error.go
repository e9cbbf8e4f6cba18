package domain

import "errors"

var (
	ErrInvalidID         = errors.New("invalid lead id")
	ErrInvalidEmail      = errors.New("invalid lead email")
	ErrInvalidStatus     = errors.New("invalid lead status")
	ErrInvalidTransition = errors.New("invalid lead status transition")
	ErrNotFound          = errors.New("lead not found")
)
