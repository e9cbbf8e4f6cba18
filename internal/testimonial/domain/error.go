package domain

import "errors"

var (
	ErrInvalidID     = errors.New("invalid testimonial id")
	ErrInvalidAuthor = errors.New("invalid testimonial author")
	ErrInvalidQuote  = errors.New("invalid testimonial quote")
	ErrNotFound      = errors.New("testimonial not found")
)
