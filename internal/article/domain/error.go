package domain

import "errors"

var (
	ErrInvalidID    = errors.New("invalid article id")
	ErrInvalidTitle = errors.New("invalid article title")
	ErrInvalidBody  = errors.New("invalid article body")
	ErrSlugTaken    = errors.New("article slug already exists")
	ErrNotFound     = errors.New("article not found")
)
