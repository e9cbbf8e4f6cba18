package domain

import "errors"

var (
	ErrInvalidPath  = errors.New("invalid page path")
	ErrInvalidRange = errors.New("invalid date range")
)
