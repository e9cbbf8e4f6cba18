package oauth

import "errors"

var (
	ErrProviderNotFound = errors.New("oauth provider not found")
	ErrInvalidProvider  = errors.New("oauth provider misconfigured")
	ErrInvalidRequest   = errors.New("invalid oauth request")
	ErrUnauthorized     = errors.New("oauth exchange unauthorized")
	ErrMissingEmail     = errors.New("oauth identity missing email")
)
