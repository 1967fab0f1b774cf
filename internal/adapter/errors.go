package adapter

import "errors"

var (
	// ErrInvalidAddress is returned by [NewHTTPGateway] when the configured
	// backend address cannot be turned into a base URL.
	ErrInvalidAddress = errors.New("invalid adapter http address")
)
