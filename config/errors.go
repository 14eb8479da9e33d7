package config

import "errors"

var (
	ErrInvalidConfig  = errors.New("invalid config")
	ErrUnknownBackend = errors.New("unknown store backend")
)
