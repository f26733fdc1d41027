package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrInvalidConfig  = goerr.New("invalid grid configuration")
	ErrMalformedInput = goerr.New("malformed annotation")
)
