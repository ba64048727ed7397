package apitype

import "errors"

var (
	ErrNilScaling     = errors.New("scaling cannot be nil")
	ErrUnknownScaling = errors.New("unknown scaling")
	ErrUnknownAlign   = errors.New("unknown align")
)
