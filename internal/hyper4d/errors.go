package hyper4d

import "errors"

var (
	ErrShapeNotFound     = errors.New("shape not found")
	ErrUnknownColorMode  = errors.New("unknown color mode")
	ErrUnknownWSource    = errors.New("unknown w source")
	ErrUnknownComplexity = errors.New("unknown complexity")
	ErrInvalidDistance   = errors.New("projection distance must be > 0")
	ErrInvalidEdge       = errors.New("invalid edge")
	ErrInvalidResolution = errors.New("resolution must be positive")
)
