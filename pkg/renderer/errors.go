package renderer

import "errors"

var (
	// ErrInterrupted is returned when a render is cancelled through its context
	ErrInterrupted = errors.New("renderer: interrupted while rendering")

	// ErrInvalidConfig is returned for negative tile sizes, pass counts or worker counts
	ErrInvalidConfig = errors.New("renderer: invalid progressive configuration")

	// ErrWorkerPoolClosed is returned when work is submitted after the pool was stopped
	ErrWorkerPoolClosed = errors.New("renderer: worker pool closed")
)
