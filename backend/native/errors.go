package native

import "errors"

// Package errors for the native backend.
var (
	// ErrNilDevice is returned when the backend is created without a device or queue.
	ErrNilDevice = errors.New("native: HAL device or queue is nil")

	// ErrClosed is returned by operations on a closed backend.
	ErrClosed = errors.New("native: backend closed")

	// ErrUnsupportedDialect is returned for programs that are not WGSL.
	ErrUnsupportedDialect = errors.New("native: unsupported program dialect")

	// ErrInvalidParams is returned when video params cannot describe a frame.
	ErrInvalidParams = errors.New("native: invalid video params")

	// ErrUnsupportedFormat is returned when a frame cannot be converted to
	// the params' pixel format.
	ErrUnsupportedFormat = errors.New("native: unsupported pixel format")

	// ErrMissingBinding is returned when a program uniform has no value.
	ErrMissingBinding = errors.New("native: uniform has no binding")

	// ErrBindingKind is returned when a bound value does not match the
	// uniform's kind.
	ErrBindingKind = errors.New("native: binding kind mismatch")

	// ErrUnknownTexture is returned when a bound texture was not allocated
	// by this backend or was already released.
	ErrUnknownTexture = errors.New("native: unknown texture")
)
