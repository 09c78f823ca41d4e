package services

import "errors"

// Error kinds surfaced by the service layer. Handlers translate these to
// HTTP statuses with errors.Is; everything else is treated as an internal
// failure.
var (
	ErrNotFound          = errors.New("not found")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrInvalidState      = errors.New("invalid state")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrConflict          = errors.New("conflict")
	ErrUnavailable       = errors.New("unavailable")
)
