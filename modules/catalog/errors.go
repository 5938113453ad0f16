package catalog

import "errors"

var (
	// ErrListFailed is returned when a listing cannot be loaded from storage.
	ErrListFailed = errors.New("failed to load catalog listing")
)
