package binder

import "errors"

var (
	// ErrBinderNotApplicable signals that the binder has nothing to read from the request.
	ErrBinderNotApplicable = errors.New("binder not applicable to this request")
	ErrInvalidQuery        = errors.New("failed to parse query parameters")
	ErrInvalidForm         = errors.New("failed to parse form data")
)
