package rowfilter

import (
	"errors"
	"fmt"
)

var (
	// ErrElementNotFound is returned when the search input or the table cannot be located.
	ErrElementNotFound = errors.New("element not found")

	// ErrInputNotFound is returned when the search input cannot be located.
	ErrInputNotFound = fmt.Errorf("search input: %w", ErrElementNotFound)

	// ErrTableNotFound is returned when the table cannot be located.
	ErrTableNotFound = fmt.Errorf("table: %w", ErrElementNotFound)
)
