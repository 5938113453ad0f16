package htmltable

import "errors"

var (
	// ErrParse is returned when the markup cannot be read.
	ErrParse = errors.New("failed to parse HTML document")
	// ErrRender is returned when the document cannot be written.
	ErrRender = errors.New("failed to render HTML document")
)
