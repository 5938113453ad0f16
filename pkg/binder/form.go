package binder

import (
	"fmt"
	"mime"
	"net/http"
)

// Form binds application/x-www-form-urlencoded bodies to fields tagged with
// `form:"name"`. Requests with any other content type are not applicable.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "application/x-www-form-urlencoded" {
			return ErrBinderNotApplicable
		}
		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		return bindToStruct(v, "form", r.PostForm, ErrInvalidForm)
	}
}
