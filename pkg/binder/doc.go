// Package binder populates request structs from query strings and form
// bodies using struct tags.
//
//	type SearchRequest struct {
//	    Query string `query:"q" form:"q"`
//	}
//
// Binders return ErrBinderNotApplicable when the request carries nothing
// they can read (for example Form on a GET request) so handler.Wrap can
// chain them.
package binder
