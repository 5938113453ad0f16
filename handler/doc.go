// Package handler provides type-safe HTTP handlers that bind requests into
// typed structs and return renderable responses.
//
// A HandlerFunc receives a Context and a bound request value and returns a
// Response. Wrap turns it into an http.HandlerFunc:
//
//	type SearchRequest struct {
//	    Query string `query:"q"`
//	}
//
//	r.Get("/books", handler.Wrap(svc.books,
//	    handler.WithBinders[handler.Context, SearchRequest](binder.Query()),
//	    handler.WithErrorHandler[handler.Context, SearchRequest](errHandler),
//	))
//
// TemplPartial renders templ components. For DataStar requests the
// partial patches are streamed as server-sent events so only the affected
// elements are replaced in the browser; regular requests receive the full page.
package handler
