// Package binder fills request structs from HTTP input.
//
// Form binds urlencoded form posts and Signals binds the Datastar signal
// store. Both read the `form` struct tag, so a single request type works for
// full submissions and for live per-field updates:
//
//	type Request struct {
//		Email string `form:"email"`
//		Terms bool   `form:"acceptedTerms"`
//	}
//
//	handler.Wrap(h, handler.WithBinders[handler.Context, Request](
//		binder.Form(),
//	))
//
// Failures wrap ErrInvalidForm, ErrInvalidSignals, ErrMissingContentType or
// ErrUnsupportedMediaType; the handler package maps them to 400 responses.
package binder
