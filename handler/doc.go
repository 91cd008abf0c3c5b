// Package handler turns typed request handlers into http.HandlerFunc values.
//
// A HandlerFunc receives a Context and a request value already filled by the
// configured binders and returns a Response. Responses adapt to the caller:
// Datastar requests get SSE patches, regular browser requests get HTML.
//
//	mux.Post("/", handler.Wrap(submit,
//		handler.WithBinders(binder.Form()),
//		handler.WithErrorHandler(handler.NewErrorHandler(log, handler.ErrorHandlerConfig{})),
//	))
package handler
