package countries

import "errors"

var (
	// ErrFetchFailed wraps transport-level failures of the catalog request.
	ErrFetchFailed = errors.New("countries: fetch failed")
	// ErrUnexpectedStatus is returned for non-2xx responses.
	ErrUnexpectedStatus = errors.New("countries: unexpected response status")
	// ErrMalformedPayload is returned when the body is not an array of country records.
	ErrMalformedPayload = errors.New("countries: malformed payload")
	// ErrCatalogClosed completes a load whose result arrived after Close.
	ErrCatalogClosed = errors.New("countries: catalog closed")
	// ErrNotLoaded is reported by Ready until a load has succeeded.
	ErrNotLoaded = errors.New("countries: catalog not loaded")
)
