package binder

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/starfederation/datastar-go/datastar"
)

// Signals binds the Datastar signal store sent with a request (query string
// for GET, JSON body otherwise) into the `form` tagged fields of a struct, so
// one request type serves both a classic form post and live validation.
//
// Scalar signals are converted to their string form before binding: numbers
// from number inputs arrive as JSON numbers, checkboxes as booleans. Nested
// objects and arrays are ignored.
func Signals() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		store := map[string]any{}
		if err := datastar.ReadSignals(r, &store); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSignals, err)
		}

		values := make(map[string][]string, len(store))
		for name, raw := range store {
			switch val := raw.(type) {
			case string:
				values[name] = []string{val}
			case bool:
				values[name] = []string{strconv.FormatBool(val)}
			case float64:
				values[name] = []string{strconv.FormatFloat(val, 'f', -1, 64)}
			}
		}

		return bindToStruct(v, "form", values, ErrInvalidSignals)
	}
}
