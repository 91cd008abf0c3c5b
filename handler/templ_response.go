package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// TemplComponent matches github.com/a-h/templ.Component.
type TemplComponent interface {
	Render(ctx context.Context, w io.Writer) error
}

// TemplOption is an alias for datastar's PatchElementOption.
type TemplOption = datastar.PatchElementOption

// WithTarget sets the selector of the element a component patches.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the component is merged into the DOM.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// TemplPatch is a component with its own patch options.
type TemplPatch struct {
	Component TemplComponent
	Options   []TemplOption
}

// Patch creates a TemplPatch for TemplMulti.
func Patch(component TemplComponent, opts ...TemplOption) TemplPatch {
	return TemplPatch{Component: component, Options: opts}
}

// TemplResponse renders templ components. Datastar requests receive one SSE
// patch per component; regular requests receive HTML.
type TemplResponse struct {
	patches []TemplPatch
	full    TemplComponent
	status  int
}

// Templ renders a single component in both modes.
//
//	return handler.Templ(views.FieldError(field, msg), handler.WithTarget("#email-error"))
func Templ(component TemplComponent, opts ...TemplOption) *TemplResponse {
	return &TemplResponse{
		patches: []TemplPatch{Patch(component, opts...)},
		full:    component,
	}
}

// TemplPartial patches partial for Datastar requests and renders full for
// regular requests, typically a fragment and the page that contains it.
func TemplPartial(partial, full TemplComponent, opts ...TemplOption) *TemplResponse {
	return &TemplResponse{
		patches: []TemplPatch{Patch(partial, opts...)},
		full:    full,
	}
}

// TemplMulti sends several patches in one stream. Regular requests receive
// the components concatenated in order.
func TemplMulti(patches ...TemplPatch) *TemplResponse {
	return &TemplResponse{patches: patches}
}

// WithStatus sets the status code of a regular HTML response. SSE streams
// always answer 200.
func (t *TemplResponse) WithStatus(code int) *TemplResponse {
	t.status = code
	return t
}

func (t *TemplResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		for _, p := range t.patches {
			if err := sse.PatchElementTempl(p.Component, p.Options...); err != nil {
				return err
			}
		}
		return nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 {
		w.WriteHeader(t.status)
	}

	if t.full != nil {
		return t.full.Render(r.Context(), w)
	}
	for _, p := range t.patches {
		if err := p.Component.Render(r.Context(), w); err != nil {
			return err
		}
	}
	return nil
}
