package registration

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/regform/handler"
	"github.com/dmitrymomot/regform/svc/countries"
)

// DatastarScriptURL is the client bundle loaded by the default page layout.
var DatastarScriptURL = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"

const (
	formElementID  = "registration-form"
	toastElementID = "toast-container"
)

// PageParams contains data for rendering the page layout.
type PageParams struct {
	Title   string
	Content templ.Component
}

// FormParams contains data for rendering the form.
type FormParams struct {
	Action      string
	ValidateURL string
	Values      FormValues
	// Errors maps a field key to its message. Fields without an entry render
	// an empty error slot.
	Errors    map[string]string
	Countries []countries.Entry
}

// FieldErrorParams contains data for rendering one field's error slot.
type FieldErrorParams struct {
	Field   string
	Message string
}

// SuccessParams contains data for rendering the confirmation.
type SuccessParams struct {
	FirstName string
	Email     string
}

// Views are the components the service renders. Replace any of them to
// restyle the form; DefaultViews provides plain HTML.
type Views struct {
	Page       func(PageParams) templ.Component
	Form       func(FormParams) templ.Component
	FieldError func(FieldErrorParams) templ.Component
	Success    func(SuccessParams) templ.Component
	ErrorPage  func(handler.ErrorPageParams) templ.Component
	ErrorToast func(handler.ErrorToastParams) templ.Component
}

// DefaultViews returns the built-in components.
func DefaultViews() *Views {
	return &Views{
		Page:       pageView,
		Form:       formView,
		FieldError: fieldErrorView,
		Success:    successView,
		ErrorPage:  errorPageView,
		ErrorToast: errorToastView,
	}
}

func (v *Views) withDefaults() *Views {
	d := DefaultViews()
	if v == nil {
		return d
	}
	out := *v
	if out.Page == nil {
		out.Page = d.Page
	}
	if out.Form == nil {
		out.Form = d.Form
	}
	if out.FieldError == nil {
		out.FieldError = d.FieldError
	}
	if out.Success == nil {
		out.Success = d.Success
	}
	if out.ErrorPage == nil {
		out.ErrorPage = d.ErrorPage
	}
	if out.ErrorToast == nil {
		out.ErrorToast = d.ErrorToast
	}
	return &out
}

// FieldErrorID is the element id of a field's error slot.
func FieldErrorID(field string) string {
	return field + "-error"
}

// htmlWriter stops writing after the first error.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) attr(name, value string) {
	h.raw(" " + name + `="`)
	h.text(value)
	h.raw(`"`)
}

func (h *htmlWriter) component(ctx context.Context, c templ.Component) {
	if h.err == nil && c != nil {
		h.err = c.Render(ctx, h.w)
	}
}

func pageView(p PageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>`)
		h.text(p.Title)
		h.raw(`</title><script type="module"`)
		h.attr("src", DatastarScriptURL)
		h.raw(`></script></head><body><main><h1>`)
		h.text(p.Title)
		h.raw(`</h1><div`)
		h.attr("id", toastElementID)
		h.raw(`></div>`)
		h.component(ctx, p.Content)
		h.raw(`</main></body></html>`)
		return h.err
	})
}

func signalsJSON(v FormValues) string {
	// Passwords are never echoed back into the page.
	v.Password = ""
	v.PasswordConfirm = ""
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func formView(p FormParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		live := func(field string) {
			h.attr("data-bind", field)
			h.attr("data-on:change", fmt.Sprintf("@post('%s%s')", p.ValidateURL, field))
		}
		slot := func(field string) {
			h.component(ctx, fieldErrorView(FieldErrorParams{Field: field, Message: p.Errors[field]}))
		}
		input := func(field, label, typ, value string) {
			h.raw(`<div class="field"><label`)
			h.attr("for", field)
			h.raw(`>`)
			h.text(label)
			h.raw(`</label><input`)
			h.attr("id", field)
			h.attr("name", field)
			h.attr("type", typ)
			if typ != "password" {
				h.attr("value", value)
			}
			live(field)
			h.raw(`>`)
			slot(field)
			h.raw(`</div>`)
		}

		h.raw(`<form`)
		h.attr("id", formElementID)
		h.attr("method", "post")
		h.attr("action", p.Action)
		h.attr("data-signals", signalsJSON(p.Values))
		h.attr("data-on:submit", fmt.Sprintf("@post('%s')", p.Action))
		h.raw(` novalidate>`)

		input(FieldFirstName, "First name", "text", p.Values.FirstName)
		input(FieldLastName, "Last name", "text", p.Values.LastName)
		input(FieldEmail, "Email", "email", p.Values.Email)
		input(FieldPassword, "Password", "password", "")
		input(FieldPasswordConfirm, "Confirm password", "password", "")
		input(FieldAge, "Age", "number", p.Values.Age)
		input(FieldBirthDate, "Birth date", "date", p.Values.BirthDate)

		h.raw(`<div class="field"><label for="country">Country</label><select id="country" name="country"`)
		live(FieldCountry)
		h.raw(`><option value="">Select a country...</option>`)
		for _, c := range p.Countries {
			h.raw(`<option`)
			h.attr("value", c.Name)
			h.attr("data-flag", c.FlagURL)
			if c.Name == p.Values.Country {
				h.raw(` selected`)
			}
			h.raw(`>`)
			h.text(c.Name)
			h.raw(`</option>`)
		}
		h.raw(`</select>`)
		slot(FieldCountry)
		h.raw(`</div>`)

		h.raw(`<div class="field"><label for="gender">Gender</label><select id="gender" name="gender"`)
		live(FieldGender)
		h.raw(`><option value=""></option>`)
		for _, g := range Genders {
			h.raw(`<option`)
			h.attr("value", g)
			if g == p.Values.Gender {
				h.raw(` selected`)
			}
			h.raw(`>`)
			h.text(g)
			h.raw(`</option>`)
		}
		h.raw(`</select>`)
		slot(FieldGender)
		h.raw(`</div>`)

		h.raw(`<div class="field"><label><input id="acceptedTerms" name="acceptedTerms" type="checkbox"`)
		live(FieldAcceptedTerms)
		if p.Values.AcceptedTerms {
			h.raw(` checked`)
		}
		h.raw(`> I accept the terms and conditions</label>`)
		slot(FieldAcceptedTerms)
		h.raw(`</div><button type="submit">Register</button></form>`)
		return h.err
	})
}

func fieldErrorView(p FieldErrorParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<p`)
		h.attr("id", FieldErrorID(p.Field))
		h.raw(` class="field-error">`)
		h.text(p.Message)
		h.raw(`</p>`)
		return h.err
	})
}

func successView(p SuccessParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<div`)
		h.attr("id", formElementID)
		h.raw(` class="success"><h2>Thank you, `)
		h.text(p.FirstName)
		h.raw(`!</h2><p>Your registration for `)
		h.text(p.Email)
		h.raw(` has been received.</p></div>`)
		return h.err
	})
}

func errorPageView(p handler.ErrorPageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		content := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
			h := &htmlWriter{w: w}
			h.raw(`<div class="error"><p>`)
			h.text(p.Error)
			h.raw(`</p><p class="status">`)
			h.text(strconv.Itoa(p.StatusCode))
			if p.RequestID != "" {
				h.raw(` &middot; request `)
				h.text(p.RequestID)
			}
			h.raw(`</p><a`)
			h.attr("href", p.RetryURL)
			h.raw(`>Try again</a></div>`)
			return h.err
		})
		return pageView(PageParams{Title: "Something went wrong", Content: content}).Render(ctx, w)
	})
}

func errorToastView(p handler.ErrorToastParams) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<div`)
		h.attr("class", "toast toast-"+p.Type)
		h.raw(`>`)
		h.text(p.Message)
		h.raw(`</div>`)
		return h.err
	})
}
