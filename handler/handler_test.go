package handler_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/regform/handler"
	"github.com/dmitrymomot/regform/pkg/binder"
)

type greetRequest struct {
	Name string `form:"name"`
}

func text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func formRequest(body url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestWrap(t *testing.T) {
	t.Parallel()

	greet := handler.HandlerFunc[greetRequest](func(ctx handler.Context, req greetRequest) handler.Response {
		return handler.Templ(text("<p>hello " + req.Name + "</p>"))
	})

	t.Run("binds and renders", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		handler.Wrap(greet, handler.WithBinders(binder.Form()))(w, formRequest(url.Values{"name": {"Anna"}}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, "<p>hello Anna</p>", w.Body.String())
	})

	t.Run("binding error goes to error handler", func(t *testing.T) {
		t.Parallel()
		var got error
		h := handler.Wrap(greet,
			handler.WithBinders(binder.Form()),
			handler.WithErrorHandler(func(_ handler.Context, err error) { got = err }),
		)

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("name=x"))
		h(httptest.NewRecorder(), req)
		assert.ErrorIs(t, got, binder.ErrMissingContentType)
	})

	t.Run("default error handler maps binding errors", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		handler.Wrap(greet, handler.WithBinders(binder.Form()))(w, req)
		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	})

	t.Run("nil response", func(t *testing.T) {
		t.Parallel()
		nilHandler := handler.HandlerFunc[greetRequest](func(handler.Context, greetRequest) handler.Response { return nil })

		var got error
		h := handler.Wrap(nilHandler, handler.WithErrorHandler(func(_ handler.Context, err error) { got = err }))
		h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, got, handler.ErrNilResponse)
	})

	t.Run("render error", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		failing := handler.HandlerFunc[greetRequest](func(handler.Context, greetRequest) handler.Response {
			return handler.Templ(templ.ComponentFunc(func(context.Context, io.Writer) error { return boom }))
		})

		var got error
		h := handler.Wrap(failing, handler.WithErrorHandler(func(_ handler.Context, err error) { got = err }))
		h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		require.Error(t, got)
		assert.ErrorIs(t, got, boom)
	})

	t.Run("context exposes request", func(t *testing.T) {
		t.Parallel()
		var seen handler.Context
		probe := handler.HandlerFunc[greetRequest](func(ctx handler.Context, _ greetRequest) handler.Response {
			seen = ctx
			return handler.JSON("ok")
		})

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set(handler.DataStarRequestHeader, "true")
		handler.Wrap(probe)(httptest.NewRecorder(), req)

		require.NotNil(t, seen)
		assert.Equal(t, "/probe", seen.Request().URL.Path)
		assert.True(t, seen.IsDataStar())
		assert.NoError(t, seen.Err())
	})
}

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	plain := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.False(t, handler.IsDataStar(plain))

	header := httptest.NewRequest(http.MethodPost, "/", nil)
	header.Header.Set("Datastar-Request", "true")
	assert.True(t, handler.IsDataStar(header))

	accept := httptest.NewRequest(http.MethodGet, "/", nil)
	accept.Header.Set("Accept", "text/event-stream, application/json")
	assert.True(t, handler.IsDataStar(accept))

	query := httptest.NewRequest(http.MethodGet, "/?datastar=%7B%7D", nil)
	assert.True(t, handler.IsDataStar(query))
}
