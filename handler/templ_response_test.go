package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/regform/handler"
)

func datastarRequest() *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Datastar-Request", "true")
	return req
}

func TestTempl(t *testing.T) {
	t.Parallel()

	t.Run("html with status", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		err := handler.Templ(text("<form></form>")).WithStatus(http.StatusUnprocessableEntity).
			Render(w, httptest.NewRequest(http.MethodPost, "/", nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "<form></form>", w.Body.String())
	})

	t.Run("datastar patch with target", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		err := handler.Templ(text(`<span id="email-error">bad</span>`), handler.WithTarget("#email-error")).
			WithStatus(http.StatusUnprocessableEntity).
			Render(w, datastarRequest())

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/event-stream")
		body := w.Body.String()
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "#email-error")
		assert.Contains(t, body, `<span id="email-error">bad</span>`)
	})

	t.Run("partial vs full", func(t *testing.T) {
		t.Parallel()
		resp := handler.TemplPartial(text("<div>fragment</div>"), text("<html>page</html>"))

		w := httptest.NewRecorder()
		require.NoError(t, resp.Render(w, httptest.NewRequest(http.MethodGet, "/", nil)))
		assert.Equal(t, "<html>page</html>", w.Body.String())

		w = httptest.NewRecorder()
		require.NoError(t, resp.Render(w, datastarRequest()))
		assert.Contains(t, w.Body.String(), "<div>fragment</div>")
		assert.NotContains(t, w.Body.String(), "page")
	})

	t.Run("multi", func(t *testing.T) {
		t.Parallel()
		resp := handler.TemplMulti(
			handler.Patch(text("<p id=\"a\">A</p>"), handler.WithTarget("#a")),
			handler.Patch(text("<p id=\"b\">B</p>"), handler.WithTarget("#b"), handler.WithPatchMode(handler.PatchInner)),
		)

		w := httptest.NewRecorder()
		require.NoError(t, resp.Render(w, datastarRequest()))
		body := w.Body.String()
		assert.Contains(t, body, "#a")
		assert.Contains(t, body, "#b")
		assert.Less(t, strings.Index(body, "A</p>"), strings.Index(body, "B</p>"))

		w = httptest.NewRecorder()
		require.NoError(t, resp.Render(w, httptest.NewRequest(http.MethodGet, "/", nil)))
		assert.Equal(t, `<p id="a">A</p><p id="b">B</p>`, w.Body.String())
	})
}
