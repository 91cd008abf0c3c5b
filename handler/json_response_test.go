package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/regform/handler"
	"github.com/dmitrymomot/regform/pkg/validator"
)

func renderJSON(t *testing.T, resp handler.Response) (*httptest.ResponseRecorder, handler.JSONResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	require.NoError(t, resp.Render(w, httptest.NewRequest(http.MethodGet, "/", nil)))

	var body handler.JSONResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("data envelope", func(t *testing.T) {
		t.Parallel()
		w, body := renderJSON(t, handler.JSON([]string{"Poland"}, handler.WithJSONMeta(map[string]any{"count": 1})))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, []any{"Poland"}, body.Data)
		assert.EqualValues(t, 1, body.Meta["count"])
		assert.Nil(t, body.Error)
	})

	t.Run("custom status", func(t *testing.T) {
		t.Parallel()
		w, _ := renderJSON(t, handler.JSON(map[string]string{"id": "x"}, handler.WithJSONStatus(http.StatusCreated)))
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("validation errors", func(t *testing.T) {
		t.Parallel()
		err := validator.ValidationErrors{
			{Field: "email", Message: "Enter a valid email address."},
		}
		w, body := renderJSON(t, handler.JSON(fmt.Errorf("submit: %w", err)))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		require.NotNil(t, body.Error)
		assert.Equal(t, "validation_error", body.Error.Code)
		assert.Equal(t, []string{"Enter a valid email address."}, body.Error.Details["email"])
	})

	t.Run("http error", func(t *testing.T) {
		t.Parallel()
		w, body := renderJSON(t, handler.JSONError(handler.ErrNotFound))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "not_found", body.Error.Code)
	})

	t.Run("internal error hides details", func(t *testing.T) {
		t.Parallel()
		w, body := renderJSON(t, handler.JSONError(errors.New("db password is hunter2")))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "internal_error", body.Error.Code)
		assert.NotContains(t, body.Error.Message, "hunter2")
	})
}
