package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alovak/magstripe/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestStructuredLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	r := chi.NewRouter()
	r.Use(middleware.NewStructuredLogger(logger))
	r.Post("/swipes", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short"))
	})

	body := "%B4242424242424242^SURNAME/FIRSTNAME I^1505?;4242424242424242=1505?"
	req := httptest.NewRequest(http.MethodPost, "/swipes", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := buf.String()
	require.Contains(t, out, `"msg":"request completed"`)
	require.Contains(t, out, `"status":418`)
	require.Contains(t, out, `"bytes":5`)
	require.Contains(t, out, `"path":"/swipes"`)
	require.NotContains(t, out, "4242424242424242")
}
