package readerclient_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alovak/magstripe/internal/readerclient"
	"github.com/alovak/magstripe/reader"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	reader.NewAPI(reader.NewService(reader.DefaultConfig(), nil), slog.New(slog.NewTextHandler(io.Discard, nil))).AppendRoutes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Decode(t *testing.T) {
	srv := newServer(t)
	cli := readerclient.New(srv.URL+"/", nil)

	res, err := cli.Decode(context.Background(), "%B5105105105105100^DOE/JANE^3012101?;5105105105105100=3012101?")
	require.NoError(t, err)
	require.Equal(t, "510510******5100", res.Account)
	require.Equal(t, "mastercard", res.Scheme)
	require.Equal(t, "JANE DOE", res.Name)
}

func TestClient_Rejected(t *testing.T) {
	srv := newServer(t)
	cli := readerclient.New(srv.URL, srv.Client())

	_, err := cli.Decode(context.Background(), "no tracks here")
	var rej *readerclient.RejectedError
	require.True(t, errors.As(err, &rej))
	require.Equal(t, "missing_tracks", rej.Kind)
	require.NotEmpty(t, rej.ID)
}

func TestClient_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := readerclient.New(srv.URL, nil).Decode(context.Background(), "x")
	require.ErrorContains(t, err, "status=502")
}
