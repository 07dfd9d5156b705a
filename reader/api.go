package reader

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/alovak/magstripe/internal/pan"
	"github.com/alovak/magstripe/magstripe"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

// maxSwipeBytes is far above the 79+40 characters of tracks 1 and 2.
const maxSwipeBytes = 4 << 10

// API is a HTTP API for decoding swipes
type API struct {
	reader *Service
	logger *slog.Logger
}

func NewAPI(reader *Service, logger *slog.Logger) *API {
	return &API{
		reader: reader,
		logger: logger,
	}
}

func (a *API) AppendRoutes(r chi.Router) {
	r.Post("/swipes", a.decodeSwipe)
}

// DecodeRequest is the JSON body accepted by POST /swipes.
type DecodeRequest struct {
	Swipe string `json:"swipe"`
}

// ErrorResponse is returned with 422 when a swipe cannot be decoded.
type ErrorResponse struct {
	ID    string `json:"id"`
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// decodeSwipe accepts either {"swipe": "..."} or the raw swipe as text/plain,
// which is what a keyboard wedge forwarder posts.
func (a *API) decodeSwipe(w http.ResponseWriter, r *http.Request) {
	raw, err := readSwipe(w, r)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "swipe too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := a.reader.Decode(raw)
	if err != nil {
		var pe *magstripe.ParseError
		if !errors.As(err, &pe) {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		a.logger.Info("swipe rejected",
			slog.String("id", res.ID),
			slog.String("kind", pe.Kind.String()),
			slog.Int("track", pe.Track),
		)
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			ID:    res.ID,
			Error: pe.Error(),
			Kind:  pe.Kind.String(),
		})
		return
	}

	a.logger.Info("swipe decoded",
		slog.String("id", res.ID),
		slog.String("scheme", res.Scheme),
		slog.String("last4", pan.LastN(pan.Digits(res.Account), 4)),
	)
	writeJSON(w, http.StatusOK, res)
}

func readSwipe(w http.ResponseWriter, r *http.Request) (string, error) {
	body := http.MaxBytesReader(w, r.Body, maxSwipeBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		var req DecodeRequest
		if err := json.NewDecoder(body).Decode(&req); err != nil {
			return "", err
		}
		return req.Swipe, nil
	}

	b, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	// readers terminate a swipe with Enter
	return strings.TrimRight(string(b), "\r\n"), nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
