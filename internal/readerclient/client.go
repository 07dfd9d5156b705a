package readerclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/alovak/magstripe/reader"
)

// Client posts swipes to a running reader service.
type Client struct {
	Base string
	HTTP *http.Client
}

func New(base string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{Base: strings.TrimRight(base, "/"), HTTP: hc}
}

// RejectedError is returned when the service could not decode the swipe.
type RejectedError struct {
	ID   string
	Kind string
	Msg  string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("swipe %s rejected (%s): %s", e.ID, e.Kind, e.Msg)
}

func (c *Client) Decode(ctx context.Context, swipe string) (*reader.Result, error) {
	b, err := json.Marshal(reader.DecodeRequest{Swipe: swipe})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+"/swipes", bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("decode swipe: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnprocessableEntity:
		var rej reader.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&rej); err != nil {
			return nil, fmt.Errorf("decode rejection: %w", err)
		}
		return nil, &RejectedError{ID: rej.ID, Kind: rej.Kind, Msg: rej.Error}
	case resp.StatusCode/100 != 2:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("decode swipe status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var res reader.Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &res, nil
}
