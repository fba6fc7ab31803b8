// Package geo does a single best-effort location lookup for display. The
// result is informational only; nothing is ever verified against it.
package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrDisabled means no lookup capability is available at all, as opposed to
// a lookup that was attempted and failed.
var ErrDisabled = errors.New("geolocation disabled")

// Position is one location fix.
type Position struct {
	Lat       float64
	Lon       float64
	AccuracyM float64
}

// Provider yields at most one position per Lookup call. Implementations do
// not retry, poll, or cache.
type Provider interface {
	Lookup(ctx context.Context) (Position, error)
}

// HTTPProvider resolves the caller's position from an IP geolocation
// endpoint returning JSON with lat/lon (and optionally accuracy) fields.
type HTTPProvider struct {
	url    string
	client *http.Client
}

func NewHTTPProvider(url string, timeout time.Duration) *HTTPProvider {
	return &HTTPProvider{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (p *HTTPProvider) Lookup(ctx context.Context) (Position, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return Position{}, fmt.Errorf("build location request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return Position{}, fmt.Errorf("location lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Position{}, fmt.Errorf("location lookup: unexpected status %s", resp.Status)
	}

	var body struct {
		Lat      float64 `json:"lat"`
		Lon      float64 `json:"lon"`
		Accuracy float64 `json:"accuracy"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Position{}, fmt.Errorf("decode location response: %w", err)
	}

	return Position{Lat: body.Lat, Lon: body.Lon, AccuracyM: body.Accuracy}, nil
}

// Disabled is the Provider used when lookups are turned off; every call
// reports ErrDisabled.
type Disabled struct{}

func (Disabled) Lookup(context.Context) (Position, error) {
	return Position{}, ErrDisabled
}
