package countries

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const maxPayloadSize = 16 << 20

// Client fetches the catalog from a REST Countries compatible endpoint:
// a JSON array of objects exposing name.common and flags.svg.
type Client struct {
	url        string
	httpClient *http.Client
	cfg        Config
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default http.Client. Nil is ignored.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient returns a Client for cfg.URL, falling back to DefaultURL.
// The default http.Client has no timeout; set Config.FetchTimeout to bound a fetch.
func NewClient(cfg Config, opts ...ClientOption) *Client {
	c := &Client{
		url:        cfg.URL,
		httpClient: &http.Client{},
		cfg:        cfg,
	}
	if c.url == "" {
		c.url = DefaultURL
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the endpoint the client fetches from.
func (c *Client) URL() string {
	return c.url
}

type rawCountry struct {
	Name *struct {
		Common string `json:"common"`
	} `json:"name"`
	Flags *struct {
		SVG string `json:"svg"`
	} `json:"flags"`
}

// Fetch performs one GET and maps every record to an Entry. It never retries.
func (c *Client) Fetch(ctx context.Context) ([]Entry, error) {
	if c.cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.FetchTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadSize))
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, err)
	}

	return decode(body)
}

func decode(body []byte) ([]Entry, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: expected a JSON array", ErrMalformedPayload)
	}

	var raw []rawCountry
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, errors.Join(ErrMalformedPayload, err)
	}

	entries := make([]Entry, 0, len(raw))
	for i, rc := range raw {
		if rc.Name == nil || rc.Flags == nil {
			return nil, fmt.Errorf("%w: record %d lacks name or flags", ErrMalformedPayload, i)
		}
		entries = append(entries, Entry{Name: rc.Name.Common, FlagURL: rc.Flags.SVG})
	}
	return entries, nil
}
