// Package client talks to the rollup tracker API: a one-shot metadata
// request for the monitored networks and the server-sent event stream of
// live metrics.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/wavefnx/roller/internal/errors"
	"github.com/wavefnx/roller/internal/logger"
	"github.com/wavefnx/roller/internal/tracker"
)

const (
	// DefaultEndpoint is the public tracker API.
	DefaultEndpoint = "https://tracker-api-gdesfolyga-uw.a.run.app"

	// DefaultTimeout bounds the metadata request. The stream is untimed.
	DefaultTimeout = 10 * time.Second

	metadataPath = "/networkMetadata"
	streamPath   = "/sse"
)

// Client is an API client bound to one base URL.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	log        logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the metadata request timeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying http.Client. Its Timeout field is
// left alone; the metadata timeout is applied per request.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the client's logger.
func WithLogger(log logger.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a client for baseURL. An empty baseURL selects DefaultEndpoint.
func New(baseURL string, opts ...Option) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultEndpoint
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    DefaultTimeout,
		httpClient: &http.Client{},
		log:        logger.Noop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the endpoint the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// descriptor is one entry of the metadata response.
type descriptor struct {
	Name        string  `json:"name"`
	Label       string  `json:"label"`
	ParentChain chainID `json:"parentChain"`
	DA          string  `json:"da"`
	Stack       string  `json:"stack"`
}

// chainID accepts a chain id written either as a JSON string or a number.
type chainID uint64

func (id *chainID) UnmarshalJSON(b []byte) error {
	text := strings.TrimSpace(string(b))
	if text == "null" {
		*id = 0
		return nil
	}
	if unquoted, err := strconv.Unquote(text); err == nil {
		text = unquoted
	}
	*id = chainID(tracker.ParseChainID(text))
	return nil
}

// FetchNetworks requests the network metadata and returns the networks
// ordered by name, with no metrics yet.
func (c *Client) FetchNetworks(ctx context.Context) ([]tracker.Network, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	url := c.baseURL + metadataPath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrFetch,
			"Couldn't build the metadata request",
			"Check that api_endpoint is a valid URL.")
	}
	req.Header.Set("Accept", "application/json")

	c.log.Debug("GET %s", url)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrFetch,
			fmt.Sprintf("Couldn't reach %s", c.baseURL),
			"Check your network connection and the api_endpoint setting.")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.WrapWithCode(statusError(resp), errors.ErrFetch,
			"Network metadata request failed",
			"The tracker API may be down. Try again in a moment.")
	}

	var raw map[string]descriptor
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrFetch,
			"Couldn't decode network metadata",
			"The API returned an unexpected response. Is api_endpoint pointing at the tracker API?")
	}

	networks := make([]tracker.Network, 0, len(raw))
	for key, d := range raw {
		name := d.Name
		if name == "" {
			name = key
		}
		networks = append(networks, tracker.Network{
			Name:        name,
			Label:       d.Label,
			ParentChain: tracker.ParentChainName(uint64(d.ParentChain)),
			DA:          d.DA,
			Stack:       d.Stack,
		})
	}
	sort.Slice(networks, func(i, j int) bool {
		return networks[i].Name < networks[j].Name
	})

	c.log.Debug("fetched %d networks", len(networks))
	return networks, nil
}

// OpenStream connects to the event stream. The connection lives until ctx
// is cancelled or the returned Stream is closed.
func (c *Client) OpenStream(ctx context.Context) (*Stream, error) {
	url := c.baseURL + streamPath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrStream,
			"Couldn't build the event stream request",
			"Check that api_endpoint is a valid URL.")
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	c.log.Debug("GET %s (stream)", url)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrStream,
			"Couldn't connect to the event stream",
			"Check your network connection and the api_endpoint setting.")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		err := statusError(resp)
		resp.Body.Close()
		return nil, errors.WrapWithCode(err, errors.ErrStream,
			"Event stream request failed",
			"The tracker API may be down. Try again in a moment.")
	}

	return newStream(resp.Body, c.log), nil
}

// statusError reads a short prefix of the body for context.
func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return fmt.Errorf("HTTP %d: %s", resp.StatusCode, msg)
}
