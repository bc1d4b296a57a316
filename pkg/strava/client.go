// Package strava implements the Strava API client: OAuth token refresh and
// paginated activity listing, normalized into activity records at the
// boundary.
package strava

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/codeGROOVE-dev/retry"
)

const (
	defaultBaseURL    = "https://www.strava.com"
	requestTimeout    = 60 * time.Second
	maxPages          = 100
	activitiesPerPage = 200
)

// ErrAuth indicates the OAuth token refresh was rejected. Fatal: the run
// aborts rather than fetching with a stale token.
var ErrAuth = errors.New("strava: authentication failed")

// Client talks to the Strava v3 API.
type Client struct {
	httpClient   *http.Client
	logger       *slog.Logger
	baseURL      string
	clientID     string
	clientSecret string
	refreshToken string
	accessToken  string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (tests).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the HTTP client, e.g. to add response caching.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a Strava client from OAuth credentials.
func NewClient(logger *slog.Logger, clientID, clientSecret, refreshToken string, opts ...Option) *Client {
	c := &Client{
		httpClient:   &http.Client{Timeout: requestTimeout},
		logger:       logger,
		baseURL:      defaultBaseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		refreshToken: refreshToken,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// doWithRetry performs an HTTP request with exponential backoff and jitter.
// Client errors (4xx) are unrecoverable; everything else retries.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()

	c.logger.Debug("making API request", "method", req.Method, "url", req.URL.String())

	var resp *http.Response
	err := retry.Do(
		func() error {
			reqCopy := req.Clone(ctx)
			if req.GetBody != nil {
				body, err := req.GetBody()
				if err != nil {
					return retry.Unrecoverable(fmt.Errorf("cloning request body: %w", err))
				}
				reqCopy.Body = body
			}

			var err error
			resp, err = c.httpClient.Do(reqCopy)
			if err != nil {
				c.logger.Warn("API request failed", "url", req.URL.String(), "error", err, "duration", time.Since(start))
				return err
			}

			if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
				drainAndClose(resp.Body, c.logger)
				return fmt.Errorf("server error: status %d", resp.StatusCode)
			}
			if resp.StatusCode >= 400 {
				drainAndClose(resp.Body, c.logger)
				return retry.Unrecoverable(fmt.Errorf("client error: status %d", resp.StatusCode))
			}
			return nil
		},
		retry.Attempts(5),
		retry.Delay(time.Second),
		retry.MaxDelay(2*time.Minute),
		retry.DelayType(retry.CombineDelay(retry.BackOffDelay, retry.RandomDelay)),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Warn("retrying API request", "attempt", n+1, "url", req.URL.String(), "error", err)
		}),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func drainAndClose(body io.ReadCloser, logger *slog.Logger) {
	if _, err := io.Copy(io.Discard, io.LimitReader(body, 4096)); err != nil {
		logger.Debug("failed to drain response body", "error", err)
	}
	if err := body.Close(); err != nil {
		logger.Debug("failed to close response body", "error", err)
	}
}
