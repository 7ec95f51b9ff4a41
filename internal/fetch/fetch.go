// Package fetch downloads puzzle material from adventofcode.com. Fetching
// is always explicit; the solve path never touches the network. Responses
// are cached on disk so each URL is requested at most once per machine,
// which is also what the site's automation guidelines ask for.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/goadvent/internal/cache"
)

const defaultBaseURL = "https://adventofcode.com"

// ErrNoSession is returned when a download requires the session cookie and
// none was configured.
var ErrNoSession = errors.New("fetch: session token not configured")

// Client wraps http.Client with timeouts, limited retry on transient
// errors, session-cookie auth and an optional on-disk cache.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
	// Session is the adventofcode.com session cookie value.
	Session string
	// BaseURL overrides the site root, used by tests.
	BaseURL string
	// MaxAttempts includes the initial attempt. Minimum 1.
	MaxAttempts int
	// PerRequestTimeout bounds each request.
	PerRequestTimeout time.Duration
	// Cache, when set, is consulted before the network and updated after.
	Cache *cache.Cache
}

func (c *Client) baseURL() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	return defaultBaseURL
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: c.PerRequestTimeout}
}

// Input downloads the personal puzzle input for a day. Requires Session.
func (c *Client) Input(ctx context.Context, year, day int) ([]byte, error) {
	if strings.TrimSpace(c.Session) == "" {
		return nil, ErrNoSession
	}
	url := fmt.Sprintf("%s/%d/day/%d/input", c.baseURL(), year, day)
	return c.get(ctx, url, true)
}

// PuzzlePage downloads the public puzzle description page for a day.
func (c *Client) PuzzlePage(ctx context.Context, year, day int) ([]byte, error) {
	url := fmt.Sprintf("%s/%d/day/%d", c.baseURL(), year, day)
	return c.get(ctx, url, false)
}

func (c *Client) get(ctx context.Context, url string, auth bool) ([]byte, error) {
	if c.Cache != nil {
		if body, ok, err := c.Cache.Load(ctx, url); err == nil && ok {
			log.Debug().Str("url", url).Msg("cache hit")
			return body, nil
		}
	}

	attempts := c.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		body, err := c.tryOnce(ctx, url, auth)
		if err == nil {
			if c.Cache != nil {
				if cerr := c.Cache.Save(ctx, url, body); cerr != nil {
					log.Warn().Err(cerr).Str("url", url).Msg("cache save failed")
				}
			}
			return body, nil
		}
		lastErr = err
		if !isTransient(err) || i == attempts-1 {
			return nil, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(i+1) * 200 * time.Millisecond):
		}
	}
	return nil, lastErr
}

func (c *Client) tryOnce(ctx context.Context, url string, auth bool) ([]byte, error) {
	if c.PerRequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.PerRequestTimeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	if auth {
		req.AddCookie(&http.Cookie{Name: "session", Value: c.Session})
	}
	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	switch {
	case resp.StatusCode == http.StatusOK:
		return body, nil
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized:
		return nil, fmt.Errorf("fetch %s: status %d (is the session token valid?)", url, resp.StatusCode)
	default:
		return nil, &statusError{url: url, status: resp.StatusCode}
	}
}

type statusError struct {
	url    string
	status int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("fetch %s: status %d", e.url, e.status)
}

// isTransient reports whether a retry could plausibly succeed: timeouts and
// server-side failures qualify, client errors do not.
func isTransient(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return se.status >= 500
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
