package modrinth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	urlpkg "net/url"
	"strconv"
	"strings"
	"time"
	"unicode"

	"fastrinth/internal/telemetry"
)

const userAgent = "fastrinth/1.0 (+https://github.com/simplyyliam/Fastrinth-Mods)"

// Client wraps HTTP access to the Modrinth API.
type Client struct {
	http    *http.Client
	baseURL string
	token   string
	policy  RetryPolicy
}

// NewClient returns a Client with tuned transport defaults. The token is
// optional; when set it is attached as a bearer credential.
func NewClient(baseURL, token string, policy RetryPolicy) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{
		Timeout:   5 * time.Second,
		KeepAlive: 30 * time.Second,
	}).DialContext
	transport.TLSHandshakeTimeout = 5 * time.Second
	transport.ResponseHeaderTimeout = 10 * time.Second
	transport.ExpectContinueTimeout = 1 * time.Second
	transport.MaxIdleConns = 100
	transport.MaxIdleConnsPerHost = 10
	transport.MaxConnsPerHost = 10
	transport.IdleConnTimeout = 90 * time.Second

	return &Client{
		http:    &http.Client{Timeout: 30 * time.Second, Transport: transport},
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		policy:  policy,
	}
}

// Kind categorizes Modrinth errors.
type Kind string

const (
	KindTimeout     Kind = "timeout"
	KindCanceled    Kind = "canceled"
	KindRateLimited Kind = "rate_limited"
	KindServer      Kind = "server_error"
	KindClient      Kind = "client_error"
)

// Error represents a normalized Modrinth API error.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "modrinth error"
}

func (e *Error) Unwrap() error { return e.Err }

// Absence signals. Both fail the owning batch item the same way;
// callers only use them to pick a log message.
var (
	ErrNotFound            = errors.New("no project matched the query")
	ErrNoCompatibleVersion = errors.New("no compatible version")
)

func redactURL(u *urlpkg.URL) string {
	cpy := *u
	q := cpy.Query()
	for _, k := range []string{"token", "key", "api_key"} {
		if q.Has(k) {
			q.Set(k, "REDACTED")
		}
	}
	cpy.RawQuery = q.Encode()
	return cpy.Redacted()
}

// do executes the request with retry/backoff and decodes JSON into v.
func (c *Client) do(req *http.Request, v interface{}) error {
	if c.token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	}
	req.Header.Set("User-Agent", userAgent)
	urlStr := redactURL(req.URL)
	var resp *http.Response
	var err error
	for i := 0; i < c.policy.MaxAttempts; i++ {
		start := time.Now()
		resp, err = c.http.Do(req)
		dur := time.Since(start)
		attempt := strconv.Itoa(i + 1)
		if err != nil {
			telemetry.Event("api_request", map[string]string{
				"method":      req.Method,
				"url":         urlStr,
				"status":      "error",
				"duration_ms": strconv.FormatInt(dur.Milliseconds(), 10),
				"attempt":     attempt,
			})
			kind := KindClient
			switch {
			case errors.Is(err, context.Canceled):
				kind = KindCanceled
			case errors.Is(err, context.DeadlineExceeded):
				kind = KindTimeout
			case func() bool {
				ne, ok := err.(net.Error)
				return ok && ne.Timeout()
			}():
				kind = KindTimeout
			}
			return &Error{Kind: kind, Err: err}
		}
		telemetry.Event("api_request", map[string]string{
			"method":      req.Method,
			"url":         urlStr,
			"status":      strconv.Itoa(resp.StatusCode),
			"duration_ms": strconv.FormatInt(dur.Milliseconds(), 10),
			"attempt":     attempt,
		})
		if c.policy.Retryable(resp.StatusCode) && i < c.policy.MaxAttempts-1 {
			delay := c.policy.Backoff(i, resp.Header.Get("Retry-After"))
			resp.Body.Close()
			sleep(delay + randDuration(delay))
			continue
		}
		break
	}
	if resp == nil {
		return &Error{Kind: KindServer, Message: "no response"}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		kind := KindClient
		if resp.StatusCode == http.StatusTooManyRequests {
			kind = KindRateLimited
		} else if resp.StatusCode >= 500 {
			kind = KindServer
		}
		var apiErr struct {
			Error       string `json:"error"`
			Description string `json:"description"`
		}
		b, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(b, &apiErr); err == nil {
			msg := apiErr.Description
			if msg == "" {
				msg = apiErr.Error
			}
			if msg != "" {
				return &Error{Kind: kind, Status: resp.StatusCode, Message: msg}
			}
		}
		return &Error{Kind: kind, Status: resp.StatusCode, Message: resp.Status}
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindClient, Err: err}
	}
	if v != nil {
		if err := json.Unmarshal(b, v); err != nil {
			return err
		}
	}
	return nil
}

// SearchResult represents a Modrinth search response.
type SearchResult struct {
	Hits []Hit `json:"hits"`
}

// Hit is one search result entry.
type Hit struct {
	ProjectID   string `json:"project_id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Version represents a Modrinth project version.
type Version struct {
	ID            string    `json:"id"`
	VersionNumber string    `json:"version_number"`
	VersionType   string    `json:"version_type"`
	DatePublished time.Time `json:"date_published"`
	GameVersions  []string  `json:"game_versions"`
	Loaders       []string  `json:"loaders"`
	Files         []File    `json:"files"`
}

// File describes one downloadable artifact of a version.
type File struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Primary  bool   `json:"primary"`
	Size     int64  `json:"size"`
}

// normalizeQuery trims surrounding whitespace and lowercases the query.
func normalizeQuery(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}

// validateQuery ensures the normalized query is non-empty and free of
// non-ASCII control characters.
func validateQuery(q string) error {
	if q == "" {
		return errors.New("empty query")
	}
	for _, r := range q {
		if unicode.IsControl(r) && r > unicode.MaxASCII {
			return fmt.Errorf("invalid control character %U", r)
		}
	}
	return nil
}

// Search performs a project search.
func (c *Client) Search(ctx context.Context, query string) (*SearchResult, error) {
	query = normalizeQuery(query)
	if err := validateQuery(query); err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/search?query=%s", c.baseURL, urlpkg.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	var res SearchResult
	if err := c.do(req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Versions fetches the full, unfiltered version list for a project.
func (c *Client) Versions(ctx context.Context, slug string) ([]Version, error) {
	url := fmt.Sprintf("%s/project/%s/version", c.baseURL, urlpkg.PathEscape(slug))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	var v []Version
	if err := c.do(req, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// Resolve maps a free-text name to a slug via search. The first hit wins
// unconditionally; upstream relevance ordering is the only ranking.
func (c *Client) Resolve(ctx context.Context, name string) (slug, title string, err error) {
	res, err := c.Search(ctx, name)
	if err != nil {
		return "", "", err
	}
	if len(res.Hits) == 0 {
		return "", "", ErrNotFound
	}
	return res.Hits[0].Slug, res.Hits[0].Title, nil
}

// SelectVersion returns the first version, in API-returned order, whose
// loader set contains loader and whose game-version set contains
// gameVersion. API order is not guaranteed newest-first; the first
// match wins regardless of version number.
func (c *Client) SelectVersion(ctx context.Context, slug, loader, gameVersion string) (*Version, error) {
	versions, err := c.Versions(ctx, slug)
	if err != nil {
		return nil, err
	}
	for i := range versions {
		v := &versions[i]
		if containsString(v.Loaders, loader) && containsString(v.GameVersions, gameVersion) {
			return v, nil
		}
	}
	return nil, ErrNoCompatibleVersion
}

func containsString(set []string, want string) bool {
	for _, s := range set {
		if s == want {
			return true
		}
	}
	return false
}
