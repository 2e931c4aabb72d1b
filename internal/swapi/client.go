package swapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"swstats/internal/characters"
	"swstats/internal/films"
	"swstats/internal/logging"
)

// Resource names as they appear in API paths and snapshot file names.
const (
	ResourceFilms   = "films"
	ResourcePeople  = "people"
	ResourceSpecies = "species"
)

// Source defines the retrieval operations the reports depend on.
type Source interface {
	FetchFilms(ctx context.Context) ([]films.RawRecord, error)
	FetchPeople(ctx context.Context) ([]characters.RawCharacter, error)
	FetchSpecies(ctx context.Context) ([]characters.RawSpecies, error)
}

// Client retrieves resources from the HTTP API.
type Client struct {
	baseURL    string
	pageLimit  int
	httpClient *http.Client
	logger     *slog.Logger
}

var _ Source = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the per-request timeout on the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient = &http.Client{Timeout: timeout}
		}
	}
}

// WithPageLimit caps how many pages a single fetch follows. Zero means no cap.
func WithPageLimit(limit int) Option {
	return func(c *Client) {
		if limit >= 0 {
			c.pageLimit = limit
		}
	}
}

// WithLogger attaches a logger for per-page debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates an API client rooted at baseURL (e.g. https://swapi.dev/api).
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("swapi base url required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, fmt.Errorf("swapi base url %q must be an absolute http(s) url", baseURL)
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	client.logger = logging.NewComponentLogger(client.logger, "swapi")
	return client, nil
}

// FetchFilms retrieves every film record.
func (c *Client) FetchFilms(ctx context.Context) ([]films.RawRecord, error) {
	return fetchAll[films.RawRecord](ctx, c, ResourceFilms)
}

// FetchPeople retrieves every person record.
func (c *Client) FetchPeople(ctx context.Context) ([]characters.RawCharacter, error) {
	return fetchAll[characters.RawCharacter](ctx, c, ResourcePeople)
}

// FetchSpecies retrieves every species record.
func (c *Client) FetchSpecies(ctx context.Context) ([]characters.RawSpecies, error) {
	return fetchAll[characters.RawSpecies](ctx, c, ResourceSpecies)
}

// fetchAll walks the resource's pages in order and concatenates the results.
func fetchAll[T any](ctx context.Context, c *Client, resource string) ([]T, error) {
	next := c.baseURL + "/" + resource + "/"
	seen := make(map[string]struct{})
	var out []T
	for pages := 0; next != ""; pages++ {
		if c.pageLimit > 0 && pages >= c.pageLimit {
			return nil, fmt.Errorf("swapi %s: exceeded page limit of %d", resource, c.pageLimit)
		}
		if _, ok := seen[next]; ok {
			return nil, fmt.Errorf("swapi %s: pagination loops back to %s", resource, next)
		}
		seen[next] = struct{}{}

		results, following, err := getPage[T](ctx, c, resource, next)
		if err != nil {
			return nil, err
		}
		out = append(out, results...)
		next = following
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func getPage[T any](ctx context.Context, c *Client, resource, pageURL string) ([]T, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return nil, "", fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("swapi %s returned %d (latency=%v)", resource, resp.StatusCode, latency)
	}

	results, next, err := decodePayload[T](json.NewDecoder(resp.Body))
	if err != nil {
		return nil, "", fmt.Errorf("decode swapi %s page: %w", resource, err)
	}
	c.logger.Debug("fetched page",
		logging.String(logging.FieldEventType, "fetch_page"),
		logging.String("resource", resource),
		logging.String("url", pageURL),
		logging.Int("results", len(results)),
		logging.Duration("latency", latency),
	)
	return results, next, nil
}
