package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fabricinit/cli/internal/config"
	oerrors "github.com/fabricinit/cli/internal/errors"
	"github.com/fabricinit/cli/internal/output"
	"github.com/fabricinit/cli/internal/version"
)

// Client fetches catalogs from Fabric meta and Modrinth.
type Client struct {
	httpClient  *http.Client
	metaURL     string
	modrinthURL string
	apiProject  string
	userAgent   string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithMetaURL overrides the Fabric meta base URL.
func WithMetaURL(u string) Option {
	return func(c *Client) { c.metaURL = strings.TrimRight(u, "/") }
}

// WithModrinthURL overrides the Modrinth API base URL.
func WithModrinthURL(u string) Option {
	return func(c *Client) { c.modrinthURL = strings.TrimRight(u, "/") }
}

// WithFabricAPIProject overrides the Modrinth project id of Fabric API.
func WithFabricAPIProject(id string) Option {
	return func(c *Client) { c.apiProject = id }
}

// WithTimeout bounds each request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.httpClient
		hc.Timeout = d
		c.httpClient = &hc
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// NewClient creates a catalog client with the public endpoints as defaults.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient:  &http.Client{},
		metaURL:     config.DefaultMetaURL,
		modrinthURL: config.DefaultModrinthURL,
		apiProject:  config.DefaultFabricAPIProject,
		userAgent:   version.UserAgent(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewClientFromConfig creates a client from the catalog section of the config.
func NewClientFromConfig(cfg config.CatalogConfig) *Client {
	opts := []Option{WithTimeout(cfg.Timeout)}
	if cfg.MetaURL != "" {
		opts = append(opts, WithMetaURL(cfg.MetaURL))
	}
	if cfg.ModrinthURL != "" {
		opts = append(opts, WithModrinthURL(cfg.ModrinthURL))
	}
	if cfg.FabricAPIProject != "" {
		opts = append(opts, WithFabricAPIProject(cfg.FabricAPIProject))
	}
	return NewClient(opts...)
}

// FetchAll fetches the game, mappings, loader and Fabric API catalogs in
// that order. The first failure aborts the fetch.
func (c *Client) FetchAll(ctx context.Context) (*Catalog, error) {
	var (
		cat Catalog
		err error
	)

	if cat.Game, err = fetchList[VersionEntry](ctx, c, "game", c.metaURL+"/versions/game"); err != nil {
		return nil, err
	}
	if cat.Mappings, err = fetchList[MappingEntry](ctx, c, "yarn", c.metaURL+"/versions/yarn"); err != nil {
		return nil, err
	}
	if cat.Loader, err = fetchList[VersionEntry](ctx, c, "loader", c.metaURL+"/versions/loader"); err != nil {
		return nil, err
	}

	apiURL := fmt.Sprintf("%s/project/%s/version", c.modrinthURL, c.apiProject)
	if cat.API, err = fetchList[APIEntry](ctx, c, "fabric-api", apiURL); err != nil {
		return nil, err
	}

	return &cat, nil
}

func fetchList[T any](ctx context.Context, c *Client, name, url string) ([]T, error) {
	output.Debug("fetching catalog", "catalog", name, "url", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating %s catalog request: %w", name, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("fetching %s catalog: %w", name, oerrors.ErrCancelled)
		}
		return nil, fmt.Errorf("fetching %s catalog: %w", name, &oerrors.DetailError{
			Type:    "network request failed",
			Message: err.Error(),
			Context: map[string]string{"catalog": name, "url": url},
			Hint:    "Check your internet connection and try again.",
			Cause:   oerrors.ErrNetwork,
		})
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s catalog: %w", name, oerrors.NewNetworkError(
			fmt.Sprintf("%s returned HTTP %d", url, resp.StatusCode),
			map[string]string{"catalog": name},
			"The service may be temporarily unavailable; try again later.",
		))
	}

	var list []T
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("decoding %s catalog from %s: %v: %w", name, url, err, oerrors.ErrDecode)
	}

	output.Debug("fetched catalog", "catalog", name, "entries", len(list))
	return list, nil
}
