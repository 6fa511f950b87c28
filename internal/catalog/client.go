// Package catalog is a read-only client for the catalog REST API.
package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/LuciusCaesar/D360-Client/internal/config"
	"github.com/LuciusCaesar/D360-Client/internal/metrics"
	"github.com/LuciusCaesar/D360-Client/internal/models"
)

// APIPrefix is appended to every instance base URL.
const APIPrefix = "/api/v2"

// Client fetches meta-model entities from one catalog instance.
// A Client is safe for concurrent use.
type Client struct {
	baseURL   string
	apiKey    string
	apiSecret string
	client    *http.Client
	logger    *slog.Logger

	group      singleflight.Group
	assetTypes memo[models.AssetType]
	assets     memo[models.Asset]
	fields     memo[models.Field]
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithTimeout bounds each request. Zero means no limit.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.client = &http.Client{Timeout: d} }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a client for the instance at baseURL.
func New(baseURL, apiKey, apiSecret string, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/") + APIPrefix,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		client:    &http.Client{},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewFromEndpoint creates a client from configured endpoint settings.
func NewFromEndpoint(e config.Endpoint, opts ...Option) *Client {
	return New(e.URL, e.APIKey, e.APISecret, opts...)
}

// BaseURL returns the API root, including the version prefix.
func (c *Client) BaseURL() string { return c.baseURL }

// String returns a safe representation of the client with credentials masked.
func (c *Client) String() string {
	return fmt.Sprintf("catalog.Client{BaseURL:%s, APIKey:%s}", c.baseURL, config.MaskSecret(c.apiKey))
}

// get performs a GET against path and returns the response body.
// Any non-2xx status is reported as a *RequestError.
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Authorization", c.apiKey+";"+c.apiSecret)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	metrics.Inc(metrics.CatalogRequests)
	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		metrics.Inc(metrics.CatalogRequestErrors)
		return nil, &RequestError{Method: http.MethodGet, URL: target, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.Inc(metrics.CatalogRequestErrors)
		return nil, &RequestError{Method: http.MethodGet, URL: target, StatusCode: resp.StatusCode, Err: fmt.Errorf("reading body: %w", err)}
	}

	c.logger.Debug("catalog request",
		"method", http.MethodGet,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.Inc(metrics.CatalogRequestErrors)
		return nil, &RequestError{Method: http.MethodGet, URL: target, StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

// GetAssetClasses lists every asset class.
func (c *Client) GetAssetClasses(ctx context.Context) ([]models.AssetClass, error) {
	body, err := c.get(ctx, "/assets/classes", nil)
	if err != nil {
		return nil, fmt.Errorf("listing asset classes: %w", err)
	}
	return decodeList[models.AssetClass]("AssetClass", body)
}

// GetAssetTypes lists asset types, restricted to one class when class is non-nil.
func (c *Client) GetAssetTypes(ctx context.Context, class *models.AssetClassName) ([]models.AssetType, error) {
	var query url.Values
	if class != nil {
		if !class.IsValid() {
			return nil, fmt.Errorf("listing asset types: unknown asset class %q", *class)
		}
		query = url.Values{"Class": {string(*class)}}
	}
	body, err := c.get(ctx, "/assets/types", query)
	if err != nil {
		return nil, fmt.Errorf("listing asset types: %w", err)
	}
	return decodeList[models.AssetType]("AssetType", body)
}

// GetAssetsByAssetType lists the assets of t.
func (c *Client) GetAssetsByAssetType(ctx context.Context, t models.AssetType) ([]models.Asset, error) {
	return c.GetAssetsByAssetTypeUID(ctx, t.UID)
}

// GetAssetsByAssetTypeUID lists the assets of the asset type with the given UID.
// Only the first page the server returns is read.
func (c *Client) GetAssetsByAssetTypeUID(ctx context.Context, uid string) ([]models.Asset, error) {
	body, err := c.get(ctx, "/assets/"+url.PathEscape(uid), nil)
	if err != nil {
		return nil, fmt.Errorf("listing assets of type %s: %w", uid, err)
	}
	page, err := decodePage[models.Asset]("Asset", body)
	if err != nil {
		return nil, err
	}
	warnTruncated(c, "assets", uid, page)
	return page.Items, nil
}

// GetFieldsForAssetType lists the fields of t.
func (c *Client) GetFieldsForAssetType(ctx context.Context, t models.AssetType) ([]models.Field, error) {
	return c.GetFieldsByAssetTypeUID(ctx, t.UID)
}

// GetFieldsByAssetTypeUID lists the fields of the asset type with the given UID.
// Only the first page the server returns is read.
func (c *Client) GetFieldsByAssetTypeUID(ctx context.Context, uid string) ([]models.Field, error) {
	body, err := c.get(ctx, "/fields", url.Values{"AssetTypeUid": {uid}})
	if err != nil {
		return nil, fmt.Errorf("listing fields of type %s: %w", uid, err)
	}
	page, err := decodePage[models.Field]("Field", body)
	if err != nil {
		return nil, err
	}
	warnTruncated(c, "fields", uid, page)
	return page.Items, nil
}

func warnTruncated[T any](c *Client, what, uid string, p Page[T]) {
	if !p.Truncated() {
		return
	}
	metrics.Inc(metrics.TruncatedPages)
	c.logger.Warn("catalog returned a partial page, only the first page is read",
		"resource", what,
		"asset_type_uid", uid,
		"returned", p.Count(),
		"total", p.TotalCount(),
	)
}

func decodeList[T any](entity string, body []byte) ([]T, error) {
	items, err := models.DecodeList[T](entity, body)
	if err != nil {
		metrics.Inc(metrics.DecodeErrors)
		return nil, err
	}
	return items, nil
}
