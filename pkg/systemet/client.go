// Package systemet is a client for the Systembolaget product API.
//
// Every call performs a single GET and classifies the body: the expected
// payload is tried first, then the API's error array. Failures come back as
// one of *TransportError, APIErrors or *ParseError.
package systemet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/http/httpguts"
)

const (
	DefaultBaseURL = "https://api-extern.systembolaget.se"

	// APIKeyHeader carries the subscription key on every request.
	APIKeyHeader = "Ocp-Apim-Subscription-Key"

	productPath           = "/product/v1/product/"
	allProductsPath       = "/product/v1/product"
	productsWithStorePath = "/product/v1/getproductswithstore"
	searchPath            = "/product/v1/search"

	defaultTimeout = 30 * time.Second
)

// Client is safe for concurrent use. Its configuration is fixed at construction.
type Client struct {
	baseURL    string
	header     http.Header
	httpClient *http.Client
	timeout    time.Duration // negative when unset
	logger     *zap.Logger
}

type Option func(*Client)

// WithBaseURL points the client at another host, e.g. a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient replaces the transport. The client is copied, never modified;
// its own timeout is kept unless WithTimeout is also given.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout bounds each request, regardless of option order.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New returns a client that sends apiKey with every request. It fails with
// ErrInvalidAPIKey when the key is not a legal header value.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" || !httpguts.ValidHeaderFieldValue(apiKey) {
		return nil, ErrInvalidAPIKey
	}

	header := make(http.Header)
	header.Set(APIKeyHeader, apiKey)
	header.Set("Accept", "application/json")

	c := &Client{
		baseURL:    DefaultBaseURL,
		header:     header,
		httpClient: &http.Client{Timeout: defaultTimeout},
		timeout:    -1,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	hc := *c.httpClient
	if c.timeout >= 0 {
		hc.Timeout = c.timeout
	}
	c.httpClient = &hc
	return c, nil
}

// MustNew is like New but panics on an invalid key.
func MustNew(apiKey string, opts ...Option) *Client {
	c, err := New(apiKey, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	p, err := send[Product](ctx, c, productPath+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetAllProducts returns the products of the first page only.
// TODO: follow the API's paging once it is documented for this endpoint.
func (c *Client) GetAllProducts(ctx context.Context) ([]Product, error) {
	return send[[]Product](ctx, c, allProductsPath, nil)
}

func (c *Client) GetProductsWithStore(ctx context.Context) ([]ProductsWithStore, error) {
	return send[[]ProductsWithStore](ctx, c, productsWithStorePath, nil)
}

// Search returns the products matching req. The request is validated first:
// an empty request fails with ErrEmptySearch without contacting the API.
func (c *Client) Search(ctx context.Context, req SearchRequest) ([]Product, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encoding search request: %w", err)
	}
	return send[[]Product](ctx, c, searchPath, body)
}

func send[T any](ctx context.Context, c *Client, path string, body []byte) (T, error) {
	var zero T
	start := time.Now()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, reader)
	if err != nil {
		return zero, fmt.Errorf("creating request: %w", err)
	}
	req.Header = c.header.Clone()
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("systemet request failed", zap.String("path", path), zap.Error(err))
		return zero, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, &TransportError{Err: fmt.Errorf("reading response body: %w", err)}
	}

	c.logger.Debug("systemet request completed",
		zap.String("method", req.Method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(raw)),
		zap.Int64("latency_ms", time.Since(start).Milliseconds()),
	)

	out, err := decodeResponse[T](raw)
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.StatusCode = resp.StatusCode
		}
		c.logger.Warn("systemet response rejected",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.Error(err),
		)
		return zero, err
	}
	return out, nil
}
