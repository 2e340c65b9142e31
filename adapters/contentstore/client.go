package contentstore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/princepatel/folio/internal/config"
	"github.com/princepatel/folio/pkg/apperror"
	"github.com/princepatel/folio/pkg/logger"
)

// Client issues parameterized read queries against the content store's HTTP
// query API. Every fetch runs under the configured timeout; a hung upstream
// surfaces as an unavailable error instead of a stuck request.
type Client struct {
	baseURL    string
	dataset    string
	apiVersion string
	token      string
	timeout    time.Duration
	httpClient *http.Client
	logger     logger.Logger
}

func NewClient(cfg config.Config, log logger.Logger) *Client {
	baseURL := cfg.Content.BaseURL
	if baseURL == "" {
		host := "api.sanity.io"
		if cfg.Content.UseCDN {
			host = "apicdn.sanity.io"
		}
		baseURL = fmt.Sprintf("https://%s.%s", cfg.Content.ProjectID, host)
	}

	timeout := cfg.Content.FetchTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL:    baseURL,
		dataset:    cfg.Content.Dataset,
		apiVersion: cfg.Content.APIVersion,
		token:      cfg.Content.Token,
		timeout:    timeout,
		httpClient: &http.Client{},
		logger:     log,
	}
}

type queryEnvelope struct {
	Result json.RawMessage `json:"result"`
}

// Fetch runs a query and decodes its result into out. Named parameters are
// sent as $name, JSON-encoded. A null result decodes as-is: list callers get
// an empty slice, single-document callers check IsNullResult.
func (c *Client) Fetch(ctx context.Context, query string, params map[string]any, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	values := url.Values{}
	values.Set("query", query)
	for name, value := range params {
		encoded, err := json.Marshal(value)
		if err != nil {
			return apperror.NewInternal(fmt.Sprintf("cannot encode query param %q", name), err)
		}
		values.Set("$"+name, string(encoded))
	}

	endpoint := fmt.Sprintf("%s/v%s/data/query/%s?%s", c.baseURL, c.apiVersion, c.dataset, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return apperror.NewInternal("cannot build content store request", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Content store fetch failed", zap.Error(err))
		return apperror.NewUnavailable("content store fetch failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		c.logger.Warn("Content store returned non-OK status",
			zap.Int("status", resp.StatusCode), zap.ByteString("body", body))
		if resp.StatusCode >= 500 {
			return apperror.NewUnavailable(fmt.Sprintf("content store returned %d", resp.StatusCode), nil)
		}
		return apperror.NewInternal(fmt.Sprintf("content store rejected query with %d", resp.StatusCode), nil)
	}

	var envelope queryEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return apperror.NewUnavailable("cannot decode content store response", err)
	}

	if out == nil {
		return nil
	}
	if IsNullResult(envelope.Result) {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return apperror.NewInternal("cannot decode content store result", err)
	}
	return nil
}

// FetchOne runs a single-document query. A null result maps to a not-found
// error for the given resource, which callers treat as an expected outcome.
func (c *Client) FetchOne(ctx context.Context, query string, params map[string]any, resource, identifier string, out any) error {
	var raw json.RawMessage
	if err := c.Fetch(ctx, query, params, &raw); err != nil {
		return err
	}
	if IsNullResult(raw) {
		return apperror.NewNotFound(resource, identifier)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return apperror.NewInternal("cannot decode content store result", err)
	}
	return nil
}

func IsNullResult(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return true
	}
	return string(raw) == "null"
}
