package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// HTTPClient runs the catalog queries against an upstream GraphQL endpoint.
type HTTPClient struct {
	endpoint string
	token    string
	locale   string
	http     *http.Client
}

// NewHTTPClient creates a GraphQL client based on the configuration.
func NewHTTPClient(cfg Config) (*HTTPClient, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("catalog endpoint is required")
	}
	if !strings.HasPrefix(cfg.Endpoint, "http://") && !strings.HasPrefix(cfg.Endpoint, "https://") {
		return nil, fmt.Errorf("catalog endpoint must be an http(s) url: %q", cfg.Endpoint)
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &HTTPClient{
		endpoint: cfg.Endpoint,
		token:    cfg.Token,
		locale:   cfg.Locale,
		http:     &http.Client{Transport: transport, Timeout: timeoutDuration},
	}, nil
}

// ProductGifts runs the product gifts query keyed by {field: "id", value: productID}.
func (c *HTTPClient) ProductGifts(ctx context.Context, productID string) (*ProductGiftsResponse, error) {
	var out ProductGiftsResponse
	err := c.do(ctx, graphqlRequest{
		OperationName: "productGifts",
		Query:         productGiftsQuery,
		Variables: map[string]any{
			"identifier": productIdentifier{Field: "id", Value: productID},
		},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// AdditionalInfo runs the additional info query keyed by skuId.
func (c *HTTPClient) AdditionalInfo(ctx context.Context, skuID string) (*AdditionalInfoResponse, error) {
	var out AdditionalInfoResponse
	err := c.do(ctx, graphqlRequest{
		OperationName: "productsAdditionalInfo",
		Query:         additionalInfoQuery,
		Variables:     map[string]any{"skuId": skuID},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) do(ctx context.Context, gql graphqlRequest, out any) error {
	body, err := json.Marshal(gql)
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", gql.OperationName, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", gql.OperationName, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.locale != "" {
		req.Header.Set("X-Locale", c.locale)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", gql.OperationName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s returned %d: %s", ErrUpstream, gql.OperationName, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphqlError  `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", gql.OperationName, err)
	}

	if len(envelope.Errors) > 0 {
		msgs := make([]string, 0, len(envelope.Errors))
		for _, e := range envelope.Errors {
			msgs = append(msgs, e.Message)
		}
		return fmt.Errorf("%w: %s: %s", ErrUpstream, gql.OperationName, strings.Join(msgs, "; "))
	}

	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to decode %s data: %w", gql.OperationName, err)
	}
	return nil
}
