package wire

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Endpoint supplies the connection parameters for one provider.
type Endpoint interface {
	BaseURL() string
	AuthHeaders() map[string]string
}

// ClientConfig controls a wire client.
type ClientConfig struct {
	Endpoint   Endpoint
	Codec      Codec
	HTTPClient *http.Client
}

// Client posts codec-built requests to a provider endpoint.
type Client struct {
	endpoint Endpoint
	codec    Codec
	client   *http.Client
}

// NewClient constructs a wire client from config.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.Endpoint == nil {
		return nil, errors.New("wire: endpoint is required")
	}
	if cfg.Codec == nil {
		return nil, errors.New("wire: codec is required")
	}

	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}

	return &Client{endpoint: cfg.Endpoint, codec: cfg.Codec, client: client}, nil
}

// Complete posts one chat request for model and parses the response.
func (c *Client) Complete(ctx context.Context, model string, req ChatRequest) (ChatResponse, error) {
	body, err := c.codec.BuildRequest(model, req)
	if err != nil {
		return ChatResponse{}, err
	}

	url := strings.TrimRight(c.endpoint.BaseURL(), "/") + c.codec.Path()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return ChatResponse{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	for key, value := range c.endpoint.AuthHeaders() {
		httpReq.Header.Set(key, value)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return ChatResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := readResponseBody(resp)
		return ChatResponse{}, fmt.Errorf("wire: status %d: %s", resp.StatusCode, detail)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return ChatResponse{}, err
	}
	return c.codec.ParseResponse(data)
}

func readResponseBody(resp *http.Response) (string, error) {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	body := strings.TrimSpace(string(data))
	if body == "" {
		return "<empty body>", nil
	}
	if len(body) > 1200 {
		return body[:1200] + "... (truncated)", nil
	}
	return body, nil
}
