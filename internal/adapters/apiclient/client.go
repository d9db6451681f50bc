package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/twmj/internal/domain"
)

const maxResponseBytes = 8 << 20

// Client calls a running twmj server. It maps the server's error statuses
// back onto the domain sentinels so callers can use errors.Is.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (c Client) do(ctx context.Context, method string, path string, query url.Values, contentType string, body io.Reader, out any) error {
	endpoint, err := c.endpoint("http", path, query)
	if err != nil {
		return err
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("create %s request: %w", path, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %s %s: %v", domain.ErrServiceUnavailable, method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return statusError(path, resp)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func (c Client) postJSON(ctx context.Context, path string, in any, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", path, err)
	}
	return c.do(ctx, http.MethodPost, path, nil, "application/json", bytes.NewReader(body), out)
}

func statusError(path string, resp *http.Response) error {
	message := fmt.Sprintf("status %d", resp.StatusCode)
	var payload errorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err == nil && payload.Detail != "" {
		message = payload.Detail
	}

	switch resp.StatusCode {
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", domain.ErrTemplateConflict, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrTemplateNotFound, message)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s: %s", domain.ErrDecode, path, message)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s: %s", domain.ErrValidation, path, message)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s: %s", domain.ErrServiceUnavailable, path, message)
	default:
		return fmt.Errorf("%s: %s", path, message)
	}
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}

	return context.WithTimeout(ctx, requestTimeout)
}

// endpoint resolves path against BaseURL. With scheme "ws" the http(s) scheme
// is swapped for its websocket counterpart.
func (c Client) endpoint(scheme string, path string, query url.Values) (string, error) {
	if c.BaseURL == "" {
		return "", errors.New("server url is required")
	}

	parsed, err := url.Parse(c.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parse server url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("server url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("server url host is required")
	}

	resolved := parsed.JoinPath(strings.TrimPrefix(path, "/"))
	if scheme == "ws" {
		resolved.Scheme = map[string]string{"http": "ws", "https": "wss"}[parsed.Scheme]
	}
	if len(query) > 0 {
		resolved.RawQuery = query.Encode()
	}
	return resolved.String(), nil
}
