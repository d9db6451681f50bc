package remote

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

// Client talks to the inference sidecar that hosts the tile model and the
// scoring engine.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

type errorResponse struct {
	Detail string `json:"detail"`
	Error  string `json:"error"`
}

func (c Client) postJSON(ctx context.Context, path string, in any, out any) error {
	endpoint, err := buildAPIURL(c.BaseURL, path)
	if err != nil {
		return err
	}

	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", path, err)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: request %s: %v", domain.ErrServiceUnavailable, path, err)
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

func statusError(path string, resp *http.Response) error {
	message := fmt.Sprintf("status %d", resp.StatusCode)
	var payload errorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err == nil {
		switch {
		case payload.Detail != "":
			message = payload.Detail
		case payload.Error != "":
			message = payload.Error
		}
	}

	switch resp.StatusCode {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s: %s", domain.ErrDecode, path, message)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s: %s", domain.ErrValidation, path, message)
	case http.StatusTooManyRequests, http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
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

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("inference base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse inference base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("inference base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("inference base url host is required")
	}

	return parsed.JoinPath(strings.TrimPrefix(path, "/")).String(), nil
}
