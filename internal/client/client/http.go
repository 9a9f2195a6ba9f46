package client

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

	"github.com/dmitrijs2005/newsdesk/internal/client/models"
	"github.com/dmitrijs2005/newsdesk/internal/common"
	"github.com/dmitrijs2005/newsdesk/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// maxErrorBody caps how much of a failed response is read for its message.
const maxErrorBody = 64 << 10

type HTTPClient struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	log     logging.Logger
	newID   func() string
}

type Option func(*HTTPClient)

// WithRateLimit paces outgoing requests to rps per second. Zero disables
// pacing.
func WithRateLimit(rps float64) Option {
	return func(c *HTTPClient) {
		if rps > 0 {
			burst := int(rps)
			if burst < 1 {
				burst = 1
			}
			c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
		}
	}
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid api url %q: scheme must be http or https", baseURL)
	}

	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     logging.Nop(),
		newID:   func() string { return uuid.New().String() },
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

// do sends one request. body, when non-nil, is JSON-encoded; out, when
// non-nil, receives the decoded 2xx body.
func (c *HTTPClient) do(ctx context.Context, creds Credentials, method, path string, query url.Values, body, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if !creds.IsZero() {
		req.Header.Set(common.AuthorizationHeaderName, creds.header())
	}
	reqID := c.newID()
	req.Header.Set(common.RequestIDHeaderName, reqID)

	log := c.log.With("method", method, "path", path, "request_id", reqID)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		log.Warn(ctx, "request failed", "error", err)
		return &APIError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	log.Debug(ctx, "response", "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{
			Method:  method,
			Path:    path,
			Status:  resp.StatusCode,
			Message: errorMessage(resp),
		}
		log.Warn(ctx, "api error", "status", apiErr.Status, "message", apiErr.Message)
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Warn(ctx, "undecodable response", "error", err)
		return fmt.Errorf("%s %s: %w: %v", method, path, ErrMalformedResponse, err)
	}
	return nil
}

// errorMessage extracts the explanation from an error body. The API uses
// "error"; the JWT layer uses "msg".
func errorMessage(resp *http.Response) string {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var body struct {
		Error   string `json:"error"`
		Msg     string `json:"msg"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		for _, m := range []string{body.Error, body.Msg, body.Message} {
			if m != "" {
				return m
			}
		}
	}
	if text := strings.TrimSpace(string(raw)); text != "" && !strings.HasPrefix(text, "<") && len(text) < 200 {
		return text
	}
	return http.StatusText(resp.StatusCode)
}

func malformed(method, path, field string) error {
	return fmt.Errorf("%s %s: %w: missing %q", method, path, ErrMalformedResponse, field)
}

// Ping probes the API with a cheap public request.
func (c *HTTPClient) Ping(ctx context.Context) error {
	err := c.do(ctx, Anonymous, http.MethodGet, "/news/categories", nil, nil, nil)
	if err != nil && !errors.Is(err, ErrUnavailable) && !errors.Is(err, ErrServer) {
		// any answer from the server means it is reachable
		return nil
	}
	return err
}

func pageQuery(p models.ListParams) url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", fmt.Sprint(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", fmt.Sprint(p.Limit))
	}
	if p.CategoryID > 0 {
		q.Set("category_id", fmt.Sprint(p.CategoryID))
	}
	if p.Status != "" {
		q.Set("status", string(p.Status))
	}
	return q
}
