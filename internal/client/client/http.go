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

	"github.com/google/uuid"

	"github.com/dmitrijs2005/goalkeeper/internal/common"
	"github.com/dmitrijs2005/goalkeeper/internal/logging"
)

const maxBodySize = 4 << 20

// HTTPClient talks to the GoalKeeper REST API. It attaches the bearer token
// from its TokenSource to every request and reports 401 responses to its
// AuthFailureHandler before returning the error.
type HTTPClient struct {
	baseURL    *url.URL
	http       *http.Client
	tokens     TokenSource
	onAuthFail AuthFailureHandler
	log        logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient validates baseURL and builds a client whose requests are
// bounded by timeout. tokens and onAuthFail may be nil.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource, onAuthFail AuthFailureHandler, log logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}
	if log == nil {
		log = logging.Nop()
	}
	return &HTTPClient{
		baseURL:    u,
		http:       &http.Client{Timeout: timeout},
		tokens:     tokens,
		onAuthFail: onAuthFail,
		log:        log.With("component", "api"),
	}, nil
}

type request struct {
	method string
	path   string
	query  url.Values
	body   any
	// public requests never trigger the auth-failure handler
	public bool
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do performs r and decodes a successful JSON response into out (if non-nil).
func (c *HTTPClient) do(ctx context.Context, r request, out any) error {
	raw, err := c.send(ctx, r)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &APIError{Kind: KindServer, Message: "malformed response", Err: err}
	}
	return nil
}

// send performs r and returns the raw body of a 2xx response.
func (c *HTTPClient) send(ctx context.Context, r request) ([]byte, error) {
	req, err := c.newRequest(ctx, r)
	if err != nil {
		return nil, &APIError{Kind: KindClient, Err: err}
	}
	reqID := req.Header.Get(common.RequestIDHeaderName)
	log := c.log.With("request_id", reqID, "method", r.method, "path", r.path)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug(ctx, "request failed", "error", err)
		return nil, &APIError{Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &APIError{Kind: KindNetwork, Status: resp.StatusCode, Err: err}
	}
	log.Debug(ctx, "response received", "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return raw, nil
	}

	apiErr := &APIError{
		Kind:    kindForStatus(resp.StatusCode),
		Status:  resp.StatusCode,
		Message: serverMessage(raw),
		Err:     errors.New(http.StatusText(resp.StatusCode)),
	}

	switch apiErr.Kind {
	case KindUnauthorized:
		log.Warn(ctx, "unauthorized response")
		if c.onAuthFail != nil && !r.public {
			c.onAuthFail.HandleAuthFailure(ctx)
		}
	case KindServer:
		log.Error(ctx, "server error", "status", resp.StatusCode, "body", truncate(string(raw), 512))
	}
	return nil, apiErr
}

func (c *HTTPClient) newRequest(ctx context.Context, r request) (*http.Request, error) {
	u := *c.baseURL
	u.Path = c.baseURL.Path + r.path
	if len(r.query) > 0 {
		u.RawQuery = r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u.String(), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	if c.tokens != nil {
		tok, err := c.tokens.Token(ctx)
		if err != nil {
			c.log.Warn(ctx, "read access token", "error", err)
		} else if tok != "" {
			req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+tok)
		}
	}
	return req, nil
}

func serverMessage(raw []byte) string {
	var eb errorBody
	if err := json.Unmarshal(raw, &eb); err != nil {
		return ""
	}
	if eb.Message != "" {
		return eb.Message
	}
	return eb.Error
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
