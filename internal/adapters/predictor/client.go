// Package predictor is the HTTP client for the remote diabetic foot prediction service.
package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/okian/footrisk/internal/domain/prediction"
	"github.com/okian/footrisk/pkg/logger"
	"github.com/okian/footrisk/pkg/metrics"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://localhost:5000"

// Upstream endpoints.
const (
	EndpointHealth     = "/health"
	EndpointPredict    = "/predict"
	EndpointDataFormat = "/data-format"
)

// RequestIDHeader carries a per-request identifier.
const RequestIDHeader = "X-Request-ID"

const maxErrorBody = 1 << 20

// Client talks to one prediction service. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	headers    http.Header
	log        logger.Logger
}

// New creates a client. The base URL is fixed for the client's lifetime.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
		headers:    http.Header{},
		log:        logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the resolved base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// HealthCheck calls GET /health.
func (c *Client) HealthCheck(ctx context.Context) (prediction.HealthStatus, error) {
	var hs prediction.HealthStatus
	if err := c.do(ctx, http.MethodGet, EndpointHealth, nil, &hs, nil); err != nil {
		return prediction.HealthStatus{}, err
	}
	return hs, nil
}

// Predict submits req to POST /predict and returns the decoded response as-is.
func (c *Client) Predict(ctx context.Context, req *prediction.Request) (*prediction.Response, error) {
	if req == nil {
		req = &prediction.Request{}
	}
	var resp prediction.Response
	if err := c.do(ctx, http.MethodPost, EndpointPredict, req, &resp, nil); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DataFormat calls GET /data-format.
func (c *Client) DataFormat(ctx context.Context) (prediction.Document, error) {
	var doc prediction.Document
	if err := c.do(ctx, http.MethodGet, EndpointDataFormat, nil, &doc, nil); err != nil {
		return prediction.Document{}, err
	}
	return doc, nil
}

// do sends one JSON request and decodes a 2xx body into out.
// Header precedence: Content-Type, then client headers, then headers.
func (c *Client) do(ctx context.Context, method, endpoint string, body, out any, headers http.Header) error {
	start := time.Now()
	outcome := "success"
	defer func() {
		metrics.RecordClientRequest(endpoint, outcome, float64(time.Since(start).Milliseconds()))
	}()

	var payload io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			outcome = "encode_error"
			return fmt.Errorf("encode %s body: %w", endpoint, err)
		}
		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, payload)
	if err != nil {
		outcome = "error"
		return fmt.Errorf("build %s %s request: %w", method, endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	mergeHeaders(req.Header, c.headers)
	mergeHeaders(req.Header, headers)
	if req.Header.Get(RequestIDHeader) == "" {
		req.Header.Set(RequestIDHeader, uuid.NewString())
	}

	log := c.log.With(
		logger.String("method", method),
		logger.String("endpoint", endpoint),
		logger.String("request_id", req.Header.Get(RequestIDHeader)),
	)
	log.Debug(ctx, "sending request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		outcome = "error"
		log.Warn(ctx, "request did not complete", logger.Error(err))
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		outcome = "failed"
		rfe := statusError(resp.StatusCode, serverMessage(resp.Body))
		metrics.RecordClientFailure(endpoint, strconv.Itoa(resp.StatusCode/100)+"xx")
		log.Warn(ctx, "request failed",
			logger.Int("status", resp.StatusCode),
			logger.String("message", rfe.Message))
		return rfe
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		outcome = "decode_error"
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	log.Debug(ctx, "request completed", logger.Int("status", resp.StatusCode))
	return nil
}

// serverMessage returns the "error" field of a JSON error body, or "".
func serverMessage(r io.Reader) string {
	var body struct {
		Error any `json:"error"`
	}
	b, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || json.Unmarshal(b, &body) != nil {
		return ""
	}
	s, _ := body.Error.(string)
	return s
}

func mergeHeaders(dst, src http.Header) {
	for k, vs := range src {
		dst.Del(k)
		for _, v := range vs {
			dst.Add(k, v)
		}
	}
}
