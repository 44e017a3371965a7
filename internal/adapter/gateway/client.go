// Package gateway holds the HTTP plumbing shared by outbound gateway adapters.
package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"commerce-reconciler/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

const maxResponseBytes = 1 << 20

// Client sends requests to one provider and turns failures into typed errors.
type Client struct {
	name string
	http *http.Client
	log  zerolog.Logger
}

// NewClient creates a Client whose every call is bounded by timeout.
func NewClient(name string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		name: name,
		http: &http.Client{Timeout: timeout},
		log:  log.With().Str("gateway", name).Logger(),
	}
}

// Name returns the provider name used in errors and logs.
func (c *Client) Name() string {
	return c.name
}

// Do sends req and returns the response body of a 2xx reply.
// Non-2xx replies are mapped by Classify; network failures become
// TransportError.
func (c *Client) Do(req *http.Request) ([]byte, error) {
	start := time.Now()
	resp, err := c.http.Do(req)
	latency := time.Since(start)
	if err != nil {
		c.log.Warn().Err(err).
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Dur("latency", latency).
			Msg("gateway call failed")
		return nil, apperror.ErrTransport(c.name, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, apperror.ErrTransport(c.name, fmt.Errorf("reading response: %w", err))
	}

	c.log.Info().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("latency", latency).
		Msg("gateway call")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return body, c.Classify(resp.StatusCode, body)
	}
	return body, nil
}

// NewRequest builds a request with a JSON or form body already attached.
func (c *Client) NewRequest(ctx context.Context, method, url string, body []byte, contentType string) (*http.Request, error) {
	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, r)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("building %s request: %w", c.name, err))
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// Classify maps an HTTP status from the provider to the error taxonomy.
func (c *Client) Classify(status int, body []byte) error {
	return ClassifyStatus(c.name, status, Message(body))
}

// ClassifyStatus maps a provider HTTP status and message to an AppError.
func ClassifyStatus(name string, status int, msg string) error {
	if msg == "" {
		msg = http.StatusText(status)
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return apperror.ErrCredential(name, msg, nil)
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return apperror.Validation(fmt.Sprintf("%s: %s", name, msg))
	case status == http.StatusNotFound:
		return apperror.New(apperror.CodeNotFound, fmt.Sprintf("%s: %s", name, msg), http.StatusNotFound)
	default:
		return apperror.ErrUpstream(name, msg)
	}
}

var messagePaths = []string{
	"message",
	"error_description",
	"error.message",
	"error",
	"rmk",
	"remarks",
	"detail",
	"packages.0.remarks",
}

// Message pulls a human-readable error message out of a provider response.
func Message(body []byte) string {
	if !gjson.ValidBytes(body) {
		return strings.TrimSpace(string(truncate(body, 200)))
	}
	for _, p := range messagePaths {
		v := gjson.GetBytes(body, p)
		if !v.Exists() {
			continue
		}
		if v.IsArray() {
			parts := make([]string, 0, len(v.Array()))
			for _, item := range v.Array() {
				parts = append(parts, item.String())
			}
			if s := strings.Join(parts, "; "); s != "" {
				return s
			}
			continue
		}
		if v.Type == gjson.String && v.String() != "" {
			return v.String()
		}
	}
	return ""
}

func truncate(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}
