package gemini

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"nutriplan-go/internal/config"
	"nutriplan-go/internal/constants"
	"nutriplan-go/internal/credential"
	apperrors "nutriplan-go/internal/errors"
	"nutriplan-go/internal/logging"
	"nutriplan-go/internal/monitoring"
	"nutriplan-go/internal/monitoring/tracing"
	"nutriplan-go/internal/upstream"
)

const providerName = "gemini"

// Client talks to the Generative Language API with exactly one credential.
// Instances are cheap; a new one is built for every rotation attempt.
type Client struct {
	baseURL    string
	cli        *http.Client
	credential credential.Credential
	timeout    time.Duration
}

func durationOrDefault(seconds int, fallback time.Duration) time.Duration {
	if seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	return fallback
}

// NewTransport builds the shared HTTP transport from upstream settings.
func NewTransport(cfg config.UpstreamConfig) *http.Transport {
	return &http.Transport{
		Proxy: getProxyFunc(cfg.ProxyURL),
		DialContext: (&net.Dialer{
			Timeout:   durationOrDefault(cfg.DialTimeoutSec, constants.DefaultDialTimeout),
			KeepAlive: constants.DefaultKeepAlive,
		}).DialContext,
		TLSHandshakeTimeout:   durationOrDefault(cfg.TLSHandshakeTimeoutSec, constants.DefaultTLSHandshakeTimeout),
		ResponseHeaderTimeout: durationOrDefault(cfg.ResponseHeaderTimeoutSec, constants.DefaultResponseHeaderTimeout),
		ExpectContinueTimeout: durationOrDefault(cfg.ExpectContinueTimeoutSec, constants.DefaultExpectContinueTimeout),
		MaxIdleConns:          constants.BaseMaxIdleConns,
		MaxIdleConnsPerHost:   constants.BaseMaxIdleConnsPerHost,
		IdleConnTimeout:       constants.BaseIdleConnTimeout,
	}
}

// getProxyFunc returns appropriate proxy function based on configuration
func getProxyFunc(proxyURL string) func(*http.Request) (*url.URL, error) {
	if proxyURL != "" {
		if parsedURL, err := url.Parse(proxyURL); err == nil {
			return http.ProxyURL(parsedURL)
		}
	}
	return http.ProxyFromEnvironment
}

// NewFactory returns a client factory for the rotation executor. Clients share
// one transport (connection pool) but never share a credential.
func NewFactory(cfg config.UpstreamConfig) upstream.ClientFactory[*Client] {
	httpClient := &http.Client{Transport: NewTransport(cfg)}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	timeout := durationOrDefault(cfg.RequestTimeoutSec, constants.UpstreamGenerateTimeout)
	return func(cred credential.Credential) *Client {
		return &Client{baseURL: baseURL, cli: httpClient, credential: cred, timeout: timeout}
	}
}

// Credential reports which pool entry this client is bound to.
func (c *Client) Credential() credential.Credential { return c.credential }

// GenerateContent calls models/{model}:generateContent and returns the decoded body.
// Non-2xx responses become *apperrors.APIError carrying the upstream status and message.
func (c *Client) GenerateContent(ctx context.Context, model string, payload []byte) (*Response, error) {
	endpoint := c.baseURL + GenerateContentPath(model)

	ctx, span := tracing.StartSpan(ctx, "upstream/gemini", "Gemini.GenerateContent",
		trace.WithAttributes(
			attribute.String("http.method", http.MethodPost),
			attribute.String("upstream.model", model),
			attribute.Int("credential.index", c.credential.Index),
		))
	defer span.End()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	body, status, err := c.postJSON(ctx, endpoint, payload)
	elapsed := time.Since(start)

	monitoring.UpstreamRequestDuration.WithLabelValues(providerName).Observe(elapsed.Seconds())
	monitoring.UpstreamRequestsTotal.WithLabelValues(providerName, monitoring.StatusClass(status)).Inc()
	span.SetAttributes(attribute.Int("http.status_code", status))

	entry := log.WithFields(log.Fields{
		"provider":   providerName,
		"model":      model,
		"credential": c.credential.Label(),
		"status":     status,
		"kind":       logging.ErrorKind(status, err != nil),
		"latency_ms": logging.DurationMS(elapsed),
	})

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport error")
		entry.WithError(err).Debug("upstream request failed")
		return nil, apperrors.MapNetworkError(err)
	}
	if status < 200 || status >= 300 {
		apiErr := apperrors.MapHTTPError(status, body)
		span.SetStatus(codes.Error, fmt.Sprintf("http_status=%d", status))
		entry.WithField("reason", apiErr.Code).Debug("upstream returned error status")
		return nil, apiErr
	}

	span.SetStatus(codes.Ok, "")
	entry.Debug("upstream request completed")
	return NewResponse(body)
}

func (c *Client) postJSON(ctx context.Context, endpoint string, payload []byte) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	c.applyDefaultHeaders(ctx, req)

	resp, err := c.cli.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, constants.MaxUpstreamBodyBytes))
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}
