package constants

import "time"

// HTTP client pool settings for the upstream generation client.
const (
	BaseMaxIdleConns        = 256
	BaseMaxIdleConnsPerHost = 64
	BaseIdleConnTimeout     = 90 * time.Second

	DefaultKeepAlive = 30 * time.Second
)

// HTTP timeouts
const (
	DefaultDialTimeout           = 10 * time.Second
	DefaultTLSHandshakeTimeout   = 10 * time.Second
	DefaultResponseHeaderTimeout = 60 * time.Second
	DefaultExpectContinueTimeout = 2 * time.Second
)

// DefaultGeminiBaseURL is the public Generative Language API endpoint.
const DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

// GeminiAPIKeyHeader carries the credential on every upstream request.
const GeminiAPIKeyHeader = "x-goog-api-key"

// MaxUpstreamBodyBytes bounds how much of an upstream response is buffered.
const MaxUpstreamBodyBytes = 8 << 20
