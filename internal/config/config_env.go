package config

import (
	"strconv"
	"strings"
)

// applyEnv overrides file values with environment variables.
// GEMINI_API_KEYS replaces the file key list; numbered keys are handled by credential.EnvSource.
func applyEnv(cfg *Config) {
	if v := getenv("PORT", ""); v != "" {
		if port, err := parsePort(v); err == nil {
			cfg.Server.Port = itoa(port)
		}
	}
	if v := getenv("BASE_PATH", ""); v != "" {
		cfg.Server.BasePath = normalizeBasePath(v)
	}

	cfg.Upstream.BaseURL = getenv("GEMINI_BASE_URL", cfg.Upstream.BaseURL)
	cfg.Upstream.Model = getenv("GEMINI_MODEL", cfg.Upstream.Model)
	cfg.Upstream.ProxyURL = getenv("PROXY_URL", cfg.Upstream.ProxyURL)
	if v := getenv("GEMINI_TEMPERATURE", ""); v != "" {
		if t, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			cfg.Upstream.Temperature = t
		}
	}
	setIntFromEnv("REQUEST_TIMEOUT_SEC", func(n int) { cfg.Upstream.RequestTimeoutSec = n })
	setIntFromEnv("DIAL_TIMEOUT_SEC", func(n int) { cfg.Upstream.DialTimeoutSec = n })
	setIntFromEnv("TLS_HANDSHAKE_TIMEOUT_SEC", func(n int) { cfg.Upstream.TLSHandshakeTimeoutSec = n })
	setIntFromEnv("RESPONSE_HEADER_TIMEOUT_SEC", func(n int) { cfg.Upstream.ResponseHeaderTimeoutSec = n })
	setIntFromEnv("EXPECT_CONTINUE_TIMEOUT_SEC", func(n int) { cfg.Upstream.ExpectContinueTimeoutSec = n })

	if v := getenv("GEMINI_API_KEYS", ""); v != "" {
		cfg.Credentials.APIKeys = splitAndTrim(v, ",")
	}
	setToggleFromEnv("AUTO_LOAD_ENV_CREDS", func(b bool) { cfg.Credentials.AutoLoadEnvCreds = b })

	cfg.Security.Debug = getenvBool("DEBUG", cfg.Security.Debug)
	cfg.Security.LogFile = getenv("LOG_FILE", cfg.Security.LogFile)

	setToggleFromEnv("RATE_LIMIT_ENABLED", func(b bool) { cfg.RateLimit.Enabled = b })
	setIntFromEnv("RATE_LIMIT_RPS", func(n int) { cfg.RateLimit.RPS = n })
	setIntFromEnv("RATE_LIMIT_BURST", func(n int) { cfg.RateLimit.Burst = n })
}
