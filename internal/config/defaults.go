package config

import "nutriplan-go/internal/constants"

// Default returns a Config populated with built-in defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8080",
		},
		Upstream: UpstreamConfig{
			BaseURL:                  constants.DefaultGeminiBaseURL,
			Model:                    constants.DefaultModel,
			Temperature:              constants.DefaultTemperature,
			RequestTimeoutSec:        int(constants.UpstreamGenerateTimeout.Seconds()),
			DialTimeoutSec:           int(constants.DefaultDialTimeout.Seconds()),
			TLSHandshakeTimeoutSec:   int(constants.DefaultTLSHandshakeTimeout.Seconds()),
			ResponseHeaderTimeoutSec: int(constants.DefaultResponseHeaderTimeout.Seconds()),
			ExpectContinueTimeoutSec: int(constants.DefaultExpectContinueTimeout.Seconds()),
		},
		Credentials: CredentialConfig{
			AutoLoadEnvCreds: true,
		},
		RateLimit: RateLimitConfig{
			RPS:   5,
			Burst: 10,
		},
	}
}
