package config

// Config groups runtime configuration by domain.
type Config struct {
	Server      ServerConfig
	Upstream    UpstreamConfig
	Credentials CredentialConfig
	Security    SecurityConfig
	RateLimit   RateLimitConfig
}

// FromFile converts the on-disk representation into a Config.
func FromFile(fc *FileConfig) *Config {
	cfg := Default()
	if fc == nil {
		return cfg
	}
	if fc.Port > 0 {
		cfg.Server.Port = itoa(fc.Port)
	}
	if fc.BasePath != "" {
		cfg.Server.BasePath = normalizeBasePath(fc.BasePath)
	}
	if fc.GeminiBaseURL != "" {
		cfg.Upstream.BaseURL = fc.GeminiBaseURL
	}
	if fc.GeminiModel != "" {
		cfg.Upstream.Model = fc.GeminiModel
	}
	if fc.Temperature != nil {
		cfg.Upstream.Temperature = *fc.Temperature
	}
	cfg.Upstream.ProxyURL = fc.ProxyURL
	setPositive(&cfg.Upstream.RequestTimeoutSec, fc.RequestTimeoutSec)
	setPositive(&cfg.Upstream.DialTimeoutSec, fc.DialTimeoutSec)
	setPositive(&cfg.Upstream.TLSHandshakeTimeoutSec, fc.TLSHandshakeTimeoutSec)
	setPositive(&cfg.Upstream.ResponseHeaderTimeoutSec, fc.ResponseHeaderTimeoutSec)
	setPositive(&cfg.Upstream.ExpectContinueTimeoutSec, fc.ExpectContinueTimeoutSec)

	if len(fc.GeminiAPIKeys) > 0 {
		cfg.Credentials.APIKeys = append([]string(nil), fc.GeminiAPIKeys...)
	}
	if fc.AutoLoadEnvCreds != nil {
		cfg.Credentials.AutoLoadEnvCreds = *fc.AutoLoadEnvCreds
	}

	cfg.Security.Debug = fc.Debug
	cfg.Security.LogFile = fc.LogFile

	cfg.RateLimit.Enabled = fc.RateLimitEnabled
	setPositive(&cfg.RateLimit.RPS, fc.RateLimitRPS)
	setPositive(&cfg.RateLimit.Burst, fc.RateLimitBurst)
	return cfg
}

func setPositive(dst *int, v int) {
	if v > 0 {
		*dst = v
	}
}
