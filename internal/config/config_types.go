package config

// FileConfig represents the configuration loaded from file
type FileConfig struct {
	// Server settings
	Port     int    `yaml:"port" json:"port"`
	BasePath string `yaml:"base_path" json:"base_path"`
	Debug    bool   `yaml:"debug" json:"debug"`
	LogFile  string `yaml:"log_file" json:"log_file"`

	// Upstream settings
	GeminiBaseURL            string   `yaml:"gemini_base_url" json:"gemini_base_url"`
	GeminiModel              string   `yaml:"gemini_model" json:"gemini_model"`
	Temperature              *float64 `yaml:"temperature" json:"temperature"`
	ProxyURL                 string   `yaml:"proxy_url" json:"proxy_url"`
	RequestTimeoutSec        int      `yaml:"request_timeout_sec" json:"request_timeout_sec"`
	DialTimeoutSec           int      `yaml:"dial_timeout_sec" json:"dial_timeout_sec"`
	TLSHandshakeTimeoutSec   int      `yaml:"tls_handshake_timeout_sec" json:"tls_handshake_timeout_sec"`
	ResponseHeaderTimeoutSec int      `yaml:"response_header_timeout_sec" json:"response_header_timeout_sec"`
	ExpectContinueTimeoutSec int      `yaml:"expect_continue_timeout_sec" json:"expect_continue_timeout_sec"`

	// Credentials, tried in listed order
	GeminiAPIKeys    []string `yaml:"gemini_api_keys" json:"gemini_api_keys"`
	AutoLoadEnvCreds *bool    `yaml:"auto_load_env_creds" json:"auto_load_env_creds"`

	// Inbound rate limiting
	RateLimitEnabled bool `yaml:"rate_limit_enabled" json:"rate_limit_enabled"`
	RateLimitRPS     int  `yaml:"rate_limit_rps" json:"rate_limit_rps"`
	RateLimitBurst   int  `yaml:"rate_limit_burst" json:"rate_limit_burst"`
}
