package config

// ServerConfig HTTP listener settings
type ServerConfig struct {
	Port     string
	BasePath string
}

// UpstreamConfig generation service endpoint and transport settings
type UpstreamConfig struct {
	BaseURL                  string
	Model                    string
	Temperature              float64
	ProxyURL                 string
	RequestTimeoutSec        int
	DialTimeoutSec           int
	TLSHandshakeTimeoutSec   int
	ResponseHeaderTimeoutSec int
	ExpectContinueTimeoutSec int
}

// CredentialConfig ordered API keys for the generation service.
// Order is significant: it is the trial order for every call.
type CredentialConfig struct {
	APIKeys          []string
	AutoLoadEnvCreds bool
}

// SecurityConfig logging and debug switches
type SecurityConfig struct {
	Debug   bool
	LogFile string
}

// RateLimitConfig inbound request limiting per client IP
type RateLimitConfig struct {
	Enabled bool
	RPS     int
	Burst   int
}
