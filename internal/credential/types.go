package credential

import (
	"errors"
	"fmt"
)

// ErrMalformedCredential is returned when a configured credential value is unusable.
var ErrMalformedCredential = errors.New("malformed credential")

// Credential is one opaque API key. Its identity is its position in the pool.
// The secret is unexported so it never leaks through %v or JSON encoding.
type Credential struct {
	Index  int
	secret string
}

// Secret returns the raw key for binding a client. Never log it.
func (c Credential) Secret() string { return c.secret }

// Label is a stable, log-safe identifier such as "cred-0".
func (c Credential) Label() string { return fmt.Sprintf("cred-%d", c.Index) }

// Masked returns a redacted form keeping only the last four characters.
func (c Credential) Masked() string { return Mask(c.secret) }

func (c Credential) String() string { return c.Label() + "(" + c.Masked() + ")" }

func (c Credential) GoString() string { return c.String() }

// Mask redacts a secret for display.
func Mask(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 8 {
		return "[REDACTED]"
	}
	return "****" + secret[len(secret)-4:]
}
