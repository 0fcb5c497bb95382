package credential

import (
	"fmt"
	"strings"
)

// Pool is an ordered, fixed set of credentials. Order defines trial order.
// It is read-only after construction and safe for concurrent use without locking.
type Pool struct {
	creds []Credential
}

// NewPool builds a pool from raw keys. Empty or whitespace-only entries are
// configuration errors; the offending position is reported, never the value.
// An empty key list yields an empty pool.
func NewPool(keys []string) (*Pool, error) {
	creds := make([]Credential, 0, len(keys))
	for i, k := range keys {
		if strings.TrimSpace(k) == "" {
			return nil, fmt.Errorf("credential %d: %w: empty value", i, ErrMalformedCredential)
		}
		if k != strings.TrimSpace(k) {
			return nil, fmt.Errorf("credential %d: %w: surrounding whitespace", i, ErrMalformedCredential)
		}
		creds = append(creds, Credential{Index: i, secret: k})
	}
	return &Pool{creds: creds}, nil
}

// Len returns the number of credentials. A nil pool is empty.
func (p *Pool) Len() int {
	if p == nil {
		return 0
	}
	return len(p.creds)
}

// At returns the credential at index i. It panics when i is out of range.
func (p *Pool) At(i int) Credential {
	return p.creds[i]
}

// Credentials returns a copy of the ordered credentials.
func (p *Pool) Credentials() []Credential {
	if p == nil {
		return nil
	}
	out := make([]Credential, len(p.creds))
	copy(out, p.creds)
	return out
}

// Labels lists log-safe identifiers in pool order.
func (p *Pool) Labels() []string {
	out := make([]string, 0, p.Len())
	for _, c := range p.Credentials() {
		out = append(out, c.String())
	}
	return out
}
