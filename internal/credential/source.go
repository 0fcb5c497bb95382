package credential

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// CredentialSource supplies raw keys in the order they should be tried.
type CredentialSource interface {
	Name() string
	Load(ctx context.Context) ([]string, error)
}

// StaticSource serves a fixed key list, typically from the config file.
type StaticSource struct {
	name string
	keys []string
}

// NewStaticSource copies keys so later mutation by the caller has no effect.
func NewStaticSource(name string, keys []string) *StaticSource {
	return &StaticSource{name: name, keys: append([]string(nil), keys...)}
}

func (s *StaticSource) Name() string { return s.name }

func (s *StaticSource) Load(context.Context) ([]string, error) {
	return append([]string(nil), s.keys...), nil
}

// LoadPool concatenates sources in order, drops exact duplicates and builds the pool.
// It runs once at startup; the result is never mutated.
func LoadPool(ctx context.Context, sources ...CredentialSource) (*Pool, error) {
	var keys []string
	seen := make(map[string]struct{})
	for _, src := range sources {
		if src == nil {
			continue
		}
		loaded, err := src.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("load credentials from %s: %w", src.Name(), err)
		}
		for i, k := range loaded {
			if _, dup := seen[k]; dup {
				log.WithFields(log.Fields{"source": src.Name(), "position": i}).Warn("duplicate credential skipped")
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	pool, err := NewPool(keys)
	if err != nil {
		return nil, err
	}
	log.WithField("credentials", pool.Len()).Info("credential pool ready")
	return pool, nil
}
