package credential

import (
	"context"
	"os"
	"sort"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// EnvSource loads credentials from numbered environment variables:
// GEMINI_API_KEY_1, GEMINI_API_KEY_2, ... tried in numeric order.
// A bare GEMINI_API_KEY is treated as position 0.
type EnvSource struct {
	prefix  string
	environ func() []string
}

// NewEnvSource creates a new environment variable credential source
func NewEnvSource() *EnvSource {
	return &EnvSource{prefix: "GEMINI_API_KEY", environ: os.Environ}
}

// WithEnviron replaces the environment reader, e.g. for tests.
func (s *EnvSource) WithEnviron(fn func() []string) *EnvSource {
	if fn != nil {
		s.environ = fn
	}
	return s
}

// Name returns the source identifier
func (s *EnvSource) Name() string {
	return "env"
}

type numberedKey struct {
	n   int
	val string
}

// Load retrieves all credentials from environment variables.
// Entries with a non-numeric suffix are ignored with a warning.
func (s *EnvSource) Load(ctx context.Context) ([]string, error) {
	var found []numberedKey
	for _, env := range s.environ() {
		key, val, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(key, s.prefix) {
			continue
		}
		suffix := strings.TrimPrefix(key, s.prefix)
		n := 0
		if suffix != "" {
			if !strings.HasPrefix(suffix, "_") {
				continue
			}
			parsed, err := strconv.Atoi(suffix[1:])
			if err != nil || parsed < 1 {
				log.Warnf("Ignoring credential environment variable with non-numeric suffix: %s", key)
				continue
			}
			n = parsed
		}
		found = append(found, numberedKey{n: n, val: strings.TrimSpace(val)})
	}

	sort.SliceStable(found, func(i, j int) bool { return found[i].n < found[j].n })
	out := make([]string, 0, len(found))
	for _, f := range found {
		out = append(out, f.val)
	}
	if len(out) > 0 {
		log.Infof("Loaded %d credential(s) from environment variables", len(out))
	}
	return out, nil
}
