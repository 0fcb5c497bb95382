package monitoring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusClass(t *testing.T) {
	require.Equal(t, "error", StatusClass(0))
	require.Equal(t, "2xx", StatusClass(200))
	require.Equal(t, "4xx", StatusClass(429))
	require.Equal(t, "5xx", StatusClass(503))
	require.Equal(t, "5xx", StatusClass(700))
}
