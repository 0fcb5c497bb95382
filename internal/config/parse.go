package config

import (
	"fmt"
	"strconv"
)

// parsePort converts a numeric string into a TCP port (1-65535).
func parsePort(s string) (int, error) {
	port, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("invalid port number: %d", port)
	}
	return port, nil
}

func itoa(n int) string { return strconv.Itoa(n) }
