package logging

// ErrorKind maps an upstream status and error presence to a short,
// low-cardinality label for logs and metrics.
func ErrorKind(status int, hasErr bool) string {
	if hasErr && status == 0 {
		return "network_error"
	}
	switch {
	case status == 429:
		return "rate_limited"
	case status == 401 || status == 403:
		return "auth_error"
	case status >= 500 && status < 600:
		return "upstream_5xx"
	case status >= 400 && status < 500:
		return "upstream_4xx"
	}
	if hasErr {
		return "error"
	}
	return "ok"
}
