package gemini

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"strings"

	"nutriplan-go/internal/constants"
)

type ctxKey int

const ctxRequestID ctxKey = iota

// WithRequestID attaches the inbound request id so it can be forwarded upstream.
func WithRequestID(ctx context.Context, rid string) context.Context {
	if rid == "" {
		return ctx
	}
	return context.WithValue(ctx, ctxRequestID, rid)
}

func requestIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(ctxRequestID).(string); ok {
		return v
	}
	return ""
}

func userAgent() string {
	return fmt.Sprintf("nutriplan-go/%s (%s; %s)", constants.Version, runtime.GOOS, runtime.GOARCH)
}

// applyDefaultHeaders sets auth and client identification headers.
func (c *Client) applyDefaultHeaders(ctx context.Context, req *http.Request) {
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	req.Header.Set(constants.GeminiAPIKeyHeader, c.credential.Secret())
	req.Header.Set("User-Agent", userAgent())
	gv := strings.TrimPrefix(runtime.Version(), "go")
	if gv == "" {
		gv = "unknown"
	}
	req.Header.Set("X-Goog-Api-Client", "gl-go/"+gv)
	if rid := requestIDFrom(ctx); rid != "" {
		req.Header.Set("X-Client-Request-ID", rid)
	}
}
