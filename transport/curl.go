package transport

import (
	"log/slog"
	"net/http"
	"strings"

	"moul.io/http2curl"
)

// curlLogger is an http.RoundTripper dumping each request as a curl
// command before passing it on.
type curlLogger struct {
	base  http.RoundTripper
	logFn func() *slog.Logger
}

func (c curlLogger) RoundTrip(r *http.Request) (*http.Response, error) {
	logger := c.logFn()
	if logger == nil || !logger.Enabled(r.Context(), slog.LevelDebug) {
		return c.base.RoundTrip(r)
	}

	cpy := r.Clone(r.Context())
	cpy.Body = nil
	if r.GetBody != nil {
		b, err := r.GetBody()
		if err == nil {
			cpy.Body = b
		}
	}
	for k := range cpy.Header {
		if strings.EqualFold(k, "authorization") {
			cpy.Header.Set(k, "OAuth2 <redacted>")
		}
	}

	cmd, err := http2curl.GetCurlCommand(cpy)
	if err != nil {
		logger.Debug("podio request", "method", r.Method, "url", r.URL.String(), "curl_error", err)
	} else {
		logger.Debug("podio request", "curl", cmd.String())
	}

	return c.base.RoundTrip(r)
}
