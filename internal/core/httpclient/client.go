package httpclient

import (
	"net/http"
	"time"

	"greenboard/internal/core/logger"

	"go.uber.org/zap"
)

// LoggingRoundTripper captures request details for debugging.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
	// UserAgent, when non-empty, is set on every outgoing request.
	// Nominatim's usage policy requires an identifying User-Agent.
	UserAgent string
}

// RoundTrip executes the request and logs details.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if lrt.UserAgent != "" {
		req.Header.Set("User-Agent", lrt.UserAgent)
	}

	start := time.Now()

	logger.Get().Debug("HTTP Request Started",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	)

	resp, err := lrt.Proxied.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		logger.Get().Error("HTTP Request Failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Get().Debug("HTTP Request Completed",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// NewClient returns an http.Client with logging middleware.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &LoggingRoundTripper{
			Proxied: http.DefaultTransport,
		},
		Timeout: timeout,
	}
}

// NewClientWithUserAgent returns an http.Client that logs requests and
// stamps them with the given User-Agent.
func NewClientWithUserAgent(timeout time.Duration, userAgent string) *http.Client {
	return &http.Client{
		Transport: &LoggingRoundTripper{
			Proxied:   http.DefaultTransport,
			UserAgent: userAgent,
		},
		Timeout: timeout,
	}
}
