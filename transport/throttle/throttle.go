package throttle

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

var (
	ErrMustBePositive = errors.New("must be greater than zero")
	ErrWaitingFailed  = errors.New("limiter waiting failed")
	ErrContextEnded   = errors.New("throttle context ended")
)

// Podio enforces its quotas per hour, so limits are usually expressed
// as a fractional number of calls per second.
const (
	// StandardPerHour is the API's default quota for most calls.
	StandardPerHour = 5000
	// RateLimitedPerHour is the quota for calls flagged as rate limited.
	RateLimitedPerHour = 1000
)

// Config holds the calls-per-second limit and the burst size.
type Config struct {
	PerSecond float64
	Burst     int
}

// PerHour converts an hourly quota into a Config.
func PerHour(calls, burst int) Config {
	return Config{PerSecond: float64(calls) / time.Hour.Seconds(), Burst: burst}
}

// throttle is an http.RoundTripper restricting outbound API calls
// with a token bucket.
type throttle struct {
	limiter *rate.Limiter
	cfg     Config
	next    http.RoundTripper
	logFn   func() *slog.Logger
}

// NewRoundTripper wraps next with a token bucket limiter. logFn is resolved on
// every call; when it returns nil no exhaustion events are logged.
func NewRoundTripper(cfg Config, logFn func() *slog.Logger, next http.RoundTripper) (http.RoundTripper, error) {
	if cfg.PerSecond <= 0 || cfg.Burst <= 0 {
		return nil, fmt.Errorf("per second[%g] and burst[%d] %w", cfg.PerSecond, cfg.Burst, ErrMustBePositive)
	}
	if next == nil {
		next = http.DefaultTransport
	}
	if logFn == nil {
		logFn = func() *slog.Logger { return nil }
	}

	return &throttle{
		limiter: rate.NewLimiter(rate.Limit(cfg.PerSecond), cfg.Burst),
		cfg:     cfg,
		next:    next,
		logFn:   logFn,
	}, nil
}

func (t *throttle) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w early: %w", ErrContextEnded, err)
	}

	if logger := t.logFn(); logger != nil && t.limiter.Tokens() < 1 {
		start := time.Now()
		logger.Info("podio call throttled", "per_second", t.cfg.PerSecond, "burst", t.cfg.Burst, "path", r.URL.Path)
		defer func() {
			logger.Info("podio throttle released", "waited", time.Since(start).String(), "path", r.URL.Path)
		}()
	}

	if err := t.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWaitingFailed, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w post-wait: %w", ErrContextEnded, err)
	}

	return t.next.RoundTrip(r)
}
