package transport

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/adamwoolhether/podio/header"
	"github.com/adamwoolhether/podio/transport/throttle"
)

// DefaultBaseURL is the production API host.
const DefaultBaseURL = "https://api.podio.com"

// Option is a functional option for configuring a [Transport] via [Build].
type Option func(*options) error

type options struct {
	baseURL           string
	headers           header.Factory
	userAgent         string
	requestID         bool
	client            *http.Client
	rt                http.RoundTripper
	timeout           *time.Duration
	throttle          *throttle.Config
	noFollowRedirects bool
	logger            *slog.Logger
	tracer            trace.Tracer
	curl              bool
	useJSONNumber     bool
}

// WithBaseURL sets the API root every path is resolved against.
func WithBaseURL(base string) Option {
	return func(o *options) error {
		if base == "" {
			return errors.New("base url must not be empty")
		}
		o.baseURL = base
		return nil
	}
}

// WithHeaders sets the header factory consulted before every call,
// typically an authorizer wrapped by [header.Build].
func WithHeaders(f header.Factory) Option {
	return func(o *options) error {
		if f == nil {
			return errors.New("header factory must not be nil")
		}
		o.headers = f
		return nil
	}
}

// WithUserAgent adds a User-Agent layer on top of the header factory.
func WithUserAgent(ua string) Option {
	return func(o *options) error {
		o.userAgent = ua
		return nil
	}
}

// WithRequestID tags every call with a fresh X-Request-Id header.
func WithRequestID() Option {
	return func(o *options) error {
		o.requestID = true
		return nil
	}
}

// WithClient replaces the default [http.Client]. The client is copied.
func WithClient(hc *http.Client) Option {
	return func(o *options) error {
		if hc == nil {
			return errors.New("client must not be nil")
		}
		o.client = hc
		return nil
	}
}

// WithTransport sets the base [http.RoundTripper].
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) error {
		if rt == nil {
			return errors.New("round tripper must not be nil")
		}
		o.rt = rt
		return nil
	}
}

// WithTimeout bounds every call, including reading the response.
func WithTimeout(d time.Duration) Option {
	return func(o *options) error {
		if d < 0 {
			return errors.New("timeout must not be negative")
		}
		o.timeout = &d
		return nil
	}
}

// WithThrottle limits outgoing calls, see [throttle.PerHour].
func WithThrottle(cfg throttle.Config) Option {
	return func(o *options) error {
		if cfg.PerSecond <= 0 || cfg.Burst <= 0 {
			return fmt.Errorf("per second[%g] and burst[%d] %w", cfg.PerSecond, cfg.Burst, throttle.ErrMustBePositive)
		}
		o.throttle = &cfg
		return nil
	}
}

// WithNoFollowRedirects hands redirect responses to the handler as they are.
func WithNoFollowRedirects() Option {
	return func(o *options) error {
		o.noFollowRedirects = true
		return nil
	}
}

// WithLogger injects a custom [slog.Logger].
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}

// WithTracer sets the tracer used for call spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) error {
		if tracer == nil {
			return errors.New("tracer must not be nil")
		}
		o.tracer = tracer
		return nil
	}
}

// WithCurlLogging logs every outgoing request as a curl command at
// debug level. The authorization header is redacted.
func WithCurlLogging() Option {
	return func(o *options) error {
		o.curl = true
		return nil
	}
}

// WithJSONNumber makes the default handler decode numbers as
// [encoding/json.Number] instead of float64, keeping large ids exact.
func WithJSONNumber() Option {
	return func(o *options) error {
		o.useJSONNumber = true
		return nil
	}
}
