package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/adamwoolhether/podio/header"
	"github.com/adamwoolhether/podio/transport/throttle"
)

const tracerName = "github.com/adamwoolhether/podio/transport"

// Transport builds and fires API calls. Path segments and the method
// are accumulated by chained calls and consumed by [Transport.Call]:
//
//	t.Path("item", 42).Call(ctx, nil)            // GET <base>/item/42
//	t.POST().Path("item", "app").Call(ctx, p, 7) // POST <base>/item/app/7
//
// A Transport is reusable but must not be shared between goroutines
// while a chain is being built; give each goroutine its own.
type Transport struct {
	hc        *http.Client
	baseURL   string
	headers   header.Factory
	logger    *slog.Logger
	tracer    trace.Tracer
	useNumber bool

	segments []string
	method   Method
}

// Build creates a Transport. Without options calls go unauthenticated
// to [DefaultBaseURL] through [http.DefaultTransport].
func Build(optFns ...Option) (*Transport, error) {
	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying transport option: %w", err)
		}
	}

	t := &Transport{
		hc:        &http.Client{},
		baseURL:   DefaultBaseURL,
		headers:   header.Empty(),
		logger:    slog.Default(),
		tracer:    otel.Tracer(tracerName),
		useNumber: opts.useJSONNumber,
		method:    MethodGet,
	}

	if opts.baseURL != "" {
		u, err := url.Parse(opts.baseURL)
		if err != nil {
			return nil, fmt.Errorf("parsing base url: %w", err)
		}
		if u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("base url %q must include scheme and host", opts.baseURL)
		}
		t.baseURL = strings.TrimRight(opts.baseURL, "/")
	}

	if opts.client != nil {
		cpy := *opts.client
		t.hc = &cpy
	}
	if opts.logger != nil {
		t.logger = opts.logger
	}
	if opts.tracer != nil {
		t.tracer = opts.tracer
	}
	if opts.headers != nil {
		t.headers = opts.headers
	}
	if opts.userAgent != "" {
		t.headers = header.UserAgent(t.headers, opts.userAgent)
	}
	if opts.requestID {
		t.headers = header.RequestID(t.headers)
	}

	if opts.timeout != nil {
		t.hc.Timeout = *opts.timeout
	}
	if opts.noFollowRedirects {
		t.hc.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	var rt http.RoundTripper
	switch {
	case opts.rt != nil:
		rt = opts.rt
	case t.hc.Transport != nil:
		rt = t.hc.Transport
	default:
		rt = http.DefaultTransport
	}
	logFn := func() *slog.Logger { return t.logger }
	if opts.curl {
		rt = curlLogger{base: rt, logFn: logFn}
	}
	if opts.throttle != nil {
		throttled, err := throttle.NewRoundTripper(*opts.throttle, logFn, rt)
		if err != nil {
			return nil, fmt.Errorf("configuring throttle: %w", err)
		}
		rt = throttled
	}
	t.hc.Transport = rt

	return t, nil
}

// BaseURL returns the root every call is resolved against.
func (t *Transport) BaseURL() string {
	return t.baseURL
}

// Attr appends name to the path, unless it names a method, in which
// case that method is selected instead.
func (t *Transport) Attr(name string) *Transport {
	if m, ok := ParseMethod(name); ok {
		t.method = m
		return t
	}
	t.segments = append(t.segments, name)
	return t
}

// Path appends each segment in its string form. Method names are not
// special here.
func (t *Transport) Path(segments ...any) *Transport {
	for _, s := range segments {
		t.segments = append(t.segments, fmt.Sprint(s))
	}
	return t
}

// Method selects the method of the pending call. The last selection wins.
func (t *Transport) Method(m Method) *Transport {
	t.method = m
	return t
}

func (t *Transport) GET() *Transport    { return t.Method(MethodGet) }
func (t *Transport) POST() *Transport   { return t.Method(MethodPost) }
func (t *Transport) PUT() *Transport    { return t.Method(MethodPut) }
func (t *Transport) HEAD() *Transport   { return t.Method(MethodHead) }
func (t *Transport) DELETE() *Transport { return t.Method(MethodDelete) }

// Pending reports the method and path the next call would use.
func (t *Transport) Pending() (Method, string) {
	return t.method, strings.Join(t.segments, "/")
}

// Reset drops any accumulated path and selects GET again.
func (t *Transport) Reset() {
	t.segments = nil
	t.method = MethodGet
}

// Call appends args to the path, fires the request and returns the
// value produced by the handler, by default the decoded JSON body.
// The accumulated state is cleared whether or not the call succeeds.
func (t *Transport) Call(ctx context.Context, params Params, args ...any) (any, error) {
	t.Path(args...)
	method, path := t.Pending()
	defer t.Reset()

	if !method.Valid() {
		return nil, fmt.Errorf("%w: unknown method %q", ErrInvalidParam, method)
	}

	p := maps.Clone(params)
	if p == nil {
		p = Params{}
	}

	handler := DecodeJSON(t.useNumber)
	if h, ok := p[KeyHandler]; ok {
		delete(p, KeyHandler)
		if h != nil {
			var err error
			if handler, err = handlerFrom(h); err != nil {
				return nil, err
			}
		}
	}

	if u, ok := p[KeyURL]; ok {
		delete(p, KeyURL)
		override, isString := u.(string)
		if !isString {
			return nil, fmt.Errorf("%w: %q must be a string, got %T", ErrInvalidParam, KeyURL, u)
		}
		path = strings.TrimPrefix(override, "/")
	}

	target := t.baseURL + "/" + path

	b, err := resolveBody(method, p)
	if err != nil {
		return nil, err
	}

	query, err := queryValues(method, p)
	if err != nil {
		return nil, err
	}
	target = appendQuery(target, query)

	ctx, span := t.tracer.Start(ctx, "podio.transport.call", trace.WithAttributes(
		attribute.String("http.request.method", string(method)),
		attribute.String("podio.path", "/"+path),
	))
	defer span.End()

	result, err := t.do(ctx, method, target, b, handler, span)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return result, nil
}

func (t *Transport) do(ctx context.Context, method Method, target string, b *body, handler Handler, span trace.Span) (any, error) {
	hdrs, err := t.headers.Headers()
	if err != nil {
		return nil, fmt.Errorf("building headers: %w", err)
	}

	var reader io.Reader
	if b.data != nil {
		reader = bytes.NewReader(b.data)
	}

	req, err := http.NewRequestWithContext(ctx, string(method), target, reader)
	if err != nil {
		return nil, fmt.Errorf("instantiating request: %w", err)
	}

	for k, v := range hdrs {
		req.Header.Set(k, v)
	}
	for k, v := range b.headers {
		req.Header.Set(k, v)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	return t.exec(req, handler, span)
}

// exec runs the request and hands successful responses to fn.
func (t *Transport) exec(req *http.Request, fn Handler, span trace.Span) (any, error) {
	start := time.Now()
	t.logger.Debug("podio call", "method", req.Method, "path", req.URL.Path)

	resp, err := t.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("exec http do: %w", err)
	}

	defer func() {
		if _, err := io.Copy(io.Discard, resp.Body); err != nil {
			t.logger.Error("failed to discard unused body", "error", err)
		}
		if err := resp.Body.Close(); err != nil {
			t.logger.Error("failed to close response body", "error", err)
		}
	}()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	t.logger.Debug("podio call done", "method", req.Method, "path", req.URL.Path, "status", resp.StatusCode, "took", time.Since(start).String())

	if resp.StatusCode >= http.StatusBadRequest {
		content, err := io.ReadAll(resp.Body)
		if err != nil {
			content = []byte("unable to read body")
		}
		return nil, newTransportError(resp.StatusCode, content)
	}

	out, err := fn(resp)
	if err != nil {
		return nil, fmt.Errorf("handling response: %w", err)
	}

	return out, nil
}
