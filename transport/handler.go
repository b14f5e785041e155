package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"github.com/adamwoolhether/podio/transport/download"
)

// Handler turns a successful response into the value returned by
// [Transport.Call]. Responses with a status of 400 or above never reach
// a Handler. The body is closed by the Transport once the handler returns.
type Handler func(resp *http.Response) (any, error)

// DecodeJSON is the default handler. A body of zero bytes decodes to an
// empty map; anything else, whitespace included, must be a single UTF-8
// JSON value.
func DecodeJSON(useNumber bool) Handler {
	return func(resp *http.Response) (any, error) {
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("reading response body: %w", err)
		}

		if len(data) == 0 {
			return map[string]any{}, nil
		}

		if !utf8.Valid(data) {
			return nil, &FailedRequestError{Payload: string(data), Err: errors.New("body is not valid utf-8")}
		}

		d := json.NewDecoder(bytes.NewReader(data))
		if useNumber {
			d.UseNumber()
		}

		var out any
		if err := d.Decode(&out); err != nil {
			return nil, &FailedRequestError{Payload: string(data), Err: err}
		}
		if d.More() {
			return nil, &FailedRequestError{Payload: string(data), Err: errors.New("unexpected data after json value")}
		}

		return out, nil
	}
}

// Raw returns the response body as []byte.
func Raw() Handler {
	return func(resp *http.Response) (any, error) {
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("reading response body: %w", err)
		}
		return data, nil
	}
}

// Discard ignores the body and returns nil.
func Discard() Handler {
	return func(*http.Response) (any, error) {
		return nil, nil
	}
}

// ToFile streams the body into destPath and returns a [download.Result].
func ToFile(destPath string, logger *slog.Logger, opts ...download.Option) Handler {
	return func(resp *http.Response) (any, error) {
		ctx := context.Background()
		if resp.Request != nil {
			ctx = resp.Request.Context()
		}

		res, err := download.ToFile(ctx, resp.Body, resp.ContentLength, destPath, logger, opts...)
		if err != nil {
			return nil, fmt.Errorf("saving file: %w", err)
		}
		return res, nil
	}
}

func handlerFrom(v any) (Handler, error) {
	switch h := v.(type) {
	case Handler:
		return h, nil
	case func(*http.Response) (any, error):
		return h, nil
	default:
		return nil, fmt.Errorf("%w: %q must be a transport.Handler, got %T", ErrInvalidParam, KeyHandler, v)
	}
}
