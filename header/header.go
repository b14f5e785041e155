// Package header composes the headers sent with every API call.
//
// A [Factory] produces a fresh header map each time it is asked. Layers
// wrap another Factory, copy what it returns and set their own fields
// on top, so an authorization factory can be decorated with a user
// agent, keep-alive hints or a request id without any layer touching
// the maps produced by the others.
package header

import (
	"fmt"
	"maps"

	"github.com/google/uuid"
)

const (
	UserAgentKey   = "User-Agent"
	ConnectionKey  = "Connection"
	RequestIDKey   = "X-Request-Id"
	KeepAliveValue = "Keep-Alive"
)

// Factory produces the headers for the next request.
type Factory interface {
	Headers() (map[string]string, error)
}

// FactoryFunc adapts a plain function to a Factory.
type FactoryFunc func() (map[string]string, error)

func (f FactoryFunc) Headers() (map[string]string, error) {
	return f()
}

// Empty returns a Factory producing an empty map.
func Empty() Factory {
	return FactoryFunc(func() (map[string]string, error) {
		return map[string]string{}, nil
	})
}

// layer copies the result of base and applies set to the copy.
type layer struct {
	base Factory
	name string
	set  func(map[string]string)
}

func (l layer) Headers() (map[string]string, error) {
	h, err := l.base.Headers()
	if err != nil {
		return nil, fmt.Errorf("%s headers: %w", l.name, err)
	}

	out := make(map[string]string, len(h)+1)
	maps.Copy(out, h)
	l.set(out)

	return out, nil
}

func wrap(base Factory, name string, set func(map[string]string)) Factory {
	if base == nil {
		base = Empty()
	}
	return layer{base: base, name: name, set: set}
}

// Static layers fixed values over base. values is copied.
func Static(base Factory, values map[string]string) Factory {
	fixed := maps.Clone(values)
	return wrap(base, "static", func(h map[string]string) {
		maps.Copy(h, fixed)
	})
}

// UserAgent sets the User-Agent header.
func UserAgent(base Factory, ua string) Factory {
	return wrap(base, "user agent", func(h map[string]string) {
		h[UserAgentKey] = ua
	})
}

// KeepAlive asks the server to keep the connection open.
func KeepAlive(base Factory) Factory {
	return wrap(base, "keep alive", func(h map[string]string) {
		h[ConnectionKey] = KeepAliveValue
	})
}

// RequestID tags every request with a new random id.
func RequestID(base Factory) Factory {
	return wrap(base, "request id", func(h map[string]string) {
		h[RequestIDKey] = uuid.NewString()
	})
}

// Build is the standard chain used by API clients: the authorization
// headers, a keep-alive hint and, when userAgent is set, a User-Agent.
func Build(auth Factory, userAgent string) Factory {
	f := KeepAlive(auth)
	if userAgent != "" {
		f = UserAgent(f, userAgent)
	}
	return f
}
