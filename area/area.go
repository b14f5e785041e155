// Package area groups the API's endpoints by resource. Each area is a
// thin set of calls issued through a shared [transport.Transport];
// areas can be looked up by name through a [Registry].
package area

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/mitchellh/mapstructure"

	"github.com/adamwoolhether/podio/transport"
)

// ErrUnknownArea is returned by [Registry.Lookup] for unregistered names.
var ErrUnknownArea = errors.New("unknown area")

// Options are the change flags accepted by create, update and delete calls.
type Options struct {
	// Silent suppresses stream bumps and notifications.
	Silent bool
	// NoHook skips webhooks for the change.
	NoHook bool
}

// query returns the flags as query parameters; defaults are left out.
func (o Options) query() map[string]any {
	q := map[string]any{}
	if o.Silent {
		q["silent"] = true
	}
	if o.NoHook {
		q["hook"] = false
	}
	return q
}

// base is embedded by every area.
type base struct {
	t *transport.Transport
}

func (b base) call(ctx context.Context, m transport.Method, params transport.Params, path ...any) (any, error) {
	return b.t.Method(m).Path(path...).Call(ctx, params)
}

// jsonBody sends attributes as the JSON body, with opts in the query.
func jsonBody(attributes any, opts Options) transport.Params {
	return transport.Params{
		transport.KeyType:  transport.ContentTypeJSON,
		transport.KeyBody:  attributes,
		transport.KeyQuery: opts.query(),
	}
}

// Decode copies a decoded JSON result into dst, matching json tags.
func Decode(result any, dst any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           dst,
	})
	if err != nil {
		return fmt.Errorf("creating decoder: %w", err)
	}
	if err := dec.Decode(result); err != nil {
		return fmt.Errorf("decoding result: %w", err)
	}
	return nil
}

// Constructor binds an area to a transport.
type Constructor func(*transport.Transport) any

// Registry maps area names to their constructors. Names are case
// insensitive.
type Registry struct {
	mu    sync.RWMutex
	ctors map[string]Constructor
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{ctors: map[string]Constructor{}}
}

// Register adds an area. Registering a name twice is an error.
func (r *Registry) Register(name string, ctor Constructor) error {
	if name == "" || ctor == nil {
		return errors.New("area name and constructor are required")
	}

	key := strings.ToLower(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ctors[key]; ok {
		return fmt.Errorf("area %q already registered", key)
	}
	r.ctors[key] = ctor

	return nil
}

// Lookup builds the named area bound to t.
func (r *Registry) Lookup(name string, t *transport.Transport) (any, error) {
	r.mu.RLock()
	ctor, ok := r.ctors[strings.ToLower(name)]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownArea, name)
	}
	return ctor(t), nil
}

// Names lists the registered areas in order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.ctors))
	for name := range r.ctors {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Default holds every area of this package.
var Default = defaultRegistry()

func defaultRegistry() *Registry {
	r := NewRegistry()
	for name, ctor := range map[string]Constructor{
		"application":  func(t *transport.Transport) any { return NewApplication(t) },
		"comment":      func(t *transport.Transport) any { return NewComment(t) },
		"connection":   func(t *transport.Transport) any { return NewConnection(t) },
		"contact":      func(t *transport.Transport) any { return NewContact(t) },
		"conversation": func(t *transport.Transport) any { return NewConversation(t) },
		"embed":        func(t *transport.Transport) any { return NewEmbed(t) },
		"files":        func(t *transport.Transport) any { return NewFiles(t) },
		"hook":         func(t *transport.Transport) any { return NewHook(t) },
		"item":         func(t *transport.Transport) any { return NewItem(t) },
		"notification": func(t *transport.Transport) any { return NewNotification(t) },
		"org":          func(t *transport.Transport) any { return NewOrg(t) },
		"search":       func(t *transport.Transport) any { return NewSearch(t) },
		"space":        func(t *transport.Transport) any { return NewSpace(t) },
		"status":       func(t *transport.Transport) any { return NewStatus(t) },
		"stream":       func(t *transport.Transport) any { return NewStream(t) },
		"task":         func(t *transport.Transport) any { return NewTask(t) },
		"user":         func(t *transport.Transport) any { return NewUser(t) },
		"view":         func(t *transport.Transport) any { return NewView(t) },
	} {
		if err := r.Register(name, ctor); err != nil {
			panic(err)
		}
	}
	return r
}
