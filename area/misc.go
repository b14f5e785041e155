package area

import (
	"context"

	"github.com/adamwoolhether/podio/transport"
)

// Connection covers contact connections to external sources.
type Connection struct{ base }

func NewConnection(t *transport.Transport) *Connection { return &Connection{base{t}} }

func (c *Connection) Create(ctx context.Context, attributes any) (any, error) {
	return c.call(ctx, transport.MethodPost, jsonBody(attributes, Options{}), "connection", "")
}

func (c *Connection) Find(ctx context.Context, connectionID int) (any, error) {
	return c.call(ctx, transport.MethodGet, nil, "connection", connectionID)
}

func (c *Connection) Delete(ctx context.Context, connectionID int) (any, error) {
	return c.call(ctx, transport.MethodDelete, nil, "connection", connectionID)
}

// Reload pulls the connection's contacts again.
func (c *Connection) Reload(ctx context.Context, connectionID int) (any, error) {
	return c.call(ctx, transport.MethodPost, nil, "connection", connectionID, "load")
}

type Embed struct{ base }

func NewEmbed(t *transport.Transport) *Embed { return &Embed{base{t}} }

func (e *Embed) Create(ctx context.Context, attributes any) (any, error) {
	return e.call(ctx, transport.MethodPost, jsonBody(attributes, Options{}), "embed", "")
}

type Contact struct{ base }

func NewContact(t *transport.Transport) *Contact { return &Contact{base{t}} }

// Create adds a contact to a space.
func (c *Contact) Create(ctx context.Context, spaceID int, attributes any) (any, error) {
	return c.call(ctx, transport.MethodPost, jsonBody(attributes, Options{}), "contact", "space", spaceID, "")
}

type Search struct{ base }

func NewSearch(t *transport.Transport) *Search { return &Search{base{t}} }

// App searches the items of an app.
func (s *Search) App(ctx context.Context, appID int, attributes any) (any, error) {
	return s.call(ctx, transport.MethodPost, jsonBody(attributes, Options{}), "search", "app", appID, "")
}
