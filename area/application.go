package area

import (
	"context"

	"github.com/adamwoolhether/podio/transport"
)

// Application covers apps, the containers of items.
type Application struct{ base }

func NewApplication(t *transport.Transport) *Application { return &Application{base{t}} }

func (a *Application) Find(ctx context.Context, appID int) (any, error) {
	return a.call(ctx, transport.MethodGet, nil, "app", appID)
}

func (a *Application) Create(ctx context.Context, attributes any) (any, error) {
	return a.call(ctx, transport.MethodPost, jsonBody(attributes, Options{}), "app", "")
}

func (a *Application) Activate(ctx context.Context, appID int) (any, error) {
	return a.call(ctx, transport.MethodPost, nil, "app", appID, "activate")
}

func (a *Application) Deactivate(ctx context.Context, appID int) (any, error) {
	return a.call(ctx, transport.MethodPost, nil, "app", appID, "deactivate")
}

// AddField adds a field described by attributes to an app.
func (a *Application) AddField(ctx context.Context, appID int, attributes any) (any, error) {
	return a.call(ctx, transport.MethodPost, jsonBody(attributes, Options{}), "app", appID, "field", "")
}

func (a *Application) Delete(ctx context.Context, appID int) (any, error) {
	return a.call(ctx, transport.MethodDelete, nil, "app", appID)
}

// Dependencies lists the apps appID depends on.
func (a *Application) Dependencies(ctx context.Context, appID int) (any, error) {
	return a.call(ctx, transport.MethodGet, nil, "app", appID, "dependencies", "")
}

// Items lists the items of an app; params are sent as query parameters.
func (a *Application) Items(ctx context.Context, appID int, params transport.Params) (any, error) {
	return a.call(ctx, transport.MethodGet, params, "item", "app", appID, "")
}

// ListInSpace lists the apps visible in a space.
func (a *Application) ListInSpace(ctx context.Context, spaceID int) (any, error) {
	return a.call(ctx, transport.MethodGet, nil, "app", "space", spaceID, "")
}
