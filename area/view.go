package area

import (
	"context"

	"github.com/adamwoolhether/podio/transport"
)

// View covers saved views of an app.
type View struct{ base }

func NewView(t *transport.Transport) *View { return &View{base{t}} }

func (v *View) Create(ctx context.Context, appID int, attributes any) (any, error) {
	return v.call(ctx, transport.MethodPost, jsonBody(attributes, Options{}), "view", "app", appID, "")
}

func (v *View) Delete(ctx context.Context, viewID int) (any, error) {
	return v.call(ctx, transport.MethodDelete, nil, "view", viewID)
}

// Get returns a view of an app. specifier is the view id, its name, or
// "last" for the view the user used last.
func (v *View) Get(ctx context.Context, appID int, specifier string) (any, error) {
	return v.call(ctx, transport.MethodGet, nil, "view", "app", appID, specifier)
}

// List returns the views of an app, optionally with the standard views.
func (v *View) List(ctx context.Context, appID int, includeStandard bool) (any, error) {
	return v.call(ctx, transport.MethodGet, transport.Params{"include_standard_views": includeStandard}, "view", "app", appID, "")
}

// MakeDefault makes a saved, active view the app default.
func (v *View) MakeDefault(ctx context.Context, viewID int) (any, error) {
	return v.call(ctx, transport.MethodPost, nil, "view", viewID, "default")
}

func (v *View) UpdateLast(ctx context.Context, appID int, attributes any) (any, error) {
	return v.call(ctx, transport.MethodPut, jsonBody(attributes, Options{}), "view", "app", appID, "last")
}

func (v *View) Update(ctx context.Context, viewID int, attributes any) (any, error) {
	return v.call(ctx, transport.MethodPut, jsonBody(attributes, Options{}), "view", viewID)
}
