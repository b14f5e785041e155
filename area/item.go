package area

import (
	"context"

	"github.com/adamwoolhether/podio/transport"
)

// Item covers items, the records stored in apps.
type Item struct{ base }

func NewItem(t *transport.Transport) *Item { return &Item{base{t}} }

// Find returns an item. basic selects the lighter representation;
// params are sent as query parameters.
func (i *Item) Find(ctx context.Context, itemID int, basic bool, params transport.Params) (any, error) {
	if basic {
		return i.call(ctx, transport.MethodGet, params, "item", itemID, "basic")
	}
	return i.call(ctx, transport.MethodGet, params, "item", itemID)
}

// Filter returns the items of an app matching attributes.
func (i *Item) Filter(ctx context.Context, appID int, attributes any) (any, error) {
	return i.call(ctx, transport.MethodPost, jsonBody(attributes, Options{}), "item", "app", appID, "filter", "")
}

// FilterByView returns the items of an app matching a saved view.
func (i *Item) FilterByView(ctx context.Context, appID, viewID int) (any, error) {
	return i.call(ctx, transport.MethodPost, nil, "item", "app", appID, "filter", viewID)
}

func (i *Item) FindAllByExternalID(ctx context.Context, appID int, externalID string) (any, error) {
	return i.call(ctx, transport.MethodGet, transport.Params{"external_id": externalID}, "item", "app", appID, "v2", "")
}

func (i *Item) Revisions(ctx context.Context, itemID int) (any, error) {
	return i.call(ctx, transport.MethodGet, nil, "item", itemID, "revision", "")
}

func (i *Item) RevisionDifference(ctx context.Context, itemID, fromRevision, toRevision int) (any, error) {
	return i.call(ctx, transport.MethodGet, nil, "item", itemID, "revision", fromRevision, toRevision)
}

func (i *Item) Values(ctx context.Context, itemID int) (any, error) {
	return i.call(ctx, transport.MethodGet, nil, "item", itemID, "value")
}

func (i *Item) ValuesV2(ctx context.Context, itemID int) (any, error) {
	return i.call(ctx, transport.MethodGet, nil, "item", itemID, "value", "v2")
}

// Create adds an item to an app.
func (i *Item) Create(ctx context.Context, appID int, attributes any, opts Options) (any, error) {
	return i.call(ctx, transport.MethodPost, jsonBody(attributes, opts), "item", "app", appID, "")
}

// Update changes an item. Webhooks still fire for silent updates
// unless NoHook is set.
func (i *Item) Update(ctx context.Context, itemID int, attributes any, opts Options) (any, error) {
	return i.call(ctx, transport.MethodPut, jsonBody(attributes, opts), "item", itemID)
}

// Delete removes an item. The response body is ignored.
func (i *Item) Delete(ctx context.Context, itemID int, opts Options) error {
	_, err := i.call(ctx, transport.MethodDelete, transport.Params{
		transport.KeyQuery:   opts.query(),
		transport.KeyHandler: transport.Discard(),
	}, "item", itemID)
	return err
}
