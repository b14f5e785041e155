package area

import (
	"context"

	"github.com/adamwoolhether/podio/transport"
)

// Comment covers comments on items, statuses, tasks and other objects.
type Comment struct{ base }

func NewComment(t *transport.Transport) *Comment { return &Comment{base{t}} }

func (c *Comment) FindAll(ctx context.Context) (any, error) {
	return c.call(ctx, transport.MethodGet, nil, "comment", "")
}

func (c *Comment) Find(ctx context.Context, commentID int) (any, error) {
	return c.call(ctx, transport.MethodGet, nil, "comment", commentID)
}

// FindAllFor lists the comments on the object commentableType/commentableID.
func (c *Comment) FindAllFor(ctx context.Context, commentableType string, commentableID int) (any, error) {
	return c.call(ctx, transport.MethodGet, nil, "comment", commentableType, commentableID)
}

// FindRecentForShare lists recent comments on objects shared with the user.
func (c *Comment) FindRecentForShare(ctx context.Context) (any, error) {
	return c.call(ctx, transport.MethodGet, nil, "comment", "share", "")
}

func (c *Comment) LikedBy(ctx context.Context, commentID int) (any, error) {
	return c.call(ctx, transport.MethodGet, nil, "comment", commentID, "liked_by", "")
}

// Create adds a comment to the object commentableType/commentableID.
func (c *Comment) Create(ctx context.Context, commentableType string, commentableID int, attributes any) (any, error) {
	return c.call(ctx, transport.MethodPost, jsonBody(attributes, Options{}), "comment", commentableType, commentableID)
}

// Update replaces the text of a comment. The API takes a POST here.
func (c *Comment) Update(ctx context.Context, commentID int, attributes any) (any, error) {
	return c.call(ctx, transport.MethodPost, jsonBody(attributes, Options{}), "comment", commentID)
}

// Delete removes a comment. The response body is ignored.
func (c *Comment) Delete(ctx context.Context, commentID int) error {
	_, err := c.call(ctx, transport.MethodDelete, transport.Params{transport.KeyHandler: transport.Discard()}, "comment", commentID)
	return err
}
