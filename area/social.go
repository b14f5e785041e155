package area

import (
	"context"

	"github.com/adamwoolhether/podio/transport"
)

type Status struct{ base }

func NewStatus(t *transport.Transport) *Status { return &Status{base{t}} }

func (s *Status) Find(ctx context.Context, statusID int) (any, error) {
	return s.call(ctx, transport.MethodGet, nil, "status", statusID)
}

// Create posts a status message to a space.
func (s *Status) Create(ctx context.Context, spaceID int, attributes any) (any, error) {
	return s.call(ctx, transport.MethodPost, jsonBody(attributes, Options{}), "status", "space", spaceID, "")
}

type Notification struct{ base }

func NewNotification(t *transport.Transport) *Notification { return &Notification{base{t}} }

func (n *Notification) Find(ctx context.Context, notificationID int) (any, error) {
	return n.call(ctx, transport.MethodGet, nil, "notification", notificationID)
}

func (n *Notification) FindAll(ctx context.Context) (any, error) {
	return n.call(ctx, transport.MethodGet, nil, "notification", "")
}

func (n *Notification) InboxNewCount(ctx context.Context) (any, error) {
	return n.call(ctx, transport.MethodGet, nil, "notification", "inbox", "new", "count")
}

func (n *Notification) MarkAsViewed(ctx context.Context, notificationID int) (any, error) {
	return n.call(ctx, transport.MethodPost, nil, "notification", notificationID, "viewed")
}

func (n *Notification) MarkAllAsViewed(ctx context.Context) (any, error) {
	return n.call(ctx, transport.MethodPost, nil, "notification", "viewed")
}

func (n *Notification) Star(ctx context.Context, notificationID int) (any, error) {
	return n.call(ctx, transport.MethodPost, nil, "notification", notificationID, "star")
}

func (n *Notification) Unstar(ctx context.Context, notificationID int) (any, error) {
	return n.call(ctx, transport.MethodDelete, nil, "notification", notificationID, "star")
}

type Conversation struct{ base }

func NewConversation(t *transport.Transport) *Conversation { return &Conversation{base{t}} }

func (c *Conversation) FindAll(ctx context.Context) (any, error) {
	return c.call(ctx, transport.MethodGet, nil, "conversation", "")
}

func (c *Conversation) Find(ctx context.Context, conversationID int) (any, error) {
	return c.call(ctx, transport.MethodGet, nil, "conversation", conversationID)
}

func (c *Conversation) Create(ctx context.Context, attributes any) (any, error) {
	return c.call(ctx, transport.MethodPost, jsonBody(attributes, Options{}), "conversation", "")
}

func (c *Conversation) Star(ctx context.Context, conversationID int) (any, error) {
	return c.call(ctx, transport.MethodPost, nil, "conversation", conversationID, "star")
}

func (c *Conversation) Unstar(ctx context.Context, conversationID int) (any, error) {
	return c.call(ctx, transport.MethodDelete, nil, "conversation", conversationID, "star")
}

func (c *Conversation) Leave(ctx context.Context, conversationID int) (any, error) {
	return c.call(ctx, transport.MethodPost, nil, "conversation", conversationID, "leave")
}
