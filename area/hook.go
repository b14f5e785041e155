package area

import (
	"context"

	"github.com/adamwoolhether/podio/transport"
)

// Hook covers webhooks.
type Hook struct{ base }

func NewHook(t *transport.Transport) *Hook { return &Hook{base{t}} }

// Create registers a webhook on hookableType/hookableID.
func (h *Hook) Create(ctx context.Context, hookableType string, hookableID int, attributes any) (any, error) {
	return h.call(ctx, transport.MethodPost, jsonBody(attributes, Options{}), "hook", hookableType, hookableID, "")
}

// Verify asks the API to send a verification code to the hook url.
func (h *Hook) Verify(ctx context.Context, hookID int) (any, error) {
	return h.call(ctx, transport.MethodPost, nil, "hook", hookID, "verify", "request")
}

// Validate completes verification with the received code.
func (h *Hook) Validate(ctx context.Context, hookID int, code string) (any, error) {
	return h.call(ctx, transport.MethodPost, transport.Params{"code": code}, "hook", hookID, "verify", "validate")
}

func (h *Hook) Delete(ctx context.Context, hookID int) (any, error) {
	return h.call(ctx, transport.MethodDelete, nil, "hook", hookID)
}

func (h *Hook) FindAllFor(ctx context.Context, hookableType string, hookableID int) (any, error) {
	return h.call(ctx, transport.MethodGet, nil, "hook", hookableType, hookableID, "")
}
