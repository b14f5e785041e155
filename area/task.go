package area

import (
	"context"

	"github.com/adamwoolhether/podio/transport"
)

type Task struct{ base }

func NewTask(t *transport.Transport) *Task { return &Task{base{t}} }

// Get lists tasks filtered by params.
func (t *Task) Get(ctx context.Context, params transport.Params) (any, error) {
	return t.call(ctx, transport.MethodGet, params, "task", "")
}

func (t *Task) Delete(ctx context.Context, taskID int) (any, error) {
	return t.call(ctx, transport.MethodDelete, nil, "task", taskID)
}

func (t *Task) Complete(ctx context.Context, taskID int) (any, error) {
	return t.call(ctx, transport.MethodPost, nil, "task", taskID, "complete")
}

func (t *Task) Create(ctx context.Context, attributes any, opts Options) (any, error) {
	return t.call(ctx, transport.MethodPost, jsonBody(attributes, opts), "task", "")
}

// CreateFor creates a task attached to the object refType/refID.
func (t *Task) CreateFor(ctx context.Context, refType string, refID int, attributes any, opts Options) (any, error) {
	return t.call(ctx, transport.MethodPost, jsonBody(attributes, opts), "task", refType, refID, "")
}
