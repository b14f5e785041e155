package area

import (
	"context"

	"github.com/adamwoolhether/podio/transport"
)

// Stream covers the activity streams: global, personal, and per org,
// space or app.
type Stream struct{ base }

func NewStream(t *transport.Transport) *Stream { return &Stream{base{t}} }

func (s *Stream) FindAll(ctx context.Context) (any, error) {
	return s.call(ctx, transport.MethodGet, nil, "stream", "")
}

func (s *Stream) FindAllPersonal(ctx context.Context) (any, error) {
	return s.call(ctx, transport.MethodGet, nil, "stream", "personal", "")
}

func (s *Stream) FindAllByOrgID(ctx context.Context, orgID int) (any, error) {
	return s.call(ctx, transport.MethodGet, nil, "stream", "org", orgID, "")
}

func (s *Stream) FindAllBySpaceID(ctx context.Context, spaceID int) (any, error) {
	return s.call(ctx, transport.MethodGet, nil, "stream", "space", spaceID, "")
}

// FindAllByAppID returns the items and tasks of an app as a stream.
func (s *Stream) FindAllByAppID(ctx context.Context, appID int) (any, error) {
	return s.call(ctx, transport.MethodGet, nil, "stream", "app", appID, "")
}

// FindByRef returns a single item, status or task as a stream object.
func (s *Stream) FindByRef(ctx context.Context, refType string, refID int) (any, error) {
	return s.call(ctx, transport.MethodGet, nil, "stream", refType, refID)
}
