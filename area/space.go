package area

import (
	"context"
	"fmt"

	"github.com/adamwoolhether/podio/transport"
)

// Space covers workspaces.
type Space struct{ base }

func NewSpace(t *transport.Transport) *Space { return &Space{base{t}} }

func (s *Space) Find(ctx context.Context, spaceID int) (any, error) {
	return s.call(ctx, transport.MethodGet, nil, "space", spaceID)
}

// FindByURL resolves the full URL of a space to the space. The query
// parameter is named like the reserved url key, so it goes through KeyQuery.
func (s *Space) FindByURL(ctx context.Context, spaceURL string) (any, error) {
	return s.call(ctx, transport.MethodGet, transport.Params{
		transport.KeyQuery: map[string]string{"url": spaceURL},
	}, "space", "url")
}

// IDByURL resolves the full URL of a space to its id.
func (s *Space) IDByURL(ctx context.Context, spaceURL string) (int, error) {
	out, err := s.FindByURL(ctx, spaceURL)
	if err != nil {
		return 0, err
	}

	var space struct {
		SpaceID int `json:"space_id"`
	}
	if err := Decode(out, &space); err != nil {
		return 0, err
	}
	if space.SpaceID == 0 {
		return 0, fmt.Errorf("no space_id for %s", spaceURL)
	}

	return space.SpaceID, nil
}

func (s *Space) FindAllForOrg(ctx context.Context, orgID int) (any, error) {
	return s.call(ctx, transport.MethodGet, nil, "org", orgID, "space", "")
}

func (s *Space) Create(ctx context.Context, attributes any) (any, error) {
	return s.call(ctx, transport.MethodPost, jsonBody(attributes, Options{}), "space", "")
}

type User struct{ base }

func NewUser(t *transport.Transport) *User { return &User{base{t}} }

// Current returns the authenticated user.
func (u *User) Current(ctx context.Context) (any, error) {
	return u.call(ctx, transport.MethodGet, nil, "user", "")
}

type Org struct{ base }

func NewOrg(t *transport.Transport) *Org { return &Org{base{t}} }

func (o *Org) All(ctx context.Context) (any, error) {
	return o.call(ctx, transport.MethodGet, nil, "org", "")
}
