// Package podio is a client for the Podio REST API. A [Client] wraps a
// [transport.Transport] and exposes the API areas by name:
//
//	c, err := podio.OAuthClient(ctx, key, secret, login, password, "my-app/1.0", "")
//	item, err := c.Item().Find(ctx, 42, false, nil)
//
// Endpoints without a dedicated area method are reached through the
// embedded Transport:
//
//	out, err := c.Path("item", 42, "value").Call(ctx, nil)
package podio

import (
	"context"
	"errors"
	"fmt"

	"github.com/adamwoolhether/podio/area"
	"github.com/adamwoolhether/podio/auth"
	"github.com/adamwoolhether/podio/header"
	"github.com/adamwoolhether/podio/transport"
)

// Client is a Transport bound to the API areas. Like its Transport it
// must not be shared between goroutines.
type Client struct {
	*transport.Transport
	authorizer *auth.Authorizer
}

// NewClient builds an unauthenticated Client. If not specified, the
// production host and the default http.Client are used.
func NewClient(opts ...transport.Option) (*Client, error) {
	t, err := transport.Build(opts...)
	if err != nil {
		return nil, err
	}
	return &Client{Transport: t}, nil
}

// AuthorizingClient builds a Client for domain whose calls carry the
// headers of authFactory plus keep-alive and user agent headers.
// An empty domain selects [transport.DefaultBaseURL].
func AuthorizingClient(domain string, authFactory header.Factory, userAgent string, opts ...transport.Option) (*Client, error) {
	if authFactory == nil {
		return nil, errors.New("auth factory must not be nil")
	}
	if domain == "" {
		domain = transport.DefaultBaseURL
	}

	base := []transport.Option{
		transport.WithBaseURL(domain),
		transport.WithHeaders(header.Build(authFactory, userAgent)),
	}
	return NewClient(append(base, opts...)...)
}

// OAuthClient authenticates as a user with the password grant and
// returns a Client acting on their behalf. The token is requested
// before OAuthClient returns.
func OAuthClient(ctx context.Context, key, secret, login, password, userAgent, domain string, opts ...transport.Option) (*Client, error) {
	return grantClient(ctx, auth.PasswordGrant{
		ClientID:     key,
		ClientSecret: secret,
		Username:     login,
		Password:     password,
	}, userAgent, domain, opts...)
}

// OAuthAppClient authenticates as an app with the app grant.
func OAuthAppClient(ctx context.Context, clientID, clientSecret, appID, appToken, userAgent, domain string, opts ...transport.Option) (*Client, error) {
	return grantClient(ctx, auth.AppGrant{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		AppID:        appID,
		AppToken:     appToken,
	}, userAgent, domain, opts...)
}

// GrantClient authenticates with any grant, letting the caller tune
// the token exchange through authOpts.
func GrantClient(ctx context.Context, grant auth.Grant, userAgent, domain string, authOpts []auth.Option, opts ...transport.Option) (*Client, error) {
	if domain == "" {
		domain = transport.DefaultBaseURL
	}

	authorizer, err := auth.NewAuthorizer(domain, grant, authOpts...)
	if err != nil {
		return nil, err
	}
	if err := authorizer.Authorize(ctx); err != nil {
		return nil, fmt.Errorf("authorizing: %w", err)
	}

	c, err := AuthorizingClient(domain, authorizer, userAgent, opts...)
	if err != nil {
		return nil, err
	}
	c.authorizer = authorizer

	return c, nil
}

func grantClient(ctx context.Context, grant auth.Grant, userAgent, domain string, opts ...transport.Option) (*Client, error) {
	return GrantClient(ctx, grant, userAgent, domain, nil, opts...)
}

// Authorizer returns the token holder of clients built from a grant,
// or nil.
func (c *Client) Authorizer() *auth.Authorizer {
	return c.authorizer
}

// Area looks an area up by name in [area.Default], e.g. "item".
func (c *Client) Area(name string) (any, error) {
	return area.Default.Lookup(name, c.Transport)
}
