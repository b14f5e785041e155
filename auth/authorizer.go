package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"golang.org/x/oauth2"
)

// Option configures an [Authorizer].
type Option func(*Authorizer) error

// WithHTTPClient sets the client used for token requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(a *Authorizer) error {
		if hc == nil {
			return errors.New("client must not be nil")
		}
		a.hc = hc
		return nil
	}
}

// WithLogger injects a custom [slog.Logger].
func WithLogger(logger *slog.Logger) Option {
	return func(a *Authorizer) error {
		a.logger = logger
		return nil
	}
}

// WithToken seeds the Authorizer with a previously obtained token, so
// no exchange is needed.
func WithToken(tok Token) Option {
	return func(a *Authorizer) error {
		if tok.AccessToken == "" {
			return errors.New("token must carry an access token")
		}
		a.token = &tok
		return nil
	}
}

// Authorizer produces authorization headers from a token obtained
// through its grant. It is the innermost layer of a header chain and
// is safe for concurrent use.
type Authorizer struct {
	domain string
	grant  Grant
	hc     *http.Client
	logger *slog.Logger

	mu    sync.RWMutex
	token *Token
}

// NewAuthorizer prepares an Authorizer for grant against domain.
// No request is made until [Authorizer.Authorize].
func NewAuthorizer(domain string, grant Grant, opts ...Option) (*Authorizer, error) {
	if domain == "" {
		return nil, errors.New("domain must not be empty")
	}
	if grant == nil {
		return nil, errors.New("grant must not be nil")
	}

	a := &Authorizer{
		domain: domain,
		grant:  grant,
		hc:     http.DefaultClient,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, fmt.Errorf("applying auth option: %w", err)
		}
	}

	return a, nil
}

// Authorize runs the grant and keeps the resulting token.
func (a *Authorizer) Authorize(ctx context.Context) error {
	return a.exchange(ctx, a.grant)
}

// Refresh replaces the current token using its refresh token.
func (a *Authorizer) Refresh(ctx context.Context) error {
	tok, ok := a.Current()
	if !ok {
		return ErrNotAuthorized
	}
	if tok.RefreshToken == "" {
		return fmt.Errorf("%w: token has no refresh token", ErrAuthentication)
	}

	client, secret := clientCredentials(a.grant)
	return a.exchange(ctx, RefreshGrant{ClientID: client, ClientSecret: secret, RefreshToken: tok.RefreshToken})
}

func (a *Authorizer) exchange(ctx context.Context, grant Grant) error {
	tok, err := Exchange(ctx, a.hc, a.domain, grant)
	if err != nil {
		a.logger.Error("podio token exchange failed", "grant", grantName(grant), "error", err)
		return err
	}

	a.mu.Lock()
	a.token = &tok
	a.mu.Unlock()

	a.logger.Debug("podio token obtained", "grant", grantName(grant), "expires_in", tok.ExpiresIn)

	return nil
}

// Current returns the token in use, if any.
func (a *Authorizer) Current() (Token, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.token == nil {
		return Token{}, false
	}
	return *a.token, true
}

// Headers implements header.Factory.
func (a *Authorizer) Headers() (map[string]string, error) {
	tok, ok := a.Current()
	if !ok {
		return nil, ErrNotAuthorized
	}
	return tok.Header(), nil
}

// Token implements oauth2.TokenSource.
func (a *Authorizer) Token() (*oauth2.Token, error) {
	tok, ok := a.Current()
	if !ok {
		return nil, ErrNotAuthorized
	}
	return tok.OAuth2(), nil
}

func clientCredentials(g Grant) (string, string) {
	switch v := g.(type) {
	case PasswordGrant:
		return v.ClientID, v.ClientSecret
	case AppGrant:
		return v.ClientID, v.ClientSecret
	case RefreshGrant:
		return v.ClientID, v.ClientSecret
	}
	return "", ""
}

func grantName(g Grant) string {
	switch g.(type) {
	case PasswordGrant:
		return "password"
	case AppGrant:
		return "app"
	case RefreshGrant:
		return "refresh_token"
	}
	return fmt.Sprintf("%T", g)
}
