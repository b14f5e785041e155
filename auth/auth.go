// Package auth obtains OAuth2 access tokens from the API's token
// endpoint and turns them into authorization headers.
//
// Two grants exchange credentials for a token: [PasswordGrant] for a
// user login and [AppGrant] for an app id and app token. [RefreshGrant]
// trades a refresh token for a new access token. An [Authorizer] runs a
// grant once and then serves as the authorization layer of a
// [header.Factory] chain.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// TokenPath is where token requests are sent, relative to the API root.
const TokenPath = "/oauth/token"

// maxTokenBody caps how much of a token response is read.
const maxTokenBody = 64 << 10

var (
	// ErrAuthentication is wrapped by every failed token exchange.
	ErrAuthentication = errors.New("authentication failed")
	// ErrNotAuthorized is returned by an Authorizer asked for headers
	// before it obtained a token.
	ErrNotAuthorized = errors.New("not authorized: no access token obtained")
)

// Error is returned when the token endpoint rejects a grant.
type Error struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: status %d, body: %s", e.Err, e.StatusCode, e.Body)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Token is an access token as issued by the token endpoint.
type Token struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresIn    int       `json:"expires_in"`
	ObtainedAt   time.Time `json:"-"`
}

// Header returns the authorization header for the token.
func (t Token) Header() map[string]string {
	return map[string]string{"authorization": "OAuth2 " + t.AccessToken}
}

// Expiry is when the token stops being valid. It is zero when the
// endpoint sent no lifetime.
func (t Token) Expiry() time.Time {
	if t.ExpiresIn <= 0 || t.ObtainedAt.IsZero() {
		return time.Time{}
	}
	return t.ObtainedAt.Add(time.Duration(t.ExpiresIn) * time.Second)
}

// OAuth2 converts the token for use with golang.org/x/oauth2.
func (t Token) OAuth2() *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  t.AccessToken,
		TokenType:    "OAuth2",
		RefreshToken: t.RefreshToken,
		Expiry:       t.Expiry(),
	}
}

// Exchange posts grant to the token endpoint under domain and returns
// the issued token. Failures are never retried.
func Exchange(ctx context.Context, hc *http.Client, domain string, grant Grant) (Token, error) {
	if hc == nil {
		hc = http.DefaultClient
	}

	form, err := grant.Values()
	if err != nil {
		return Token{}, fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	endpoint := strings.TrimRight(domain, "/") + TokenPath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return Token{}, fmt.Errorf("instantiating token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := hc.Do(req)
	if err != nil {
		return Token{}, fmt.Errorf("%w: exec http do: %w", ErrAuthentication, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTokenBody))
	if err != nil {
		return Token{}, fmt.Errorf("%w: reading token response: %w", ErrAuthentication, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Token{}, &Error{StatusCode: resp.StatusCode, Body: string(body), Err: ErrAuthentication}
	}

	var tok Token
	if err := json.Unmarshal(body, &tok); err != nil {
		return Token{}, &Error{StatusCode: resp.StatusCode, Body: string(body), Err: fmt.Errorf("%w: decoding token: %w", ErrAuthentication, err)}
	}
	if tok.AccessToken == "" {
		return Token{}, &Error{StatusCode: resp.StatusCode, Body: string(body), Err: fmt.Errorf("%w: response has no access_token", ErrAuthentication)}
	}
	tok.ObtainedAt = time.Now()

	return tok, nil
}

// values is shared by the grants.
func values(grantType, clientID, clientSecret string, extra ...string) url.Values {
	v := url.Values{
		"grant_type":    {grantType},
		"client_id":     {clientID},
		"client_secret": {clientSecret},
	}
	for i := 0; i+1 < len(extra); i += 2 {
		v.Set(extra[i], extra[i+1])
	}
	return v
}
