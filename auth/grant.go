package auth

import (
	"net/url"

	"github.com/adamwoolhether/podio/internal/validate"
)

// Grant is a way of exchanging credentials for a token.
type Grant interface {
	// Values returns the form sent to the token endpoint.
	Values() (url.Values, error)
}

// PasswordGrant authenticates as a user.
type PasswordGrant struct {
	ClientID     string `form:"client_id" validate:"required"`
	ClientSecret string `form:"client_secret" validate:"required"`
	Username     string `form:"username" validate:"required"`
	Password     string `form:"password" validate:"required"`
}

func (g PasswordGrant) Values() (url.Values, error) {
	if err := validate.Check(g); err != nil {
		return nil, err
	}
	return values("password", g.ClientID, g.ClientSecret, "username", g.Username, "password", g.Password), nil
}

// AppGrant authenticates as an app.
type AppGrant struct {
	ClientID     string `form:"client_id" validate:"required"`
	ClientSecret string `form:"client_secret" validate:"required"`
	AppID        string `form:"app_id" validate:"required"`
	AppToken     string `form:"app_token" validate:"required"`
}

func (g AppGrant) Values() (url.Values, error) {
	if err := validate.Check(g); err != nil {
		return nil, err
	}
	return values("app", g.ClientID, g.ClientSecret, "app_id", g.AppID, "app_token", g.AppToken), nil
}

// RefreshGrant trades a refresh token for a new access token.
type RefreshGrant struct {
	ClientID     string `form:"client_id" validate:"required"`
	ClientSecret string `form:"client_secret" validate:"required"`
	RefreshToken string `form:"refresh_token" validate:"required"`
}

func (g RefreshGrant) Values() (url.Values, error) {
	if err := validate.Check(g); err != nil {
		return nil, err
	}
	return values("refresh_token", g.ClientID, g.ClientSecret, "refresh_token", g.RefreshToken), nil
}

// FieldError names a missing or invalid credential.
type FieldError = validate.FieldError

// FieldErrors lists every invalid credential of a grant.
type FieldErrors = validate.FieldErrors
