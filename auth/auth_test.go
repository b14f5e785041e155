package auth_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/adamwoolhether/podio/auth"
	"github.com/adamwoolhether/podio/header"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/oauth2"
)

// tokenServer answers token requests with status and body and hands
// every received form to forms.
func tokenServer(t *testing.T, status int, body string) (*httptest.Server, chan url.Values) {
	t.Helper()

	forms := make(chan url.Values, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != auth.TokenPath {
			t.Errorf("exp path %s, got %s", auth.TokenPath, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("exp form content type, got %q", ct)
		}
		if err := r.ParseForm(); err != nil {
			t.Errorf("parsing form: %v", err)
		}
		forms <- r.PostForm

		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)

	return srv, forms
}

const okToken = `{"access_token":"acc","refresh_token":"ref","expires_in":28800}`

func TestExchange_Grants(t *testing.T) {
	testCases := []struct {
		name    string
		grant   auth.Grant
		expForm url.Values
	}{
		{
			name:  "password",
			grant: auth.PasswordGrant{ClientID: "cid", ClientSecret: "sec", Username: "me@example.com", Password: "pw"},
			expForm: url.Values{
				"grant_type":    {"password"},
				"client_id":     {"cid"},
				"client_secret": {"sec"},
				"username":      {"me@example.com"},
				"password":      {"pw"},
			},
		},
		{
			name:  "app",
			grant: auth.AppGrant{ClientID: "cid", ClientSecret: "sec", AppID: "123", AppToken: "tok"},
			expForm: url.Values{
				"grant_type":    {"app"},
				"client_id":     {"cid"},
				"client_secret": {"sec"},
				"app_id":        {"123"},
				"app_token":     {"tok"},
			},
		},
		{
			name:  "refresh",
			grant: auth.RefreshGrant{ClientID: "cid", ClientSecret: "sec", RefreshToken: "ref"},
			expForm: url.Values{
				"grant_type":    {"refresh_token"},
				"client_id":     {"cid"},
				"client_secret": {"sec"},
				"refresh_token": {"ref"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv, forms := tokenServer(t, http.StatusOK, okToken)

			tok, err := auth.Exchange(t.Context(), srv.Client(), srv.URL, tc.grant)
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}

			if diff := cmp.Diff(tc.expForm, <-forms); diff != "" {
				t.Errorf("form mismatch (-want +got):\n%s", diff)
			}

			exp := auth.Token{AccessToken: "acc", RefreshToken: "ref", ExpiresIn: 28800}
			if diff := cmp.Diff(exp, tok, cmpopts.IgnoreFields(auth.Token{}, "ObtainedAt")); diff != "" {
				t.Errorf("token mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestExchange_Failures(t *testing.T) {
	testCases := []struct {
		name      string
		status    int
		body      string
		expStatus int
	}{
		{name: "rejected", status: http.StatusUnauthorized, body: `{"error":"invalid_grant"}`, expStatus: http.StatusUnauthorized},
		{name: "bad request", status: http.StatusBadRequest, body: `{}`, expStatus: http.StatusBadRequest},
		{name: "missing access token", status: http.StatusOK, body: `{"refresh_token":"r"}`, expStatus: http.StatusOK},
		{name: "not json", status: http.StatusOK, body: `<html>`, expStatus: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv, _ := tokenServer(t, tc.status, tc.body)

			_, err := auth.Exchange(t.Context(), srv.Client(), srv.URL, auth.AppGrant{ClientID: "c", ClientSecret: "s", AppID: "1", AppToken: "t"})
			if !errors.Is(err, auth.ErrAuthentication) {
				t.Fatalf("exp ErrAuthentication, got %v", err)
			}

			var aErr *auth.Error
			if !errors.As(err, &aErr) {
				t.Fatalf("exp *auth.Error, got %T", err)
			}
			if aErr.StatusCode != tc.expStatus || aErr.Body != tc.body {
				t.Errorf("exp %d %q, got %d %q", tc.expStatus, tc.body, aErr.StatusCode, aErr.Body)
			}
		})
	}
}

func TestExchange_InvalidGrant(t *testing.T) {
	srv, forms := tokenServer(t, http.StatusOK, okToken)

	_, err := auth.Exchange(t.Context(), srv.Client(), srv.URL, auth.PasswordGrant{ClientID: "c"})
	if !errors.Is(err, auth.ErrAuthentication) {
		t.Fatalf("exp ErrAuthentication, got %v", err)
	}

	var fields auth.FieldErrors
	if !errors.As(err, &fields) {
		t.Fatalf("exp FieldErrors, got %v", err)
	}

	var names []string
	for _, f := range fields {
		names = append(names, f.Field)
	}
	if diff := cmp.Diff([]string{"client_secret", "username", "password"}, names); diff != "" {
		t.Errorf("missing fields mismatch (-want +got):\n%s", diff)
	}

	select {
	case <-forms:
		t.Error("invalid grant must not reach the server")
	default:
	}
}

func TestAuthorizer(t *testing.T) {
	srv, forms := tokenServer(t, http.StatusOK, okToken)

	a, err := auth.NewAuthorizer(srv.URL, auth.PasswordGrant{ClientID: "c", ClientSecret: "s", Username: "u", Password: "p"}, auth.WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := a.Headers(); !errors.Is(err, auth.ErrNotAuthorized) {
		t.Fatalf("exp ErrNotAuthorized before Authorize, got %v", err)
	}
	if _, err := a.Token(); !errors.Is(err, auth.ErrNotAuthorized) {
		t.Fatalf("exp ErrNotAuthorized from Token, got %v", err)
	}

	if err := a.Authorize(t.Context()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	<-forms

	got, err := header.Build(a, "podio-go").Headers()
	if err != nil {
		t.Fatal(err)
	}
	exp := map[string]string{
		"authorization": "OAuth2 acc",
		"Connection":    "Keep-Alive",
		"User-Agent":    "podio-go",
	}
	if diff := cmp.Diff(exp, got); diff != "" {
		t.Errorf("headers mismatch (-want +got):\n%s", diff)
	}

	var src oauth2.TokenSource = a
	otok, err := src.Token()
	if err != nil {
		t.Fatal(err)
	}
	if otok.AccessToken != "acc" || otok.RefreshToken != "ref" || otok.TokenType != "OAuth2" {
		t.Errorf("unexpected oauth2 token %+v", otok)
	}
	if until := time.Until(otok.Expiry); until < 7*time.Hour || until > 8*time.Hour {
		t.Errorf("unexpected expiry in %v", until)
	}
}

func TestAuthorizer_Refresh(t *testing.T) {
	srv, forms := tokenServer(t, http.StatusOK, okToken)

	a, err := auth.NewAuthorizer(srv.URL, auth.AppGrant{ClientID: "c", ClientSecret: "s", AppID: "1", AppToken: "t"},
		auth.WithHTTPClient(srv.Client()),
		auth.WithToken(auth.Token{AccessToken: "old", RefreshToken: "r1"}),
	)
	if err != nil {
		t.Fatal(err)
	}

	if err := a.Refresh(t.Context()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	form := <-forms
	if form.Get("grant_type") != "refresh_token" || form.Get("refresh_token") != "r1" || form.Get("client_id") != "c" {
		t.Errorf("unexpected refresh form %v", form)
	}

	tok, ok := a.Current()
	if !ok || tok.AccessToken != "acc" {
		t.Errorf("exp refreshed token, got %+v", tok)
	}
}

func TestAuthorizer_RefreshWithoutToken(t *testing.T) {
	a, err := auth.NewAuthorizer("https://api.podio.com", auth.AppGrant{})
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Refresh(t.Context()); !errors.Is(err, auth.ErrNotAuthorized) {
		t.Fatalf("exp ErrNotAuthorized, got %v", err)
	}
}

func TestAuthorizer_FailedAuthorizeKeepsNoToken(t *testing.T) {
	srv, _ := tokenServer(t, http.StatusUnauthorized, `{"error":"invalid_grant"}`)

	a, err := auth.NewAuthorizer(srv.URL, auth.AppGrant{ClientID: "c", ClientSecret: "s", AppID: "1", AppToken: "t"}, auth.WithHTTPClient(srv.Client()))
	if err != nil {
		t.Fatal(err)
	}

	if err := a.Authorize(t.Context()); !errors.Is(err, auth.ErrAuthentication) {
		t.Fatalf("exp ErrAuthentication, got %v", err)
	}
	if _, ok := a.Current(); ok {
		t.Error("no token should be kept after a failed exchange")
	}
}

func TestNewAuthorizer_Validation(t *testing.T) {
	if _, err := auth.NewAuthorizer("", auth.AppGrant{}); err == nil {
		t.Error("expected error for empty domain")
	}
	if _, err := auth.NewAuthorizer("https://api.podio.com", nil); err == nil {
		t.Error("expected error for nil grant")
	}
	if _, err := auth.NewAuthorizer("https://api.podio.com", auth.AppGrant{}, auth.WithToken(auth.Token{})); err == nil {
		t.Error("expected error for empty seeded token")
	}
}
