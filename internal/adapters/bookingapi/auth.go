package bookingapi

import (
	"context"
	"fmt"
	"net/http"

	domainauth "github.com/evently/evently-ui/internal/domain/auth"
	"github.com/evently/evently-ui/internal/ports"
	"golang.org/x/oauth2"
)

// Compile-time conformance to the auth port.
var _ ports.AuthAPI = (*Client)(nil)

// ExchangeCredentials performs the password-grant exchange against
// POST /auth/login. The wire body is form-urlencoded, not JSON; oauth2
// takes care of the encoding and of decoding the token response.
func (c *Client) ExchangeCredentials(ctx context.Context, username, password string) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.http)

	tok, err := c.oauth.PasswordCredentialsToken(ctx, username, password)
	if err != nil {
		return "", fmt.Errorf("exchange credentials: %w", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("exchange credentials: empty access token")
	}
	return tok.AccessToken, nil
}

// CurrentUser resolves the identity behind a bearer token via GET /auth/me.
func (c *Client) CurrentUser(ctx context.Context, token string) (domainauth.Identity, error) {
	var identity domainauth.Identity
	err := c.do(ctx, apiRequest{
		Method: http.MethodGet,
		Path:   "/auth/me",
		Token:  token,
	}, &identity)
	if err != nil {
		return domainauth.Identity{}, fmt.Errorf("resolve current user: %w", err)
	}
	return identity, nil
}

// registerBody mirrors the register endpoint's JSON contract.
type registerBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
}

// Register creates an account via POST /auth/register. The new account is
// not logged in; callers direct the user to the login flow afterwards.
func (c *Client) Register(ctx context.Context, in ports.RegisterInput) (domainauth.Identity, error) {
	var identity domainauth.Identity
	err := c.do(ctx, apiRequest{
		Method: http.MethodPost,
		Path:   "/auth/register",
		Body: registerBody{
			Email:    in.Email,
			Password: in.Password,
			IsAdmin:  in.IsAdmin,
		},
	}, &identity)
	if err != nil {
		return domainauth.Identity{}, fmt.Errorf("register: %w", err)
	}
	return identity, nil
}
