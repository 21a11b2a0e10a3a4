package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"medibill/internal/domain"
)

const authHeader = "Authorization"

// AuthClient implements port.AuthAPI.
type AuthClient struct {
	c *Client
}

// NewAuthClient wraps the shared transport for account endpoints.
func NewAuthClient(c *Client) *AuthClient { return &AuthClient{c: c} }

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// Login authenticates and returns the user record plus the bearer token the
// backend issues in the Authorization response header.
func (a *AuthClient) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	var user domain.User
	resp, err := a.c.do(ctx, http.MethodPost, "authenticate", loginRequest{Username: username, Password: password}, &user)
	if err != nil {
		return nil, "", err
	}

	token := strings.TrimPrefix(resp.Header.Get(authHeader), "Bearer ")
	if token == "" {
		return nil, "", fmt.Errorf("apiclient: authenticate: no token in response: %w", domain.ErrUnauthorized)
	}
	return &user, token, nil
}

// Register creates a new account.
func (a *AuthClient) Register(ctx context.Context, username, password, name string) (*domain.User, error) {
	var user domain.User
	if _, err := a.c.do(ctx, http.MethodPost, "sign-up", registerRequest{Username: username, Password: password, Name: name}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// RefreshToken exchanges the current token for a fresh one.
func (a *AuthClient) RefreshToken(ctx context.Context) (string, error) {
	resp, err := a.c.do(ctx, http.MethodPost, "refresh-token", nil, nil)
	if err != nil {
		return "", err
	}
	token := strings.TrimPrefix(resp.Header.Get(authHeader), "Bearer ")
	if token == "" {
		return "", fmt.Errorf("apiclient: refresh-token: no token in response: %w", domain.ErrUnauthorized)
	}
	return token, nil
}
