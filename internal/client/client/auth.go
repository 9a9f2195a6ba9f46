package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/newsdesk/internal/client/models"
)

type authResponse struct {
	User        *models.User `json:"user"`
	AccessToken *string      `json:"access_token"`
}

func (r authResponse) result(method, path string) (*models.AuthResult, error) {
	if r.User == nil {
		return nil, malformed(method, path, "user")
	}
	if r.AccessToken == nil || *r.AccessToken == "" {
		return nil, malformed(method, path, "access_token")
	}
	return &models.AuthResult{User: r.User, AccessToken: *r.AccessToken}, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.AuthResult, error) {
	const path = "/auth/login"
	var resp authResponse
	req := models.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, Anonymous, http.MethodPost, path, nil, req, &resp); err != nil {
		return nil, err
	}
	return resp.result(http.MethodPost, path)
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResult, error) {
	const path = "/auth/register"
	var resp authResponse
	if err := c.do(ctx, Anonymous, http.MethodPost, path, nil, req, &resp); err != nil {
		return nil, err
	}
	return resp.result(http.MethodPost, path)
}

// Me returns the user the credentials belong to.
func (c *HTTPClient) Me(ctx context.Context, creds Credentials) (*models.User, error) {
	const path = "/auth/me"
	var resp struct {
		User *models.User `json:"user"`
	}
	if err := c.do(ctx, creds, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, malformed(http.MethodGet, path, "user")
	}
	return resp.User, nil
}
