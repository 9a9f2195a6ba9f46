package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/newsdesk/internal/client/models"
)

type userResponse struct {
	User *models.User `json:"user"`
}

func (c *HTTPClient) Profile(ctx context.Context, creds Credentials) (*models.User, error) {
	const path = "/users/profile"
	var resp userResponse
	if err := c.do(ctx, creds, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, malformed(http.MethodGet, path, "user")
	}
	return resp.User, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, creds Credentials, u models.ProfileUpdate) (*models.User, error) {
	const path = "/users/profile"
	var resp userResponse
	if err := c.do(ctx, creds, http.MethodPut, path, nil, u, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, malformed(http.MethodPut, path, "user")
	}
	return resp.User, nil
}

func (c *HTTPClient) SavedArticles(ctx context.Context, creds Credentials, page int) (*models.ArticlePage, error) {
	const path = "/users/saved"
	if page < 1 {
		page = 1
	}
	var resp articlePageResponse
	q := url.Values{"page": {fmt.Sprint(page)}}
	if err := c.do(ctx, creds, http.MethodGet, path, q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.page(http.MethodGet, path)
}

func (c *HTTPClient) FollowAuthor(ctx context.Context, creds Credentials, authorID int64) error {
	return c.do(ctx, creds, http.MethodPost, fmt.Sprintf("/users/authors/%d/follow", authorID), nil, nil, nil)
}

func (c *HTTPClient) UnfollowAuthor(ctx context.Context, creds Credentials, authorID int64) error {
	return c.do(ctx, creds, http.MethodPost, fmt.Sprintf("/users/authors/%d/unfollow", authorID), nil, nil, nil)
}
