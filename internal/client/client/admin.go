package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/newsdesk/internal/client/models"
)

func (c *HTTPClient) AdminArticles(ctx context.Context, creds Credentials, p models.ListParams) (*models.ArticlePage, error) {
	const path = "/admin/articles"
	var resp articlePageResponse
	if err := c.do(ctx, creds, http.MethodGet, path, pageQuery(p), nil, &resp); err != nil {
		return nil, err
	}
	return resp.page(http.MethodGet, path)
}

func (c *HTTPClient) UpdateArticle(ctx context.Context, creds Credentials, id int64, u models.ArticleUpdate) (*models.Article, error) {
	path := fmt.Sprintf("/admin/articles/%d", id)
	var resp struct {
		Article *models.Article `json:"article"`
	}
	if err := c.do(ctx, creds, http.MethodPut, path, nil, u, &resp); err != nil {
		return nil, err
	}
	if resp.Article == nil {
		return nil, malformed(http.MethodPut, path, "article")
	}
	return resp.Article, nil
}

func (c *HTTPClient) DeleteArticle(ctx context.Context, creds Credentials, id int64) error {
	return c.do(ctx, creds, http.MethodDelete, fmt.Sprintf("/admin/articles/%d", id), nil, nil, nil)
}

type categoryResponse struct {
	Category *models.Category `json:"category"`
}

func (c *HTTPClient) CreateCategory(ctx context.Context, creds Credentials, in models.CategoryInput) (*models.Category, error) {
	const path = "/admin/categories"
	var resp categoryResponse
	if err := c.do(ctx, creds, http.MethodPost, path, nil, in, &resp); err != nil {
		return nil, err
	}
	if resp.Category == nil {
		return nil, malformed(http.MethodPost, path, "category")
	}
	return resp.Category, nil
}

func (c *HTTPClient) UpdateCategory(ctx context.Context, creds Credentials, id int64, in models.CategoryInput) (*models.Category, error) {
	path := fmt.Sprintf("/admin/categories/%d", id)
	var resp categoryResponse
	if err := c.do(ctx, creds, http.MethodPut, path, nil, in, &resp); err != nil {
		return nil, err
	}
	if resp.Category == nil {
		return nil, malformed(http.MethodPut, path, "category")
	}
	return resp.Category, nil
}

func (c *HTTPClient) AdminUsers(ctx context.Context, creds Credentials, page, limit int) (*models.UserPage, error) {
	const path = "/admin/users"
	q := url.Values{}
	if page > 0 {
		q.Set("page", fmt.Sprint(page))
	}
	if limit > 0 {
		q.Set("limit", fmt.Sprint(limit))
	}
	var resp struct {
		Users *[]models.User `json:"users"`
		Page  int            `json:"page"`
		Limit int            `json:"limit"`
	}
	if err := c.do(ctx, creds, http.MethodGet, path, q, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Users == nil {
		return nil, malformed(http.MethodGet, path, "users")
	}
	return &models.UserPage{Users: *resp.Users, Page: resp.Page, Limit: resp.Limit}, nil
}

// ToggleUserActive flips the active flag of a user and returns the result.
func (c *HTTPClient) ToggleUserActive(ctx context.Context, creds Credentials, id int64) (*models.User, error) {
	path := fmt.Sprintf("/admin/users/%d/toggle-active", id)
	var resp userResponse
	if err := c.do(ctx, creds, http.MethodPut, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	if resp.User == nil {
		return nil, malformed(http.MethodPut, path, "user")
	}
	return resp.User, nil
}
