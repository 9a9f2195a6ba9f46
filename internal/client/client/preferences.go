package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/newsdesk/internal/client/models"
)

func (c *HTTPClient) FavoriteCategories(ctx context.Context, creds Credentials) ([]models.Category, error) {
	const path = "/preferences/categories"
	var resp struct {
		Favorites *[]models.Category `json:"favorite_categories"`
	}
	if err := c.do(ctx, creds, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Favorites == nil {
		return nil, malformed(http.MethodGet, path, "favorite_categories")
	}
	return *resp.Favorites, nil
}

func (c *HTTPClient) AddFavoriteCategory(ctx context.Context, creds Credentials, categoryID int64) error {
	body := struct {
		CategoryID int64 `json:"category_id"`
	}{categoryID}
	return c.do(ctx, creds, http.MethodPost, "/preferences/categories", nil, body, nil)
}

func (c *HTTPClient) RemoveFavoriteCategory(ctx context.Context, creds Credentials, categoryID int64) error {
	return c.do(ctx, creds, http.MethodDelete, fmt.Sprintf("/preferences/categories/%d", categoryID), nil, nil, nil)
}

// SetFavoriteCategories replaces the whole favorite set.
func (c *HTTPClient) SetFavoriteCategories(ctx context.Context, creds Credentials, categoryIDs []int64) error {
	if categoryIDs == nil {
		categoryIDs = []int64{}
	}
	body := struct {
		CategoryIDs []int64 `json:"category_ids"`
	}{categoryIDs}
	return c.do(ctx, creds, http.MethodPost, "/preferences/categories/bulk", nil, body, nil)
}
