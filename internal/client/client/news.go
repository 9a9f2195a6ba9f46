package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/newsdesk/internal/client/models"
)

type articlePageResponse struct {
	Articles *[]models.Article `json:"articles"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
	Total    *int              `json:"total"`
}

func (r articlePageResponse) page(method, path string) (*models.ArticlePage, error) {
	if r.Articles == nil {
		return nil, malformed(method, path, "articles")
	}
	p := &models.ArticlePage{
		Articles: *r.Articles,
		Page:     r.Page,
		Limit:    r.Limit,
		Total:    len(*r.Articles),
	}
	if r.Total != nil {
		p.Total = *r.Total
	}
	return p, nil
}

func (c *HTTPClient) ListNews(ctx context.Context, creds Credentials, p models.ListParams) (*models.ArticlePage, error) {
	const path = "/news"
	var resp articlePageResponse
	if err := c.do(ctx, creds, http.MethodGet, path, pageQuery(p), nil, &resp); err != nil {
		return nil, err
	}
	return resp.page(http.MethodGet, path)
}

func (c *HTTPClient) SearchNews(ctx context.Context, creds Credentials, query string, page int) (*models.ArticlePage, error) {
	const path = "/news/search"
	if page < 1 {
		page = 1
	}
	q := url.Values{"q": {query}, "page": {fmt.Sprint(page)}}
	var resp articlePageResponse
	if err := c.do(ctx, creds, http.MethodGet, path, q, nil, &resp); err != nil {
		return nil, err
	}
	return resp.page(http.MethodGet, path)
}

func (c *HTTPClient) GetArticle(ctx context.Context, creds Credentials, id int64) (*models.Article, error) {
	path := fmt.Sprintf("/news/%d", id)
	var resp struct {
		Article *models.Article `json:"article"`
	}
	if err := c.do(ctx, creds, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Article == nil {
		return nil, malformed(http.MethodGet, path, "article")
	}
	return resp.Article, nil
}

func (c *HTTPClient) Categories(ctx context.Context) ([]models.Category, error) {
	const path = "/news/categories"
	var resp struct {
		Categories *[]models.Category `json:"categories"`
	}
	if err := c.do(ctx, Anonymous, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Categories == nil {
		return nil, malformed(http.MethodGet, path, "categories")
	}
	return *resp.Categories, nil
}

func (c *HTTPClient) Recommended(ctx context.Context, creds Credentials, limit int) ([]models.Article, error) {
	const path = "/news/recommended"
	if limit <= 0 {
		limit = 10
	}
	q := url.Values{"limit": {fmt.Sprint(limit)}}
	var resp articlePageResponse
	if err := c.do(ctx, creds, http.MethodGet, path, q, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Articles == nil {
		return nil, malformed(http.MethodGet, path, "articles")
	}
	return *resp.Articles, nil
}

// LikeArticle toggles the caller's like on an article.
func (c *HTTPClient) LikeArticle(ctx context.Context, creds Credentials, id int64) (*models.LikeResult, error) {
	path := fmt.Sprintf("/news/%d/like", id)
	var resp struct {
		Liked      *bool `json:"liked"`
		LikesCount *int  `json:"likes_count"`
	}
	if err := c.do(ctx, creds, http.MethodPost, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Liked == nil {
		return nil, malformed(http.MethodPost, path, "liked")
	}
	return &models.LikeResult{Liked: *resp.Liked, LikesCount: resp.LikesCount}, nil
}

// SaveArticle toggles the article in the caller's saved list.
func (c *HTTPClient) SaveArticle(ctx context.Context, creds Credentials, id int64) (*models.SaveResult, error) {
	path := fmt.Sprintf("/news/%d/save", id)
	var resp struct {
		Saved *bool `json:"saved"`
	}
	if err := c.do(ctx, creds, http.MethodPost, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Saved == nil {
		return nil, malformed(http.MethodPost, path, "saved")
	}
	return &models.SaveResult{Saved: *resp.Saved}, nil
}
