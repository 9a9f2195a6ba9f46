package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/newsdesk/internal/client/models"
)

func commentsPath(articleID int64) string {
	return fmt.Sprintf("/comments/articles/%d/comments", articleID)
}

// Comments returns the top-level comments of an article with their replies.
func (c *HTTPClient) Comments(ctx context.Context, creds Credentials, articleID int64) ([]models.Comment, error) {
	path := commentsPath(articleID)
	var resp struct {
		Comments *[]models.Comment `json:"comments"`
	}
	if err := c.do(ctx, creds, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Comments == nil {
		return nil, malformed(http.MethodGet, path, "comments")
	}
	return *resp.Comments, nil
}

func (c *HTTPClient) CreateComment(ctx context.Context, creds Credentials, articleID int64, nc models.NewComment) (*models.Comment, error) {
	path := commentsPath(articleID)
	var resp struct {
		Comment *models.Comment `json:"comment"`
	}
	if err := c.do(ctx, creds, http.MethodPost, path, nil, nc, &resp); err != nil {
		return nil, err
	}
	if resp.Comment == nil {
		return nil, malformed(http.MethodPost, path, "comment")
	}
	return resp.Comment, nil
}
