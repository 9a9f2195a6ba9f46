package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/newsdesk/internal/client/client"
	"github.com/dmitrijs2005/newsdesk/internal/client/models"
	"github.com/dmitrijs2005/newsdesk/internal/client/session"
)

type CommentService interface {
	List(ctx context.Context, articleID int64) ([]models.Comment, error)
	// Create posts a comment; parentID makes it a reply.
	Create(ctx context.Context, articleID int64, content string, parentID *int64) (*models.Comment, error)
}

type commentService struct {
	api     client.CommentsAPI
	session *session.Store
}

func NewCommentService(api client.CommentsAPI, sess *session.Store) CommentService {
	return &commentService{api: api, session: sess}
}

func (s *commentService) List(ctx context.Context, articleID int64) ([]models.Comment, error) {
	return session.Call(ctx, s.session, func(c client.Credentials) ([]models.Comment, error) {
		return s.api.Comments(ctx, c, articleID)
	})
}

func (s *commentService) Create(ctx context.Context, articleID int64, content string, parentID *int64) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyComment
	}
	if !s.session.IsAuthenticated() {
		return nil, ErrLoginRequired
	}
	nc := models.NewComment{Content: content, ParentID: parentID}
	return session.Call(ctx, s.session, func(c client.Credentials) (*models.Comment, error) {
		return s.api.CreateComment(ctx, c, articleID, nc)
	})
}
