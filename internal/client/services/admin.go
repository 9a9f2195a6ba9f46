package services

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/newsdesk/internal/client/client"
	"github.com/dmitrijs2005/newsdesk/internal/client/models"
	"github.com/dmitrijs2005/newsdesk/internal/client/session"
)

// AdminService manages articles (editors and admins), categories and
// users (admins only). Role checks run locally before any request.
type AdminService interface {
	Articles(ctx context.Context, p models.ListParams) (*models.ArticlePage, error)
	UpdateArticle(ctx context.Context, id int64, u models.ArticleUpdate) (*models.Article, error)
	DeleteArticle(ctx context.Context, id int64) error
	CreateCategory(ctx context.Context, in models.CategoryInput) (*models.Category, error)
	UpdateCategory(ctx context.Context, id int64, in models.CategoryInput) (*models.Category, error)
	Users(ctx context.Context, page, limit int) (*models.UserPage, error)
	ToggleUserActive(ctx context.Context, id int64) (*models.User, error)
}

type adminService struct {
	api     client.AdminAPI
	session *session.Store
}

func NewAdminService(api client.AdminAPI, sess *session.Store) AdminService {
	return &adminService{api: api, session: sess}
}

func (s *adminService) requireEditor() error {
	u := s.session.User()
	if u == nil {
		return ErrLoginRequired
	}
	if !u.IsEditor() {
		return ErrEditorRequired
	}
	return nil
}

func (s *adminService) requireAdmin() error {
	u := s.session.User()
	if u == nil {
		return ErrLoginRequired
	}
	if !u.IsAdmin() {
		return ErrAdminRequired
	}
	return nil
}

func (s *adminService) Articles(ctx context.Context, p models.ListParams) (*models.ArticlePage, error) {
	if err := s.requireEditor(); err != nil {
		return nil, err
	}
	return session.Call(ctx, s.session, func(c client.Credentials) (*models.ArticlePage, error) {
		return s.api.AdminArticles(ctx, c, p)
	})
}

func (s *adminService) UpdateArticle(ctx context.Context, id int64, u models.ArticleUpdate) (*models.Article, error) {
	if err := s.requireEditor(); err != nil {
		return nil, err
	}
	if u == (models.ArticleUpdate{}) {
		return nil, ErrNothingToSave
	}
	return session.Call(ctx, s.session, func(c client.Credentials) (*models.Article, error) {
		return s.api.UpdateArticle(ctx, c, id, u)
	})
}

func (s *adminService) DeleteArticle(ctx context.Context, id int64) error {
	if err := s.requireEditor(); err != nil {
		return err
	}
	return session.Exec(ctx, s.session, func(c client.Credentials) error {
		return s.api.DeleteArticle(ctx, c, id)
	})
}

func (s *adminService) CreateCategory(ctx context.Context, in models.CategoryInput) (*models.Category, error) {
	if err := s.requireAdmin(); err != nil {
		return nil, err
	}
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, ErrNothingToSave
	}
	return session.Call(ctx, s.session, func(c client.Credentials) (*models.Category, error) {
		return s.api.CreateCategory(ctx, c, in)
	})
}

func (s *adminService) UpdateCategory(ctx context.Context, id int64, in models.CategoryInput) (*models.Category, error) {
	if err := s.requireAdmin(); err != nil {
		return nil, err
	}
	if in == (models.CategoryInput{}) {
		return nil, ErrNothingToSave
	}
	return session.Call(ctx, s.session, func(c client.Credentials) (*models.Category, error) {
		return s.api.UpdateCategory(ctx, c, id, in)
	})
}

func (s *adminService) Users(ctx context.Context, page, limit int) (*models.UserPage, error) {
	if err := s.requireAdmin(); err != nil {
		return nil, err
	}
	return session.Call(ctx, s.session, func(c client.Credentials) (*models.UserPage, error) {
		return s.api.AdminUsers(ctx, c, page, limit)
	})
}

func (s *adminService) ToggleUserActive(ctx context.Context, id int64) (*models.User, error) {
	if err := s.requireAdmin(); err != nil {
		return nil, err
	}
	return session.Call(ctx, s.session, func(c client.Credentials) (*models.User, error) {
		return s.api.ToggleUserActive(ctx, c, id)
	})
}
