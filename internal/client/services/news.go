package services

import (
	"context"

	"github.com/dmitrijs2005/newsdesk/internal/client/client"
	"github.com/dmitrijs2005/newsdesk/internal/client/models"
	"github.com/dmitrijs2005/newsdesk/internal/client/session"
)

// DefaultPageSize is the number of articles requested per feed page.
const DefaultPageSize = 10

type NewsService interface {
	List(ctx context.Context, p models.ListParams) (*models.ArticlePage, error)
	Search(ctx context.Context, query string, page int) (*models.ArticlePage, error)
	Get(ctx context.Context, id int64) (*models.Article, error)
	Categories(ctx context.Context) ([]models.Category, error)
	Recommended(ctx context.Context, limit int) ([]models.Article, error)
	Like(ctx context.Context, id int64) (*models.LikeResult, error)
	Save(ctx context.Context, id int64) (*models.SaveResult, error)
	Saved(ctx context.Context, page int) (*models.ArticlePage, error)
}

// NewsAPI is the part of the REST client the news service needs.
type NewsAPI interface {
	client.NewsAPI
	SavedArticles(ctx context.Context, creds client.Credentials, page int) (*models.ArticlePage, error)
}

type newsService struct {
	api     NewsAPI
	session *session.Store
}

func NewNewsService(api NewsAPI, sess *session.Store) NewsService {
	return &newsService{api: api, session: sess}
}

func (s *newsService) List(ctx context.Context, p models.ListParams) (*models.ArticlePage, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageSize
	}
	return session.Call(ctx, s.session, func(c client.Credentials) (*models.ArticlePage, error) {
		return s.api.ListNews(ctx, c, p)
	})
}

func (s *newsService) Search(ctx context.Context, query string, page int) (*models.ArticlePage, error) {
	if query == "" {
		return nil, ErrEmptyQuery
	}
	return session.Call(ctx, s.session, func(c client.Credentials) (*models.ArticlePage, error) {
		return s.api.SearchNews(ctx, c, query, page)
	})
}

func (s *newsService) Get(ctx context.Context, id int64) (*models.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	return session.Call(ctx, s.session, func(c client.Credentials) (*models.Article, error) {
		return s.api.GetArticle(ctx, c, id)
	})
}

func (s *newsService) Categories(ctx context.Context) ([]models.Category, error) {
	return s.api.Categories(ctx)
}

func (s *newsService) Recommended(ctx context.Context, limit int) ([]models.Article, error) {
	return session.Call(ctx, s.session, func(c client.Credentials) ([]models.Article, error) {
		return s.api.Recommended(ctx, c, limit)
	})
}

func (s *newsService) Like(ctx context.Context, id int64) (*models.LikeResult, error) {
	if !s.session.IsAuthenticated() {
		return nil, ErrLoginRequired
	}
	return session.Call(ctx, s.session, func(c client.Credentials) (*models.LikeResult, error) {
		return s.api.LikeArticle(ctx, c, id)
	})
}

func (s *newsService) Save(ctx context.Context, id int64) (*models.SaveResult, error) {
	if !s.session.IsAuthenticated() {
		return nil, ErrLoginRequired
	}
	return session.Call(ctx, s.session, func(c client.Credentials) (*models.SaveResult, error) {
		return s.api.SaveArticle(ctx, c, id)
	})
}

func (s *newsService) Saved(ctx context.Context, page int) (*models.ArticlePage, error) {
	if !s.session.IsAuthenticated() {
		return nil, ErrLoginRequired
	}
	return session.Call(ctx, s.session, func(c client.Credentials) (*models.ArticlePage, error) {
		return s.api.SavedArticles(ctx, c, page)
	})
}
