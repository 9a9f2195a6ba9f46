package client

import (
	"context"

	"github.com/dmitrijs2005/newsdesk/internal/client/models"
)

type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*models.AuthResult, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResult, error)
	Me(ctx context.Context, creds Credentials) (*models.User, error)
}

type NewsAPI interface {
	ListNews(ctx context.Context, creds Credentials, p models.ListParams) (*models.ArticlePage, error)
	SearchNews(ctx context.Context, creds Credentials, query string, page int) (*models.ArticlePage, error)
	GetArticle(ctx context.Context, creds Credentials, id int64) (*models.Article, error)
	Categories(ctx context.Context) ([]models.Category, error)
	Recommended(ctx context.Context, creds Credentials, limit int) ([]models.Article, error)
	LikeArticle(ctx context.Context, creds Credentials, id int64) (*models.LikeResult, error)
	SaveArticle(ctx context.Context, creds Credentials, id int64) (*models.SaveResult, error)
}

type CommentsAPI interface {
	Comments(ctx context.Context, creds Credentials, articleID int64) ([]models.Comment, error)
	CreateComment(ctx context.Context, creds Credentials, articleID int64, c models.NewComment) (*models.Comment, error)
}

type SubscriptionsAPI interface {
	CurrentSubscription(ctx context.Context, creds Credentials) (*models.Subscription, error)
	Tiers(ctx context.Context) ([]models.SubscriptionTier, error)
	Subscribe(ctx context.Context, creds Credentials, tierID int64) (*models.Subscription, error)
}

type NotificationsAPI interface {
	Notifications(ctx context.Context, creds Credentials, unreadOnly bool) ([]models.Notification, error)
	MarkNotificationRead(ctx context.Context, creds Credentials, id int64) error
	NotificationPreferences(ctx context.Context, creds Credentials) (*models.NotificationPreferences, error)
	UpdateNotificationPreferences(ctx context.Context, creds Credentials, p models.NotificationPreferences) error
}

type UsersAPI interface {
	Profile(ctx context.Context, creds Credentials) (*models.User, error)
	UpdateProfile(ctx context.Context, creds Credentials, u models.ProfileUpdate) (*models.User, error)
	SavedArticles(ctx context.Context, creds Credentials, page int) (*models.ArticlePage, error)
	FollowAuthor(ctx context.Context, creds Credentials, authorID int64) error
	UnfollowAuthor(ctx context.Context, creds Credentials, authorID int64) error
}

type PreferencesAPI interface {
	FavoriteCategories(ctx context.Context, creds Credentials) ([]models.Category, error)
	AddFavoriteCategory(ctx context.Context, creds Credentials, categoryID int64) error
	RemoveFavoriteCategory(ctx context.Context, creds Credentials, categoryID int64) error
	SetFavoriteCategories(ctx context.Context, creds Credentials, categoryIDs []int64) error
}

type AdminAPI interface {
	AdminArticles(ctx context.Context, creds Credentials, p models.ListParams) (*models.ArticlePage, error)
	UpdateArticle(ctx context.Context, creds Credentials, id int64, u models.ArticleUpdate) (*models.Article, error)
	DeleteArticle(ctx context.Context, creds Credentials, id int64) error
	CreateCategory(ctx context.Context, creds Credentials, c models.CategoryInput) (*models.Category, error)
	UpdateCategory(ctx context.Context, creds Credentials, id int64, c models.CategoryInput) (*models.Category, error)
	AdminUsers(ctx context.Context, creds Credentials, page, limit int) (*models.UserPage, error)
	ToggleUserActive(ctx context.Context, creds Credentials, id int64) (*models.User, error)
}

// Client is the whole API surface.
type Client interface {
	AuthAPI
	NewsAPI
	CommentsAPI
	SubscriptionsAPI
	NotificationsAPI
	UsersAPI
	PreferencesAPI
	AdminAPI
	Ping(ctx context.Context) error
}

var _ Client = (*HTTPClient)(nil)
