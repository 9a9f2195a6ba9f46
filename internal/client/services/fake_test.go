package services

import (
	"context"
	"sync"
	"testing"

	"github.com/dmitrijs2005/newsdesk/internal/client/client"
	"github.com/dmitrijs2005/newsdesk/internal/client/models"
	"github.com/dmitrijs2005/newsdesk/internal/client/session"
	"github.com/stretchr/testify/require"
)

// ---- fake client ----

// fakeAPI implements client.Client for the service tests. Every call is
// recorded by name together with the credentials it carried.
type fakeAPI struct {
	mu    sync.Mutex
	calls []string
	creds []client.Credentials

	user  *models.User
	token string
	err   error

	page     *models.ArticlePage
	article  *models.Article
	cats     []models.Category
	like     *models.LikeResult
	save     *models.SaveResult
	comments []models.Comment
	tiers    []models.SubscriptionTier
	sub      *models.Subscription
	notes    []models.Notification
	prefs    *models.NotificationPreferences
	favs     []models.Category
	bulkIDs  []int64
	users    *models.UserPage

	lastParams  models.ListParams
	lastComment models.NewComment
	lastUpdate  models.ProfileUpdate
}

func (f *fakeAPI) record(name string, c client.Credentials) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
	f.creds = append(f.creds, c)
	return f.err
}

func (f *fakeAPI) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeAPI) Login(context.Context, string, string) (*models.AuthResult, error) {
	return &models.AuthResult{User: f.user, AccessToken: f.token}, nil
}

func (f *fakeAPI) Register(context.Context, models.RegisterRequest) (*models.AuthResult, error) {
	return &models.AuthResult{User: f.user, AccessToken: f.token}, nil
}

func (f *fakeAPI) Me(_ context.Context, c client.Credentials) (*models.User, error) {
	if err := f.record("Me", c); err != nil {
		return nil, err
	}
	return f.user, nil
}

func (f *fakeAPI) Ping(context.Context) error { return f.record("Ping", client.Anonymous) }

func (f *fakeAPI) ListNews(_ context.Context, c client.Credentials, p models.ListParams) (*models.ArticlePage, error) {
	f.lastParams = p
	if err := f.record("ListNews", c); err != nil {
		return nil, err
	}
	return f.page, nil
}

func (f *fakeAPI) SearchNews(_ context.Context, c client.Credentials, _ string, _ int) (*models.ArticlePage, error) {
	if err := f.record("SearchNews", c); err != nil {
		return nil, err
	}
	return f.page, nil
}

func (f *fakeAPI) GetArticle(_ context.Context, c client.Credentials, _ int64) (*models.Article, error) {
	if err := f.record("GetArticle", c); err != nil {
		return nil, err
	}
	return f.article, nil
}

func (f *fakeAPI) Categories(context.Context) ([]models.Category, error) {
	if err := f.record("Categories", client.Anonymous); err != nil {
		return nil, err
	}
	return f.cats, nil
}

func (f *fakeAPI) Recommended(_ context.Context, c client.Credentials, _ int) ([]models.Article, error) {
	if err := f.record("Recommended", c); err != nil {
		return nil, err
	}
	return f.page.Articles, nil
}

func (f *fakeAPI) LikeArticle(_ context.Context, c client.Credentials, _ int64) (*models.LikeResult, error) {
	if err := f.record("LikeArticle", c); err != nil {
		return nil, err
	}
	return f.like, nil
}

func (f *fakeAPI) SaveArticle(_ context.Context, c client.Credentials, _ int64) (*models.SaveResult, error) {
	if err := f.record("SaveArticle", c); err != nil {
		return nil, err
	}
	return f.save, nil
}

func (f *fakeAPI) Comments(_ context.Context, c client.Credentials, _ int64) ([]models.Comment, error) {
	if err := f.record("Comments", c); err != nil {
		return nil, err
	}
	return f.comments, nil
}

func (f *fakeAPI) CreateComment(_ context.Context, c client.Credentials, articleID int64, nc models.NewComment) (*models.Comment, error) {
	f.lastComment = nc
	if err := f.record("CreateComment", c); err != nil {
		return nil, err
	}
	return &models.Comment{ID: 99, ArticleID: articleID, Content: nc.Content, ParentID: nc.ParentID}, nil
}

func (f *fakeAPI) CurrentSubscription(_ context.Context, c client.Credentials) (*models.Subscription, error) {
	if err := f.record("CurrentSubscription", c); err != nil {
		return nil, err
	}
	return f.sub, nil
}

func (f *fakeAPI) Tiers(context.Context) ([]models.SubscriptionTier, error) {
	if err := f.record("Tiers", client.Anonymous); err != nil {
		return nil, err
	}
	return f.tiers, nil
}

func (f *fakeAPI) Subscribe(_ context.Context, c client.Credentials, tierID int64) (*models.Subscription, error) {
	if err := f.record("Subscribe", c); err != nil {
		return nil, err
	}
	return &models.Subscription{TierID: tierID, IsActive: true}, nil
}

func (f *fakeAPI) Notifications(_ context.Context, c client.Credentials, _ bool) ([]models.Notification, error) {
	if err := f.record("Notifications", c); err != nil {
		return nil, err
	}
	return f.notes, nil
}

func (f *fakeAPI) MarkNotificationRead(_ context.Context, c client.Credentials, _ int64) error {
	return f.record("MarkNotificationRead", c)
}

func (f *fakeAPI) NotificationPreferences(_ context.Context, c client.Credentials) (*models.NotificationPreferences, error) {
	if err := f.record("NotificationPreferences", c); err != nil {
		return nil, err
	}
	return f.prefs, nil
}

func (f *fakeAPI) UpdateNotificationPreferences(_ context.Context, c client.Credentials, p models.NotificationPreferences) error {
	if err := f.record("UpdateNotificationPreferences", c); err != nil {
		return err
	}
	f.prefs = &p
	return nil
}

func (f *fakeAPI) Profile(_ context.Context, c client.Credentials) (*models.User, error) {
	if err := f.record("Profile", c); err != nil {
		return nil, err
	}
	return f.user, nil
}

func (f *fakeAPI) UpdateProfile(_ context.Context, c client.Credentials, u models.ProfileUpdate) (*models.User, error) {
	f.lastUpdate = u
	if err := f.record("UpdateProfile", c); err != nil {
		return nil, err
	}
	return &models.User{ID: f.user.ID, Username: u.Username, Email: u.Email, IsActive: true}, nil
}

func (f *fakeAPI) SavedArticles(_ context.Context, c client.Credentials, _ int) (*models.ArticlePage, error) {
	if err := f.record("SavedArticles", c); err != nil {
		return nil, err
	}
	return f.page, nil
}

func (f *fakeAPI) FollowAuthor(_ context.Context, c client.Credentials, _ int64) error {
	return f.record("FollowAuthor", c)
}

func (f *fakeAPI) UnfollowAuthor(_ context.Context, c client.Credentials, _ int64) error {
	return f.record("UnfollowAuthor", c)
}

func (f *fakeAPI) FavoriteCategories(_ context.Context, c client.Credentials) ([]models.Category, error) {
	if err := f.record("FavoriteCategories", c); err != nil {
		return nil, err
	}
	return f.favs, nil
}

func (f *fakeAPI) AddFavoriteCategory(_ context.Context, c client.Credentials, _ int64) error {
	return f.record("AddFavoriteCategory", c)
}

func (f *fakeAPI) RemoveFavoriteCategory(_ context.Context, c client.Credentials, _ int64) error {
	return f.record("RemoveFavoriteCategory", c)
}

func (f *fakeAPI) SetFavoriteCategories(_ context.Context, c client.Credentials, ids []int64) error {
	f.bulkIDs = ids
	return f.record("SetFavoriteCategories", c)
}

func (f *fakeAPI) AdminArticles(_ context.Context, c client.Credentials, p models.ListParams) (*models.ArticlePage, error) {
	f.lastParams = p
	if err := f.record("AdminArticles", c); err != nil {
		return nil, err
	}
	return f.page, nil
}

func (f *fakeAPI) UpdateArticle(_ context.Context, c client.Credentials, id int64, _ models.ArticleUpdate) (*models.Article, error) {
	if err := f.record("UpdateArticle", c); err != nil {
		return nil, err
	}
	return &models.Article{ID: id}, nil
}

func (f *fakeAPI) DeleteArticle(_ context.Context, c client.Credentials, _ int64) error {
	return f.record("DeleteArticle", c)
}

func (f *fakeAPI) CreateCategory(_ context.Context, c client.Credentials, in models.CategoryInput) (*models.Category, error) {
	if err := f.record("CreateCategory", c); err != nil {
		return nil, err
	}
	return &models.Category{ID: 10, Name: in.Name}, nil
}

func (f *fakeAPI) UpdateCategory(_ context.Context, c client.Credentials, id int64, in models.CategoryInput) (*models.Category, error) {
	if err := f.record("UpdateCategory", c); err != nil {
		return nil, err
	}
	return &models.Category{ID: id, Name: in.Name}, nil
}

func (f *fakeAPI) AdminUsers(_ context.Context, c client.Credentials, _, _ int) (*models.UserPage, error) {
	if err := f.record("AdminUsers", c); err != nil {
		return nil, err
	}
	return f.users, nil
}

func (f *fakeAPI) ToggleUserActive(_ context.Context, c client.Credentials, id int64) (*models.User, error) {
	if err := f.record("ToggleUserActive", c); err != nil {
		return nil, err
	}
	return &models.User{ID: id}, nil
}

var _ client.Client = (*fakeAPI)(nil)

// ---- helpers ----

type memTokens struct{ token string }

func (m *memTokens) Load(context.Context) (string, error)   { return m.token, nil }
func (m *memTokens) Save(_ context.Context, t string) error { m.token = t; return nil }
func (m *memTokens) Clear(context.Context) error            { m.token = ""; return nil }

func newSession(t *testing.T, api *fakeAPI, role models.Role) (*session.Store, *memTokens) {
	t.Helper()
	tokens := &memTokens{}
	s := session.New(api, tokens, nil)
	if role == "" {
		require.NoError(t, s.Bootstrap(context.Background()))
		return s, tokens
	}
	api.user = &models.User{ID: 1, Username: "ann", Email: "ann@example.com", Role: role, IsActive: true}
	api.token = "tok-" + string(role)
	_, err := s.Login(context.Background(), "ann@example.com", "pw")
	require.NoError(t, err)
	return s, tokens
}

var tokenExpired = &client.APIError{Status: 401, Message: "Token has expired"}
