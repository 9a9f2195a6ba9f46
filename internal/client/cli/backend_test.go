package cli

import (
	"bufio"
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/newsdesk/internal/client/config"
	"github.com/dmitrijs2005/newsdesk/internal/client/models"
	"github.com/dmitrijs2005/newsdesk/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/newsdesk/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// fakeBackend is an in-memory news API served over httptest.
type fakeBackend struct {
	mu sync.Mutex

	users      map[string]*models.User // by email
	articles   []models.Article
	categories []models.Category
	comments   map[int64][]models.Comment
	liked      map[int64]bool
	saved      map[int64]bool
	favorites  map[int64]bool

	// abortLikes drops the connection on like requests.
	abortLikes bool
	// expired makes every authenticated request fail with a token error.
	expired bool
	// meDown makes session verification fail with a 503.
	meDown bool

	requests []string
	queries  []string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		users: map[string]*models.User{
			"ann@example.com":  {ID: 1, Username: "ann", Email: "ann@example.com", Role: models.RoleUser, IsActive: true},
			"ed@example.com":   {ID: 2, Username: "ed", Email: "ed@example.com", Role: models.RoleEditor, IsActive: true},
			"root@example.com": {ID: 3, Username: "root", Email: "root@example.com", Role: models.RoleAdmin, IsActive: true},
		},
		articles: []models.Article{
			{ID: 1, Title: "Markets rally", Content: "Stocks went up.", LikesCount: 5, CategoryID: 10,
				Category: &models.Category{ID: 10, Name: "Business", Slug: "business"},
				Author:   &models.User{ID: 2, Username: "ed"}, Status: models.StatusPublished},
			{ID: 2, Title: "New phone", Content: "It is thin.", LikesCount: 0, CategoryID: 11,
				Category: &models.Category{ID: 11, Name: "Tech", Slug: "tech"}, Status: models.StatusPublished},
			{ID: 3, Title: "Insider report", IsPremium: true, Status: models.StatusPublished},
		},
		categories: []models.Category{
			{ID: 10, Name: "Business", Slug: "business"},
			{ID: 11, Name: "Tech", Slug: "tech"},
		},
		comments: map[int64][]models.Comment{
			1: {{ID: 100, ArticleID: 1, Content: "Great", Username: "ann",
				Replies: []models.Comment{{ID: 101, ArticleID: 1, Content: "Agreed", Username: "ed"}}}},
		},
		liked:     map[int64]bool{},
		saved:     map[int64]bool{},
		favorites: map[int64]bool{},
	}
}

func token(u *models.User) string { return "tok-" + u.Username }

func (b *fakeBackend) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (b *fakeBackend) record(r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.requests = append(b.requests, r.Method+" "+strings.TrimPrefix(r.URL.Path, "/api"))
	b.queries = append(b.queries, r.URL.RawQuery)
}

// with runs fn under the backend lock, for tests that poke at its state.
func (b *fakeBackend) with(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	fn()
}

func (b *fakeBackend) Requests() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.requests...)
}

func (b *fakeBackend) lastQuery(path string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := len(b.requests) - 1; i >= 0; i-- {
		if b.requests[i] == path {
			return b.queries[i]
		}
	}
	return ""
}

// authed resolves the bearer token or writes the rejection.
func (b *fakeBackend) authed(w http.ResponseWriter, r *http.Request) *models.User {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.expired {
		b.writeJSON(w, http.StatusUnauthorized, map[string]string{"msg": "Token has expired"})
		return nil
	}
	tok := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	for _, u := range b.users {
		if token(u) == tok {
			return u
		}
	}
	b.writeJSON(w, http.StatusUnauthorized, map[string]string{"msg": "Missing Authorization Header"})
	return nil
}

func (b *fakeBackend) article(id int64) (*models.Article, bool) {
	for i := range b.articles {
		if b.articles[i].ID == id {
			return &b.articles[i], true
		}
	}
	return nil, false
}

func pathID(r *http.Request, key string) int64 {
	id, _ := strconv.ParseInt(chi.URLParam(r, key), 10, 64)
	return id
}

func (b *fakeBackend) router() http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b.record(r)
			next.ServeHTTP(w, r)
		})
	})
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
			var req models.LoginRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			b.mu.Lock()
			u, ok := b.users[req.Email]
			b.mu.Unlock()
			if !ok || req.Password != "pw" {
				b.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
				return
			}
			b.writeJSON(w, http.StatusOK, map[string]any{"user": u, "access_token": token(u)})
		})
		r.Post("/auth/register", func(w http.ResponseWriter, r *http.Request) {
			var req models.RegisterRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			b.mu.Lock()
			if _, dup := b.users[req.Email]; dup {
				b.mu.Unlock()
				b.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Email already registered"})
				return
			}
			u := &models.User{ID: int64(len(b.users) + 1), Username: req.Username, Email: req.Email,
				FirstName: req.FirstName, LastName: req.LastName, Role: models.RoleUser, IsActive: true}
			b.users[req.Email] = u
			b.mu.Unlock()
			b.writeJSON(w, http.StatusCreated, map[string]any{"user": u, "access_token": token(u)})
		})
		r.Get("/auth/me", func(w http.ResponseWriter, r *http.Request) {
			var down bool
			b.with(func() { down = b.meDown })
			if down {
				b.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "Service unavailable"})
				return
			}
			if u := b.authed(w, r); u != nil {
				b.writeJSON(w, http.StatusOK, map[string]any{"user": u})
			}
		})

		r.Get("/news", func(w http.ResponseWriter, r *http.Request) {
			b.mu.Lock()
			defer b.mu.Unlock()
			cat, _ := strconv.ParseInt(r.URL.Query().Get("category_id"), 10, 64)
			out := []models.Article{}
			for _, a := range b.articles {
				if cat == 0 || a.CategoryID == cat {
					out = append(out, a)
				}
			}
			b.writeJSON(w, http.StatusOK, map[string]any{"articles": out, "total": len(out), "page": 1, "limit": 10})
		})
		r.Get("/news/categories", func(w http.ResponseWriter, r *http.Request) {
			b.writeJSON(w, http.StatusOK, map[string]any{"categories": b.categories})
		})
		r.Get("/news/recommended", func(w http.ResponseWriter, r *http.Request) {
			if b.authed(w, r) == nil {
				return
			}
			b.writeJSON(w, http.StatusOK, map[string]any{"articles": b.articles[1:2]})
		})
		r.Get("/news/{id}", func(w http.ResponseWriter, r *http.Request) {
			b.mu.Lock()
			defer b.mu.Unlock()
			a, ok := b.article(pathID(r, "id"))
			switch {
			case !ok:
				b.writeJSON(w, http.StatusNotFound, map[string]string{"error": "Article not found"})
			case a.IsPremium:
				b.writeJSON(w, http.StatusForbidden, map[string]string{"error": "Premium subscription required"})
			default:
				b.writeJSON(w, http.StatusOK, map[string]any{"article": a})
			}
		})
		r.Post("/news/{id}/like", func(w http.ResponseWriter, r *http.Request) {
			if b.authed(w, r) == nil {
				return
			}
			b.mu.Lock()
			defer b.mu.Unlock()
			if b.abortLikes {
				panic(http.ErrAbortHandler)
			}
			id := pathID(r, "id")
			b.liked[id] = !b.liked[id]
			b.writeJSON(w, http.StatusOK, map[string]any{"liked": b.liked[id]})
		})
		r.Post("/news/{id}/save", func(w http.ResponseWriter, r *http.Request) {
			if b.authed(w, r) == nil {
				return
			}
			b.mu.Lock()
			defer b.mu.Unlock()
			id := pathID(r, "id")
			b.saved[id] = !b.saved[id]
			status := http.StatusOK
			if b.saved[id] {
				status = http.StatusCreated
			}
			b.writeJSON(w, status, map[string]any{"saved": b.saved[id]})
		})

		r.Get("/comments/articles/{id}/comments", func(w http.ResponseWriter, r *http.Request) {
			b.mu.Lock()
			defer b.mu.Unlock()
			cs := b.comments[pathID(r, "id")]
			if cs == nil {
				cs = []models.Comment{}
			}
			b.writeJSON(w, http.StatusOK, map[string]any{"comments": cs})
		})
		r.Post("/comments/articles/{id}/comments", func(w http.ResponseWriter, r *http.Request) {
			u := b.authed(w, r)
			if u == nil {
				return
			}
			var nc models.NewComment
			_ = json.NewDecoder(r.Body).Decode(&nc)
			b.mu.Lock()
			defer b.mu.Unlock()
			id := pathID(r, "id")
			c := models.Comment{ID: 200, ArticleID: id, Content: nc.Content, ParentID: nc.ParentID, Username: u.Username}
			b.comments[id] = append(b.comments[id], c)
			b.writeJSON(w, http.StatusCreated, map[string]any{"comment": c})
		})

		r.Get("/users/profile", func(w http.ResponseWriter, r *http.Request) {
			if u := b.authed(w, r); u != nil {
				b.writeJSON(w, http.StatusOK, map[string]any{"user": u})
			}
		})
		r.Put("/users/profile", func(w http.ResponseWriter, r *http.Request) {
			u := b.authed(w, r)
			if u == nil {
				return
			}
			var upd models.ProfileUpdate
			_ = json.NewDecoder(r.Body).Decode(&upd)
			b.mu.Lock()
			defer b.mu.Unlock()
			u.Merge(&models.User{Username: upd.Username, Email: upd.Email, FirstName: upd.FirstName, LastName: upd.LastName})
			b.writeJSON(w, http.StatusOK, map[string]any{"user": u})
		})
		r.Get("/users/saved", func(w http.ResponseWriter, r *http.Request) {
			if b.authed(w, r) == nil {
				return
			}
			b.mu.Lock()
			defer b.mu.Unlock()
			out := []models.Article{}
			for _, a := range b.articles {
				if b.saved[a.ID] {
					out = append(out, a)
				}
			}
			b.writeJSON(w, http.StatusOK, map[string]any{"articles": out, "total": len(out)})
		})
		r.Post("/users/authors/{id}/follow", func(w http.ResponseWriter, r *http.Request) {
			if b.authed(w, r) != nil {
				b.writeJSON(w, http.StatusOK, map[string]string{"message": "ok"})
			}
		})

		r.Get("/preferences/categories", func(w http.ResponseWriter, r *http.Request) {
			if b.authed(w, r) == nil {
				return
			}
			b.mu.Lock()
			defer b.mu.Unlock()
			out := []models.Category{}
			for _, c := range b.categories {
				if b.favorites[c.ID] {
					out = append(out, c)
				}
			}
			b.writeJSON(w, http.StatusOK, map[string]any{"favorite_categories": out, "count": len(out)})
		})
		r.Post("/preferences/categories", func(w http.ResponseWriter, r *http.Request) {
			if b.authed(w, r) == nil {
				return
			}
			var body struct {
				CategoryID int64 `json:"category_id"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			b.mu.Lock()
			b.favorites[body.CategoryID] = true
			b.mu.Unlock()
			b.writeJSON(w, http.StatusCreated, map[string]string{"message": "added"})
		})
		r.Post("/preferences/categories/bulk", func(w http.ResponseWriter, r *http.Request) {
			if b.authed(w, r) == nil {
				return
			}
			var body struct {
				CategoryIDs []int64 `json:"category_ids"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			b.mu.Lock()
			b.favorites = map[int64]bool{}
			for _, id := range body.CategoryIDs {
				b.favorites[id] = true
			}
			b.mu.Unlock()
			b.writeJSON(w, http.StatusOK, map[string]string{"message": "updated"})
		})
		r.Delete("/preferences/categories/{id}", func(w http.ResponseWriter, r *http.Request) {
			if b.authed(w, r) == nil {
				return
			}
			b.mu.Lock()
			delete(b.favorites, pathID(r, "id"))
			b.mu.Unlock()
			b.writeJSON(w, http.StatusOK, map[string]string{"message": "removed"})
		})

		r.Get("/subscriptions", func(w http.ResponseWriter, r *http.Request) {
			if b.authed(w, r) != nil {
				b.writeJSON(w, http.StatusOK, map[string]any{"subscription": nil})
			}
		})
		r.Get("/subscriptions/tiers", func(w http.ResponseWriter, r *http.Request) {
			b.writeJSON(w, http.StatusOK, map[string]any{"tiers": []map[string]any{
				{"id": 1, "name": "Free", "type": "free", "price": "0.00", "duration_days": 30},
				{"id": 2, "name": "Premium", "type": "paid", "price": "9.99", "duration_days": 30,
					"features": `["No ads","Premium articles"]`},
			}})
		})

		r.Get("/notifications", func(w http.ResponseWriter, r *http.Request) {
			if b.authed(w, r) == nil {
				return
			}
			b.writeJSON(w, http.StatusOK, map[string]any{"notifications": []models.Notification{
				{ID: 7, Title: "Breaking: markets", Message: "Markets rally", Link: "/news/1"},
				{ID: 8, Title: "Old news", IsRead: true},
			}})
		})

		r.Get("/admin/articles", func(w http.ResponseWriter, r *http.Request) {
			u := b.authed(w, r)
			if u == nil {
				return
			}
			if !u.IsEditor() {
				b.writeJSON(w, http.StatusForbidden, map[string]string{"error": "Editor access required"})
				return
			}
			b.writeJSON(w, http.StatusOK, map[string]any{"articles": b.articles, "total": len(b.articles)})
		})
		r.Get("/admin/users", func(w http.ResponseWriter, r *http.Request) {
			u := b.authed(w, r)
			if u == nil {
				return
			}
			if !u.IsAdmin() {
				b.writeJSON(w, http.StatusForbidden, map[string]string{"error": "Admin access required"})
				return
			}
			b.mu.Lock()
			defer b.mu.Unlock()
			out := []models.User{}
			for _, u := range b.users {
				out = append(out, *u)
			}
			b.writeJSON(w, http.StatusOK, map[string]any{"users": out, "page": 1, "limit": 50})
		})
	})
	return r
}

type testEnv struct {
	app     *App
	out     *bytes.Buffer
	backend *fakeBackend
	srv     *httptest.Server
	db      *sql.DB
}

// newTestEnv wires a real App against fakeBackend and a temporary SQLite
// database. input feeds the interactive prompts; passwords are always "pw".
func newTestEnv(t *testing.T, input string) *testEnv {
	t.Helper()

	oldPassword := getPassword
	getPassword = func(io.Writer) ([]byte, error) { return []byte("pw"), nil }
	t.Cleanup(func() { getPassword = oldPassword })

	b := newFakeBackend()
	srv := httptest.NewServer(b.router())
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.APIBaseURL = srv.URL + "/api"
	cfg.DBPath = filepath.Join(t.TempDir(), "data", "newsdesk.db")
	cfg.OnlineCheckInterval = 0

	ctx := context.Background()
	a, err := NewApp(ctx, cfg, logging.Nop())
	require.NoError(t, err)
	t.Cleanup(a.close)

	var out bytes.Buffer
	a.out = &out
	a.reader = bufio.NewReader(strings.NewReader(input))
	a.session.Subscribe(a.onSessionEvent)
	require.NoError(t, a.session.Bootstrap(ctx))

	return &testEnv{app: a, out: &out, backend: b, srv: srv, db: a.closer.(*sql.DB)}
}

// login authenticates as email without going through the prompts.
func (e *testEnv) login(t *testing.T, email string) {
	t.Helper()
	_, err := e.app.authService.Login(context.Background(), email, "pw")
	require.NoError(t, err)
}

func (e *testEnv) savedToken(t *testing.T) string {
	t.Helper()
	tok, err := metadata.NewTokenStore(e.db).Load(context.Background())
	require.NoError(t, err)
	return tok
}
