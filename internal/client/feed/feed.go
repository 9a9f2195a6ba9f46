// Package feed holds the client-side copy of an article listing and keeps
// it consistent with the server: like/save toggles are applied only after
// the server confirms them, and the category filter only ever refers to a
// category that was actually loaded.
package feed

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/dmitrijs2005/newsdesk/internal/client/models"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrNotLoaded       = errors.New("article is not in the current list")
)

// Source is what a feed needs from the news service.
type Source interface {
	List(ctx context.Context, p models.ListParams) (*models.ArticlePage, error)
	Search(ctx context.Context, query string, page int) (*models.ArticlePage, error)
	Categories(ctx context.Context) ([]models.Category, error)
	Like(ctx context.Context, id int64) (*models.LikeResult, error)
	Save(ctx context.Context, id int64) (*models.SaveResult, error)
}

type Feed struct {
	src   Source
	limit int

	mu         sync.RWMutex
	articles   []models.Article
	categories []models.Category
	category   *models.Category
	page       int
	query      string
}

func New(src Source, limit int) *Feed {
	return &Feed{src: src, limit: limit, page: 1}
}

// LoadCategories refreshes the category list. A selected category that is
// no longer present is cleared.
func (f *Feed) LoadCategories(ctx context.Context) ([]models.Category, error) {
	cats, err := f.src.Categories(ctx)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.categories = append([]models.Category(nil), cats...)
	if f.category != nil {
		if c, ok := models.FindCategory(f.categories, f.category.Slug); !ok || c.ID != f.category.ID {
			f.category = nil
		}
	}
	return cats, nil
}

// Load fetches the current page of the listing with the selected category.
// A successful load replaces the local copy; a failed one leaves it as is.
func (f *Feed) Load(ctx context.Context) ([]models.Article, error) {
	f.mu.RLock()
	p := models.ListParams{Page: f.page, Limit: f.limit}
	if f.category != nil {
		p.CategoryID = f.category.ID
	}
	f.mu.RUnlock()

	res, err := f.src.List(ctx, p)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.query = ""
	f.articles = append([]models.Article(nil), res.Articles...)
	return f.copyArticles(), nil
}

// Search replaces the local copy with search results.
func (f *Feed) Search(ctx context.Context, query string) ([]models.Article, error) {
	query = strings.TrimSpace(query)
	res, err := f.src.Search(ctx, query, 1)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.query = query
	f.articles = append([]models.Article(nil), res.Articles...)
	return f.copyArticles(), nil
}

// SelectCategory resolves sel by slug, id or case-insensitive name against
// the loaded categories. An empty sel clears the filter. An unresolvable
// sel also clears it and returns ErrUnknownCategory.
func (f *Feed) SelectCategory(sel string) (*models.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.page = 1
	if strings.TrimSpace(sel) == "" {
		f.category = nil
		return nil, nil
	}
	c, ok := models.FindCategory(f.categories, sel)
	if !ok {
		f.category = nil
		return nil, ErrUnknownCategory
	}
	f.category = &c
	out := c
	return &out, nil
}

func (f *Feed) SelectedCategory() *models.Category {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.category == nil {
		return nil
	}
	c := *f.category
	return &c
}

func (f *Feed) Categories() []models.Category {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]models.Category(nil), f.categories...)
}

func (f *Feed) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	f.mu.Lock()
	f.page = page
	f.mu.Unlock()
}

func (f *Feed) Page() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.page
}

// Query is the search the current list came from, "" for the plain feed.
func (f *Feed) Query() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.query
}

// Set replaces the local copy, e.g. with a single article or saved list.
func (f *Feed) Set(articles []models.Article) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.articles = append([]models.Article(nil), articles...)
}

// Put replaces the local copy of a with the same id, or appends it.
func (f *Feed) Put(a models.Article) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.articles {
		if f.articles[i].ID == a.ID {
			f.articles[i] = a
			return
		}
	}
	f.articles = append(f.articles, a)
}

func (f *Feed) Articles() []models.Article {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.copyArticles()
}

func (f *Feed) Article(id int64) (models.Article, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, a := range f.articles {
		if a.ID == id {
			return a, true
		}
	}
	return models.Article{}, false
}

// ToggleLike sends one like request and applies the server's answer to the
// local copy. On failure the local copy is unchanged.
func (f *Feed) ToggleLike(ctx context.Context, id int64) (models.Article, error) {
	if _, ok := f.Article(id); !ok {
		return models.Article{}, ErrNotLoaded
	}
	res, err := f.src.Like(ctx, id)
	if err != nil {
		return models.Article{}, err
	}
	return f.update(id, func(a *models.Article) { ApplyLike(a, res) })
}

// ToggleSave is ToggleLike for the saved flag.
func (f *Feed) ToggleSave(ctx context.Context, id int64) (models.Article, error) {
	if _, ok := f.Article(id); !ok {
		return models.Article{}, ErrNotLoaded
	}
	res, err := f.src.Save(ctx, id)
	if err != nil {
		return models.Article{}, err
	}
	return f.update(id, func(a *models.Article) { a.IsSaved = res.Saved })
}

func (f *Feed) update(id int64, fn func(*models.Article)) (models.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.articles {
		if f.articles[i].ID == id {
			fn(&f.articles[i])
			return f.articles[i], nil
		}
	}
	// the list was replaced while the request was in flight
	return models.Article{}, ErrNotLoaded
}

// ApplyLike reconciles a with a like result. The server counter wins when
// present; otherwise the counter moves by one only when the server's flag
// differs from the local one, and never drops below zero.
func ApplyLike(a *models.Article, res *models.LikeResult) {
	switch {
	case res.LikesCount != nil:
		a.LikesCount = *res.LikesCount
	case res.Liked && !a.IsLiked:
		a.LikesCount++
	case !res.Liked && a.IsLiked:
		a.LikesCount--
		if a.LikesCount < 0 {
			a.LikesCount = 0
		}
	}
	a.IsLiked = res.Liked
}

func (f *Feed) copyArticles() []models.Article {
	return append([]models.Article(nil), f.articles...)
}
