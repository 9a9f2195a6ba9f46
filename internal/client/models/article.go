package models

// ArticleStatus is the editorial state of an article.
type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
	StatusArchived  ArticleStatus = "archived"
)

type Article struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Slug        string        `json:"slug,omitempty"`
	Content     string        `json:"content,omitempty"`
	Excerpt     string        `json:"excerpt,omitempty"`
	AuthorID    int64         `json:"author_id,omitempty"`
	CategoryID  int64         `json:"category_id,omitempty"`
	IsBreaking  bool          `json:"is_breaking"`
	IsPremium   bool          `json:"is_premium"`
	Status      ArticleStatus `json:"status,omitempty"`
	ViewsCount  int           `json:"views_count"`
	LikesCount  int           `json:"likes_count"`
	PublishedAt string        `json:"published_at,omitempty"`
	CreatedAt   string        `json:"created_at,omitempty"`
	UpdatedAt   string        `json:"updated_at,omitempty"`
	Author      *User         `json:"author,omitempty"`
	Category    *Category     `json:"category,omitempty"`
	IsLiked     bool          `json:"is_liked"`
	IsSaved     bool          `json:"is_saved"`
}

// AuthorName is the author's username or "Unknown".
func (a *Article) AuthorName() string {
	if a.Author == nil || a.Author.Username == "" {
		return "Unknown"
	}
	return a.Author.Username
}

func (a *Article) CategoryName() string {
	if a.Category == nil {
		return ""
	}
	return a.Category.Name
}

type ArticlePage struct {
	Articles []Article
	Page     int
	Limit    int
	Total    int
}

// ListParams are the query parameters of GET /news and GET /admin/articles.
// Zero values are not sent.
type ListParams struct {
	Page       int
	Limit      int
	CategoryID int64
	Status     ArticleStatus
}

// ArticleUpdate is the body of PUT /admin/articles/{id}. Nil fields are
// omitted and left untouched by the server.
type ArticleUpdate struct {
	Title      *string        `json:"title,omitempty"`
	Content    *string        `json:"content,omitempty"`
	Excerpt    *string        `json:"excerpt,omitempty"`
	CategoryID *int64         `json:"category_id,omitempty"`
	IsBreaking *bool          `json:"is_breaking,omitempty"`
	IsPremium  *bool          `json:"is_premium,omitempty"`
	Status     *ArticleStatus `json:"status,omitempty"`
}

// LikeResult is the outcome of toggling a like. LikesCount is nil when the
// server did not report the new counter.
type LikeResult struct {
	Liked      bool `json:"liked"`
	LikesCount *int `json:"likes_count,omitempty"`
}

type SaveResult struct {
	Saved bool `json:"saved"`
}
