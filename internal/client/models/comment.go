package models

type Comment struct {
	ID        int64     `json:"id"`
	ArticleID int64     `json:"article_id"`
	UserID    int64     `json:"user_id"`
	ParentID  *int64    `json:"parent_id"`
	Content   string    `json:"content"`
	Username  string    `json:"username,omitempty"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	CreatedAt string    `json:"created_at,omitempty"`
	Replies   []Comment `json:"replies,omitempty"`
}

// NewComment is the body of POST /comments/articles/{id}/comments.
type NewComment struct {
	Content  string `json:"content"`
	ParentID *int64 `json:"parent_id"`
}

// CountComments counts top-level comments and their replies.
func CountComments(cs []Comment) int {
	n := 0
	for _, c := range cs {
		n += 1 + len(c.Replies)
	}
	return n
}
