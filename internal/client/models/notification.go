package models

type Notification struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Link      string `json:"link,omitempty"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at,omitempty"`
}

type NotificationPreferences struct {
	BreakingNews   bool `json:"breaking_news"`
	DailyDigest    bool `json:"daily_digest"`
	AuthorAlerts   bool `json:"author_alerts"`
	CommentReplies bool `json:"comment_replies"`
}

// Set switches the preference named by its JSON key. It reports false for
// unknown names.
func (p *NotificationPreferences) Set(name string, on bool) bool {
	switch name {
	case "breaking_news":
		p.BreakingNews = on
	case "daily_digest":
		p.DailyDigest = on
	case "author_alerts":
		p.AuthorAlerts = on
	case "comment_replies":
		p.CommentReplies = on
	default:
		return false
	}
	return true
}

func CountUnread(ns []Notification) int {
	n := 0
	for _, x := range ns {
		if !x.IsRead {
			n++
		}
	}
	return n
}
