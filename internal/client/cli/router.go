package cli

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/newsdesk/internal/client/session"
)

// Access is what a route requires from the session.
type Access int

const (
	AccessPublic Access = iota
	AccessAuth
	// AccessEditor admits editors and admins. Admin-only sections of the
	// page are enforced by AdminService.
	AccessEditor
)

type Page string

const (
	PageHome            Page = "home"
	PageArticle         Page = "article"
	PageLogin           Page = "login"
	PageRegister        Page = "register"
	PageProfile         Page = "profile"
	PageRecommendations Page = "recommendations"
	PageSaved           Page = "saved"
	PageSubscription    Page = "subscription"
	PageNotifications   Page = "notifications"
	PageAdmin           Page = "admin"
)

type Route struct {
	Pattern string
	Page    Page
	Access  Access
}

var routes = []Route{
	{Pattern: "/", Page: PageHome},
	{Pattern: "/news/{id}", Page: PageArticle},
	{Pattern: "/login", Page: PageLogin},
	{Pattern: "/register", Page: PageRegister},
	{Pattern: "/profile", Page: PageProfile, Access: AccessAuth},
	{Pattern: "/recommendations", Page: PageRecommendations, Access: AccessAuth},
	{Pattern: "/saved", Page: PageSaved, Access: AccessAuth},
	{Pattern: "/subscription", Page: PageSubscription, Access: AccessAuth},
	{Pattern: "/notifications", Page: PageNotifications, Access: AccessAuth},
	{Pattern: "/admin", Page: PageAdmin, Access: AccessEditor},
}

// Match is a resolved path. ID is set for /news/{id}.
type Match struct {
	Route Route
	Path  string
	ID    int64
	Query url.Values
}

// Resolve maps path to a route. Unknown paths resolve to the home page.
func Resolve(path string) Match {
	p, q := splitPath(path)
	for _, r := range routes {
		if id, ok := matchPattern(r.Pattern, p); ok {
			return Match{Route: r, Path: p, ID: id, Query: q}
		}
	}
	return Match{Route: routes[0], Path: "/"}
}

// Guard applies the route's access rule to snap. It returns the match to
// render instead and a message explaining the redirect, or m unchanged.
func Guard(m Match, snap session.Snapshot) (Match, string) {
	if m.Route.Access == AccessPublic {
		return m, ""
	}
	if !snap.Authenticated() {
		return Resolve("/login"), "Please log in to view " + m.Path
	}
	if m.Route.Access == AccessEditor && !snap.User.IsEditor() {
		return Resolve("/"), "Admin access required"
	}
	return m, ""
}

// splitPath normalises path and separates its query.
func splitPath(path string) (string, url.Values) {
	p := strings.TrimSpace(path)
	q := url.Values{}
	if u, err := url.Parse(p); err == nil {
		p = u.Path
		q = u.Query()
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = "/"
		}
	}
	return p, q
}

func matchPattern(pattern, path string) (int64, bool) {
	if !strings.Contains(pattern, "{") {
		return 0, pattern == path
	}
	ps := strings.Split(pattern, "/")
	xs := strings.Split(path, "/")
	if len(ps) != len(xs) {
		return 0, false
	}
	var id int64
	for i := range ps {
		if ps[i] == "{id}" {
			n, err := strconv.ParseInt(xs[i], 10, 64)
			if err != nil || n <= 0 {
				return 0, false
			}
			id = n
			continue
		}
		if ps[i] != xs[i] {
			return 0, false
		}
	}
	return id, true
}

func articlePath(id int64) string {
	return "/news/" + strconv.FormatInt(id, 10)
}

// queryInt reads a positive integer query parameter, def when absent or bad.
func (m Match) queryInt(key string, def int) int {
	n, err := strconv.Atoi(m.Query.Get(key))
	if err != nil || n < 1 {
		return def
	}
	return n
}
