package cli

import (
	"context"
	"fmt"
)

// navigate resolves path, applies the route guard and renders the page.
func (a *App) navigate(ctx context.Context, path string) error {
	m := Resolve(path)
	if g, msg := Guard(m, a.session.Snapshot()); msg != "" {
		a.println(msg)
		if g.Route.Page == PageLogin {
			a.next = path
		}
		m = g
	}
	a.setPath(m.Path)
	return a.render(ctx, m)
}

func (a *App) render(ctx context.Context, m Match) error {
	switch m.Route.Page {
	case PageHome:
		a.feed.SetPage(m.queryInt("page", a.feed.Page()))
		return a.homePage(ctx)
	case PageArticle:
		return a.articlePage(ctx, m.ID)
	case PageLogin:
		return a.loginPage(ctx)
	case PageRegister:
		return a.registerPage(ctx)
	case PageProfile:
		return a.profilePage(ctx)
	case PageRecommendations:
		return a.recommendationsPage(ctx)
	case PageSaved:
		return a.savedPage(ctx, m.queryInt("page", 1))
	case PageSubscription:
		return a.subscriptionPage(ctx)
	case PageNotifications:
		return a.notificationsPage(ctx, m.Query.Get("unread") == "true")
	case PageAdmin:
		return a.adminPage(ctx)
	}
	return fmt.Errorf("no renderer for page %q", m.Route.Page)
}

// afterLogin continues to the page a guard interrupted, or stays put.
func (a *App) afterLogin(ctx context.Context) error {
	next := a.next
	a.next = ""
	if next == "" {
		return nil
	}
	return a.navigate(ctx, next)
}
