package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/newsdesk/internal/client/services"
)

type command struct {
	name    string
	aliases []string
	usage   string
	// auth commands are refused without a session and listed only once
	// logged in.
	auth bool
	// token commands only need a held token, verified or not.
	token bool
	// editor commands are hidden from readers in help.
	editor bool
	run   func(a *App, ctx context.Context, args []string) error
}

var commandList = []command{
	{name: "go", usage: "go <path>", run: (*App).cmdGo},
	{name: "news", aliases: []string{"home"}, usage: "news [page]", run: (*App).cmdNews},
	{name: "search", usage: "search <query>", run: (*App).cmdSearch},
	{name: "show", usage: "show <article-id>", run: (*App).cmdShow},
	{name: "comments", usage: "comments <article-id>", run: (*App).cmdComments},
	{name: "categories", usage: "categories", run: (*App).cmdCategories},
	{name: "category", usage: "category [slug|id|name]", run: (*App).cmdCategory},
	{name: "tiers", usage: "tiers", run: (*App).cmdTiers},
	{name: "login", usage: "login", run: (*App).cmdLogin},
	{name: "register", usage: "register", run: (*App).cmdRegister},

	{name: "like", usage: "like <article-id>", auth: true, run: (*App).cmdLike},
	{name: "save", usage: "save <article-id>", auth: true, run: (*App).cmdSave},
	{name: "comment", usage: "comment <article-id> [text]", auth: true, run: (*App).cmdComment},
	{name: "reply", usage: "reply <article-id> <comment-id> [text]", auth: true, run: (*App).cmdReply},
	{name: "saved", usage: "saved [page]", auth: true, run: (*App).cmdSaved},
	{name: "recommended", usage: "recommended", auth: true, run: (*App).cmdRecommended},
	{name: "profile", usage: "profile", auth: true, run: (*App).cmdProfile},
	{name: "editprofile", usage: "editprofile", auth: true, run: (*App).cmdEditProfile},
	{name: "favorites", usage: "favorites [set <category>...]", auth: true, run: (*App).cmdFavorites},
	{name: "fav", usage: "fav <category>", auth: true, run: (*App).cmdFav},
	{name: "follow", usage: "follow <author-id>", auth: true, run: (*App).cmdFollow},
	{name: "unfollow", usage: "unfollow <author-id>", auth: true, run: (*App).cmdUnfollow},
	{name: "subscribe", usage: "subscribe <tier-id>", auth: true, run: (*App).cmdSubscribe},
	{name: "notifications", usage: "notifications [unread]", auth: true, run: (*App).cmdNotifications},
	{name: "read", usage: "read <notification-id>", auth: true, run: (*App).cmdRead},
	{name: "prefs", usage: "prefs [name on|off]", auth: true, run: (*App).cmdPrefs},
	{name: "admin", usage: "admin <articles|publish|archive|draft|edit|delete|users|toggle|addcat|editcat> ...", auth: true, editor: true, run: (*App).cmdAdmin},
	{name: "whoami", usage: "whoami", auth: true, run: (*App).cmdWhoAmI},
	{name: "refresh", usage: "refresh", token: true, run: (*App).cmdRefresh},
	{name: "logout", usage: "logout", token: true, run: (*App).cmdLogout},
}

func lookupCommand(name string) (command, bool) {
	name = strings.ToLower(name)
	for _, c := range commandList {
		if c.name == name {
			return c, true
		}
		for _, alias := range c.aliases {
			if alias == name {
				return c, true
			}
		}
	}
	return command{}, false
}

// Execute runs one REPL command. Failures are logged here and returned
// for the REPL to print.
func (a *App) Execute(ctx context.Context, name string, args []string) error {
	c, ok := lookupCommand(name)
	if !ok {
		return errUnknownCommand
	}
	if !a.allowed(c) {
		return services.ErrLoginRequired
	}
	if err := c.run(a, ctx, args); err != nil {
		a.log.Warn(ctx, "command failed", "command", c.name, "error", err)
		return err
	}
	return nil
}

func (a *App) allowed(c command) bool {
	switch {
	case c.token:
		return a.hasToken()
	case c.auth:
		return a.isLoggedIn()
	}
	return true
}

func (a *App) help() []string {
	loggedIn := a.isLoggedIn()
	user := a.session.User()
	lines := []string{"Available commands:"}
	for _, c := range commandList {
		if !a.allowed(c) || (c.editor && user.IsReader()) {
			continue
		}
		if loggedIn && (c.name == "login" || c.name == "register") {
			continue
		}
		lines = append(lines, "  "+c.usage)
	}
	lines = append(lines, "  help", "  exit")
	if !loggedIn {
		lines = append(lines, "Log in to like, save, comment and manage your profile.")
	}
	return lines
}

func (a *App) cmdGo(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return &usageError{"go <path>"}
	}
	return a.navigate(ctx, args[0])
}

func (a *App) cmdShow(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "show <article-id>")
	if err != nil {
		return err
	}
	return a.navigate(ctx, articlePath(id))
}

func (a *App) cmdSaved(ctx context.Context, args []string) error {
	page, err := argPage(args, 0)
	if err != nil {
		return err
	}
	return a.navigate(ctx, fmt.Sprintf("/saved?page=%d", page))
}

func (a *App) cmdRecommended(ctx context.Context, _ []string) error {
	return a.navigate(ctx, "/recommendations")
}

func (a *App) cmdProfile(ctx context.Context, _ []string) error {
	return a.navigate(ctx, "/profile")
}

func (a *App) cmdNotifications(ctx context.Context, args []string) error {
	switch {
	case len(args) == 0:
		return a.navigate(ctx, "/notifications")
	case len(args) == 1 && args[0] == "unread":
		return a.navigate(ctx, "/notifications?unread=true")
	}
	return &usageError{"notifications [unread]"}
}

func (a *App) cmdLogin(ctx context.Context, _ []string) error {
	return a.Login(ctx)
}

func (a *App) cmdRegister(ctx context.Context, _ []string) error {
	return a.Register(ctx)
}

func (a *App) cmdLogout(ctx context.Context, _ []string) error {
	return a.Logout(ctx)
}

func (a *App) cmdWhoAmI(ctx context.Context, _ []string) error {
	return a.WhoAmI(ctx)
}

func (a *App) cmdRefresh(ctx context.Context, _ []string) error {
	return a.Refresh(ctx)
}
