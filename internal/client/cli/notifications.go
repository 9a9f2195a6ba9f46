package cli

import (
	"context"

	"github.com/dmitrijs2005/newsdesk/internal/client/models"
)

var preferenceNames = []string{"breaking_news", "daily_digest", "author_alerts", "comment_replies"}

func (a *App) notificationsPage(ctx context.Context, unreadOnly bool) error {
	ns, err := a.notificationService.List(ctx, unreadOnly)
	if err != nil {
		return err
	}
	a.printf("Notifications (%d unread)\n", models.CountUnread(ns))
	if len(ns) == 0 {
		a.println("Nothing new")
		return nil
	}
	for _, n := range ns {
		mark := " "
		if !n.IsRead {
			mark = "•"
		}
		a.printf("%s %4d  %s\n", mark, n.ID, n.Title)
		if n.Message != "" {
			a.printf("        %s\n", truncate(n.Message, 100))
		}
		if n.Link != "" {
			a.printf("        go %s\n", n.Link)
		}
	}
	return nil
}

func (a *App) cmdRead(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "read <notification-id>")
	if err != nil {
		return err
	}
	if err := a.notificationService.MarkRead(ctx, id); err != nil {
		return err
	}
	a.println("Marked as read")
	return nil
}

// cmdPrefs shows the notification preferences, or switches one of them.
func (a *App) cmdPrefs(ctx context.Context, args []string) error {
	const usage = "prefs [breaking_news|daily_digest|author_alerts|comment_replies on|off]"

	prefs, err := a.notificationService.Preferences(ctx)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		a.printPreferences(prefs)
		return nil
	}
	if len(args) != 2 {
		return &usageError{usage}
	}

	var on bool
	switch args[1] {
	case "on", "true", "yes":
		on = true
	case "off", "false", "no":
	default:
		return &usageError{usage}
	}
	p := *prefs
	if !p.Set(args[0], on) {
		return &usageError{usage}
	}
	if err := a.notificationService.UpdatePreferences(ctx, p); err != nil {
		return err
	}
	a.printPreferences(&p)
	return nil
}

func (a *App) printPreferences(p *models.NotificationPreferences) {
	values := []bool{p.BreakingNews, p.DailyDigest, p.AuthorAlerts, p.CommentReplies}
	for i, name := range preferenceNames {
		a.printf("  %-16s %s\n", name, onOff(values[i]))
	}
}
