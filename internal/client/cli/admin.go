package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/newsdesk/internal/client/models"
)

const adminPageSize = 50

const adminUsage = "admin articles [status] | publish|archive|draft <id> | breaking|premium <id> on|off | " +
	"edit <id> | delete <id> | users [page] | toggle <user-id> | addcat | editcat <id>"

func (a *App) adminPage(ctx context.Context) error {
	if err := a.adminArticles(ctx, ""); err != nil {
		return err
	}
	if u := a.session.User(); u.IsAdmin() {
		a.println()
		return a.adminUsers(ctx, 1)
	}
	return nil
}

func (a *App) cmdAdmin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.navigate(ctx, "/admin")
	}
	sub, rest := args[0], args[1:]
	switch sub {
	case "articles":
		var status models.ArticleStatus
		if len(rest) > 0 {
			status = models.ArticleStatus(rest[0])
		}
		return a.adminArticles(ctx, status)

	case "publish", "archive", "draft":
		id, err := argID(rest, 0, "admin "+sub+" <id>")
		if err != nil {
			return err
		}
		status := map[string]models.ArticleStatus{
			"publish": models.StatusPublished,
			"archive": models.StatusArchived,
			"draft":   models.StatusDraft,
		}[sub]
		return a.adminUpdate(ctx, id, models.ArticleUpdate{Status: &status})

	case "breaking", "premium":
		usage := "admin " + sub + " <id> on|off"
		id, err := argID(rest, 0, usage)
		if err != nil {
			return err
		}
		if len(rest) != 2 || (rest[1] != "on" && rest[1] != "off") {
			return &usageError{usage}
		}
		on := rest[1] == "on"
		upd := models.ArticleUpdate{IsBreaking: &on}
		if sub == "premium" {
			upd = models.ArticleUpdate{IsPremium: &on}
		}
		return a.adminUpdate(ctx, id, upd)

	case "edit":
		id, err := argID(rest, 0, "admin edit <id>")
		if err != nil {
			return err
		}
		return a.adminEdit(ctx, id)

	case "delete":
		id, err := argID(rest, 0, "admin delete <id>")
		if err != nil {
			return err
		}
		ok, err := GetConfirm(a.reader, fmt.Sprintf("Delete article %d?", id), a)
		if err != nil || !ok {
			return err
		}
		if err := a.adminService.DeleteArticle(ctx, id); err != nil {
			return err
		}
		a.println("Article deleted")
		return nil

	case "users":
		page, err := argPage(rest, 0)
		if err != nil {
			return err
		}
		return a.adminUsers(ctx, page)

	case "toggle":
		id, err := argID(rest, 0, "admin toggle <user-id>")
		if err != nil {
			return err
		}
		u, err := a.adminService.ToggleUserActive(ctx, id)
		if err != nil {
			return err
		}
		state := "deactivated"
		if u.IsActive {
			state = "activated"
		}
		a.printf("User %s %s\n", u.Username, state)
		return nil

	case "addcat":
		in, err := a.promptCategory(models.Category{})
		if err != nil {
			return err
		}
		c, err := a.adminService.CreateCategory(ctx, in)
		if err != nil {
			return err
		}
		a.printf("Category %d %q created\n", c.ID, c.Name)
		return nil

	case "editcat":
		id, err := argID(rest, 0, "admin editcat <id>")
		if err != nil {
			return err
		}
		cur, _ := models.FindCategory(a.feed.Categories(), fmt.Sprint(id))
		in, err := a.promptCategory(cur)
		if err != nil {
			return err
		}
		c, err := a.adminService.UpdateCategory(ctx, id, in)
		if err != nil {
			return err
		}
		a.printf("Category %d %q updated\n", c.ID, c.Name)
		return nil
	}
	return &usageError{adminUsage}
}

func (a *App) adminArticles(ctx context.Context, status models.ArticleStatus) error {
	page, err := a.adminService.Articles(ctx, models.ListParams{Page: 1, Limit: adminPageSize, Status: status})
	if err != nil {
		return err
	}
	a.printf("Articles (%d)\n", page.Total)
	if len(page.Articles) == 0 {
		a.println("No articles")
		return nil
	}
	for _, art := range page.Articles {
		a.printf("%5d  %-9s %s · %s\n", art.ID, art.Status, truncate(art.Title, 50), art.AuthorName())
	}
	return nil
}

func (a *App) adminUsers(ctx context.Context, page int) error {
	res, err := a.adminService.Users(ctx, page, adminPageSize)
	if err != nil {
		return err
	}
	a.printf("Users (page %d)\n", res.Page)
	for _, u := range res.Users {
		state := "active"
		if !u.IsActive {
			state = "inactive"
		}
		a.printf("%5d  %-16s %-24s %-7s %s\n", u.ID, u.Username, u.Email, u.Role, state)
	}
	return nil
}

func (a *App) adminUpdate(ctx context.Context, id int64, upd models.ArticleUpdate) error {
	art, err := a.adminService.UpdateArticle(ctx, id, upd)
	if err != nil {
		return err
	}
	a.printf("Article %d updated (%s)\n", art.ID, art.Status)
	return nil
}

// adminEdit prompts for title, excerpt and content; empty answers keep the
// server's value.
func (a *App) adminEdit(ctx context.Context, id int64) error {
	var upd models.ArticleUpdate
	title, err := GetSimpleText(a.reader, "New title (empty to keep)", a)
	if err != nil {
		return err
	}
	if title != "" {
		upd.Title = &title
	}
	excerpt, err := GetSimpleText(a.reader, "New excerpt (empty to keep)", a)
	if err != nil {
		return err
	}
	if excerpt != "" {
		upd.Excerpt = &excerpt
	}
	content, err := GetMultiline(a.reader, "New content (empty to keep)", a)
	if err != nil {
		return err
	}
	if content != "" {
		upd.Content = &content
	}
	return a.adminUpdate(ctx, id, upd)
}

func (a *App) promptCategory(cur models.Category) (models.CategoryInput, error) {
	name, err := GetOptionalText(a.reader, "Category name", cur.Name, a)
	if err != nil {
		return models.CategoryInput{}, err
	}
	desc, err := GetOptionalText(a.reader, "Description", cur.Description, a)
	if err != nil {
		return models.CategoryInput{}, err
	}
	return models.CategoryInput{Name: name, Description: desc}, nil
}
