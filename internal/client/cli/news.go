package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/newsdesk/internal/client/feed"
	"github.com/dmitrijs2005/newsdesk/internal/client/models"
)

const recommendedLimit = 10

func (a *App) homePage(ctx context.Context) error {
	// categories only drive the filter; the feed still loads without them
	if len(a.feed.Categories()) == 0 {
		if _, err := a.feed.LoadCategories(ctx); err != nil {
			a.log.Warn(ctx, "loading categories", "error", err)
		}
	}

	articles, err := a.feed.Load(ctx)
	if err != nil {
		return err
	}

	title := "Latest news"
	if c := a.feed.SelectedCategory(); c != nil {
		title += " in " + c.Name
	}
	a.printf("%s (page %d)\n", title, a.feed.Page())
	a.printArticles(articles, "No articles found")
	return nil
}

func (a *App) cmdNews(ctx context.Context, args []string) error {
	page, err := argPage(args, 0)
	if err != nil {
		return err
	}
	return a.navigate(ctx, fmt.Sprintf("/?page=%d", page))
}

func (a *App) cmdSearch(ctx context.Context, args []string) error {
	q := argRest(args, 0)
	if q == "" {
		return &usageError{"search <query>"}
	}
	articles, err := a.feed.Search(ctx, q)
	if err != nil {
		return err
	}
	a.setPath("/")
	a.printf("Search results for %q\n", q)
	a.printArticles(articles, "No articles match your search")
	return nil
}

func (a *App) cmdCategories(ctx context.Context, _ []string) error {
	cats, err := a.feed.LoadCategories(ctx)
	if err != nil {
		return err
	}
	if len(cats) == 0 {
		a.println("No categories")
		return nil
	}
	selected := a.feed.SelectedCategory()
	for _, c := range cats {
		mark := " "
		if selected != nil && selected.ID == c.ID {
			mark = ">"
		}
		fav := ""
		if a.isLoggedIn() && a.profileService.IsFavorite(c.ID) {
			fav = " ★"
		}
		a.printf("%s %3d  %-20s %s%s\n", mark, c.ID, c.Name, c.Slug, fav)
	}
	return nil
}

// cmdCategory sets or clears the feed filter and reloads the feed.
func (a *App) cmdCategory(ctx context.Context, args []string) error {
	sel := argRest(args, 0)
	if sel != "" && len(a.feed.Categories()) == 0 {
		if _, err := a.feed.LoadCategories(ctx); err != nil {
			return err
		}
	}
	c, err := a.feed.SelectCategory(sel)
	if errors.Is(err, feed.ErrUnknownCategory) {
		a.printf("Unknown category %q, showing all categories\n", sel)
	} else if err != nil {
		return err
	}
	if c == nil && err == nil {
		a.println("Category filter cleared")
	}
	return a.navigate(ctx, "/")
}

func (a *App) cmdLike(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "like <article-id>")
	if err != nil {
		return err
	}
	art, err := a.feed.ToggleLike(ctx, id)
	if err != nil {
		return err
	}
	verb := "Unliked"
	if art.IsLiked {
		verb = "Liked"
	}
	a.printf("%s %q (%d likes)\n", verb, art.Title, art.LikesCount)
	return nil
}

func (a *App) cmdSave(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "save <article-id>")
	if err != nil {
		return err
	}
	art, err := a.feed.ToggleSave(ctx, id)
	if err != nil {
		return err
	}
	if art.IsSaved {
		a.printf("Saved %q\n", art.Title)
	} else {
		a.printf("Removed %q from saved articles\n", art.Title)
	}
	return nil
}

func (a *App) recommendationsPage(ctx context.Context) error {
	articles, err := a.newsService.Recommended(ctx, recommendedLimit)
	if err != nil {
		return err
	}
	a.feed.Set(articles)
	a.println("Recommended for you")
	a.printArticles(articles, "No recommendations yet. Like and save articles to get some.")
	return nil
}

func (a *App) savedPage(ctx context.Context, page int) error {
	res, err := a.newsService.Saved(ctx, page)
	if err != nil {
		return err
	}
	a.feed.Set(res.Articles)
	a.printf("Saved articles (page %d)\n", page)
	a.printArticles(res.Articles, "You have not saved any articles yet")
	return nil
}

func (a *App) printArticles(articles []models.Article, empty string) {
	if len(articles) == 0 {
		a.println(empty)
		return
	}
	for _, art := range articles {
		a.println(articleLine(art))
	}
}

func articleLine(art models.Article) string {
	var flags []string
	if art.IsBreaking {
		flags = append(flags, "BREAKING")
	}
	if art.IsPremium {
		flags = append(flags, "premium")
	}
	if art.IsLiked {
		flags = append(flags, "liked")
	}
	if art.IsSaved {
		flags = append(flags, "saved")
	}
	line := fmt.Sprintf("%5d  %s", art.ID, truncate(art.Title, 60))
	if len(flags) > 0 {
		line += " [" + strings.Join(flags, ", ") + "]"
	}
	meta := []string{art.AuthorName()}
	if c := art.CategoryName(); c != "" {
		meta = append(meta, c)
	}
	if d := models.FormatDate(art.PublishedAt); d != "" {
		meta = append(meta, d)
	}
	meta = append(meta, fmt.Sprintf("%d likes", art.LikesCount))
	return line + "\n       " + strings.Join(meta, " · ")
}
