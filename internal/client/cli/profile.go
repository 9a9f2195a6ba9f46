package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/newsdesk/internal/client/feed"
	"github.com/dmitrijs2005/newsdesk/internal/client/models"
)

func (a *App) profilePage(ctx context.Context) error {
	u, err := a.profileService.Get(ctx)
	if err != nil {
		return err
	}
	a.printf("%s (@%s)\n", u.DisplayName(), u.Username)
	a.printf("  email:  %s\n  role:   %s\n", u.Email, u.Role)
	if d := models.FormatDate(u.CreatedAt); d != "" {
		a.printf("  joined: %s\n", d)
	}

	favs, err := a.profileService.Favorites(ctx)
	if err != nil {
		a.log.Warn(ctx, "loading favorite categories", "error", err)
		a.println("Favorite categories unavailable:", describe(err))
		return nil
	}
	a.printFavorites(favs)
	return nil
}

// cmdEditProfile prompts for each field with the current value as default
// and sends only what changed.
func (a *App) cmdEditProfile(ctx context.Context, _ []string) error {
	cur := a.session.User()
	if cur == nil {
		return nil
	}

	var upd models.ProfileUpdate
	fields := []struct {
		prompt string
		cur    string
		dst    *string
	}{
		{"Username", cur.Username, &upd.Username},
		{"Email", cur.Email, &upd.Email},
		{"First name", cur.FirstName, &upd.FirstName},
		{"Last name", cur.LastName, &upd.LastName},
	}
	for _, f := range fields {
		v, err := GetOptionalText(a.reader, f.prompt, f.cur, a)
		if err != nil {
			return err
		}
		if v != f.cur {
			*f.dst = v
		}
	}
	if upd.IsEmpty() {
		a.println("Nothing changed")
		return nil
	}

	u, err := a.profileService.Update(ctx, upd)
	if err != nil {
		return err
	}
	a.println("Profile updated:", u.DisplayName(), "(@"+u.Username+")")
	return nil
}

// cmdFavorites lists the favorite categories, or with "set" replaces
// them with the given ones. "favorites set" alone clears the list.
func (a *App) cmdFavorites(ctx context.Context, args []string) error {
	switch {
	case len(args) == 0:
	case args[0] == "set":
		return a.setFavorites(ctx, args[1:])
	default:
		return &usageError{"favorites [set <category>...]"}
	}
	favs, err := a.profileService.Favorites(ctx)
	if err != nil {
		return err
	}
	a.printFavorites(favs)
	return nil
}

func (a *App) setFavorites(ctx context.Context, sels []string) error {
	ids := make([]int64, 0, len(sels))
	names := make([]string, 0, len(sels))
	for _, sel := range sels {
		c, err := a.findCategory(ctx, sel)
		if err != nil {
			return err
		}
		ids = append(ids, c.ID)
		names = append(names, c.Name)
	}
	if err := a.profileService.SetFavorites(ctx, ids); err != nil {
		return err
	}
	if len(names) == 0 {
		a.println("Favorite categories cleared")
		return nil
	}
	a.println("Favorite categories:", strings.Join(names, ", "))
	return nil
}

// findCategory resolves sel by slug, id or name, loading the categories
// first if needed.
func (a *App) findCategory(ctx context.Context, sel string) (models.Category, error) {
	cats := a.feed.Categories()
	if len(cats) == 0 {
		var err error
		if cats, err = a.feed.LoadCategories(ctx); err != nil {
			return models.Category{}, err
		}
	}
	c, ok := models.FindCategory(cats, sel)
	if !ok {
		return models.Category{}, feed.ErrUnknownCategory
	}
	return c, nil
}

// cmdFav toggles a favorite category given by slug, id or name.
func (a *App) cmdFav(ctx context.Context, args []string) error {
	sel := argRest(args, 0)
	if sel == "" {
		return &usageError{"fav <category>"}
	}
	c, err := a.findCategory(ctx, sel)
	if err != nil {
		return err
	}

	on, err := a.profileService.ToggleFavorite(ctx, c.ID)
	if err != nil {
		return err
	}
	if on {
		a.printf("Added %s to favorites\n", c.Name)
	} else {
		a.printf("Removed %s from favorites\n", c.Name)
	}
	return nil
}

func (a *App) cmdFollow(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "follow <author-id>")
	if err != nil {
		return err
	}
	if err := a.profileService.FollowAuthor(ctx, id); err != nil {
		return err
	}
	a.println("Following author", id)
	return nil
}

func (a *App) cmdUnfollow(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "unfollow <author-id>")
	if err != nil {
		return err
	}
	if err := a.profileService.UnfollowAuthor(ctx, id); err != nil {
		return err
	}
	a.println("Unfollowed author", id)
	return nil
}

func (a *App) printFavorites(favs []models.Category) {
	if len(favs) == 0 {
		a.println("No favorite categories. Add one with 'fav <category>'.")
		return
	}
	names := make([]string, 0, len(favs))
	for _, c := range favs {
		names = append(names, c.Name)
	}
	a.println("Favorite categories:", strings.Join(names, ", "))
}
