package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/newsdesk/internal/client/client"
	"github.com/dmitrijs2005/newsdesk/internal/client/models"
)

func (a *App) articlePage(ctx context.Context, id int64) error {
	art, err := a.newsService.Get(ctx, id)
	if err != nil {
		return &pageError{msg: client.ArticleMessage(err), err: err}
	}
	a.feed.Put(*art)

	a.println(strings.ToUpper(art.Title))
	if art.IsBreaking {
		a.println("BREAKING NEWS")
	}
	meta := []string{"by " + art.AuthorName()}
	if c := art.CategoryName(); c != "" {
		meta = append(meta, c)
	}
	if d := models.FormatDate(art.PublishedAt); d != "" {
		meta = append(meta, d)
	}
	meta = append(meta,
		fmt.Sprintf("%d views", art.ViewsCount),
		fmt.Sprintf("%d likes", art.LikesCount),
	)
	a.println(strings.Join(meta, " · "))
	if art.Author != nil && art.Author.ID != 0 {
		a.printf("(follow the author with 'follow %d')\n", art.Author.ID)
	}
	a.println()
	if art.Excerpt != "" {
		a.println(art.Excerpt)
		a.println()
	}
	a.println(art.Content)
	a.println()

	comments, err := a.commentService.List(ctx, id)
	if err != nil {
		a.log.Warn(ctx, "loading comments", "article", id, "error", err)
		a.println("Comments unavailable:", describe(err))
		return nil
	}
	a.printComments(comments)
	return nil
}

func (a *App) cmdComments(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "comments <article-id>")
	if err != nil {
		return err
	}
	comments, err := a.commentService.List(ctx, id)
	if err != nil {
		return err
	}
	a.printComments(comments)
	return nil
}

func (a *App) cmdComment(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "comment <article-id> [text]")
	if err != nil {
		return err
	}
	return a.postComment(ctx, id, nil, argRest(args, 1))
}

func (a *App) cmdReply(ctx context.Context, args []string) error {
	const usage = "reply <article-id> <comment-id> [text]"
	id, err := argID(args, 0, usage)
	if err != nil {
		return err
	}
	parent, err := argID(args, 1, usage)
	if err != nil {
		return err
	}
	return a.postComment(ctx, id, &parent, argRest(args, 2))
}

func (a *App) postComment(ctx context.Context, articleID int64, parentID *int64, text string) error {
	if text == "" {
		var err error
		text, err = GetMultiline(a.reader, "Your comment", a)
		if err != nil {
			return err
		}
	}
	c, err := a.commentService.Create(ctx, articleID, text, parentID)
	if err != nil {
		return err
	}
	if parentID != nil {
		a.printf("Reply %d posted\n", c.ID)
	} else {
		a.printf("Comment %d posted\n", c.ID)
	}
	return nil
}

func (a *App) printComments(comments []models.Comment) {
	a.printf("Comments (%d)\n", models.CountComments(comments))
	if len(comments) == 0 {
		a.println("No comments yet. Be the first to comment!")
		return
	}
	for _, c := range comments {
		a.println(commentLine(c, ""))
		for _, r := range c.Replies {
			a.println(commentLine(r, "    ↳ "))
		}
	}
}

func commentLine(c models.Comment, indent string) string {
	who := strings.TrimSpace(c.FirstName + " " + c.LastName)
	if who == "" {
		who = c.Username
	}
	if who == "" {
		who = "Anonymous"
	}
	head := fmt.Sprintf("%s#%d %s", indent, c.ID, who)
	if d := models.FormatDate(c.CreatedAt); d != "" {
		head += " · " + d
	}
	pad := strings.Repeat(" ", len([]rune(indent)))
	return head + "\n" + pad + "  " + strings.ReplaceAll(c.Content, "\n", "\n"+pad+"  ")
}
