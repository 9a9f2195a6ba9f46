package cli

import (
	"context"
	"time"

	"github.com/dmitrijs2005/newsdesk/internal/client/models"
	"github.com/dmitrijs2005/newsdesk/internal/client/session"
	"github.com/dmitrijs2005/newsdesk/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for username, email, password and optional names and
// creates the account. The new session is established right away.
//
// The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a)
	if err != nil {
		return err
	}
	password, err := getPassword(a)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	first, err := getSimpleText(a.reader, "First name (optional)", a)
	if err != nil {
		return err
	}
	last, err := getSimpleText(a.reader, "Last name (optional)", a)
	if err != nil {
		return err
	}

	u, err := a.authService.Register(ctx, models.RegisterRequest{
		Username:  username,
		Email:     email,
		Password:  string(password),
		FirstName: first,
		LastName:  last,
	})
	if err != nil {
		return err
	}

	a.println("Welcome,", u.DisplayName()+"!")
	return nil
}

// Login prompts for email and password and authenticates. The token is
// persisted by the session so the next start resumes it.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a)
	if err != nil {
		return err
	}

	password, err := getPassword(a)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.authService.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	a.log.Info(ctx, "logged in", "user", u.Username)
	a.println("Logged in as", u.Username)
	return nil
}

// Logout ends the session and forgets the saved token.
func (a *App) Logout(ctx context.Context) error {
	a.authService.Logout(ctx)
	a.setPath("/")
	a.println("Logged out")
	return nil
}

// WhoAmI prints the session user and when the token expires.
func (a *App) WhoAmI(ctx context.Context) error {
	snap := a.session.Snapshot()
	if !snap.Authenticated() {
		a.println("Not logged in")
		return nil
	}
	u := snap.User
	a.printf("%s <%s>\n", u.DisplayName(), u.Email)
	a.printf("  username: %s\n  role:     %s\n", u.Username, u.Role)
	if exp, ok := session.ExpiresAt(snap.Token); ok {
		a.printf("  token:    %s, expires %s\n", common.MaskToken(snap.Token), exp.Local().Format(time.RFC1123))
	} else {
		a.printf("  token:    %s\n", common.MaskToken(snap.Token))
	}
	if a.tokens == nil {
		return nil
	}
	at, ok, err := a.tokens.SavedAt(ctx)
	if err != nil {
		a.log.Warn(ctx, "reading token save time", "error", err)
		return nil
	}
	if ok {
		a.printf("  saved:    %s\n", at.Local().Format(time.RFC1123))
	}
	return nil
}

// Refresh re-reads the user from the server.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.authService.Refresh(ctx); err != nil {
		return err
	}
	if u := a.session.User(); u != nil {
		a.println("Session refreshed for", u.Username)
	}
	return nil
}

func (a *App) loginPage(ctx context.Context) error {
	if u := a.session.User(); u != nil && a.isLoggedIn() {
		a.println("Already logged in as", u.Username)
		return nil
	}
	if err := a.Login(ctx); err != nil {
		a.next = ""
		return err
	}
	return a.afterLogin(ctx)
}

func (a *App) registerPage(ctx context.Context) error {
	if u := a.session.User(); u != nil && a.isLoggedIn() {
		a.println("Already logged in as", u.Username)
		return nil
	}
	if err := a.Register(ctx); err != nil {
		return err
	}
	return a.afterLogin(ctx)
}
