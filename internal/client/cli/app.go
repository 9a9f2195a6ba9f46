package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/newsdesk/internal/client/client"
	"github.com/dmitrijs2005/newsdesk/internal/client/config"
	"github.com/dmitrijs2005/newsdesk/internal/client/feed"
	"github.com/dmitrijs2005/newsdesk/internal/client/repositories"
	"github.com/dmitrijs2005/newsdesk/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/newsdesk/internal/client/services"
	"github.com/dmitrijs2005/newsdesk/internal/client/session"
	"github.com/dmitrijs2005/newsdesk/internal/filex"
	"github.com/dmitrijs2005/newsdesk/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

const pingTimeout = 3 * time.Second

// Services groups the application services the pages talk to.
type Services struct {
	Auth          services.AuthService
	News          services.NewsService
	Comments      services.CommentService
	Subscriptions services.SubscriptionService
	Notifications services.NotificationService
	Profile       services.ProfileService
	Admin         services.AdminService
}

type App struct {
	config  *config.Config
	log     logging.Logger
	session *session.Store
	tokens  *metadata.TokenStore

	authService         services.AuthService
	newsService         services.NewsService
	commentService      services.CommentService
	subscriptionService services.SubscriptionService
	notificationService services.NotificationService
	profileService      services.ProfileService
	adminService        services.AdminService

	feed   *feed.Feed
	reader *bufio.Reader
	closer io.Closer

	// outMu serializes writes to out: the watcher goroutine prints too.
	outMu sync.Mutex
	out   io.Writer

	mu   sync.RWMutex
	mode Mode
	path string
	// next is where to go after a guard sent the user to /login.
	next string
}

// NewApp opens the local database and wires the HTTP client, the session
// and the services.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	if _, err := filex.EnsureParentDir(c.DBPath); err != nil {
		return nil, err
	}

	db, err := repositories.InitDatabase(ctx, c.DBPath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DBPath, "error", err)
		return nil, err
	}

	api, err := client.NewHTTPClient(c.APIBaseURL,
		client.WithRateLimit(c.RequestsPerSecond),
		client.WithLogger(log),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	tokens := metadata.NewTokenStore(db)
	sess := session.New(api, tokens, log)
	svc := Services{
		Auth:          services.NewAuthService(api, sess),
		News:          services.NewNewsService(api, sess),
		Comments:      services.NewCommentService(api, sess),
		Subscriptions: services.NewSubscriptionService(api, sess),
		Notifications: services.NewNotificationService(api, sess),
		Profile:       services.NewProfileService(api, sess),
		Admin:         services.NewAdminService(api, sess),
	}

	a := newApp(c, log, sess, svc, os.Stdin, os.Stdout)
	a.tokens = tokens
	a.closer = db
	return a, nil
}

func newApp(c *config.Config, log logging.Logger, sess *session.Store, svc Services, in io.Reader, out io.Writer) *App {
	if log == nil {
		log = logging.Nop()
	}
	return &App{
		config:              c,
		log:                 log,
		session:             sess,
		authService:         svc.Auth,
		newsService:         svc.News,
		commentService:      svc.Comments,
		subscriptionService: svc.Subscriptions,
		notificationService: svc.Notifications,
		profileService:      svc.Profile,
		adminService:        svc.Admin,
		feed:                feed.New(svc.News, services.DefaultPageSize),
		reader:              bufio.NewReader(in),
		out:                 out,
		path:                "/",
	}
}

// Run restores the saved session, starts the connectivity watcher and
// serves the REPL until EOF or "exit".
func (a *App) Run(ctx context.Context) error {
	defer a.close()

	unsubscribe := a.session.Subscribe(a.onSessionEvent)
	defer unsubscribe()

	a.println("Welcome to Newsdesk (type 'help' for commands)")

	if err := a.session.Bootstrap(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
		a.println("Could not restore session:", describe(err))
	}
	if u := a.session.User(); u != nil {
		a.println("Logged in as", u.Username)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, a.reader, a)
	return nil
}

func (a *App) close() {
	if a.closer == nil {
		return
	}
	if err := a.closer.Close(); err != nil {
		a.log.Warn(context.Background(), "closing database", "error", err)
	}
}

func (a *App) onSessionEvent(ev session.Event) {
	if ev.Kind == session.EventTokenRejected {
		a.println("Your session has ended:", ev.Reason+". Please log in again.")
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// hasToken is true while a token is held, verified or not. A token kept
// through a failed verification can still be refreshed or logged out.
func (a *App) hasToken() bool {
	return !a.session.Credentials().IsZero()
}

func (a *App) Mode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.mode
}

// setMode switches the mode and reports whether it changed.
func (a *App) setMode(mode Mode) bool {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(context.Background(), "switched mode", "mode", string(mode))
	}
	return changed
}

func (a *App) Path() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.path
}

func (a *App) setPath(p string) {
	a.mu.Lock()
	a.path = p
	a.mu.Unlock()
}

func (a *App) getStatus() string {
	s := ""
	if u := a.session.User(); u != nil {
		s = u.Username + " "
	}
	if m := a.Mode(); m != "" {
		s += string(m)
	}
	if s != "" {
		s = fmt.Sprintf("(%s) ", s)
	}
	return s + a.Path()
}

func (a *App) checkOnline(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	err := a.authService.Ping(ctx)
	cancel()

	if err != nil {
		if !errors.Is(err, context.Canceled) {
			a.setMode(ModeOffline)
		}
		return
	}
	if a.setMode(ModeOnline) {
		a.resumeSession(ctx)
	}
}

// resumeSession re-verifies a token that was kept while the server was
// unreachable.
func (a *App) resumeSession(ctx context.Context) {
	snap := a.session.Snapshot()
	if snap.Token == "" || snap.User != nil || snap.Loading {
		return
	}
	if err := a.session.Refresh(ctx); err != nil {
		a.log.Warn(ctx, "session still not verified", "error", err)
		return
	}
	if u := a.session.User(); u != nil {
		a.println("Session restored for", u.Username)
	}
}

// StartOnlineStatusWatcher pings the API every interval and switches Mode
// accordingly. A non-positive interval checks once.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	a.checkOnline(ctx)
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// Write sends p to the terminal. Prompts, pages and the REPL all write
// through the App.
func (a *App) Write(p []byte) (int, error) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	return a.out.Write(p)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a, format, args...)
}
