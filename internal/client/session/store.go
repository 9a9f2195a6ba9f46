package session

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/newsdesk/internal/client/client"
	"github.com/dmitrijs2005/newsdesk/internal/client/models"
	"github.com/dmitrijs2005/newsdesk/internal/common"
	"github.com/dmitrijs2005/newsdesk/internal/logging"
)

// TokenStore persists the bearer token between runs.
type TokenStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

type Store struct {
	api    client.AuthAPI
	tokens TokenStore
	log    logging.Logger
	now    func() time.Time

	mu      sync.RWMutex
	state   State
	token   string
	user    *models.User
	loading bool

	subsMu  sync.Mutex
	subs    map[int]func(Event)
	nextSub int
}

func New(api client.AuthAPI, tokens TokenStore, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	return &Store{
		api:    api,
		tokens: tokens,
		log:    log,
		now:    time.Now,
		state:  StateBootstrapping,
		subs:   make(map[int]func(Event)),
	}
}

// Bootstrap restores the persisted session. A token the server rejects is
// dropped; any other verification failure keeps the token, leaves the user
// unset and is returned.
func (s *Store) Bootstrap(ctx context.Context) error {
	tok, err := s.tokens.Load(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to load persisted token", "error", err)
		s.setState(StateUnauthenticated)
		return err
	}
	if tok == "" {
		s.setState(StateUnauthenticated)
		return nil
	}

	if expired(tok, s.now()) {
		s.log.Info(ctx, "persisted token has expired", "token", common.MaskToken(tok))
		s.clearPersisted(ctx)
		s.setState(StateUnauthenticated)
		s.emit(Event{Kind: EventTokenRejected, Reason: "token expired"})
		return nil
	}

	s.mu.Lock()
	s.token = tok
	s.loading = true
	s.mu.Unlock()

	return s.verify(ctx, tok, false)
}

// Refresh re-verifies the current token with the server. On failures other
// than a token rejection the current user is kept.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.Lock()
	tok := s.token
	if tok == "" {
		s.mu.Unlock()
		return ErrNotLoggedIn
	}
	s.loading = true
	s.mu.Unlock()

	return s.verify(ctx, tok, true)
}

func (s *Store) verify(ctx context.Context, tok string, keepUser bool) error {
	user, err := s.api.Me(ctx, client.Credentials{Token: tok})

	s.mu.Lock()
	if s.token != tok {
		// a login or logout happened meanwhile and owns the state now
		s.mu.Unlock()
		return nil
	}
	s.loading = false

	switch {
	case err == nil:
		s.user = user
		s.state = StateAuthenticated
		ev := Event{Kind: EventLoggedIn, User: copyUser(user)}
		s.mu.Unlock()
		s.log.Info(ctx, "session verified", "user", user.Username)
		s.emit(ev)
		return nil

	case client.IsTokenRejection(err):
		s.token = ""
		s.user = nil
		s.state = StateUnauthenticated
		s.mu.Unlock()
		s.log.Warn(ctx, "token rejected during verification", "error", err)
		s.clearPersisted(ctx)
		s.emit(Event{Kind: EventTokenRejected, Reason: client.Message(err)})
		return nil

	default:
		if !keepUser {
			s.user = nil
		}
		if s.user == nil {
			s.state = StateUnauthenticated
		}
		s.mu.Unlock()
		s.log.Warn(ctx, "session verification failed, token kept", "error", err)
		return err
	}
}

func (s *Store) Login(ctx context.Context, email, password string) (*models.User, error) {
	res, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.log.Warn(ctx, "login failed", "email", email, "error", err)
		return nil, authError(err, "Login failed")
	}
	return s.establish(ctx, res), nil
}

func (s *Store) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	res, err := s.api.Register(ctx, req)
	if err != nil {
		s.log.Warn(ctx, "registration failed", "username", req.Username, "error", err)
		return nil, authError(err, "Registration failed")
	}
	return s.establish(ctx, res), nil
}

// establish persists the token and then switches to authenticated. A
// persistence failure is logged; the in-memory session still works.
func (s *Store) establish(ctx context.Context, res *models.AuthResult) *models.User {
	if err := s.tokens.Save(ctx, res.AccessToken); err != nil {
		s.log.Error(ctx, "failed to persist token", "error", err)
	}

	s.mu.Lock()
	s.token = res.AccessToken
	s.user = res.User
	s.state = StateAuthenticated
	s.loading = false
	out := copyUser(res.User)
	s.mu.Unlock()

	s.log.Info(ctx, "logged in", "user", res.User.Username)
	s.emit(Event{Kind: EventLoggedIn, User: copyUser(res.User)})
	return out
}

// Logout forgets the session locally. The server is not contacted.
func (s *Store) Logout(ctx context.Context) {
	s.clearPersisted(ctx)

	s.mu.Lock()
	had := s.token != "" || s.user != nil
	s.token = ""
	s.user = nil
	s.state = StateUnauthenticated
	s.loading = false
	s.mu.Unlock()

	if had {
		s.log.Info(ctx, "logged out")
		s.emit(Event{Kind: EventLoggedOut})
	}
}

// HandleError inspects the failure of a request made with creds. When the
// server rejected the token and creds are still the current credentials,
// the session is dropped and true is returned.
func (s *Store) HandleError(ctx context.Context, creds client.Credentials, err error) bool {
	if err == nil || !client.IsTokenRejection(err) {
		return false
	}

	s.mu.Lock()
	if creds.IsZero() || creds.Token != s.token {
		s.mu.Unlock()
		return false
	}
	s.token = ""
	s.user = nil
	s.state = StateUnauthenticated
	s.loading = false
	s.mu.Unlock()

	s.log.Warn(ctx, "token rejected by server, session dropped", "error", err)
	s.clearPersisted(ctx)
	s.emit(Event{Kind: EventTokenRejected, Reason: client.Message(err)})
	return true
}

// UpdateProfile merges the non-zero fields of u into the session user.
func (s *Store) UpdateProfile(u *models.User) {
	if u == nil {
		return
	}
	s.mu.Lock()
	if s.user == nil {
		s.mu.Unlock()
		return
	}
	merged := copyUser(s.user)
	merged.Merge(u)
	s.user = merged
	ev := Event{Kind: EventProfileUpdated, User: copyUser(merged)}
	s.mu.Unlock()

	s.emit(ev)
}

// Subscribe registers fn for session events and returns a function that
// removes it. Callbacks run synchronously, outside the session lock.
func (s *Store) Subscribe(fn func(Event)) func() {
	s.subsMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subsMu.Unlock()

	return func() {
		s.subsMu.Lock()
		delete(s.subs, id)
		s.subsMu.Unlock()
	}
}

func (s *Store) Credentials() client.Credentials {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return client.Credentials{Token: s.token}
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		State:   s.state,
		User:    copyUser(s.user),
		Token:   s.token,
		Loading: s.loading,
	}
}

// User returns a copy of the session user, nil when not authenticated.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyUser(s.user)
}

func (s *Store) IsAuthenticated() bool {
	return s.Snapshot().Authenticated()
}

func (s *Store) setState(st State) {
	s.mu.Lock()
	s.state = st
	s.loading = false
	s.mu.Unlock()
}

func (s *Store) clearPersisted(ctx context.Context) {
	if err := s.tokens.Clear(ctx); err != nil {
		s.log.Error(ctx, "failed to clear persisted token", "error", err)
	}
}

func (s *Store) emit(ev Event) {
	s.subsMu.Lock()
	fns := make([]func(Event), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subsMu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

func copyUser(u *models.User) *models.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
