package services

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/newsdesk/internal/client/client"
	"github.com/dmitrijs2005/newsdesk/internal/client/models"
	"github.com/dmitrijs2005/newsdesk/internal/client/session"
)

type ProfileService interface {
	Get(ctx context.Context) (*models.User, error)
	// Update saves the profile and merges the result into the session.
	Update(ctx context.Context, u models.ProfileUpdate) (*models.User, error)
	FollowAuthor(ctx context.Context, authorID int64) error
	UnfollowAuthor(ctx context.Context, authorID int64) error

	// Favorites reloads the favorite categories from the server.
	Favorites(ctx context.Context) ([]models.Category, error)
	// IsFavorite reports membership in the last confirmed favorite set.
	IsFavorite(categoryID int64) bool
	// ToggleFavorite adds or removes a favorite category and reports whether
	// it is a favorite afterwards. The local set changes only once the
	// server has confirmed.
	ToggleFavorite(ctx context.Context, categoryID int64) (bool, error)
	SetFavorites(ctx context.Context, categoryIDs []int64) error
	FavoriteIDs() []int64
}

// ProfileAPI is the part of the REST client the profile service needs.
type ProfileAPI interface {
	Profile(ctx context.Context, creds client.Credentials) (*models.User, error)
	UpdateProfile(ctx context.Context, creds client.Credentials, u models.ProfileUpdate) (*models.User, error)
	FollowAuthor(ctx context.Context, creds client.Credentials, authorID int64) error
	UnfollowAuthor(ctx context.Context, creds client.Credentials, authorID int64) error
	client.PreferencesAPI
}

type profileService struct {
	api     ProfileAPI
	session *session.Store

	mu        sync.Mutex
	favorites map[int64]bool
}

func NewProfileService(api ProfileAPI, sess *session.Store) ProfileService {
	p := &profileService{api: api, session: sess, favorites: make(map[int64]bool)}
	sess.Subscribe(func(ev session.Event) {
		if ev.Kind == session.EventLoggedOut || ev.Kind == session.EventTokenRejected {
			p.resetFavorites(nil)
		}
	})
	return p
}

func (s *profileService) Get(ctx context.Context) (*models.User, error) {
	if !s.session.IsAuthenticated() {
		return nil, ErrLoginRequired
	}
	return session.Call(ctx, s.session, func(c client.Credentials) (*models.User, error) {
		return s.api.Profile(ctx, c)
	})
}

func (s *profileService) Update(ctx context.Context, u models.ProfileUpdate) (*models.User, error) {
	if u.IsEmpty() {
		return nil, ErrNothingToSave
	}
	if !s.session.IsAuthenticated() {
		return nil, ErrLoginRequired
	}
	user, err := session.Call(ctx, s.session, func(c client.Credentials) (*models.User, error) {
		return s.api.UpdateProfile(ctx, c, u)
	})
	if err != nil {
		return nil, err
	}
	s.session.UpdateProfile(user)
	return s.session.User(), nil
}

func (s *profileService) FollowAuthor(ctx context.Context, authorID int64) error {
	if !s.session.IsAuthenticated() {
		return ErrLoginRequired
	}
	return session.Exec(ctx, s.session, func(c client.Credentials) error {
		return s.api.FollowAuthor(ctx, c, authorID)
	})
}

func (s *profileService) UnfollowAuthor(ctx context.Context, authorID int64) error {
	if !s.session.IsAuthenticated() {
		return ErrLoginRequired
	}
	return session.Exec(ctx, s.session, func(c client.Credentials) error {
		return s.api.UnfollowAuthor(ctx, c, authorID)
	})
}

func (s *profileService) Favorites(ctx context.Context) ([]models.Category, error) {
	if !s.session.IsAuthenticated() {
		return nil, ErrLoginRequired
	}
	cats, err := session.Call(ctx, s.session, func(c client.Credentials) ([]models.Category, error) {
		return s.api.FavoriteCategories(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(cats))
	for _, c := range cats {
		ids = append(ids, c.ID)
	}
	s.resetFavorites(ids)
	return cats, nil
}

func (s *profileService) IsFavorite(categoryID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites[categoryID]
}

func (s *profileService) ToggleFavorite(ctx context.Context, categoryID int64) (bool, error) {
	if !s.session.IsAuthenticated() {
		return false, ErrLoginRequired
	}
	wasFavorite := s.IsFavorite(categoryID)

	err := session.Exec(ctx, s.session, func(c client.Credentials) error {
		if wasFavorite {
			return s.api.RemoveFavoriteCategory(ctx, c, categoryID)
		}
		return s.api.AddFavoriteCategory(ctx, c, categoryID)
	})
	if err != nil {
		return wasFavorite, err
	}

	s.mu.Lock()
	if wasFavorite {
		delete(s.favorites, categoryID)
	} else {
		s.favorites[categoryID] = true
	}
	s.mu.Unlock()
	return !wasFavorite, nil
}

func (s *profileService) SetFavorites(ctx context.Context, categoryIDs []int64) error {
	if !s.session.IsAuthenticated() {
		return ErrLoginRequired
	}
	err := session.Exec(ctx, s.session, func(c client.Credentials) error {
		return s.api.SetFavoriteCategories(ctx, c, categoryIDs)
	})
	if err != nil {
		return err
	}
	s.resetFavorites(categoryIDs)
	return nil
}

func (s *profileService) FavoriteIDs() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int64, 0, len(s.favorites))
	for id := range s.favorites {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (s *profileService) resetFavorites(ids []int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favorites = make(map[int64]bool, len(ids))
	for _, id := range ids {
		s.favorites[id] = true
	}
}
