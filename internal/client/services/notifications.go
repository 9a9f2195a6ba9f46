package services

import (
	"context"

	"github.com/dmitrijs2005/newsdesk/internal/client/client"
	"github.com/dmitrijs2005/newsdesk/internal/client/models"
	"github.com/dmitrijs2005/newsdesk/internal/client/session"
)

type NotificationService interface {
	List(ctx context.Context, unreadOnly bool) ([]models.Notification, error)
	MarkRead(ctx context.Context, id int64) error
	Preferences(ctx context.Context) (*models.NotificationPreferences, error)
	UpdatePreferences(ctx context.Context, p models.NotificationPreferences) error
}

type notificationService struct {
	api     client.NotificationsAPI
	session *session.Store
}

func NewNotificationService(api client.NotificationsAPI, sess *session.Store) NotificationService {
	return &notificationService{api: api, session: sess}
}

func (s *notificationService) List(ctx context.Context, unreadOnly bool) ([]models.Notification, error) {
	return session.Call(ctx, s.session, func(c client.Credentials) ([]models.Notification, error) {
		return s.api.Notifications(ctx, c, unreadOnly)
	})
}

func (s *notificationService) MarkRead(ctx context.Context, id int64) error {
	return session.Exec(ctx, s.session, func(c client.Credentials) error {
		return s.api.MarkNotificationRead(ctx, c, id)
	})
}

func (s *notificationService) Preferences(ctx context.Context) (*models.NotificationPreferences, error) {
	return session.Call(ctx, s.session, func(c client.Credentials) (*models.NotificationPreferences, error) {
		return s.api.NotificationPreferences(ctx, c)
	})
}

func (s *notificationService) UpdatePreferences(ctx context.Context, p models.NotificationPreferences) error {
	return session.Exec(ctx, s.session, func(c client.Credentials) error {
		return s.api.UpdateNotificationPreferences(ctx, c, p)
	})
}
