package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/newsdesk/internal/client/models"
)

func (c *HTTPClient) Notifications(ctx context.Context, creds Credentials, unreadOnly bool) ([]models.Notification, error) {
	const path = "/notifications"
	var q url.Values
	if unreadOnly {
		q = url.Values{"unread_only": {"true"}}
	}
	var resp struct {
		Notifications *[]models.Notification `json:"notifications"`
	}
	if err := c.do(ctx, creds, http.MethodGet, path, q, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Notifications == nil {
		return nil, malformed(http.MethodGet, path, "notifications")
	}
	return *resp.Notifications, nil
}

func (c *HTTPClient) MarkNotificationRead(ctx context.Context, creds Credentials, id int64) error {
	return c.do(ctx, creds, http.MethodPut, fmt.Sprintf("/notifications/%d/read", id), nil, nil, nil)
}

func (c *HTTPClient) NotificationPreferences(ctx context.Context, creds Credentials) (*models.NotificationPreferences, error) {
	const path = "/notifications/preferences"
	var resp struct {
		Preferences *models.NotificationPreferences `json:"preferences"`
	}
	if err := c.do(ctx, creds, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Preferences == nil {
		return nil, malformed(http.MethodGet, path, "preferences")
	}
	return resp.Preferences, nil
}

func (c *HTTPClient) UpdateNotificationPreferences(ctx context.Context, creds Credentials, p models.NotificationPreferences) error {
	return c.do(ctx, creds, http.MethodPut, "/notifications/preferences", nil, p, nil)
}
