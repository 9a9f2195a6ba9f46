package client

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/newsdesk/internal/client/models"
)

// CurrentSubscription returns the caller's active subscription, or nil when
// there is none.
func (c *HTTPClient) CurrentSubscription(ctx context.Context, creds Credentials) (*models.Subscription, error) {
	const path = "/subscriptions"
	var resp map[string]json.RawMessage
	if err := c.do(ctx, creds, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	raw, ok := resp["subscription"]
	if !ok {
		return nil, malformed(http.MethodGet, path, "subscription")
	}
	var sub *models.Subscription
	if err := json.Unmarshal(raw, &sub); err != nil {
		return nil, malformed(http.MethodGet, path, "subscription")
	}
	return sub, nil
}

func (c *HTTPClient) Tiers(ctx context.Context) ([]models.SubscriptionTier, error) {
	const path = "/subscriptions/tiers"
	var resp struct {
		Tiers *[]models.SubscriptionTier `json:"tiers"`
	}
	if err := c.do(ctx, Anonymous, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	if resp.Tiers == nil {
		return nil, malformed(http.MethodGet, path, "tiers")
	}
	return *resp.Tiers, nil
}

func (c *HTTPClient) Subscribe(ctx context.Context, creds Credentials, tierID int64) (*models.Subscription, error) {
	const path = "/subscriptions"
	body := struct {
		TierID int64 `json:"tier_id"`
	}{tierID}
	var resp struct {
		Subscription *models.Subscription `json:"subscription"`
	}
	if err := c.do(ctx, creds, http.MethodPost, path, nil, body, &resp); err != nil {
		return nil, err
	}
	if resp.Subscription == nil {
		return nil, malformed(http.MethodPost, path, "subscription")
	}
	return resp.Subscription, nil
}
