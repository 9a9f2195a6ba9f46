package services

import (
	"context"

	"github.com/dmitrijs2005/newsdesk/internal/client/client"
	"github.com/dmitrijs2005/newsdesk/internal/client/models"
	"github.com/dmitrijs2005/newsdesk/internal/client/session"
)

type SubscriptionService interface {
	Tiers(ctx context.Context) ([]models.SubscriptionTier, error)
	// PaidTiers is Tiers without the free tier, as offered for purchase.
	PaidTiers(ctx context.Context) ([]models.SubscriptionTier, error)
	Current(ctx context.Context) (*models.Subscription, error)
	Subscribe(ctx context.Context, tierID int64) (*models.Subscription, error)
}

type subscriptionService struct {
	api     client.SubscriptionsAPI
	session *session.Store
}

func NewSubscriptionService(api client.SubscriptionsAPI, sess *session.Store) SubscriptionService {
	return &subscriptionService{api: api, session: sess}
}

func (s *subscriptionService) Tiers(ctx context.Context) ([]models.SubscriptionTier, error) {
	return s.api.Tiers(ctx)
}

func (s *subscriptionService) PaidTiers(ctx context.Context) ([]models.SubscriptionTier, error) {
	tiers, err := s.api.Tiers(ctx)
	if err != nil {
		return nil, err
	}
	return models.PaidTiers(tiers), nil
}

func (s *subscriptionService) Current(ctx context.Context) (*models.Subscription, error) {
	return session.Call(ctx, s.session, func(c client.Credentials) (*models.Subscription, error) {
		return s.api.CurrentSubscription(ctx, c)
	})
}

func (s *subscriptionService) Subscribe(ctx context.Context, tierID int64) (*models.Subscription, error) {
	if !s.session.IsAuthenticated() {
		return nil, ErrLoginRequired
	}
	return session.Call(ctx, s.session, func(c client.Credentials) (*models.Subscription, error) {
		return s.api.Subscribe(ctx, c, tierID)
	})
}
