package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/newsdesk/internal/client/models"
)

func (a *App) subscriptionPage(ctx context.Context) error {
	current, err := a.subscriptionService.Current(ctx)
	if err != nil {
		return err
	}
	a.printSubscription(current)

	tiers, err := a.subscriptionService.PaidTiers(ctx)
	if err != nil {
		return err
	}
	a.println()
	a.println("Available plans:")
	a.printTiers(tiers, current)
	return nil
}

func (a *App) cmdTiers(ctx context.Context, _ []string) error {
	tiers, err := a.subscriptionService.Tiers(ctx)
	if err != nil {
		return err
	}
	var current *models.Subscription
	if a.isLoggedIn() {
		// only used to mark the current plan
		if current, err = a.subscriptionService.Current(ctx); err != nil {
			a.log.Debug(ctx, "loading current subscription", "error", err)
		}
	}
	a.printTiers(tiers, current)
	return nil
}

func (a *App) cmdSubscribe(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "subscribe <tier-id>")
	if err != nil {
		return err
	}
	sub, err := a.subscriptionService.Subscribe(ctx, id)
	if err != nil {
		return err
	}
	a.println("Subscription updated")
	a.printSubscription(sub)
	return nil
}

func (a *App) printSubscription(s *models.Subscription) {
	if s == nil {
		a.println("You are on the free plan")
		return
	}
	status := "inactive"
	if s.IsActive {
		status = "active"
	}
	a.printf("Current plan: %s (%s, %s)\n", s.TierName, s.Price, status)
	if d := models.FormatDate(s.EndDate); d != "" {
		a.printf("  renews or ends on %s\n", d)
	}
}

func (a *App) printTiers(tiers []models.SubscriptionTier, current *models.Subscription) {
	if len(tiers) == 0 {
		a.println("No plans available")
		return
	}
	for _, t := range tiers {
		mark := " "
		if current.IsTier(t) {
			mark = "*"
		}
		a.printf("%s %3d  %-12s %s / %s\n", mark, t.ID, t.Name, t.Price, t.Period())
		if len(t.Features) > 0 {
			a.printf("       %s\n", strings.Join(t.Features, "; "))
		}
	}
}
