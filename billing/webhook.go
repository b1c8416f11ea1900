package billing

import (
	"encoding/json"
	"fmt"
	"time"

	"echovault/vault-api/store"

	stripe "github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/webhook"
	"go.uber.org/zap"
)

// VerifyEvent checks the webhook signature against the raw body and
// returns the parsed event.
func (b *Client) VerifyEvent(payload []byte, sigHeader string) (stripe.Event, error) {
	return webhook.ConstructEvent(payload, sigHeader, b.webhookSecret)
}

// HandleEvent mirrors subscription lifecycle events onto the local
// user row. Unhandled event types are acknowledged and ignored.
func (b *Client) HandleEvent(event stripe.Event) error {
	switch event.Type {
	case "customer.subscription.updated":
		return b.subscriptionUpdated(event)
	case "customer.subscription.deleted":
		return b.subscriptionDeleted(event)
	default:
		zap.L().Debug("Ignoring webhook event", zap.String("type", string(event.Type)))
		return nil
	}
}

func (b *Client) subscriptionUpdated(event stripe.Event) error {
	sub, err := parseSubscription(event)
	if err != nil {
		return err
	}

	user, err := b.store.GetUserByStripeCustomerID(sub.Customer.ID)
	if err != nil {
		return fmt.Errorf("no user for customer %s, %w", sub.Customer.ID, err)
	}

	status := string(sub.Status)
	expiresAt := time.Unix(sub.CurrentPeriodEnd, 0)

	_, err = b.store.UpdateUserStripeInfo(user.ID, store.StripeInfo{
		Status:    &status,
		ExpiresAt: &expiresAt,
	})

	return err
}

func (b *Client) subscriptionDeleted(event stripe.Event) error {
	sub, err := parseSubscription(event)
	if err != nil {
		return err
	}

	user, err := b.store.GetUserByStripeCustomerID(sub.Customer.ID)
	if err != nil {
		return fmt.Errorf("no user for customer %s, %w", sub.Customer.ID, err)
	}

	status := "canceled"
	tier := "free"

	_, err = b.store.UpdateUserStripeInfo(user.ID, store.StripeInfo{
		Status: &status,
		Tier:   &tier,
	})

	return err
}

func parseSubscription(event stripe.Event) (*stripe.Subscription, error) {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return nil, fmt.Errorf("failed to parse subscription from event, %w", err)
	}

	if sub.Customer == nil || sub.Customer.ID == "" {
		return nil, fmt.Errorf("event %s carries no customer", event.ID)
	}

	return &sub, nil
}
