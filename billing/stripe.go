// Package billing wraps the Stripe SDK calls behind the subscription
// endpoints and mirrors subscription state onto the user row.
package billing

import (
	"errors"
	"fmt"
	"strconv"

	"echovault/vault-api/model"
	"echovault/vault-api/store"

	stripe "github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
	"gorm.io/gorm"
)

var ErrTierUnknown = errors.New("unknown subscription tier")

type Client struct {
	sc            *client.API
	store         *store.Store
	webhookSecret string
}

func New(secretKey, webhookSecret string, s *store.Store) *Client {
	sc := &client.API{}
	sc.Init(secretKey, nil)

	return &Client{
		sc:            sc,
		store:         s,
		webhookSecret: webhookSecret,
	}
}

// EnsureCustomer returns the user's Stripe customer ID, creating the
// customer lazily from the user's email and name.
func (b *Client) EnsureCustomer(user *model.User) (string, error) {
	if user.StripeCustomerID != nil && *user.StripeCustomerID != "" {
		return *user.StripeCustomerID, nil
	}

	name := user.DisplayName
	if name == "" {
		name = user.Username
	}

	params := &stripe.CustomerParams{
		Email: stripe.String(user.Email),
		Name:  stripe.String(name),
	}
	params.AddMetadata("userId", strconv.FormatUint(uint64(user.ID), 10))

	cust, err := b.sc.Customers.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create Stripe customer, %w", err)
	}

	_, err = b.store.UpdateUserStripeInfo(user.ID, store.StripeInfo{
		CustomerID: &cust.ID,
	})
	if err != nil {
		return "", err
	}

	return cust.ID, nil
}

// CreateSubscription subscribes the user to the named tier and returns
// the client secret the frontend needs to confirm the first payment.
func (b *Client) CreateSubscription(userID uint, tierName string) (clientSecret, subscriptionID string, err error) {
	user, err := b.store.GetUser(userID)
	if err != nil {
		return "", "", err
	}

	tier, err := b.store.GetTierByName(tierName)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", "", ErrTierUnknown
		}

		return "", "", err
	}

	customerID, err := b.EnsureCustomer(user)
	if err != nil {
		return "", "", err
	}

	params := &stripe.SubscriptionParams{
		Customer: stripe.String(customerID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(tier.StripePriceID)},
		},
		PaymentBehavior: stripe.String("default_incomplete"),
		PaymentSettings: &stripe.SubscriptionPaymentSettingsParams{
			SaveDefaultPaymentMethod: stripe.String("on_subscription"),
		},
	}
	params.AddExpand("latest_invoice.payment_intent")

	sub, err := b.sc.Subscriptions.New(params)
	if err != nil {
		return "", "", fmt.Errorf("failed to create subscription, %w", err)
	}

	if sub.LatestInvoice == nil || sub.LatestInvoice.PaymentIntent == nil || sub.LatestInvoice.PaymentIntent.ClientSecret == "" {
		return "", "", errors.New("no client secret on subscription invoice")
	}

	status := string(sub.Status)

	_, err = b.store.UpdateUserStripeInfo(user.ID, store.StripeInfo{
		SubscriptionID: &sub.ID,
		Status:         &status,
		Tier:           &tierName,
	})
	if err != nil {
		return "", "", err
	}

	return sub.LatestInvoice.PaymentIntent.ClientSecret, sub.ID, nil
}

// CreatePaymentIntent sets up a one-off payment for the user. Amount
// is in cents.
func (b *Client) CreatePaymentIntent(userID uint, amount int64, currency string) (clientSecret string, err error) {
	user, err := b.store.GetUser(userID)
	if err != nil {
		return "", err
	}

	customerID, err := b.EnsureCustomer(user)
	if err != nil {
		return "", err
	}

	pi, err := b.sc.PaymentIntents.New(&stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		Customer: stripe.String(customerID),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent, %w", err)
	}

	return pi.ClientSecret, nil
}

// CancelSubscription cancels the user's subscription with Stripe and
// marks the local mirror canceled.
func (b *Client) CancelSubscription(userID uint) error {
	user, err := b.store.GetUser(userID)
	if err != nil {
		return err
	}

	if user.StripeSubscriptionID == "" {
		return errors.New("user has no subscription")
	}

	_, err = b.sc.Subscriptions.Cancel(user.StripeSubscriptionID, nil)
	if err != nil {
		return fmt.Errorf("failed to cancel subscription, %w", err)
	}

	status := "canceled"

	_, err = b.store.UpdateUserStripeInfo(user.ID, store.StripeInfo{
		Status: &status,
	})

	return err
}
