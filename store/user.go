package store

import (
	"echovault/vault-api/model"
	"time"
)

func (s *Store) GetUser(id uint) (*model.User, error) {
	var user model.User
	if err := s.DB.First(&user, id).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *Store) GetUserByUsername(username string) (*model.User, error) {
	var user model.User
	if err := s.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *Store) GetUserByEmail(email string) (*model.User, error) {
	var user model.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// GetUserByStripeCustomerID resolves the webhook customer reference
// through the unique index on stripe_customer_id.
func (s *Store) GetUserByStripeCustomerID(customerID string) (*model.User, error) {
	var user model.User
	if err := s.DB.Where("stripe_customer_id = ?", customerID).First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *Store) CreateUser(user *model.User) error {
	return s.DB.Create(user).Error
}

func (s *Store) UpdateUser(id uint, fields map[string]any) (*model.User, error) {
	var user model.User
	if err := s.DB.First(&user, id).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Model(&user).Updates(fields).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// StripeInfo carries the billing mirror fields updated from Stripe
// calls and webhook events. Nil fields are left untouched.
type StripeInfo struct {
	CustomerID     *string
	SubscriptionID *string
	Status         *string
	Tier           *string
	ExpiresAt      *time.Time
}

func (s *Store) UpdateUserStripeInfo(id uint, info StripeInfo) (*model.User, error) {
	fields := map[string]any{}

	if info.CustomerID != nil {
		fields["stripe_customer_id"] = *info.CustomerID
	}
	if info.SubscriptionID != nil {
		fields["stripe_subscription_id"] = *info.SubscriptionID
	}
	if info.Status != nil {
		fields["subscription_status"] = *info.Status
	}
	if info.Tier != nil {
		fields["subscription_tier"] = *info.Tier
	}
	if info.ExpiresAt != nil {
		fields["subscription_expires_at"] = *info.ExpiresAt
	}

	if len(fields) == 0 {
		return s.GetUser(id)
	}

	return s.UpdateUser(id, fields)
}
