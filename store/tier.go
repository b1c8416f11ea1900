package store

import "echovault/vault-api/model"

func (s *Store) GetActiveTiers() ([]model.SubscriptionTier, error) {
	tiers := []model.SubscriptionTier{}
	err := s.DB.
		Where("is_active = ?", true).
		Order("price asc").
		Find(&tiers).
		Error
	if err != nil {
		return nil, err
	}

	return tiers, nil
}

func (s *Store) GetTierByName(name string) (*model.SubscriptionTier, error) {
	var tier model.SubscriptionTier
	if err := s.DB.Where("name = ?", name).First(&tier).Error; err != nil {
		return nil, err
	}

	return &tier, nil
}
