package store

import "echovault/vault-api/model"

func (s *Store) GetDelivery(id uint) (*model.Delivery, error) {
	var delivery model.Delivery
	if err := s.DB.First(&delivery, id).Error; err != nil {
		return nil, err
	}

	return &delivery, nil
}

func (s *Store) GetDeliveriesByUserID(userID uint) ([]model.Delivery, error) {
	deliveries := []model.Delivery{}
	if err := s.DB.Where("user_id = ?", userID).Find(&deliveries).Error; err != nil {
		return nil, err
	}

	return deliveries, nil
}

func (s *Store) GetDeliveriesByRecipientID(recipientID uint) ([]model.Delivery, error) {
	deliveries := []model.Delivery{}
	if err := s.DB.Where("recipient_id = ?", recipientID).Find(&deliveries).Error; err != nil {
		return nil, err
	}

	return deliveries, nil
}

func (s *Store) GetDeliveriesByContentItemID(contentItemID uint) ([]model.Delivery, error) {
	deliveries := []model.Delivery{}
	if err := s.DB.Where("content_item_id = ?", contentItemID).Find(&deliveries).Error; err != nil {
		return nil, err
	}

	return deliveries, nil
}

func (s *Store) CreateDelivery(delivery *model.Delivery) error {
	return s.DB.Create(delivery).Error
}

func (s *Store) UpdateDelivery(id uint, fields map[string]any) (*model.Delivery, error) {
	var delivery model.Delivery
	if err := s.DB.First(&delivery, id).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Model(&delivery).Updates(fields).Error; err != nil {
		return nil, err
	}

	return &delivery, nil
}

// DeleteDelivery removes a single delivery. Leaf entity, no cascade.
func (s *Store) DeleteDelivery(id uint) error {
	return s.DB.Delete(&model.Delivery{}, id).Error
}
