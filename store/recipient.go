package store

import (
	"echovault/vault-api/model"

	"gorm.io/gorm"
)

func (s *Store) GetRecipient(id uint) (*model.Recipient, error) {
	var recipient model.Recipient
	if err := s.DB.First(&recipient, id).Error; err != nil {
		return nil, err
	}

	return &recipient, nil
}

func (s *Store) GetRecipientsByUserID(userID uint) ([]model.Recipient, error) {
	recipients := []model.Recipient{}
	if err := s.DB.Where("user_id = ?", userID).Find(&recipients).Error; err != nil {
		return nil, err
	}

	return recipients, nil
}

func (s *Store) CreateRecipient(recipient *model.Recipient) error {
	return s.DB.Create(recipient).Error
}

func (s *Store) UpdateRecipient(id uint, fields map[string]any) (*model.Recipient, error) {
	var recipient model.Recipient
	if err := s.DB.First(&recipient, id).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Model(&recipient).Updates(fields).Error; err != nil {
		return nil, err
	}

	return &recipient, nil
}

// DeleteRecipient removes the recipient and every delivery addressed
// to it, in one transaction.
func (s *Store) DeleteRecipient(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("recipient_id = ?", id).
			Delete(&model.Delivery{}).
			Error
		if err != nil {
			return err
		}

		return tx.Delete(&model.Recipient{}, id).Error
	})
}
