package store

import (
	"echovault/vault-api/model"

	"gorm.io/gorm"
)

func (s *Store) GetContentItem(id uint) (*model.ContentItem, error) {
	var item model.ContentItem
	if err := s.DB.First(&item, id).Error; err != nil {
		return nil, err
	}

	return &item, nil
}

func (s *Store) GetContentItemsByVaultID(vaultID uint) ([]model.ContentItem, error) {
	items := []model.ContentItem{}
	if err := s.DB.Where("vault_id = ?", vaultID).Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (s *Store) GetContentItemsByUserID(userID uint) ([]model.ContentItem, error) {
	items := []model.ContentItem{}
	if err := s.DB.Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

func (s *Store) CreateContentItem(item *model.ContentItem) error {
	return s.DB.Create(item).Error
}

func (s *Store) UpdateContentItem(id uint, fields map[string]any) (*model.ContentItem, error) {
	var item model.ContentItem
	if err := s.DB.First(&item, id).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Model(&item).Updates(fields).Error; err != nil {
		return nil, err
	}

	return &item, nil
}

// DeleteContentItem removes the item and its deliveries in one
// transaction.
func (s *Store) DeleteContentItem(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("content_item_id = ?", id).
			Delete(&model.Delivery{}).
			Error
		if err != nil {
			return err
		}

		return tx.Delete(&model.ContentItem{}, id).Error
	})
}
