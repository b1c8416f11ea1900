package store

import (
	"echovault/vault-api/model"

	"gorm.io/gorm"
)

func (s *Store) GetVault(id uint) (*model.Vault, error) {
	var vault model.Vault
	if err := s.DB.First(&vault, id).Error; err != nil {
		return nil, err
	}

	return &vault, nil
}

func (s *Store) GetVaultsByUserID(userID uint) ([]model.Vault, error) {
	vaults := []model.Vault{}
	if err := s.DB.Where("user_id = ?", userID).Find(&vaults).Error; err != nil {
		return nil, err
	}

	return vaults, nil
}

func (s *Store) CreateVault(vault *model.Vault) error {
	return s.DB.Create(vault).Error
}

func (s *Store) UpdateVault(id uint, fields map[string]any) (*model.Vault, error) {
	var vault model.Vault
	if err := s.DB.First(&vault, id).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Model(&vault).Updates(fields).Error; err != nil {
		return nil, err
	}

	return &vault, nil
}

// DeleteVault removes the vault, every content item inside it and
// every delivery referencing those items, in one transaction. Deleting
// an id that doesn't exist is a no-op, not an error.
func (s *Store) DeleteVault(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var contentIDs []uint
		err := tx.Model(model.ContentItem{}).
			Where("vault_id = ?", id).
			Pluck("id", &contentIDs).
			Error
		if err != nil {
			return err
		}

		if len(contentIDs) > 0 {
			err = tx.Where("content_item_id IN ?", contentIDs).
				Delete(&model.Delivery{}).
				Error
			if err != nil {
				return err
			}

			err = tx.Where("vault_id = ?", id).
				Delete(&model.ContentItem{}).
				Error
			if err != nil {
				return err
			}
		}

		return tx.Delete(&model.Vault{}, id).Error
	})
}
