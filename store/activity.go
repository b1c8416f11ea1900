package store

import "echovault/vault-api/model"

func (s *Store) GetActivity(id uint) (*model.Activity, error) {
	var activity model.Activity
	if err := s.DB.First(&activity, id).Error; err != nil {
		return nil, err
	}

	return &activity, nil
}

func (s *Store) GetActivitiesByUserID(userID uint) ([]model.Activity, error) {
	activities := []model.Activity{}
	err := s.DB.
		Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Find(&activities).
		Error
	if err != nil {
		return nil, err
	}

	return activities, nil
}

// CreateActivity appends an audit record. There is deliberately no
// update or delete counterpart.
func (s *Store) CreateActivity(activity *model.Activity) error {
	return s.DB.Create(activity).Error
}
