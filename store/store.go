// Package store is the repository layer. All entity CRUD goes through
// here; cascade deletes run inside a single transaction so a failure
// partway through can't orphan rows.
package store

import "gorm.io/gorm"

type Store struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{DB: db}
}
