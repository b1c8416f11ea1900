// Package db handles opening the database and preparing the schema
package db

import (
	"echovault/vault-api/model"
	"fmt"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func New() (*gorm.DB, error) {
	var dial gorm.Dialector

	switch viper.GetString("storage.driver") {
	case "postgres":
		dial = postgres.Open(viper.GetString("storage.dsn"))
	default:
		dial = sqlite.Open(viper.GetString("storage.dsn"))
	}

	db, err := gorm.Open(dial)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	err = db.AutoMigrate(
		model.User{},
		model.Vault{},
		model.Recipient{},
		model.ContentItem{},
		model.Delivery{},
		model.Activity{},
		model.SubscriptionTier{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	if viper.GetBool("seed-tiers") {
		if err := SeedTiers(db); err != nil {
			return nil, fmt.Errorf("failed to seed subscription tiers, %w", err)
		}
	}

	return db, nil
}

// SeedTiers inserts the default subscription tiers if the table is
// empty. Price IDs can be overridden per-tier with stripe.price.<name>.
func SeedTiers(db *gorm.DB) error {
	var count int64
	if err := db.Model(model.SubscriptionTier{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	tiers := []model.SubscriptionTier{
		{
			Name:          "basic",
			Description:   "5 vaults, 5 GB of storage",
			Price:         499,
			Interval:      "month",
			Features:      model.JSONMap{"vaults": 5, "storageGb": 5},
			StripePriceID: priceID("basic", "price_basic123"),
		},
		{
			Name:          "premium",
			Description:   "Unlimited vaults, 50 GB of storage",
			Price:         999,
			Interval:      "month",
			Features:      model.JSONMap{"vaults": -1, "storageGb": 50},
			StripePriceID: priceID("premium", "price_premium456"),
		},
		{
			Name:          "enterprise",
			Description:   "Unlimited everything plus priority support",
			Price:         2999,
			Interval:      "month",
			Features:      model.JSONMap{"vaults": -1, "storageGb": -1, "support": "priority"},
			StripePriceID: priceID("enterprise", "price_enterprise789"),
		},
	}

	return db.Create(&tiers).Error
}

func priceID(tier, fallback string) string {
	if v := viper.GetString("stripe.price." + tier); v != "" {
		return v
	}

	return fallback
}
