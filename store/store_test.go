package store

import (
	"fmt"
	"testing"
	"time"

	"echovault/vault-api/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	// Named per-test so pooled connections attach to the same in-memory
	// database without leaking state between tests
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		model.User{},
		model.Vault{},
		model.Recipient{},
		model.ContentItem{},
		model.Delivery{},
		model.Activity{},
		model.SubscriptionTier{},
	))

	return New(db)
}

// seedGraph creates a user owning a vault with one content item, one
// recipient, and one delivery tying them together.
func seedGraph(t *testing.T, s *Store) (user model.User, vault model.Vault, recipient model.Recipient, item model.ContentItem, delivery model.Delivery) {
	t.Helper()

	user = model.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, s.CreateUser(&user))

	vault = model.Vault{Name: "Family Memories", UserID: user.ID, EncryptionLevel: "standard", IsActive: true}
	require.NoError(t, s.CreateVault(&vault))

	recipient = model.Recipient{Name: "Jane", Email: "jane@example.com", UserID: user.ID}
	require.NoError(t, s.CreateRecipient(&recipient))

	item = model.ContentItem{
		Title:         "Letter",
		ContentType:   "message",
		ContentPath:   "Dear Jane",
		VaultID:       vault.ID,
		UserID:        user.ID,
		EncryptionKey: "k",
	}
	require.NoError(t, s.CreateContentItem(&item))

	scheduled := time.Now().AddDate(1, 0, 0)
	delivery = model.Delivery{
		ContentItemID:  item.ID,
		RecipientID:    recipient.ID,
		UserID:         user.ID,
		TriggerType:    model.TriggerScheduled,
		ScheduledDate:  &scheduled,
		DeliveryMethod: "email",
	}
	require.NoError(t, s.CreateDelivery(&delivery))

	return user, vault, recipient, item, delivery
}

func count[T any](t *testing.T, s *Store, where string, args ...any) int64 {
	t.Helper()

	var n int64
	var zero T
	require.NoError(t, s.DB.Model(&zero).Where(where, args...).Count(&n).Error)
	return n
}

func TestDeleteVaultCascade(t *testing.T) {
	s := newTestStore(t)
	_, vault, recipient, item, _ := seedGraph(t, s)

	require.NoError(t, s.DeleteVault(vault.ID))

	assert.Zero(t, count[model.Vault](t, s, "id = ?", vault.ID))
	assert.Zero(t, count[model.ContentItem](t, s, "id = ?", item.ID))
	assert.Zero(t, count[model.Delivery](t, s, "recipient_id = ?", recipient.ID))
	assert.EqualValues(t, 1, count[model.Recipient](t, s, "id = ?", recipient.ID))
}

func TestDeleteContentItemCascade(t *testing.T) {
	s := newTestStore(t)
	_, vault, _, item, delivery := seedGraph(t, s)

	require.NoError(t, s.DeleteContentItem(item.ID))

	assert.Zero(t, count[model.ContentItem](t, s, "id = ?", item.ID))
	assert.Zero(t, count[model.Delivery](t, s, "id = ?", delivery.ID))
	assert.EqualValues(t, 1, count[model.Vault](t, s, "id = ?", vault.ID))
}

func TestDeleteRecipientCascade(t *testing.T) {
	s := newTestStore(t)
	_, _, recipient, item, delivery := seedGraph(t, s)

	require.NoError(t, s.DeleteRecipient(recipient.ID))

	assert.Zero(t, count[model.Recipient](t, s, "id = ?", recipient.ID))
	assert.Zero(t, count[model.Delivery](t, s, "id = ?", delivery.ID))
	assert.EqualValues(t, 1, count[model.ContentItem](t, s, "id = ?", item.ID))
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	_, vault, recipient, item, delivery := seedGraph(t, s)

	require.NoError(t, s.DeleteDelivery(delivery.ID))
	require.NoError(t, s.DeleteDelivery(delivery.ID))
	require.NoError(t, s.DeleteContentItem(item.ID))
	require.NoError(t, s.DeleteContentItem(item.ID))
	require.NoError(t, s.DeleteRecipient(recipient.ID))
	require.NoError(t, s.DeleteRecipient(recipient.ID))
	require.NoError(t, s.DeleteVault(vault.ID))
	require.NoError(t, s.DeleteVault(vault.ID))
}

func TestGetNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetUser(4242)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = s.GetVault(4242)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = s.GetUserByStripeCustomerID("cus_missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = s.UpdateVault(4242, map[string]any{"name": "ghost"})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateUserStripeInfo(t *testing.T) {
	s := newTestStore(t)
	user, _, _, _, _ := seedGraph(t, s)

	customerID := "cus_123"
	status := "active"
	tier := "premium"
	expires := time.Now().AddDate(0, 1, 0)

	updated, err := s.UpdateUserStripeInfo(user.ID, StripeInfo{
		CustomerID: &customerID,
		Status:     &status,
		Tier:       &tier,
		ExpiresAt:  &expires,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.StripeCustomerID)
	assert.Equal(t, "cus_123", *updated.StripeCustomerID)
	assert.Equal(t, "active", updated.SubscriptionStatus)

	// Nil fields leave the row untouched
	newStatus := "canceled"
	updated, err = s.UpdateUserStripeInfo(user.ID, StripeInfo{Status: &newStatus})
	require.NoError(t, err)
	assert.Equal(t, "canceled", updated.SubscriptionStatus)
	require.NotNil(t, updated.StripeCustomerID)
	assert.Equal(t, "cus_123", *updated.StripeCustomerID)

	found, err := s.GetUserByStripeCustomerID("cus_123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
}

func TestActivitiesNewestFirst(t *testing.T) {
	s := newTestStore(t)
	user, _, _, _, _ := seedGraph(t, s)

	for _, action := range []string{"first", "second", "third"} {
		require.NoError(t, s.CreateActivity(&model.Activity{
			UserID:     user.ID,
			Action:     action,
			EntityType: "user",
		}))
	}

	activities, err := s.GetActivitiesByUserID(user.ID)
	require.NoError(t, err)
	require.Len(t, activities, 3)
	assert.Equal(t, "third", activities[0].Action)
	assert.Equal(t, "first", activities[2].Action)
}

func TestGetActiveTiers(t *testing.T) {
	s := newTestStore(t)

	for _, tier := range []model.SubscriptionTier{
		{Name: "premium", Description: "d", Price: 999, StripePriceID: "p2", IsActive: true},
		{Name: "basic", Description: "d", Price: 499, StripePriceID: "p1", IsActive: true},
	} {
		require.NoError(t, s.DB.Create(&tier).Error)
	}

	tiers, err := s.GetActiveTiers()
	require.NoError(t, err)
	require.Len(t, tiers, 2)
	assert.Equal(t, "basic", tiers[0].Name)

	tier, err := s.GetTierByName("premium")
	require.NoError(t, err)
	assert.Equal(t, "p2", tier.StripePriceID)

	_, err = s.GetTierByName("ghost")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
