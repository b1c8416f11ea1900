package api

import (
	"net/http"
	"testing"
	"time"

	"echovault/vault-api/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryCreateScheduled(t *testing.T) {
	a := newTestAPI(t)

	user, _ := registerUser(t, a, "alice", "alice@example.com")
	vault := createVault(t, a, user.ID)
	recipient := createRecipient(t, a, user.ID)
	item := createContent(t, a, user.ID, vault.ID)

	delivery := createDelivery(t, a, user.ID, item.ID, recipient.ID)
	assert.Equal(t, model.TriggerScheduled, delivery.TriggerType)
	assert.False(t, delivery.IsDelivered)
	assert.Nil(t, delivery.DeliveredAt)
	assert.Equal(t, "email", delivery.DeliveryMethod, "method defaults to email")
}

func TestDeliveryCreateConditional(t *testing.T) {
	a := newTestAPI(t)

	user, _ := registerUser(t, a, "alice", "alice@example.com")
	vault := createVault(t, a, user.ID)
	recipient := createRecipient(t, a, user.ID)
	item := createContent(t, a, user.ID, vault.ID)

	w := doJSON(t, a, http.MethodPost, "/api/deliveries", gin.H{
		"contentItemId":    item.ID,
		"recipientId":      recipient.ID,
		"userId":           user.ID,
		"triggerCondition": "after my 80th birthday",
		"deliveryMethod":   "sms",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var delivery model.Delivery
	decode(t, w, &delivery)
	assert.Equal(t, model.TriggerConditional, delivery.TriggerType)
	assert.Nil(t, delivery.ScheduledDate)
	assert.Equal(t, "sms", delivery.DeliveryMethod)
}

func TestDeliveryTriggerValidation(t *testing.T) {
	a := newTestAPI(t)

	user, _ := registerUser(t, a, "alice", "alice@example.com")
	vault := createVault(t, a, user.ID)
	recipient := createRecipient(t, a, user.ID)
	item := createContent(t, a, user.ID, vault.ID)

	base := gin.H{
		"contentItemId": item.ID,
		"recipientId":   recipient.ID,
		"userId":        user.ID,
	}

	// Neither trigger field
	w := doJSON(t, a, http.MethodPost, "/api/deliveries", base)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Both trigger fields
	w = doJSON(t, a, http.MethodPost, "/api/deliveries", gin.H{
		"contentItemId":    item.ID,
		"recipientId":      recipient.ID,
		"userId":           user.ID,
		"scheduledDate":    time.Now().AddDate(0, 1, 0).UTC().Format(time.RFC3339),
		"triggerCondition": "when the river floods",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown method
	w = doJSON(t, a, http.MethodPost, "/api/deliveries", gin.H{
		"contentItemId":  item.ID,
		"recipientId":    recipient.ID,
		"userId":         user.ID,
		"scheduledDate":  time.Now().AddDate(0, 1, 0).UTC().Format(time.RFC3339),
		"deliveryMethod": "carrier-pigeon",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeliveryManualMark(t *testing.T) {
	a := newTestAPI(t)

	user, _ := registerUser(t, a, "alice", "alice@example.com")
	vault := createVault(t, a, user.ID)
	recipient := createRecipient(t, a, user.ID)
	item := createContent(t, a, user.ID, vault.ID)
	delivery := createDelivery(t, a, user.ID, item.ID, recipient.ID)

	w := doJSON(t, a, http.MethodPut, "/api/deliveries/"+uintID(delivery.ID), gin.H{
		"isDelivered": true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated model.Delivery
	decode(t, w, &updated)
	assert.True(t, updated.IsDelivered)
	require.NotNil(t, updated.DeliveredAt, "marking delivered without a timestamp stamps now")
	assert.WithinDuration(t, time.Now(), *updated.DeliveredAt, time.Minute)
}

func TestDeliveryUpdateTriggerRevalidates(t *testing.T) {
	a := newTestAPI(t)

	user, _ := registerUser(t, a, "alice", "alice@example.com")
	vault := createVault(t, a, user.ID)
	recipient := createRecipient(t, a, user.ID)
	item := createContent(t, a, user.ID, vault.ID)
	delivery := createDelivery(t, a, user.ID, item.ID, recipient.ID)

	// Sending both trigger fields at once is ambiguous
	w := doJSON(t, a, http.MethodPut, "/api/deliveries/"+uintID(delivery.ID), gin.H{
		"scheduledDate":    time.Now().AddDate(0, 1, 0).UTC().Format(time.RFC3339),
		"triggerCondition": "when I stop answering calls",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Sending a condition alone flips the variant and clears the date
	w = doJSON(t, a, http.MethodPut, "/api/deliveries/"+uintID(delivery.ID), gin.H{
		"triggerCondition": "when I stop answering calls",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated model.Delivery
	decode(t, w, &updated)
	assert.Equal(t, model.TriggerConditional, updated.TriggerType)
	assert.Nil(t, updated.ScheduledDate)

	// An empty condition with no date would leave the row triggerless
	w = doJSON(t, a, http.MethodPut, "/api/deliveries/"+uintID(delivery.ID), gin.H{
		"triggerCondition": "",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeliveryFetchBulkAndDelete(t *testing.T) {
	a := newTestAPI(t)

	user, _ := registerUser(t, a, "alice", "alice@example.com")
	vault := createVault(t, a, user.ID)
	recipient := createRecipient(t, a, user.ID)
	item := createContent(t, a, user.ID, vault.ID)
	delivery := createDelivery(t, a, user.ID, item.ID, recipient.ID)

	var list []model.Delivery

	w := doJSON(t, a, http.MethodGet, "/api/deliveries?userId="+uintID(user.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &list)
	assert.Len(t, list, 1)

	w = doJSON(t, a, http.MethodGet, "/api/deliveries?recipientId="+uintID(recipient.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &list)
	assert.Len(t, list, 1)

	w = doJSON(t, a, http.MethodGet, "/api/deliveries?contentItemId="+uintID(item.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &list)
	assert.Len(t, list, 1)

	w = doJSON(t, a, http.MethodGet, "/api/deliveries", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, a, http.MethodDelete, "/api/deliveries/"+uintID(delivery.ID), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	// Content and recipient survive deleting the leaf
	w = doJSON(t, a, http.MethodGet, "/api/content?vaultId="+uintID(vault.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items []model.ContentItem
	decode(t, w, &items)
	assert.Len(t, items, 1)
}

// Walks the primary flow end to end: account, vault, a message, a
// recipient, and a scheduled delivery that just sits there waiting.
func TestVaultPlanningFlow(t *testing.T) {
	a := newTestAPI(t)

	user, _ := registerUser(t, a, "planner", "a@x.com")
	vault := createVault(t, a, user.ID)

	w := doJSON(t, a, http.MethodPost, "/api/content", gin.H{
		"title":       "Letter",
		"contentType": "message",
		"contentPath": "See you on the other side.",
		"vaultId":     vault.ID,
		"userId":      user.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var letter model.ContentItem
	decode(t, w, &letter)

	w = doJSON(t, a, http.MethodPost, "/api/recipients", gin.H{
		"name":   "Jane",
		"email":  "jane@x.com",
		"userId": user.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var jane model.Recipient
	decode(t, w, &jane)

	scheduled := time.Now().AddDate(5, 0, 0).UTC().Truncate(time.Second)
	w = doJSON(t, a, http.MethodPost, "/api/deliveries", gin.H{
		"contentItemId": letter.ID,
		"recipientId":   jane.ID,
		"userId":        user.ID,
		"scheduledDate": scheduled.Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, a, http.MethodGet, "/api/deliveries?userId="+uintID(user.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var deliveries []model.Delivery
	decode(t, w, &deliveries)
	require.Len(t, deliveries, 1)

	got := deliveries[0]
	assert.Equal(t, letter.ID, got.ContentItemID)
	assert.Equal(t, jane.ID, got.RecipientID)
	assert.False(t, got.IsDelivered)
	require.NotNil(t, got.ScheduledDate)
	assert.True(t, got.ScheduledDate.Equal(scheduled))
}
