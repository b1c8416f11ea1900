package validators

import (
	"testing"
	"time"

	"echovault/vault-api/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailValidator(t *testing.T) {
	assert.NoError(t, EmailValidator("jane@example.com"))
	assert.NoError(t, EmailValidator("Jane Doe <jane@example.com>"))
	assert.ErrorIs(t, EmailValidator(""), ErrEmailEmpty)
	assert.ErrorIs(t, EmailValidator("not-an-email"), ErrEmailInvalid)
	assert.ErrorIs(t, EmailValidator("missing@tld@twice"), ErrEmailInvalid)
}

func TestPasswordValidator(t *testing.T) {
	assert.NoError(t, PasswordValidator("longenough"))
	assert.ErrorIs(t, PasswordValidator(""), ErrPasswordEmpty)
	assert.ErrorIs(t, PasswordValidator("short"), ErrPasswordTooShort)

	long := make([]byte, 256)
	for i := range long {
		long[i] = 'a'
	}
	assert.ErrorIs(t, PasswordValidator(string(long)), ErrPasswordTooLong)
}

func TestContentValidator(t *testing.T) {
	assert.NoError(t, ContentValidator("Letter", "message", "Dear Jane"))

	for _, ct := range model.ContentTypes {
		assert.NoError(t, ContentValidator("t", ct, "p"))
	}

	assert.ErrorIs(t, ContentValidator("", "message", "p"), ErrContentTitleEmpty)
	assert.ErrorIs(t, ContentValidator("t", "hologram", "p"), ErrContentTypeInvalid)
	assert.ErrorIs(t, ContentValidator("t", "message", ""), ErrContentPathEmpty)
}

func TestDeliveryTrigger(t *testing.T) {
	date := time.Now().AddDate(1, 0, 0)

	got, err := DeliveryTrigger(&date, "")
	require.NoError(t, err)
	assert.Equal(t, model.TriggerScheduled, got)

	got, err = DeliveryTrigger(nil, "after my 80th birthday")
	require.NoError(t, err)
	assert.Equal(t, model.TriggerConditional, got)

	_, err = DeliveryTrigger(&date, "after my 80th birthday")
	assert.ErrorIs(t, err, ErrTriggerAmbiguous)

	_, err = DeliveryTrigger(nil, "")
	assert.ErrorIs(t, err, ErrTriggerMissing)
}

func TestDeliveryMethodValidator(t *testing.T) {
	for _, m := range model.DeliveryMethods {
		assert.NoError(t, DeliveryMethodValidator(m))
	}

	// Empty means "use the default", callers fill it in
	assert.NoError(t, DeliveryMethodValidator(""))

	assert.ErrorIs(t, DeliveryMethodValidator("carrier-pigeon"), ErrMethodInvalid)
}
