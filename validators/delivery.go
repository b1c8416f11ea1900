package validators

import (
	"errors"
	"slices"
	"time"

	"echovault/vault-api/model"
)

var (
	ErrTriggerMissing   = errors.New("either a scheduled date or a trigger condition is required")
	ErrTriggerAmbiguous = errors.New("a delivery can't have both a scheduled date and a trigger condition")
	ErrMethodInvalid    = errors.New("invalid delivery method provided")
)

// DeliveryTrigger resolves the scheduled-or-conditional variant from
// the two request fields. Exactly one must be set.
func DeliveryTrigger(scheduledDate *time.Time, triggerCondition string) (string, error) {
	switch {
	case scheduledDate != nil && triggerCondition != "":
		return "", ErrTriggerAmbiguous
	case scheduledDate != nil:
		return model.TriggerScheduled, nil
	case triggerCondition != "":
		return model.TriggerConditional, nil
	default:
		return "", ErrTriggerMissing
	}
}

func DeliveryMethodValidator(method string) error {
	if method == "" {
		return nil
	}

	if !slices.Contains(model.DeliveryMethods, method) {
		return ErrMethodInvalid
	}

	return nil
}
