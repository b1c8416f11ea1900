package validators

import (
	"errors"
	"slices"

	"echovault/vault-api/model"
)

var (
	ErrContentTitleEmpty  = errors.New("no title provided")
	ErrContentPathEmpty   = errors.New("no content path provided")
	ErrContentTypeInvalid = errors.New("invalid content type provided")
)

func ContentValidator(title, contentType, contentPath string) error {
	if title == "" {
		return ErrContentTitleEmpty
	}

	if !slices.Contains(model.ContentTypes, contentType) {
		return ErrContentTypeInvalid
	}

	if contentPath == "" {
		return ErrContentPathEmpty
	}

	return nil
}
