// Package session holds server-side session state behind a pluggable
// store so the HTTP tier can scale horizontally when backed by redis.
package session

import (
	"context"
	"errors"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Cookie is the name of the session cookie.
const Cookie = "vault_session"

const idCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var ErrNotFound = errors.New("session not found")

// Data is what a session ID resolves to.
type Data struct {
	UserID    uint      `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

type Store interface {
	// Create stores data under a fresh opaque ID and returns the ID.
	Create(ctx context.Context, data Data) (string, error)
	// Get returns the session data or ErrNotFound.
	Get(ctx context.Context, id string) (Data, error)
	// Delete removes a session. Deleting a missing ID is not an error.
	Delete(ctx context.Context, id string) error
}

func newID() (string, error) {
	return gonanoid.Generate(idCharset, 32)
}
