// Package identity verifies tokens minted by the external identity
// provider for the create-on-first-login bridge.
package identity

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoSecret = errors.New("no external identity secret configured")
	ErrNoEmail  = errors.New("identity token carries no email claim")
)

// Principal is the authenticated identity extracted from a provider token.
type Principal struct {
	Email       string
	DisplayName string
	AvatarURL   string
}

// Verify parses and validates an HS256 token signed with the shared
// provider secret and extracts the principal claims.
func Verify(tokenStr, secret string) (*Principal, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}

		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return nil, ErrNoEmail
	}

	p := &Principal{Email: email}

	if name, ok := claims["name"].(string); ok {
		p.DisplayName = name
	}

	if pic, ok := claims["picture"].(string); ok {
		p.AvatarURL = pic
	}

	return p, nil
}
