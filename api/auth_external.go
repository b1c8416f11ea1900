package api

import (
	"echovault/vault-api/model"
	"echovault/vault-api/pkg/identity"
	"echovault/vault-api/pkg/session"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type externalBody struct {
	Token string `json:"token" binding:"required"`
}

// AuthExternal is the identity bridge: it reconciles an external
// identity-provider token with a local user record, creating the user
// on first login. The created account gets a random placeholder hash
// so the password login path can never match it.
func (a *API) AuthExternal(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data externalBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	secret := viper.GetString("auth.external_secret")
	if secret == "" {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
			"error":     "External identity provider is not configured",
			"requestID": requestID,
		})
		return
	}

	principal, err := identity.Verify(data.Token, secret)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error":     "Invalid identity token",
			"requestID": requestID,
		})

		zap.L().Debug("Identity token rejected", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	user, err := a.Store.GetUserByEmail(principal.Email)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to look up user", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		user, err = a.createBridgedUser(principal)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to create bridged user", zap.Error(err), zap.String("requestID", requestID))
			return
		}
	}

	sid, err := a.Sessions.Create(c.Request.Context(), session.Data{UserID: user.ID, CreatedAt: time.Now()})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create session", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	setSessionCookie(c, sid)
	c.JSON(http.StatusOK, user)
}

func (a *API) createBridgedUser(p *identity.Principal) (*model.User, error) {
	hash, err := a.Argon.PlaceholderHash()
	if err != nil {
		return nil, err
	}

	username := strings.SplitN(p.Email, "@", 2)[0]

	// The email local part may already be taken by someone else
	if _, err := a.Store.GetUserByUsername(username); err == nil {
		suffix, err := gonanoid.Generate("0123456789", 6)
		if err != nil {
			return nil, err
		}

		username = username + "_" + suffix
	}

	user := &model.User{
		Username:           username,
		Email:              p.Email,
		PasswordHash:       hash,
		DisplayName:        p.DisplayName,
		AvatarURL:          p.AvatarURL,
		SubscriptionStatus: "free",
		SubscriptionTier:   "free",
	}

	if err := a.Store.CreateUser(user); err != nil {
		return nil, err
	}

	return user, nil
}
