// Package api contains all endpoints available
package api

import (
	"echovault/vault-api/billing"
	"echovault/vault-api/db"
	"echovault/vault-api/middleware"
	"echovault/vault-api/pkg/security"
	"echovault/vault-api/pkg/session"
	"echovault/vault-api/storage"
	"echovault/vault-api/store"
	"fmt"
	"time"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

var cacheStore = persist.NewMemoryStore(time.Minute)

type API struct {
	DB       *gorm.DB
	Router   *gin.Engine
	Store    *store.Store
	Argon    *security.ArgonHash
	Sessions session.Store
	Billing  *billing.Client
	Objects  *storage.ObjectStore
}

func NewRouter() (*API, error) {
	a := &API{
		Argon: security.New(),
	}

	gdb, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}
	a.DB = gdb
	a.Store = store.New(gdb)

	makeLogger()

	sessionTTL := time.Duration(viper.GetInt("session.ttl_hours")) * time.Hour

	switch viper.GetString("session.backend") {
	case "redis":
		a.Sessions = session.NewRedisStore(redis.NewClient(&redis.Options{
			Addr:     viper.GetString("session.redis.addr"),
			Password: viper.GetString("session.redis.password"),
			DB:       viper.GetInt("session.redis.db"),
		}), sessionTTL)
	default:
		a.Sessions = session.NewMemoryStore(sessionTTL)
	}

	if viper.GetString("stripe.secret_key") != "" {
		a.Billing = billing.New(
			viper.GetString("stripe.secret_key"),
			viper.GetString("stripe.webhook_secret"),
			a.Store,
		)
	}

	if viper.GetBool("s3.enabled") {
		objects, err := storage.New()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize object store, %w", err)
		}
		a.Objects = objects
	}

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     viper.GetStringSlice("cors.origins"),
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Stripe-Signature"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v, ok := c.Get("userID"); ok {
					fields = append(fields, zap.Any("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	a.routes()

	return a, nil
}

func (a *API) routes() {
	router := a.Router

	auth := middleware.NewSessionMiddleware(a.Sessions)
	bodyLimit := middleware.BodySizeLimiter(1 << 20)

	main := router.Group("/api")
	{
		// HEAD /api/heartbeat		-> Used to check if the server is alive
		main.HEAD("/heartbeat", a.Heartbeat)
	}

	authGroup := main.Group("/auth", bodyLimit)
	{
		// POST /api/auth/register	-> Registers a new user and opens a session
		authGroup.POST("/register", a.AuthRegister)

		// POST /api/auth/login		-> Logs in with username/password
		authGroup.POST("/login", a.AuthLogin)

		// POST /api/auth/external	-> Identity-provider bridge, creates the user on first login
		authGroup.POST("/external", a.AuthExternal)

		// POST /api/auth/logout	-> Destroys the session
		authGroup.POST("/logout", a.AuthLogout)

		// GET /api/auth/session	-> Returns the session state
		authGroup.GET("/session", a.AuthSession)
	}

	users := main.Group("/users")
	{
		// GET /api/users		-> Looks up a user by email (identity bridge helper)
		users.GET("", a.UserFetch)

		// GET /api/users/:id		-> Returns a user by ID
		users.GET("/:id", a.UserFetchByID)
	}

	vaults := main.Group("/vaults", bodyLimit)
	{
		vaults.POST("", a.VaultCreate)
		vaults.GET("", a.VaultFetchBulk)
		vaults.GET("/:id", a.VaultFetch)
		vaults.PUT("/:id", a.VaultUpdate)
		vaults.DELETE("/:id", a.VaultDelete)
	}

	recipients := main.Group("/recipients", bodyLimit)
	{
		recipients.POST("", a.RecipientCreate)
		recipients.GET("", a.RecipientFetchBulk)
		recipients.PUT("/:id", a.RecipientUpdate)
		recipients.DELETE("/:id", a.RecipientDelete)
	}

	content := main.Group("/content")
	{
		content.POST("", bodyLimit, a.ContentCreate)
		content.GET("", a.ContentFetchBulk)
		content.PUT("/:id", bodyLimit, a.ContentUpdate)
		content.DELETE("/:id", a.ContentDelete)

		// Presigned object-store URLs for the actual payload bytes
		content.POST("/:id/upload-url", a.ContentUploadURL)
		content.GET("/:id/download-url", a.ContentDownloadURL)

		// POST /api/content/:id/thumbnail	-> Uploads a thumbnail image directly
		content.POST("/:id/thumbnail", middleware.BodySizeLimiter(5<<20), a.ContentThumbnail)
	}

	deliveries := main.Group("/deliveries", bodyLimit)
	{
		deliveries.POST("", a.DeliveryCreate)
		deliveries.GET("", a.DeliveryFetchBulk)
		deliveries.PUT("/:id", a.DeliveryUpdate)
		deliveries.DELETE("/:id", a.DeliveryDelete)
	}

	activities := main.Group("/activities", bodyLimit)
	{
		activities.POST("", a.ActivityCreate)
		activities.GET("", a.ActivityFetchBulk)
	}

	payments := main.Group("/payments", bodyLimit, auth)
	{
		payments.POST("/create-payment-intent", a.PaymentIntentCreate)
	}

	subscriptions := main.Group("/subscriptions", bodyLimit)
	{
		subscriptions.GET("/tiers", cacheFor(60), a.SubscriptionTiers)
		subscriptions.POST("/create", auth, a.SubscriptionCreate)
		subscriptions.POST("/cancel", auth, a.SubscriptionCancel)
		subscriptions.GET("/status", auth, a.SubscriptionStatus)
	}

	webhooks := main.Group("/webhooks")
	{
		// Raw body needed for signature verification, so no body limit here
		webhooks.POST("/stripe", a.WebhookStripe)
	}
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

func cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(cacheStore, time.Second*time.Duration(sec))
}
