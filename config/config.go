// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	seedTiers = pflag.Bool("seed-tiers", true, "Seeds the default subscription tiers on startup")

	validLogLevels       = []string{"debug", "info", "warn", "error", "fatal"}
	validStorageDrivers  = []string{"sqlite", "postgres"}
	validSessionBackends = []string{"memory", "redis"}
)

// Setup prepares everything config-related so that the app can
// start working. Function will return an error if something
// is critically wrong and the application can't run because of
// that. Billing and object storage are optional: missing Stripe
// or S3 credentials disable those endpoints instead of failing.
func Setup() error {
	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("app.log_level", "app_log_level")

	v.BindEnv("host.port", "host_port")
	v.BindEnv("host.domain", "host_domain")
	v.BindEnv("host.ssl.enabled", "host_ssl_enabled")

	v.BindEnv("storage.driver", "storage_driver")
	v.BindEnv("storage.dsn", "storage_dsn")

	v.BindEnv("session.backend", "session_backend")
	v.BindEnv("session.ttl_hours", "session_ttl_hours")
	v.BindEnv("session.redis.addr", "session_redis_addr")
	v.BindEnv("session.redis.password", "session_redis_password")
	v.BindEnv("session.redis.db", "session_redis_db")

	v.BindEnv("auth.external_secret", "auth_external_secret")

	v.BindEnv("stripe.secret_key", "stripe_secret_key")
	v.BindEnv("stripe.webhook_secret", "stripe_webhook_secret")

	v.BindEnv("s3.enabled", "s3_enabled")
	v.BindEnv("s3.endpoint", "s3_endpoint")
	v.BindEnv("s3.region", "s3_region")
	v.BindEnv("s3.access_key_id", "s3_access_key_id")
	v.BindEnv("s3.secret_access_key", "s3_secret_access_key")
	v.BindEnv("s3.bucket", "s3_bucket")

	v.BindEnv("cors.origins", "cors_origins")

	//
	// Defaults
	//
	v.SetDefault("app.log_level", "info")

	v.SetDefault("host.port", 8080)
	v.SetDefault("host.domain", "localhost")
	v.SetDefault("host.ssl.enabled", false)

	v.SetDefault("storage.driver", "sqlite")
	v.SetDefault("storage.dsn", "echovault.db")

	v.SetDefault("session.backend", "memory")
	v.SetDefault("session.ttl_hours", 24*7)

	v.SetDefault("s3.enabled", false)
	v.SetDefault("s3.region", "auto")

	v.SetDefault("cors.origins", []string{"http://localhost:5173"})

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(v.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file, %w", err)
		}
	}

	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return errors.New("invalid log level provided")
	}

	if v.GetInt("host.port") <= 0 {
		return errors.New("invalid port provided")
	}

	if !slices.Contains(validStorageDrivers, v.GetString("storage.driver")) {
		return errors.New("invalid storage driver provided")
	}

	if v.GetString("storage.dsn") == "" {
		return errors.New("storage.dsn can't be empty")
	}

	if !slices.Contains(validSessionBackends, v.GetString("session.backend")) {
		return errors.New("invalid session backend provided")
	}

	if v.GetString("session.backend") == "redis" && v.GetString("session.redis.addr") == "" {
		return errors.New("session.redis.addr can't be empty when the redis backend is selected")
	}

	if v.GetInt("session.ttl_hours") <= 0 {
		return errors.New("session ttl must be bigger than 0")
	}

	if v.GetString("stripe.secret_key") == "" {
		zap.L().Warn("No Stripe secret key configured, billing endpoints will answer 503")
	} else if v.GetString("stripe.webhook_secret") == "" {
		return errors.New("stripe.webhook_secret is required when stripe.secret_key is set")
	}

	if v.GetBool("s3.enabled") {
		if v.GetString("s3.access_key_id") == "" {
			return errors.New("s3 access key id can't be empty")
		}
		if v.GetString("s3.secret_access_key") == "" {
			return errors.New("s3 secret access key can't be empty")
		}
		if v.GetString("s3.bucket") == "" {
			return errors.New("s3 bucket can't be empty")
		}
	}

	if v.GetString("auth.external_secret") == "" {
		zap.L().Warn("No external identity secret configured, the identity bridge is disabled")
	}

	return nil
}

// BillingConfigured reports whether the Stripe key is present. Checked
// per-call by billing handlers rather than cached at startup.
func BillingConfigured() bool {
	return v.GetString("stripe.secret_key") != ""
}
