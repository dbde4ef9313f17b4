package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything the service reads from config.yaml or
// CTFAPP_* environment variables. Secrets (DSN, JWT secret, signing
// secret) are expected to come from the environment in production.
type Config struct {
	Listen        string `mapstructure:"listen"`
	DSN           string `mapstructure:"dsn"`
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`

	// JWTSecret verifies tokens issued by the identity provider.
	JWTSecret string `mapstructure:"jwt_secret"`

	// Attachment signing: URLs are signed with AttachmentSecret and
	// served under PublicBaseURL, redirecting to StorageBaseURL.
	AttachmentSecret string `mapstructure:"attachment_secret"`
	PublicBaseURL    string `mapstructure:"public_base_url"`
	StorageBaseURL   string `mapstructure:"storage_base_url"`

	// Per-IP rate limit on flag submissions. 0 disables the limiter.
	SubmissionRate  float64 `mapstructure:"submission_rate"`
	SubmissionBurst int     `mapstructure:"submission_burst"`
}

var C *Config

// Load reads config.yaml from the working directory (optional) and
// merges CTFAPP_* environment overrides, e.g. CTFAPP_DSN, CTFAPP_REDIS_ADDR.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("listen", ":8080")
	v.SetDefault("dsn", "root:123456@tcp(localhost:3306)/ctf_app?charset=utf8mb4&parseTime=True&loc=Local")
	v.SetDefault("redis_addr", "")
	v.SetDefault("redis_password", "")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("attachment_secret", "")
	v.SetDefault("public_base_url", "http://localhost:8080")
	v.SetDefault("storage_base_url", "")
	v.SetDefault("submission_rate", 0)
	v.SetDefault("submission_burst", 0)

	v.SetEnvPrefix("CTFAPP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Missing config file is fine, env vars and defaults apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	C = &cfg
	return &cfg, nil
}
