package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	AllowedOrigins    string `mapstructure:"ALLOWED_ORIGINS"`

	// MongoDB.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Stripe checkout.
	StripeKey      string `mapstructure:"STRIPE_SECRET_KEY"`
	StripeCurrency string `mapstructure:"STRIPE_CURRENCY"`
	ClientURL      string `mapstructure:"CLIENT_URL"`

	// Firebase admin credentials used for ID token verification.
	FirebaseCredentialsFile string `mapstructure:"FIREBASE_CREDENTIALS_FILE"`

	// Redis configuration.
	RedisAddr       string        `mapstructure:"REDIS_ADDR"`
	RedisPassword   string        `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB    int           `mapstructure:"REDIS_CACHE_DB"`
	RedisQueueDB    int           `mapstructure:"REDIS_QUEUE_DB"`
	ServiceCacheTTL time.Duration `mapstructure:"SERVICE_CACHE_TTL"`

	// Payment audit job.
	AuditEnabled  bool   `mapstructure:"AUDIT_ENABLED"`
	AuditSchedule string `mapstructure:"AUDIT_SCHEDULE"`
}

var AppConfig Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "3000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	v.SetDefault("ALLOWED_ORIGINS", "*")
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "smart_home_db")
	v.SetDefault("STRIPE_SECRET_KEY", "")
	v.SetDefault("STRIPE_CURRENCY", "usd")
	v.SetDefault("CLIENT_URL", "http://localhost:5173")
	v.SetDefault("FIREBASE_CREDENTIALS_FILE", "./firebase-adminsdk.json")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_CACHE_DB", 0)
	v.SetDefault("REDIS_QUEUE_DB", 1)
	v.SetDefault("SERVICE_CACHE_TTL", "10m")
	v.SetDefault("AUDIT_ENABLED", true)
	v.SetDefault("AUDIT_SCHEDULE", "@every 1h")
}

// LoadConfig reads config.yaml (current or ./config directory) and the environment into AppConfig.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	// Automatically use environment variables where available.
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ClientURL = strings.TrimRight(cfg.ClientURL, "/")
	cfg.StripeCurrency = strings.ToLower(cfg.StripeCurrency)

	AppConfig = cfg
	return &cfg, nil
}

// Origins splits ALLOWED_ORIGINS on commas.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
