package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Log       LogConfig       `mapstructure:"log"`
	App       AppConfig       `mapstructure:"app"`
	PhonePe   PhonePeConfig   `mapstructure:"phonepe"`
	PayPal    PayPalConfig    `mapstructure:"paypal"`
	Delhivery DelhiveryConfig `mapstructure:"delhivery"`
	Pickup    PickupConfig    `mapstructure:"pickup"`
	SMTP      SMTPConfig      `mapstructure:"smtp"`
	Alert     AlertConfig     `mapstructure:"alert"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host             string        `mapstructure:"host"`
	Port             int           `mapstructure:"port"`
	User             string        `mapstructure:"user"`
	Password         string        `mapstructure:"password"`
	DBName           string        `mapstructure:"dbname"`
	SSLMode          string        `mapstructure:"sslmode"`
	MaxConns         int32         `mapstructure:"max_conns"`
	MinConns         int32         `mapstructure:"min_conns"`
	ConnMaxLifetime  time.Duration `mapstructure:"conn_max_lifetime"`
	StatementTimeout time.Duration `mapstructure:"statement_timeout"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// AppConfig holds the public-facing URLs gateways redirect to and call back on.
type AppConfig struct {
	PublicBaseURL   string `mapstructure:"public_base_url"`   // e.g. https://api.shop.example
	FrontendBaseURL string `mapstructure:"frontend_base_url"` // customer lands here after paying
	Currency        string `mapstructure:"currency"`
}

// CallbackURL builds the provider callback endpoint URL.
func (a AppConfig) CallbackURL(provider string) string {
	return strings.TrimRight(a.PublicBaseURL, "/") + "/api/v1/payments/callback/" + strings.ToLower(provider)
}

// RedirectURL builds the customer landing URL for a merchant transaction.
func (a AppConfig) RedirectURL(merchantTxnID string) string {
	return strings.TrimRight(a.FrontendBaseURL, "/") + "/payment/status/" + merchantTxnID
}

type PhonePeConfig struct {
	BaseURL       string        `mapstructure:"base_url"`
	AuthURL       string        `mapstructure:"auth_url"`
	ClientID      string        `mapstructure:"client_id"`
	ClientSecret  string        `mapstructure:"client_secret"`
	ClientVersion string        `mapstructure:"client_version"`
	SaltKey       string        `mapstructure:"salt_key"`
	SaltIndex     string        `mapstructure:"salt_index"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

// Configured reports whether enough credentials exist to register the gateway.
func (p PhonePeConfig) Configured() bool {
	return p.ClientID != "" && p.ClientSecret != "" && p.SaltKey != ""
}

type PayPalConfig struct {
	ClientID     string        `mapstructure:"client_id"`
	ClientSecret string        `mapstructure:"client_secret"`
	Sandbox      bool          `mapstructure:"sandbox"`
	WebhookID    string        `mapstructure:"webhook_id"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// Configured reports whether enough credentials exist to register the gateway.
func (p PayPalConfig) Configured() bool {
	return p.ClientID != "" && p.ClientSecret != "" && p.WebhookID != ""
}

type DelhiveryConfig struct {
	BaseURL             string        `mapstructure:"base_url"`
	Token               string        `mapstructure:"token"`
	PickupLocation      string        `mapstructure:"pickup_location"`
	WebhookSecret       string        `mapstructure:"webhook_secret"` // empty = structural validation only
	ShippingMode        string        `mapstructure:"shipping_mode"`  // Surface, Express
	TrackingURLTemplate string        `mapstructure:"tracking_url_template"`
	DefaultItemWeight   int           `mapstructure:"default_item_weight_grams"`
	WaybillBatchSize    int           `mapstructure:"waybill_batch_size"` // fetched per allocation; surplus is pooled
	Timeout             time.Duration `mapstructure:"timeout"`
}

type PickupConfig struct {
	Time        string `mapstructure:"time"`         // HH:MM:SS requested from the courier
	TriggerTime string `mapstructure:"trigger_time"` // HH:MM the daily batch runs
	Timezone    string `mapstructure:"timezone"`
	Enabled     bool   `mapstructure:"enabled"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	FromName string `mapstructure:"from_name"`
}

type AlertConfig struct {
	SNSTopicARN string `mapstructure:"sns_topic_arn"` // empty = log-only alerts
	AWSRegion   string `mapstructure:"aws_region"`
}

type RateLimitConfig struct {
	PublicLimit  int64         `mapstructure:"public_limit"`
	PublicWindow time.Duration `mapstructure:"public_window"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: RCN_.
// Nested keys use underscore: RCN_DATABASE_HOST, RCN_PHONEPE_CLIENT_ID, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "backoffice")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("database.statement_timeout", "10s")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("app.public_base_url", "http://localhost:8080")
	v.SetDefault("app.frontend_base_url", "http://localhost:3000")
	v.SetDefault("app.currency", "INR")
	v.SetDefault("phonepe.base_url", "https://api-preprod.phonepe.com/apis/pg-sandbox")
	v.SetDefault("phonepe.auth_url", "https://api-preprod.phonepe.com/apis/pg-sandbox/v1/oauth/token")
	v.SetDefault("phonepe.client_version", "1")
	v.SetDefault("phonepe.salt_index", "1")
	v.SetDefault("phonepe.timeout", "15s")
	v.SetDefault("paypal.sandbox", true)
	v.SetDefault("paypal.timeout", "15s")
	v.SetDefault("delhivery.base_url", "https://staging-express.delhivery.com")
	v.SetDefault("delhivery.shipping_mode", "Surface")
	v.SetDefault("delhivery.tracking_url_template", "https://www.delhivery.com/track/package/%s")
	v.SetDefault("delhivery.default_item_weight_grams", 500)
	v.SetDefault("delhivery.waybill_batch_size", 10)
	v.SetDefault("delhivery.timeout", "20s")
	v.SetDefault("pickup.time", "11:00:00")
	v.SetDefault("pickup.trigger_time", "18:00")
	v.SetDefault("pickup.timezone", "Asia/Kolkata")
	v.SetDefault("pickup.enabled", true)
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.from_name", "Store")
	v.SetDefault("alert.aws_region", "ap-south-1")
	v.SetDefault("ratelimit.public_limit", 60)
	v.SetDefault("ratelimit.public_window", "1m")

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: RCN_DATABASE_HOST -> database.host
	v.SetEnvPrefix("RCN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
