package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Auth     AuthConfig     `yaml:"auth"`
	Webhook  WebhookConfig  `yaml:"webhook"`
	Storage  StorageConfig  `yaml:"storage"`
	Telegram TelegramConfig `yaml:"telegram"`
	Log      LogConfig      `yaml:"log"`
}

type AppConfig struct {
	Env  string `yaml:"env"`
	Port string `yaml:"port"`
}

func (a AppConfig) IsProduction() bool {
	return a.Env == "production"
}

type DatabaseConfig struct {
	Host       string `yaml:"host"`
	User       string `yaml:"user"`
	Password   string `yaml:"password"`
	Name       string `yaml:"name"`
	Port       string `yaml:"port"`
	SSLMode    string `yaml:"sslmode"`
	MaxRetries int    `yaml:"max_retries"`
}

type RedisConfig struct {
	Addr       string `yaml:"addr"`
	MaxRetries int    `yaml:"max_retries"`
}

type KafkaConfig struct {
	Broker        string        `yaml:"broker"`
	GroupID       string        `yaml:"group_id"`
	PublishEvents bool          `yaml:"publish_events"`
	PollInterval  time.Duration `yaml:"poll_interval"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret"`
}

type WebhookConfig struct {
	URL            string        `yaml:"url"`
	Timeout        time.Duration `yaml:"timeout"`
	SimulatedDelay time.Duration `yaml:"simulated_delay"`
	CallbackSecret string        `yaml:"callback_secret"`
}

type StorageConfig struct {
	Backend        string `yaml:"backend"`
	URL            string `yaml:"url"`
	ServiceRoleKey string `yaml:"service_role_key"`
	Bucket         string `yaml:"bucket"`
	LocalDir       string `yaml:"local_dir"`
	PublicBaseURL  string `yaml:"public_base_url"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token"`
	ChatID   int64  `yaml:"chat_id"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

const (
	StorageObjectStore = "objectstore"
	StorageLocal       = "local"
)

// Load reads .env, then the optional YAML file named by CONFIG_FILE, then
// lets environment variables override whatever the file set.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg)
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.App.Env, "APP_ENV")
	setString(&cfg.App.Port, "PORT")

	setString(&cfg.Database.Host, "DB_HOST")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.Name, "DB_NAME")
	setString(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Database.SSLMode, "DB_SSLMODE")
	setInt(&cfg.Database.MaxRetries, "DB_MAX_RETRIES")

	setString(&cfg.Redis.Addr, "REDIS_ADDR")
	setInt(&cfg.Redis.MaxRetries, "REDIS_MAX_RETRIES")

	setString(&cfg.Kafka.Broker, "KAFKA_BROKER")
	setString(&cfg.Kafka.GroupID, "KAFKA_GROUP_ID")
	setBool(&cfg.Kafka.PublishEvents, "OUTREACH_PUBLISH_EVENTS")
	setDuration(&cfg.Kafka.PollInterval, "OUTBOX_POLL_INTERVAL")

	setString(&cfg.Auth.JWTSecret, "JWT_SECRET")

	setString(&cfg.Webhook.URL, "N8N_WEBHOOK_URL")
	setDuration(&cfg.Webhook.Timeout, "WEBHOOK_TIMEOUT")
	setDuration(&cfg.Webhook.SimulatedDelay, "WEBHOOK_SIMULATED_DELAY")
	setString(&cfg.Webhook.CallbackSecret, "N8N_CALLBACK_SECRET")

	setString(&cfg.Storage.Backend, "STORAGE_BACKEND")
	setString(&cfg.Storage.URL, "STORAGE_URL")
	setString(&cfg.Storage.ServiceRoleKey, "STORAGE_SERVICE_ROLE_KEY")
	setString(&cfg.Storage.Bucket, "STORAGE_BUCKET")
	setString(&cfg.Storage.LocalDir, "STORAGE_LOCAL_DIR")
	setString(&cfg.Storage.PublicBaseURL, "STORAGE_PUBLIC_BASE_URL")

	setString(&cfg.Telegram.BotToken, "TELEGRAM_BOT_TOKEN")
	setInt64(&cfg.Telegram.ChatID, "TELEGRAM_CHAT_ID")

	setString(&cfg.Log.Level, "LOG_LEVEL")
	setString(&cfg.Log.File, "LOG_FILE")
	setInt(&cfg.Log.MaxSizeMB, "LOG_MAX_SIZE_MB")
	setInt(&cfg.Log.MaxBackups, "LOG_MAX_BACKUPS")
	setInt(&cfg.Log.MaxAgeDays, "LOG_MAX_AGE_DAYS")
}

func applyDefaults(cfg *Config) {
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "3000"
	}
	if cfg.Database.Port == "" {
		cfg.Database.Port = "5432"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxRetries <= 0 {
		cfg.Database.MaxRetries = 5
	}
	if cfg.Redis.MaxRetries <= 0 {
		cfg.Redis.MaxRetries = 5
	}
	if cfg.Kafka.GroupID == "" {
		cfg.Kafka.GroupID = "wsc-outreach-delivery"
	}
	if cfg.Kafka.PollInterval <= 0 {
		cfg.Kafka.PollInterval = 3 * time.Second
	}
	if cfg.Webhook.Timeout <= 0 {
		cfg.Webhook.Timeout = 30 * time.Second
	}
	if cfg.Webhook.SimulatedDelay <= 0 {
		cfg.Webhook.SimulatedDelay = time.Second
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = StorageObjectStore
		if cfg.Storage.URL == "" {
			cfg.Storage.Backend = StorageLocal
		}
	}
	if cfg.Storage.Bucket == "" {
		cfg.Storage.Bucket = "audios"
	}
	if cfg.Storage.LocalDir == "" {
		cfg.Storage.LocalDir = "./data/media"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
		if !cfg.App.IsProduction() {
			cfg.Log.Level = "debug"
		}
	}
	if cfg.Log.MaxSizeMB <= 0 {
		cfg.Log.MaxSizeMB = 50
	}
	if cfg.Log.MaxBackups <= 0 {
		cfg.Log.MaxBackups = 5
	}
	if cfg.Log.MaxAgeDays <= 0 {
		cfg.Log.MaxAgeDays = 28
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.App.IsProduction() && c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required in production"))
	}
	switch c.Storage.Backend {
	case StorageObjectStore:
		if c.Storage.URL == "" || c.Storage.ServiceRoleKey == "" {
			errs = append(errs, errors.New("STORAGE_URL and STORAGE_SERVICE_ROLE_KEY are required for the objectstore backend"))
		}
	case StorageLocal:
	default:
		errs = append(errs, fmt.Errorf("unknown STORAGE_BACKEND %q", c.Storage.Backend))
	}
	if c.Webhook.Timeout > 5*time.Minute {
		errs = append(errs, errors.New("WEBHOOK_TIMEOUT must not exceed 5m"))
	}
	return errors.Join(errs...)
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		*dst = strings.TrimSpace(v)
	}
}

func setInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			*dst = n
		}
	}
}

func setInt64(dst *int64, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			*dst = b
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(strings.TrimSpace(v)); err == nil {
			*dst = d
		}
	}
}
