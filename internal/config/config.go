package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Addr            string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"15s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type Database struct {
	Host            string        `yaml:"PG_HOST" env:"PG_HOST" env-default:"localhost"`
	Port            string        `yaml:"PG_PORT" env:"PG_PORT" env-default:"5432"`
	User            string        `yaml:"PG_USER" env:"PG_USER" env-required:"true"`
	Password        string        `yaml:"PG_PASSWORD" env:"PG_PASSWORD" env-required:"true"`
	Name            string        `yaml:"PG_DBNAME" env:"PG_DBNAME" env-required:"true"`
	SSLMode         string        `yaml:"PG_SSLMODE" env:"PG_SSLMODE" env-default:"require"`
	MaxOpenConns    int           `yaml:"MAX_OPEN_CONNS" env:"PG_MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns    int           `yaml:"MAX_IDLE_CONNS" env:"PG_MAX_IDLE_CONNS" env-default:"10"`
	ConnMaxLifetime time.Duration `yaml:"CONN_MAX_LIFETIME" env:"PG_CONN_MAX_LIFETIME" env-default:"30m"`
	ConnMaxIdleTime time.Duration `yaml:"CONN_MAX_IDLE_TIME" env:"PG_CONN_MAX_IDLE_TIME" env-default:"5m"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER" env-required:"true"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD" env-required:"true"`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

// RateConfig bounds failed login attempts per email.
type RateConfig struct {
	MaxAttempts int64         `yaml:"MAX_ATTEMPTS" env:"MAX_ATTEMPTS" env-default:"5"`
	WindowSize  time.Duration `yaml:"WINDOW_SIZE" env:"WINDOW_SIZE" env-default:"15s"`
}

// MarketplaceRate throttles the public marketplace per client address.
type MarketplaceRate struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" env:"MARKETPLACE_RPS" env-default:"10"`
	Burst             int     `yaml:"burst" env:"MARKETPLACE_BURST" env-default:"20"`
}

type Security struct {
	JWTKey         string `yaml:"JWT_KEY" env:"JWT_KEY" env-required:"true"`
	JWTExpiryHours int    `yaml:"JWT_EXPIRY_HOURS" env:"JWT_EXPIRY_HOURS" env-default:"24"`
}

type Cache struct {
	DefaultTTL   time.Duration `yaml:"default_ttl" env:"CACHE_DEFAULT_TTL" env-default:"5m"`
	CommodityTTL time.Duration `yaml:"commodity_ttl" env:"CACHE_COMMODITY_TTL" env-default:"2m"`
	AccountTTL   time.Duration `yaml:"account_ttl" env:"CACHE_ACCOUNT_TTL" env-default:"1m"`
}

type Storage struct {
	Region          string `yaml:"S3_REGION" env:"S3_REGION" env-default:"ap-south-1"`
	Bucket          string `yaml:"S3_BUCKET" env:"S3_BUCKET" env-default:"agroconnect-images"`
	AccessKeyID     string `yaml:"S3_ACCESS_KEY_ID" env:"S3_ACCESS_KEY_ID"`
	SecretAccessKey string `yaml:"S3_SECRET_ACCESS_KEY" env:"S3_SECRET_ACCESS_KEY"`
	// Endpoint points the client at an S3 compatible server such as MinIO.
	Endpoint       string `yaml:"S3_ENDPOINT" env:"S3_ENDPOINT"`
	PublicBaseURL  string `yaml:"PUBLIC_BASE_URL" env:"S3_PUBLIC_BASE_URL"`
	MaxUploadBytes int64  `yaml:"MAX_UPLOAD_BYTES" env:"MAX_UPLOAD_BYTES" env-default:"5242880"`
}

type OTel struct {
	ServiceName      string  `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"agroconnect"`
	ExporterEndpoint string  `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	SamplerRatio     float64 `yaml:"SAMPLER_RATIO" env:"OTEL_SAMPLER_RATIO" env-default:"1.0"`
}

// Admin is the account seeded at startup when Email is set.
type Admin struct {
	Email    string `yaml:"ADMIN_EMAIL" env:"ADMIN_EMAIL"`
	Password string `yaml:"ADMIN_PASSWORD" env:"ADMIN_PASSWORD"`
	Name     string `yaml:"ADMIN_NAME" env:"ADMIN_NAME" env-default:"Administrator"`
	Phone    string `yaml:"ADMIN_PHONE" env:"ADMIN_PHONE" env-default:"0000000000"`
}

type Config struct {
	Env             string `yaml:"env" env:"ENV" env-required:"true"`
	HTTPServer      `yaml:"http_server"`
	Database        Database        `yaml:"database"`
	RedisConnect    RedisConnect    `yaml:"redis"`
	RateConfig      RateConfig      `yaml:"rateConfig"`
	MarketplaceRate MarketplaceRate `yaml:"marketplace_rate"`
	Security        Security        `yaml:"security"`
	Cache           Cache           `yaml:"cache"`
	Storage         Storage         `yaml:"storage"`
	OTel            OTel            `yaml:"otel"`
	Admin           Admin           `yaml:"admin"`
}

// LoadConfigFromPath reads the YAML file at path and applies env overrides.
func LoadConfigFromPath(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("can not read config file: %w", err)
	}

	return &cfg, nil
}

// MustLoad reads a .env file when present, then the YAML config named by
// CONFIG_PATH or -config, falling back to config/local.yaml.
func MustLoad() *Config {
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "gets the config flag value")

		flag.Parse()

		configPath = *flags

		if configPath == "" {
			configPath = "config/local.yaml"
		}
	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatalf("%s", err.Error())
	}

	return cfg
}

func (d *Database) GetDSN() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://%s:%s@%s:%s", r.Username, r.Password, r.Host, r.Port)
}
