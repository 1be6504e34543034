package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const configPathEnv = "GIG_CONFIG_PATH"

type GigConfig struct {
	Env            string `yaml:"env" env:"GIG_ENV" env-default:"local"`
	HTTPServer     `yaml:"http_server"`
	GRPCServer     `yaml:"grpc_server"`
	GigDB          `yaml:"gig_db"`
	LogConfig      `yaml:"log_config"`
	KafkaService   `yaml:"kafka-service"`
	PaymentGateway `yaml:"payment-gateway"`
	Auth           `yaml:"auth"`
	Scheduler      `yaml:"scheduler"`
	Business       `yaml:"business"`
}

type HTTPServer struct {
	Host         string        `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port         string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
}

type GRPCServer struct {
	Host string `yaml:"host" env:"GRPC_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"GRPC_PORT" env-default:"50051"`
}

type GigDB struct {
	Dsn            string `yaml:"dsn" env:"GIG_DB_DSN"`
	Storage        string `yaml:"storage" env:"GIG_DB_STORAGE" env-default:"postgres"`
	MigrationsPath string `yaml:"migrations_path" env:"GIG_DB_MIGRATIONS_PATH" env-default:"migrations"`
	AutoMigrate    bool   `yaml:"auto_migrate" env:"GIG_DB_AUTO_MIGRATE" env-default:"true"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log_format" env:"LOG_FORMAT" env-default:"json"`
	LogOutput string `yaml:"log_output" env:"LOG_OUTPUT" env-default:"stdout"`
}

type KafkaService struct {
	Host  string `yaml:"host" env:"KAFKA_HOST"`
	Port  string `yaml:"port" env:"KAFKA_PORT" env-default:"9092"`
	Topic string `yaml:"topic" env:"KAFKA_TOPIC" env-default:"notification-events"`
}

type PaymentGateway struct {
	BaseURL   string `yaml:"base_url" env:"PAYMENT_GATEWAY_URL"`
	KeyID     string `yaml:"key_id" env:"PAYMENT_KEY_ID"`
	KeySecret string `yaml:"key_secret" env:"PAYMENT_KEY_SECRET"`
	Currency  string `yaml:"currency" env:"PAYMENT_CURRENCY" env-default:"INR"`
}

type Auth struct {
	JWTSecret string        `yaml:"jwt_secret" env:"JWT_SECRET"`
	TokenTTL  time.Duration `yaml:"token_ttl" env:"JWT_TOKEN_TTL" env-default:"24h"`
}

type Scheduler struct {
	SweepInterval       time.Duration `yaml:"sweep_interval" env:"SWEEP_INTERVAL" env-default:"1m"`
	GrantExpiryInterval time.Duration `yaml:"grant_expiry_interval" env:"GRANT_EXPIRY_INTERVAL" env-default:"1h"`
}

type Business struct {
	StarterPackageID string  `yaml:"starter_package_id" env:"STARTER_PACKAGE_ID"`
	MinWithdrawal    string  `yaml:"min_withdrawal" env:"MIN_WITHDRAWAL" env-default:"100"`
	RateLimitRPS     float64 `yaml:"rate_limit_rps" env:"RATE_LIMIT_RPS" env-default:"5"`
	RateLimitBurst   int     `yaml:"rate_limit_burst" env:"RATE_LIMIT_BURST" env-default:"10"`
}

func MustLoad() *GigConfig {
	// .env is optional
	_ = godotenv.Load()

	configPath := os.Getenv(configPathEnv)
	if configPath == "" {
		log.Fatalf("%s was not found\n", configPathEnv)
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}
	return cfg
}

func Load(configPath string) (*GigConfig, error) {
	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	var cfg GigConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *GigConfig) validate() error {
	switch c.GigDB.Storage {
	case "postgres":
		if c.GigDB.Dsn == "" {
			return errors.New("gig_db.dsn is required for postgres storage")
		}
	case "memory":
	default:
		return fmt.Errorf("unknown gig_db.storage %q", c.GigDB.Storage)
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret is required")
	}
	return nil
}
