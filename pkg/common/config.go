package common

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

var ErrInvalidConfig = errors.New("invalid config")

const MinJwtSecretLength = 32

type DBConfig struct {
	Type string `env:"DB_TYPE" envDefault:"file"`
	Path string `env:"DB_PATH" envDefault:"ecotrack.db"`
	DSN  string `env:"DB_DSN"`
}

type LimiterConfig struct {
	Rate  float64 `env:"DEFAULT_RATE" envDefault:"10"`
	Burst int     `env:"DEFAULT_BURST" envDefault:"20"`
}

type AuthConfig struct {
	JwtSecret string `env:"JWT_SECRET"`
	JwtIssuer string `env:"JWT_ISSUER"`
}

type KafkaConfig struct {
	Brokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	Topic   string   `env:"KAFKA_TOPIC" envDefault:"ecotrack.notifications"`
}

// ThresholdConfig holds the notification trigger levels and the goals used
// for users that never stored their own.
type ThresholdConfig struct {
	HighEmission         float64 `env:"HIGH_EMISSION_THRESHOLD" envDefault:"50"`
	PlasticMonthly       float64 `env:"PLASTIC_MONTHLY_THRESHOLD" envDefault:"50"`
	RenewableAchievement float64 `env:"RENEWABLE_ACHIEVEMENT_THRESHOLD" envDefault:"100"`
	DefaultCarbonGoal    float64 `env:"DEFAULT_CARBON_GOAL" envDefault:"1000"`
	DefaultPlasticGoal   float64 `env:"DEFAULT_PLASTIC_GOAL" envDefault:"20"`
}

type Config struct {
	GoEnv string `env:"GO_ENV" envDefault:"development"`

	DB         DBConfig        `envPrefix:"ECO_"`
	Limiter    LimiterConfig   `envPrefix:"ECO_"`
	Auth       AuthConfig      `envPrefix:"ECO_"`
	Kafka      KafkaConfig     `envPrefix:"ECO_"`
	Thresholds ThresholdConfig `envPrefix:"ECO_"`

	HttpHostPort string `env:"ECO_HTTP_HOST_PORT" envDefault:":1080"`
	GrpcHostPort string `env:"ECO_GRPC_HOST_PORT"`
	StaticDir    string `env:"ECO_STATIC_DIR"`
	LogDir       string `env:"ECO_LOG_DIR"`
}

// LoadConfig reads the process environment. Callers that want a .env file
// honoured load it with godotenv first.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}
	cfg.HttpHostPort = strings.TrimSpace(cfg.HttpHostPort)
	cfg.GrpcHostPort = strings.TrimSpace(cfg.GrpcHostPort)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.DB.Type {
	case "file", "memory":
	case "postgres":
		if c.DB.DSN == "" {
			return fmt.Errorf("%w: ECO_DB_DSN is required for postgres", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown ECO_DB_TYPE %q", ErrInvalidConfig, c.DB.Type)
	}

	if c.Auth.JwtSecret != "" && len(c.Auth.JwtSecret) < MinJwtSecretLength {
		return fmt.Errorf("%w: ECO_JWT_SECRET must be at least %d characters", ErrInvalidConfig, MinJwtSecretLength)
	}

	if c.Limiter.Rate <= 0 || c.Limiter.Burst <= 0 {
		return fmt.Errorf("%w: ECO_DEFAULT_RATE and ECO_DEFAULT_BURST must be positive", ErrInvalidConfig)
	}

	if c.HttpHostPort == "" {
		c.HttpHostPort = ":1080"
	}
	return nil
}

func (c *Config) AuthEnabled() bool {
	return c.Auth.JwtSecret != ""
}
