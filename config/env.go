package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

const productionEnv = "production"

type Config struct {
	AppEnv    string `env:"NODE_ENV" envDefault:"development"`
	Port      string `env:"PORT" envDefault:"5000"`
	OriginURL string `env:"ORIGIN_URL"`

	DB       Database
	Auth     Auth
	Log      Log
	SMTP     SMTP `envPrefix:"SMTP_"`
	Features Features
}

type Database struct {
	URL      string `env:"DATABASE_URL"`
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASS"`
	Cluster  string `env:"DB_CLUSTER" envDefault:"cluster0.dfacken.mongodb.net"`
	AppName  string `env:"DB_APP_NAME" envDefault:"Cluster0"`
	Name     string `env:"DB_NAME" envDefault:"handicraftDB"`
}

type Auth struct {
	AccessTokenSecret string `env:"ACCESS_TOKEN_SECRET"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// SMTP is optional. Order confirmation mail is only sent when Host, User and
// Pass are all set.
type SMTP struct {
	Host string `env:"HOST"`
	Port int    `env:"PORT" envDefault:"587"`
	User string `env:"USER"`
	Pass string `env:"PASS"`
	From string `env:"FROM"`
}

func (s SMTP) Enabled() bool {
	return s.Host != "" && s.User != "" && s.Pass != ""
}

// Features toggles the optional route groups.
type Features struct {
	Auth   bool `env:"FEATURE_AUTH" envDefault:"true"`
	Shop   bool `env:"FEATURE_SHOP" envDefault:"true"`
	Orders bool `env:"FEATURE_ORDERS" envDefault:"true"`
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, productionEnv)
}

// URI returns the MongoDB connection string. DATABASE_URL wins over the
// individual credentials.
func (d Database) URI() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority&appName=%s",
		url.QueryEscape(d.User),
		url.QueryEscape(d.Password),
		d.Cluster,
		d.AppName,
	)
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to read .env file, using system environment variables", "error", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Features.Auth && cfg.Auth.AccessTokenSecret == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET is required when FEATURE_AUTH is enabled")
	}

	return cfg, nil
}
