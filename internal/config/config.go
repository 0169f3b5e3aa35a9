package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"linha-viva/internal/model"
	"linha-viva/internal/reconcile"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Env      string `mapstructure:"env"`
		Timezone string `mapstructure:"timezone"`
	} `mapstructure:"app"`

	HTTP struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"http"`

	DB struct {
		Driver     string `mapstructure:"driver"` // sqlite | postgres
		URL        string `mapstructure:"url"`
		Host       string `mapstructure:"host"`
		User       string `mapstructure:"user"`
		Password   string `mapstructure:"password"`
		Name       string `mapstructure:"name"`
		Port       string `mapstructure:"port"`
		SQLitePath string `mapstructure:"sqlite_path"`
	} `mapstructure:"db"`

	Sheets struct {
		URL          string        `mapstructure:"url"`
		Timeout      time.Duration `mapstructure:"timeout"`
		RefreshDelay time.Duration `mapstructure:"refresh_delay"`
		SyncInterval time.Duration `mapstructure:"sync_interval"`
		MergePolicy  string        `mapstructure:"merge_policy"`
	} `mapstructure:"sheets"`

	Auth struct {
		AdminPassword string        `mapstructure:"admin_password"`
		JWTSecret     string        `mapstructure:"jwt_secret"`
		TokenTTL      time.Duration `mapstructure:"token_ttl"`
	} `mapstructure:"auth"`

	Metrics struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"metrics"`
}

// env var -> config key
var envBindings = map[string]string{
	"app.env":              "APP_ENV",
	"app.timezone":         "TIMEZONE",
	"http.port":            "PORT",
	"db.driver":            "DB_DRIVER",
	"db.url":               "DATABASE_URL",
	"db.host":              "DB_HOST",
	"db.user":              "DB_USER",
	"db.password":          "DB_PASSWORD",
	"db.name":              "DB_NAME",
	"db.port":              "DB_PORT",
	"db.sqlite_path":       "SQLITE_PATH",
	"sheets.url":           "SHEETS_URL",
	"sheets.timeout":       "SHEETS_TIMEOUT",
	"sheets.refresh_delay": "SHEETS_REFRESH_DELAY",
	"sheets.sync_interval": "SYNC_INTERVAL",
	"sheets.merge_policy":  "MERGE_POLICY",
	"auth.admin_password":  "ADMIN_PASSWORD",
	"auth.jwt_secret":      "JWT_SECRET",
	"auth.token_ttl":       "TOKEN_TTL",
	"metrics.enabled":      "METRICS_ENABLED",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "prod")
	v.SetDefault("app.timezone", "America/Maceio")
	v.SetDefault("http.port", "3000")
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.sqlite_path", "linhaviva.db")
	v.SetDefault("db.port", "5432")
	v.SetDefault("sheets.url", model.DefaultSheetsURL)
	v.SetDefault("sheets.timeout", 20*time.Second)
	v.SetDefault("sheets.refresh_delay", 1500*time.Millisecond)
	v.SetDefault("sheets.sync_interval", 60*time.Second)
	v.SetDefault("sheets.merge_policy", string(reconcile.MergeMax))
	v.SetDefault("auth.admin_password", "Dsa21")
	v.SetDefault("auth.jwt_secret", "linha-viva-secret-change-in-production")
	v.SetDefault("auth.token_ttl", 12*time.Hour)
	v.SetDefault("metrics.enabled", true)
}

// Load reads .env (when present) and the process environment. A missing
// .env is fine; an unreadable or malformed one is an error.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromViper(viper.New())
}

// FromViper fills a Config from v after applying defaults and env bindings.
func FromViper(v *viper.Viper) (Config, error) {
	setDefaults(v)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, err
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, c.validate()
}

func (c *Config) validate() error {
	c.DB.Driver = strings.ToLower(strings.TrimSpace(c.DB.Driver))
	switch c.DB.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DB.Driver)
	}
	if _, err := reconcile.ParseMergePolicy(c.Sheets.MergePolicy); err != nil {
		return err
	}
	if c.Sheets.RefreshDelay < 0 || c.Sheets.SyncInterval < 0 {
		return fmt.Errorf("sheets delays must not be negative")
	}
	if c.Auth.AdminPassword == "" {
		return fmt.Errorf("ADMIN_PASSWORD must not be empty")
	}
	return nil
}

// Location resolves the configured timezone, falling back to UTC-3.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.FixedZone("BRT", -3*60*60)
	}
	return loc
}

// MergePolicy returns the parsed duplicate-merge policy.
func (c Config) MergePolicy() reconcile.MergePolicy {
	p, _ := reconcile.ParseMergePolicy(c.Sheets.MergePolicy)
	return p
}
