package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Database drivers understood by the platform/database package
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DefaultSQLitePath is the database file used when the sqlite driver has no URL
const DefaultSQLitePath = "giveaway.db"

// Config holds everything the bot reads from the environment
type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Discord struct {
		Token         string   `env:"DISCORD_TOKEN,required,notEmpty"`
		AdminIDs      []string `env:"BOT_ADMIN_IDS" envSeparator:","`
		CommandPrefix string   `env:"COMMAND_PREFIX" envDefault:"."`
	}

	Database struct {
		Driver      string `env:"DATABASE_DRIVER" envDefault:"postgres"`
		URL         string `env:"DATABASE_URL"`
		AutoMigrate bool   `env:"DB_AUTO_MIGRATE" envDefault:"true"`
	}

	Redis struct {
		Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	Server struct {
		Port int `env:"PORT" envDefault:"3000"`
	}

	Giveaway struct {
		// SweepSchedule is a robfig/cron spec for the expiry sweeper
		SweepSchedule string        `env:"SWEEP_SCHEDULE" envDefault:"@every 1m"`
		SweepLockTTL  time.Duration `env:"SWEEP_LOCK_TTL" envDefault:"50s"`
		PromptTTL     time.Duration `env:"PROMPT_TTL" envDefault:"10m"`

		// SweepLockEnabled guards sweeps with a Redis lease when several replicas run
		SweepLockEnabled bool `env:"SWEEP_LOCK_ENABLED" envDefault:"true"`

		// RegionOffset is the fixed UTC offset end times are entered in
		RegionOffset time.Duration `env:"REGION_UTC_OFFSET" envDefault:"1h"`
	}
}

// Load reads an optional .env file and then the process environment
func Load() (*Config, error) {
	// A missing .env is normal outside local development
	_ = godotenv.Load()

	return Parse()
}

// Parse reads the process environment only
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.URL == "" {
			return errors.New("DATABASE_URL is required for the postgres driver")
		}
	case DriverSQLite:
		if c.Database.URL == "" {
			c.Database.URL = DefaultSQLitePath
		}
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.Database.Driver)
	}

	if c.Discord.CommandPrefix == "" {
		return errors.New("COMMAND_PREFIX cannot be empty")
	}

	// Trim stray whitespace from "id1, id2"
	admins := make([]string, 0, len(c.Discord.AdminIDs))
	for _, id := range c.Discord.AdminIDs {
		if id = strings.TrimSpace(id); id != "" {
			admins = append(admins, id)
		}
	}
	c.Discord.AdminIDs = admins

	return nil
}

// ListenAddr is the address the liveness server binds to
func (c *Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
