package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	Email     EmailConfig     `yaml:"email"`
	Cron      CronConfig      `yaml:"cron"`
	Jobs      JobsConfig      `yaml:"jobs"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP trigger server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// EmailConfig contains job-report email settings
type EmailConfig struct {
	Enabled       bool   `yaml:"enabled"`
	SendGridKey   string `yaml:"sendgrid_key"`
	From          string `yaml:"from"`
	FromName      string `yaml:"from_name"`
	OperatorEmail string `yaml:"operator_email"`
}

// CronConfig contains the shared secret for HTTP job triggers
type CronConfig struct {
	Secret string `yaml:"secret"`
}

// JobsConfig contains batch job execution limits
type JobsConfig struct {
	// Timezone defines the civil timezone used for business-day
	// boundaries (due dates, "today"/"tomorrow" in date rolling).
	Timezone              string `yaml:"timezone"`
	BookingTimeoutSeconds int    `yaml:"booking_timeout_seconds"`
	JobDeadlineMinutes    int    `yaml:"job_deadline_minutes"`
}

// SchedulerConfig contains cron schedule expressions
type SchedulerConfig struct {
	BackfillRentPayments string `yaml:"backfill_rent_payments"`
	RollSearchDates      string `yaml:"roll_search_dates"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Cron trigger secret
	if val := os.Getenv("CRON_SECRET"); val != "" {
		c.Cron.Secret = val
	}

	// Email
	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.Email.SendGridKey = val
	}
	if val := os.Getenv("OPERATOR_EMAIL"); val != "" {
		c.Email.OperatorEmail = val
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid and fills in defaults
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	// Database validation
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	// Email validation (only when enabled)
	if c.Email.Enabled {
		if c.Email.SendGridKey == "" {
			return fmt.Errorf("sendgrid key is required when email is enabled")
		}
		if c.Email.OperatorEmail == "" {
			return fmt.Errorf("operator email is required when email is enabled")
		}
	}

	// Job defaults
	if c.Jobs.Timezone == "" {
		c.Jobs.Timezone = "America/New_York"
	}
	if c.Jobs.BookingTimeoutSeconds <= 0 {
		c.Jobs.BookingTimeoutSeconds = 30
	}
	if c.Jobs.JobDeadlineMinutes <= 0 {
		c.Jobs.JobDeadlineMinutes = 30
	}

	// Scheduler defaults
	if c.Scheduler.BackfillRentPayments == "" {
		c.Scheduler.BackfillRentPayments = "0 0 2 * * *" // 2 AM nightly
	}
	if c.Scheduler.RollSearchDates == "" {
		c.Scheduler.RollSearchDates = "0 30 0 * * *" // 12:30 AM nightly
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
