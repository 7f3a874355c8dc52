// internal/common/config/config.go
package config

import (
	"fmt"
	"time"
)

// Config is the main application configuration struct.
type Config struct {
	App             AppConfig             `mapstructure:"app"`
	Server          ServerConfig          `mapstructure:"server"`
	Database        DatabaseConfig        `mapstructure:"database"`
	Auth            AuthConfig            `mapstructure:"auth"`
	APIs            APIsConfig            `mapstructure:"apis"`
	Search          SearchConfig          `mapstructure:"search"`
	Recommendations RecommendationsConfig `mapstructure:"recommendations"`
	Mail            MailConfig            `mapstructure:"mail"`
	Logging         LoggingConfig         `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ReadTimeout     int    `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int    `mapstructure:"write_timeout"`    // milliseconds
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // milliseconds
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// --- Specific Configuration Sections ---

// AuthConfig holds session and password settings.
type AuthConfig struct {
	SessionTTL      int `mapstructure:"session_ttl"`       // milliseconds
	BcryptCost      int `mapstructure:"bcrypt_cost"`
	ResetTokenTTL   int `mapstructure:"reset_token_ttl"`   // milliseconds
	MinPasswordSize int `mapstructure:"min_password_size"`
}

// APIsConfig holds settings for external API integrations.
type APIsConfig struct {
	Chat struct {
		BaseURL       string  `mapstructure:"base_url"`
		APIKey        string  `mapstructure:"api_key"`
		Model         string  `mapstructure:"model"`
		Timeout       int     `mapstructure:"timeout"` // milliseconds
		MaxTokens     int     `mapstructure:"max_tokens"`
		Temperature   float32 `mapstructure:"temperature"`
		RatePerSecond float64 `mapstructure:"rate_per_second"`
		RateBurst     int     `mapstructure:"rate_burst"`
	} `mapstructure:"chat"`
}

// SearchConfig holds vendor search settings.
type SearchConfig struct {
	CacheTTL      int `mapstructure:"cache_ttl"`      // milliseconds
	DefaultRadius int `mapstructure:"default_radius"` // miles
	SourceTimeout int `mapstructure:"source_timeout"` // milliseconds
}

// RecommendationsConfig holds recommendation engine settings.
type RecommendationsConfig struct {
	MaxResults int  `mapstructure:"max_results"`
	AIEnabled  bool `mapstructure:"ai_enabled"`
	AITimeout  int  `mapstructure:"ai_timeout"` // milliseconds
}

// MailConfig holds settings for outbound email.
type MailConfig struct {
	AWS struct {
		Region string `mapstructure:"region"`
	} `mapstructure:"aws"`
	SES struct {
		Enabled   bool   `mapstructure:"enabled"`
		FromEmail string `mapstructure:"from_email"`
	} `mapstructure:"ses"`
	ResetBaseURL string `mapstructure:"reset_base_url"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// GetDuration converts a millisecond config value into a time.Duration.
func GetDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
