package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Postgres PostgresConfig
	Reports  ReportsConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Assistant
	Assistant     AssistantConfig
	Session       SessionConfig
	ChatRateLimit ChatRateLimitConfig

	// Security
	Auth AuthConfig
	CORS CORSConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	DSN      string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxIdleTime time.Duration
	ConnMaxLifetime time.Duration
	// StatementTimeout bounds model-generated queries. Zero disables it.
	StatementTimeout time.Duration
}

// ReportsConfig selects where generated spreadsheets and PDFs live.
type ReportsConfig struct {
	Storage string // local | s3
	Dir     string
	S3      S3Config
}

type S3Config struct {
	Endpoint         string
	Region           string
	Bucket           string
	AccessKeyID      string
	SecretAccessKey  string
	UseSSL           bool
	Prefix           string
	AutoCreateBucket bool
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // Global timeout for entire fallback chain
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

type AssistantConfig struct {
	MaxHistory int
}

type SessionConfig struct {
	TTL         time.Duration
	MaxSessions int
	CookieName  string
}

type ChatRateLimitConfig struct {
	PerMin int
}

type AuthConfig struct {
	SecretKey    string
	PasswordSalt string
	// GeneratedSecrets is set when SecretKey or PasswordSalt was missing and
	// a random value was used. Tokens and passwords then reset on restart.
	GeneratedSecrets bool

	JWTExpiry           time.Duration
	RateLimitWindow     time.Duration
	MaxAttempts         int
	LockoutDuration     time.Duration
	RequireTokenForData bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load loads configuration using Viper.
// A .env file is loaded first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres, with the DB_* names the deployment already exports
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	cfg.Postgres.Host = firstNonEmpty(viper.GetString("db_host"), viper.GetString("postgres.host"))
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = firstNonEmpty(viper.GetString("db_user"), viper.GetString("postgres.user"))
	cfg.Postgres.Password = firstNonEmpty(viper.GetString("db_password"), viper.GetString("postgres.password"))
	cfg.Postgres.Name = firstNonEmpty(viper.GetString("db_name"), viper.GetString("postgres.name"))
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.MaxOpenConns = viper.GetInt("postgres.max_open_conns")
	cfg.Postgres.MaxIdleConns = viper.GetInt("postgres.max_idle_conns")
	cfg.Postgres.ConnMaxIdleTime = viper.GetDuration("postgres.conn_max_idle_time")
	cfg.Postgres.ConnMaxLifetime = viper.GetDuration("postgres.conn_max_lifetime")
	cfg.Postgres.StatementTimeout = viper.GetDuration("postgres.statement_timeout")

	// Reports
	cfg.Reports.Storage = strings.ToLower(viper.GetString("reports.storage"))
	cfg.Reports.Dir = viper.GetString("reports.dir")
	cfg.Reports.S3.Endpoint = viper.GetString("reports.s3.endpoint")
	cfg.Reports.S3.Region = viper.GetString("reports.s3.region")
	cfg.Reports.S3.Bucket = viper.GetString("reports.s3.bucket")
	cfg.Reports.S3.AccessKeyID = viper.GetString("reports.s3.access_key_id")
	cfg.Reports.S3.SecretAccessKey = viper.GetString("reports.s3.secret_access_key")
	cfg.Reports.S3.UseSSL = viper.GetBool("reports.s3.use_ssl")
	cfg.Reports.S3.Prefix = viper.GetString("reports.s3.prefix")
	cfg.Reports.S3.AutoCreateBucket = viper.GetBool("reports.s3.auto_create_bucket")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	// Load provider configurations
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// An OPENAI_API_KEY alone is enough to run.
	if len(cfg.LLM.Providers) == 0 {
		if key := viper.GetString("openai_api_key"); key != "" {
			cfg.LLM.Providers = []ProviderConfig{{
				Name:     "openai",
				Enabled:  true,
				Priority: 1,
				APIKey:   key,
				Model:    viper.GetString("llm.default_model"),
			}}
		}
	}

	// Assistant
	cfg.Assistant.MaxHistory = viper.GetInt("assistant.max_history")
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.MaxSessions = viper.GetInt("session.max_sessions")
	cfg.Session.CookieName = viper.GetString("session.cookie_name")
	cfg.ChatRateLimit.PerMin = viper.GetInt("chat_rate_limit.per_min")

	// Auth
	cfg.Auth.SecretKey = firstNonEmpty(viper.GetString("secret_key"), viper.GetString("auth.secret_key"))
	cfg.Auth.PasswordSalt = firstNonEmpty(viper.GetString("password_salt"), viper.GetString("auth.password_salt"))
	if cfg.Auth.SecretKey == "" {
		cfg.Auth.SecretKey = randomHex(32)
		cfg.Auth.GeneratedSecrets = true
	}
	if cfg.Auth.PasswordSalt == "" {
		cfg.Auth.PasswordSalt = randomHex(16)
		cfg.Auth.GeneratedSecrets = true
	}
	cfg.Auth.JWTExpiry = viper.GetDuration("auth.jwt_expiry")
	cfg.Auth.RateLimitWindow = viper.GetDuration("auth.rate_limit_window")
	cfg.Auth.MaxAttempts = viper.GetInt("auth.max_attempts")
	cfg.Auth.LockoutDuration = viper.GetDuration("auth.lockout_duration")
	cfg.Auth.RequireTokenForData = viper.GetBool("auth.require_token_for_data")

	// Split allowed origins since viper might not parse array seamlessly from env
	cfg.CORS.AllowedOrigins = splitList(strings.Join(viper.GetStringSlice("cors.allowed_origins"), ","))

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.name", "ServitecInvoiceDataBase")
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.sslmode", "disable")
	viper.SetDefault("postgres.max_open_conns", 10)
	viper.SetDefault("postgres.max_idle_conns", 5)
	viper.SetDefault("postgres.conn_max_idle_time", "5m")
	viper.SetDefault("postgres.conn_max_lifetime", "30m")
	viper.SetDefault("postgres.statement_timeout", "30s")

	viper.SetDefault("reports.storage", "local")
	viper.SetDefault("reports.dir", "reports")
	viper.SetDefault("reports.s3.region", "us-east-1")

	// LLM defaults
	// A failed LLM call fails the turn; retry and fallback are opt-in.
	viper.SetDefault("llm.fallback_enabled", false)
	viper.SetDefault("llm.retry_attempts", 1)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s") // Default: 60 seconds for entire fallback chain
	viper.SetDefault("llm.default_model", "gpt-4")

	viper.SetDefault("assistant.max_history", 10)
	viper.SetDefault("session.ttl", "24h")
	viper.SetDefault("session.max_sessions", 10000)
	viper.SetDefault("session.cookie_name", "session_id")
	viper.SetDefault("chat_rate_limit.per_min", 30)

	viper.SetDefault("auth.jwt_expiry", "24h")
	viper.SetDefault("auth.rate_limit_window", "300s")
	viper.SetDefault("auth.max_attempts", 5)
	viper.SetDefault("auth.lockout_duration", "900s")
	viper.SetDefault("auth.require_token_for_data", false)

	viper.SetDefault("cors.allowed_origins", "*")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// Validate checks the LLM configuration before providers are built.
func (cfg *LLMConfig) Validate() error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - add llm.providers to config.yaml or set OPENAI_API_KEY")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		// Check required fields
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}
			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Durations parses the retry and timeout strings of the LLM section.
func (cfg *LLMConfig) Durations() (retryDelay, maxTotal time.Duration, err error) {
	if cfg.RetryDelay != "" {
		if retryDelay, err = time.ParseDuration(cfg.RetryDelay); err != nil {
			return 0, 0, fmt.Errorf("llm.retry_delay: %w", err)
		}
	}
	if cfg.MaxTotalTimeout != "" {
		if maxTotal, err = time.ParseDuration(cfg.MaxTotalTimeout); err != nil {
			return 0, 0, fmt.Errorf("llm.max_total_timeout: %w", err)
		}
	}
	return retryDelay, maxTotal, nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("config: read random: %v", err))
	}
	return hex.EncodeToString(b)
}
