package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	JWT       JWTConfig
	OTP       OTPConfig
	Pricing   PricingConfig
	RateLimit RateLimitConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	Database    string
	SSLMode     string
	MaxConns    int
	IdleConns   int
	AutoMigrate bool
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// OTPConfig contains verification code configuration
type OTPConfig struct {
	TTLSeconds         int    // lifetime of an issued code
	EnvelopeSecret     string // signing secret for pending-profile envelopes
	EnvelopeTTLSeconds int    // lifetime of a signed envelope
}

// PricingConfig contains fare estimation configuration
type PricingConfig struct {
	BaseFare  float64 `json:"base_fare"`
	RatePerKm float64 `json:"rate_per_km"`
	Currency  string  `json:"currency"`
}

// RateLimitConfig contains request rate limiting configuration
type RateLimitConfig struct {
	Enabled       bool
	Requests      int // allowed requests per window
	WindowSeconds int
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level  string // debug, info, warn, error
	Format string // json or console
}
