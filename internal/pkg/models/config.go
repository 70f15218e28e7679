package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NSQ       NSQConfig
	JWT       JWTConfig
	OTP       OTPConfig
	Password  PasswordConfig
	RateLimit RateLimitConfig
	Mailer    MailerConfig
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
	ReadTimeout     int // in seconds
	WriteTimeout    int // in seconds
	ShutdownTimeout int // in seconds
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains NSQ connection configuration. Address is the nsqd TCP
// address; an empty address disables the async audit pipeline and audit
// records are written synchronously instead.
type NSQConfig struct {
	Address    string
	AuditTopic string
}

// JWTConfig contains token lifetime configuration. Expiration bounds the
// access token, RefreshExpiration the opaque refresh token.
type JWTConfig struct {
	Secret            string
	Expiration        int // in minutes
	RefreshExpiration int // in hours
	Issuer            string
}

// OTPConfig contains OTP challenge configuration
type OTPConfig struct {
	Expiration         int // in minutes
	MaxAttempts        int
	MaxFailedChallenge int // exhausted challenges before an email is blocked
	BlockDuration      int // in minutes
	ResendCooldown     int // in seconds
}

// PasswordConfig contains password hashing configuration
type PasswordConfig struct {
	BcryptCost int
}

// RateLimitPolicy is a single fixed-window limit: at most Limit requests per
// Window seconds for one key.
type RateLimitPolicy struct {
	Limit  int
	Window int // in seconds
}

// RateLimitConfig contains per-policy rate limit configuration
type RateLimitConfig struct {
	RegisterByEmail RateLimitPolicy
	RegisterByIP    RateLimitPolicy
	OTPResend       RateLimitPolicy
	OTPVerify       RateLimitPolicy
	LoginByIP       RateLimitPolicy
}

// MailerConfig contains the mail relay endpoint configuration
type MailerConfig struct {
	RelayURL  string
	APIKey    string
	Sender    string
	TimeoutMS int
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
