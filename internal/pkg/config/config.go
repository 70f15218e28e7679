package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/prasetyadi/temanku/internal/pkg/models"
)

// InitConfig loads configuration from a .env file (local only) and the
// environment. Environment variables always win over file values.
func InitConfig(configPath string) *models.Config {
	env := GetEnv("APP_ENV", "local")
	if env == "local" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "temanku-api")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8080)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 15)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 15)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 10)

	// Database config
	configs.Database.Host = GetEnv("DB_HOST", "localhost")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "temanku")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 10)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 2)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// NSQ config
	configs.NSQ.Address = GetEnv("NSQ_ADDRESS", "")
	configs.NSQ.AuditTopic = GetEnv("NSQ_AUDIT_TOPIC", "audit_log")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("ACCESS_TOKEN_EXPIRY_MINUTES", 15)
	configs.JWT.RefreshExpiration = GetEnvAsInt("REFRESH_TOKEN_EXPIRY_HOURS", 168)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "temanku")

	// OTP config
	configs.OTP.Expiration = GetEnvAsInt("OTP_EXPIRY_MINUTES", 5)
	configs.OTP.MaxAttempts = GetEnvAsInt("OTP_MAX_ATTEMPTS", 4)
	configs.OTP.MaxFailedChallenge = GetEnvAsInt("OTP_MAX_FAILED_CHALLENGES", 3)
	configs.OTP.BlockDuration = GetEnvAsInt("OTP_BLOCK_MINUTES", 30)
	configs.OTP.ResendCooldown = GetEnvAsInt("OTP_RESEND_COOLDOWN_SECONDS", 60)

	// Password hashing config
	configs.Password.BcryptCost = GetEnvAsInt("BCRYPT_COST", 10)

	// Rate limit config
	configs.RateLimit.RegisterByEmail.Limit = GetEnvAsInt("RATE_REGISTER_EMAIL_LIMIT", 3)
	configs.RateLimit.RegisterByEmail.Window = GetEnvAsInt("RATE_REGISTER_EMAIL_WINDOW", 900)
	configs.RateLimit.RegisterByIP.Limit = GetEnvAsInt("RATE_REGISTER_IP_LIMIT", 10)
	configs.RateLimit.RegisterByIP.Window = GetEnvAsInt("RATE_REGISTER_IP_WINDOW", 900)
	configs.RateLimit.OTPResend.Limit = GetEnvAsInt("RATE_OTP_RESEND_LIMIT", 3)
	configs.RateLimit.OTPResend.Window = GetEnvAsInt("RATE_OTP_RESEND_WINDOW", 900)
	configs.RateLimit.OTPVerify.Limit = GetEnvAsInt("RATE_OTP_VERIFY_LIMIT", 5)
	configs.RateLimit.OTPVerify.Window = GetEnvAsInt("RATE_OTP_VERIFY_WINDOW", 900)
	configs.RateLimit.LoginByIP.Limit = GetEnvAsInt("RATE_LOGIN_IP_LIMIT", 10)
	configs.RateLimit.LoginByIP.Window = GetEnvAsInt("RATE_LOGIN_IP_WINDOW", 900)

	// Mailer config
	configs.Mailer.RelayURL = GetEnv("MAIL_RELAY_URL", "")
	configs.Mailer.APIKey = GetEnv("MAIL_RELAY_API_KEY", "")
	configs.Mailer.Sender = GetEnv("MAIL_SENDER", "no-reply@temanku.app")
	configs.Mailer.TimeoutMS = GetEnvAsInt("MAIL_TIMEOUT_MS", 5000)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
