package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Auth          AuthConfig          `yaml:"auth"`
	Log           LogConfig           `yaml:"log"`
	Verification  VerificationConfig  `yaml:"verification"`
	Email         EmailConfig         `yaml:"email"`
	Notifications NotificationsConfig `yaml:"notifications"`
	RateLimit     RateLimitConfig     `yaml:"rate_limit"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds bearer-token and password hashing settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"pantrywatch"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
	BcryptCost     int           `yaml:"bcrypt_cost"      env:"AUTH_BCRYPT_COST"      env-default:"12"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// VerificationConfig holds verification-code settings.
type VerificationConfig struct {
	CodeTTL         time.Duration `yaml:"code_ttl"         env:"VERIFICATION_CODE_TTL"         env-default:"10m"`
	MaxAttempts     int           `yaml:"max_attempts"     env:"VERIFICATION_MAX_ATTEMPTS"     env-default:"5"`
	CleanupSchedule string        `yaml:"cleanup_schedule" env:"VERIFICATION_CLEANUP_SCHEDULE" env-default:"*/30 * * * *"`
}

// Email drivers.
const (
	EmailDriverSMTP = "smtp"
	EmailDriverSES  = "ses"
	EmailDriverNone = "none"
)

// EmailConfig selects and configures the outbound email transport.
type EmailConfig struct {
	Driver          string        `yaml:"driver"           env:"EMAIL_DRIVER"           env-default:"none"`
	FromAddress     string        `yaml:"from_address"     env:"EMAIL_FROM_ADDRESS"     env-default:"no-reply@pantrywatch.local"`
	FromName        string        `yaml:"from_name"        env:"EMAIL_FROM_NAME"        env-default:"PantryWatch"`
	SendTimeout     time.Duration `yaml:"send_timeout"     env:"EMAIL_SEND_TIMEOUT"     env-default:"10s"`
	FallbackEnabled bool          `yaml:"fallback_enabled" env:"EMAIL_FALLBACK_ENABLED" env-default:"false"`
	SMTP            SMTPConfig    `yaml:"smtp"`
	SES             SESConfig     `yaml:"ses"`
}

// SMTPConfig holds SMTP relay credentials.
type SMTPConfig struct {
	Host     string `yaml:"host"     env:"SMTP_HOST"`
	Port     int    `yaml:"port"     env:"SMTP_PORT"     env-default:"587"`
	Username string `yaml:"username" env:"SMTP_USERNAME"`
	Password string `yaml:"password" env:"SMTP_PASSWORD"`
}

// SESConfig holds Amazon SES settings. Credentials come from the default AWS chain.
type SESConfig struct {
	Region string `yaml:"region" env:"SES_REGION" env-default:"us-east-1"`
}

// NotificationsConfig holds scheduler settings. Schedules are standard
// five-field cron expressions evaluated in Timezone.
type NotificationsConfig struct {
	Enabled               bool   `yaml:"enabled"                 env:"NOTIFICATIONS_ENABLED"                 env-default:"true"`
	Timezone              string `yaml:"timezone"                env:"NOTIFICATIONS_TIMEZONE"                env-default:"UTC"`
	DailyDigestSchedule   string `yaml:"daily_digest_schedule"   env:"NOTIFICATIONS_DAILY_DIGEST_SCHEDULE"   env-default:"0 9 * * *"`
	WeeklyDigestSchedule  string `yaml:"weekly_digest_schedule"  env:"NOTIFICATIONS_WEEKLY_DIGEST_SCHEDULE"  env-default:"0 9 * * 1"`
	WeeklySummarySchedule string `yaml:"weekly_summary_schedule" env:"NOTIFICATIONS_WEEKLY_SUMMARY_SCHEDULE" env-default:"0 18 * * 0"`
	DigestThresholdDays   int    `yaml:"digest_threshold_days"   env:"NOTIFICATIONS_DIGEST_THRESHOLD_DAYS"   env-default:"3"`
	Concurrency           int    `yaml:"concurrency"             env:"NOTIFICATIONS_CONCURRENCY"             env-default:"4"`

	// Location is resolved from Timezone during validation.
	Location *time.Location `yaml:"-" env:"-"`
}

// RateLimitConfig holds per-IP limits for the unauthenticated verification endpoints.
type RateLimitConfig struct {
	VerificationPerMinute int           `yaml:"verification_per_minute" env:"RATE_LIMIT_VERIFICATION_PER_MINUTE" env-default:"10"`
	CleanupInterval       time.Duration `yaml:"cleanup_interval"        env:"RATE_LIMIT_CLEANUP_INTERVAL"        env-default:"5m"`
}
