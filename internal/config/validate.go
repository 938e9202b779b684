package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // timezone names resolve without a system zoneinfo

	"github.com/robfig/cron/v3"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/pantrywatch-backend/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be within [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}

	if err := c.Verification.validate(); err != nil {
		return fmt.Errorf("verification: %w", err)
	}
	if err := c.Email.validate(); err != nil {
		return fmt.Errorf("email: %w", err)
	}
	if err := c.Notifications.validate(); err != nil {
		return fmt.Errorf("notifications: %w", err)
	}
	if c.RateLimit.VerificationPerMinute <= 0 {
		return fmt.Errorf("rate_limit.verification_per_minute must be > 0 (got %d)", c.RateLimit.VerificationPerMinute)
	}
	if c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %v)", c.RateLimit.CleanupInterval)
	}

	return nil
}

func (v *VerificationConfig) validate() error {
	if v.CodeTTL <= 0 {
		return fmt.Errorf("code_ttl must be > 0 (got %v)", v.CodeTTL)
	}
	if v.MaxAttempts <= 0 {
		return fmt.Errorf("max_attempts must be > 0 (got %d)", v.MaxAttempts)
	}
	if _, err := cron.ParseStandard(v.CleanupSchedule); err != nil {
		return fmt.Errorf("cleanup_schedule %q: %w", v.CleanupSchedule, err)
	}
	return nil
}

func (e *EmailConfig) validate() error {
	e.Driver = strings.ToLower(strings.TrimSpace(e.Driver))

	switch e.Driver {
	case EmailDriverNone:
	case EmailDriverSMTP:
		if e.SMTP.Host == "" {
			return fmt.Errorf("smtp.host is required for the smtp driver")
		}
		if e.SMTP.Port <= 0 {
			return fmt.Errorf("smtp.port must be > 0 (got %d)", e.SMTP.Port)
		}
	case EmailDriverSES:
		if e.SES.Region == "" {
			return fmt.Errorf("ses.region is required for the ses driver")
		}
	default:
		return fmt.Errorf("driver must be one of smtp, ses, none (got %q)", e.Driver)
	}

	if e.FromAddress == "" {
		return fmt.Errorf("from_address is required")
	}
	if e.SendTimeout <= 0 {
		return fmt.Errorf("send_timeout must be > 0 (got %v)", e.SendTimeout)
	}
	return nil
}

func (n *NotificationsConfig) validate() error {
	loc, err := time.LoadLocation(n.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", n.Timezone, err)
	}
	n.Location = loc

	for name, spec := range n.Schedules() {
		if _, err := cron.ParseStandard(spec); err != nil {
			return fmt.Errorf("%s %q: %w", name, spec, err)
		}
	}

	if n.DigestThresholdDays < 1 || n.DigestThresholdDays > domain.ExpiringSoonDays {
		return fmt.Errorf("digest_threshold_days must be within [1, %d] (got %d)", domain.ExpiringSoonDays, n.DigestThresholdDays)
	}
	if n.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be > 0 (got %d)", n.Concurrency)
	}
	return nil
}

// Schedules returns the three trigger expressions keyed by their YAML name.
func (n NotificationsConfig) Schedules() map[string]string {
	return map[string]string{
		"daily_digest_schedule":   n.DailyDigestSchedule,
		"weekly_digest_schedule":  n.WeeklyDigestSchedule,
		"weekly_summary_schedule": n.WeeklySummarySchedule,
	}
}
