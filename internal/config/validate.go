package config

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %s)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}
	if strings.TrimSpace(c.Auth.PublicHeader) == "" {
		return fmt.Errorf("auth.public_header must not be empty")
	}

	if c.Database.ConnectAttempts < 1 {
		return fmt.Errorf("database.connect_attempts must be >= 1 (got %d)", c.Database.ConnectAttempts)
	}
	if c.Database.StatementTimeout < 0 {
		return fmt.Errorf("database.statement_timeout must not be negative (got %s)", c.Database.StatementTimeout)
	}

	if !strings.HasPrefix(c.Server.APIPrefix, "/") || strings.HasSuffix(c.Server.APIPrefix, "/") {
		return fmt.Errorf("server.api_prefix must start with / and not end with / (got %q)", c.Server.APIPrefix)
	}

	if err := c.Pagination.validate(); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	if err := c.Uploads.validate(); err != nil {
		return fmt.Errorf("uploads: %w", err)
	}
	if err := c.Housekeeping.validate(); err != nil {
		return fmt.Errorf("housekeeping: %w", err)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("rate_limit: requests_per_second and burst must be > 0")
	}

	return nil
}

func (p PaginationConfig) validate() error {
	if p.DefaultPageSize <= 0 {
		return fmt.Errorf("default_page_size must be > 0 (got %d)", p.DefaultPageSize)
	}
	if p.MaxPageSize < p.DefaultPageSize {
		return fmt.Errorf("max_page_size must be >= default_page_size (got %d < %d)", p.MaxPageSize, p.DefaultPageSize)
	}
	return nil
}

func (u UploadsConfig) validate() error {
	if u.Dir == "" {
		return fmt.Errorf("dir must not be empty")
	}
	if u.MaxFileBytes <= 0 {
		return fmt.Errorf("max_file_bytes must be > 0 (got %d)", u.MaxFileBytes)
	}
	if u.MaxFilesPerReq <= 0 {
		return fmt.Errorf("max_files_per_req must be > 0 (got %d)", u.MaxFilesPerReq)
	}
	return nil
}

func (h HousekeepingConfig) validate() error {
	parser := CronParser()
	if _, err := parser.Parse(h.ExpireEventsSchedule); err != nil {
		return fmt.Errorf("expire_events_schedule: %w", err)
	}
	if _, err := parser.Parse(h.PurgeAuditSchedule); err != nil {
		return fmt.Errorf("purge_audit_schedule: %w", err)
	}
	if h.AuditRetention <= 0 {
		return fmt.Errorf("audit_retention must be > 0 (got %s)", h.AuditRetention)
	}
	return nil
}

// CronParser returns the schedule parser used by the housekeeping scheduler
// (six fields, seconds first).
func CronParser() cron.Parser {
	return cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}
