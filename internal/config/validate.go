package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be positive (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.RefreshTokenTTL <= c.Auth.AccessTokenTTL {
		return fmt.Errorf("auth.refresh_token_ttl must exceed access_token_ttl")
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be between %d and %d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if c.Platform.MaxBusinessesPerOwner <= 0 {
		return fmt.Errorf("platform.max_businesses_per_owner must be > 0 (got %d)", c.Platform.MaxBusinessesPerOwner)
	}
	if c.Platform.FeedPageSize <= 0 {
		return fmt.Errorf("platform.feed_page_size must be > 0 (got %d)", c.Platform.FeedPageSize)
	}
	if c.Platform.SearchResultLimit <= 0 {
		return fmt.Errorf("platform.search_result_limit must be > 0 (got %d)", c.Platform.SearchResultLimit)
	}

	if c.Rate.Enabled && c.Rate.RequestsPerMin <= 0 {
		return fmt.Errorf("rate.requests_per_min must be > 0 when rate limiting is enabled (got %d)", c.Rate.RequestsPerMin)
	}

	return nil
}
