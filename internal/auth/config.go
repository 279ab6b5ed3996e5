package auth

import (
	"fmt"
	"time"
)

const defaultIssuer = "myjobs"

// AuthConfig holds the token settings of the application
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" json:"jwt_secret"`
	TokenTTL  time.Duration `yaml:"token_ttl" json:"token_ttl"`
	Issuer    string        `yaml:"issuer" json:"issuer"`
}

// NewAuthConfig builds an AuthConfig from the application settings
func NewAuthConfig(secret string, ttlMinutes int) *AuthConfig {
	cfg := &AuthConfig{
		JWTSecret: secret,
		TokenTTL:  time.Duration(ttlMinutes) * time.Minute,
		Issuer:    defaultIssuer,
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = time.Hour
	}
	return cfg
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if len(c.JWTSecret) < 16 {
		return fmt.Errorf("JWT secret must be at least 16 characters")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}
	return nil
}
