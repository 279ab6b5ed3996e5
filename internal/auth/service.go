package auth

import (
	"fmt"
	"time"

	"myjobs/internal/database/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	audienceAccess      = "api"
	audienceUnsubscribe = "unsubscribe"
)

// AuthService issues and validates signed tokens
type AuthService struct {
	config *AuthConfig
	now    func() time.Time
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID  string `json:"user_id" example:"6f1c0b9e-6d0f-4a52-9f45-0f5b0c0c5f11"`
	Email   string `json:"email" example:"jane.doe@example.com"`
	IsStaff bool   `json:"is_staff,omitempty"`
	jwt.RegisteredClaims
}

// UnsubscribeClaims carries the saved search an unsubscribe link points at
type UnsubscribeClaims struct {
	SearchID string `json:"search_id"`
	jwt.RegisteredClaims
}

// TokenResponse is returned by a successful login
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int64  `json:"expiresIn"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &AuthService{config: config, now: time.Now}, nil
}

// GenerateJWT creates an access token for the user
func (s *AuthService) GenerateJWT(user *models.User) (*TokenResponse, error) {
	now := s.now()
	claims := &AuthClaims{
		UserID:  user.ID.String(),
		Email:   user.Email,
		IsStaff: user.IsStaff,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   user.ID.String(),
			Audience:  jwt.ClaimStrings{audienceAccess},
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &TokenResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.config.TokenTTL.Seconds()),
	}, nil
}

// ValidateJWT validates and parses an access token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	claims := &AuthClaims{}
	if err := s.parse(tokenString, claims, audienceAccess); err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(claims.UserID); err != nil {
		return nil, fmt.Errorf("invalid user id in token")
	}
	return claims, nil
}

// GenerateUnsubscribeToken signs a link token for a saved search. It does not expire.
func (s *AuthService) GenerateUnsubscribeToken(searchID uuid.UUID) (string, error) {
	claims := &UnsubscribeClaims{
		SearchID: searchID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(s.now()),
			Issuer:   s.config.Issuer,
			Audience: jwt.ClaimStrings{audienceUnsubscribe},
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateUnsubscribeToken returns the saved search id carried by an unsubscribe token
func (s *AuthService) ValidateUnsubscribeToken(tokenString string) (uuid.UUID, error) {
	claims := &UnsubscribeClaims{}
	if err := s.parse(tokenString, claims, audienceUnsubscribe); err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(claims.SearchID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid search id in token")
	}
	return id, nil
}

func (s *AuthService) parse(tokenString string, claims jwt.Claims, audience string) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	},
		jwt.WithAudience(audience),
		jwt.WithIssuer(s.config.Issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return fmt.Errorf("invalid token")
	}
	return nil
}
