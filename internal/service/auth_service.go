package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"recettes/internal/domain"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type tokenClaims struct {
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

// AuthService authenticates the single operator account and issues JWT
// pairs. The account is configured, not stored; this service keeps no state.
type AuthService struct {
	username     string
	passwordHash string
	secret       []byte
	accessTTL    time.Duration
	refreshTTL   time.Duration
}

// NewAuthService creates an AuthService for the configured operator.
func NewAuthService(username, passwordHash string, secret []byte, accessTTL, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		username:     username,
		passwordHash: passwordHash,
		secret:       secret,
		accessTTL:    accessTTL,
		refreshTTL:   refreshTTL,
	}
}

// Login verifies the operator credentials and issues a token pair.
func (s *AuthService) Login(username, password string) (*TokenPair, error) {
	if username != s.username {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return s.generatePair(username)
}

// Refresh exchanges a valid refresh token for a fresh pair.
func (s *AuthService) Refresh(refreshToken string) (*TokenPair, error) {
	claims, err := s.parse(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != tokenTypeRefresh {
		return nil, domain.ErrUnauthorized
	}
	return s.generatePair(claims.Subject)
}

// ValidateAccess checks an access token and returns its subject.
func (s *AuthService) ValidateAccess(accessToken string) (string, error) {
	claims, err := s.parse(accessToken)
	if err != nil {
		return "", err
	}
	if claims.TokenType != tokenTypeAccess {
		return "", domain.ErrUnauthorized
	}
	return claims.Subject, nil
}

func (s *AuthService) generatePair(subject string) (*TokenPair, error) {
	access, err := s.sign(subject, tokenTypeAccess, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.sign(subject, tokenTypeRefresh, s.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

func (s *AuthService) sign(subject, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := tokenClaims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing %s token: %w", tokenType, err)
	}
	return signed, nil
}

func (s *AuthService) parse(tokenString string) (*tokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrUnauthorized
	}
	claims, ok := token.Claims.(*tokenClaims)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}
