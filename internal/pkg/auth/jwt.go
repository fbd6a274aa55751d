package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/yigit/lms/internal/pkg/apperrors"
)

// JWT errors
var (
	ErrInvalidToken  = apperrors.ErrTokenInvalid
	ErrExpiredToken  = apperrors.ErrTokenExpired
	ErrInvalidFormat = errors.New("invalid authorization header format")
)

// TokenType discriminates access tokens from refresh tokens inside the claims.
type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// Claims the service writes itself. Caller-supplied extras never override them.
var reservedClaims = map[string]struct{}{
	"sub": {}, "type": {}, "iat": {}, "exp": {}, "iss": {}, "nbf": {}, "jti": {}, "aud": {},
}

// JWTConfig defines JWT configuration settings
type JWTConfig struct {
	AccessSecret    string
	RefreshSecret   string
	AccessTokenExp  time.Duration
	RefreshTokenExp time.Duration
	TokenIssuer     string
	// Now defaults to time.Now
	Now func() time.Time
}

// JWTService issues and verifies access and refresh tokens, each kind with its own secret.
type JWTService struct {
	config JWTConfig
	now    func() time.Time
}

// NewJWTService creates a new JWT service
func NewJWTService(config JWTConfig) *JWTService {
	now := config.Now
	if now == nil {
		now = time.Now
	}
	return &JWTService{config: config, now: now}
}

// Claims is the verified content of a token
type Claims struct {
	// ID is the unique jti of the token
	ID        string
	Subject   string
	Type      TokenType
	IssuedAt  time.Time
	ExpiresAt time.Time
	Extra     map[string]interface{}
}

// StringClaim returns an extra claim as a string, or "" if missing.
func (c *Claims) StringClaim(key string) string {
	v, _ := c.Extra[key].(string)
	return v
}

// TokenPair holds a freshly issued access/refresh pair
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

// IssueAccess signs a short-lived access token for subject
func (s *JWTService) IssueAccess(subject string, extra map[string]interface{}) (string, time.Time, error) {
	return s.issue(AccessToken, subject, extra)
}

// IssueRefresh signs a long-lived refresh token for subject
func (s *JWTService) IssueRefresh(subject string, extra map[string]interface{}) (string, time.Time, error) {
	return s.issue(RefreshToken, subject, extra)
}

// IssuePair signs an access and a refresh token for the same subject
func (s *JWTService) IssuePair(subject string, extra map[string]interface{}) (*TokenPair, error) {
	access, accessExp, err := s.IssueAccess(subject, extra)
	if err != nil {
		return nil, err
	}
	refresh, refreshExp, err := s.IssueRefresh(subject, extra)
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:      access,
		RefreshToken:     refresh,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: refreshExp,
	}, nil
}

// VerifyAccess validates an access token
func (s *JWTService) VerifyAccess(tokenString string) (*Claims, error) {
	return s.verify(tokenString, AccessToken)
}

// VerifyRefresh validates a refresh token
func (s *JWTService) VerifyRefresh(tokenString string) (*Claims, error) {
	return s.verify(tokenString, RefreshToken)
}

// AccessTokenTTL returns the configured access token lifetime
func (s *JWTService) AccessTokenTTL() time.Duration {
	return s.config.AccessTokenExp
}

func (s *JWTService) settings(t TokenType) (secret []byte, ttl time.Duration) {
	if t == RefreshToken {
		return []byte(s.config.RefreshSecret), s.config.RefreshTokenExp
	}
	return []byte(s.config.AccessSecret), s.config.AccessTokenExp
}

func (s *JWTService) issue(t TokenType, subject string, extra map[string]interface{}) (string, time.Time, error) {
	if subject == "" {
		return "", time.Time{}, errors.New("token subject is required")
	}

	secret, ttl := s.settings(t)
	now := s.now()
	expiresAt := now.Add(ttl)

	claims := jwt.MapClaims{}
	for k, v := range extra {
		if _, reserved := reservedClaims[k]; reserved {
			continue
		}
		claims[k] = v
	}
	claims["jti"] = uuid.NewString()
	claims["sub"] = subject
	claims["type"] = string(t)
	claims["iat"] = now.Unix()
	claims["exp"] = expiresAt.Unix()
	if s.config.TokenIssuer != "" {
		claims["iss"] = s.config.TokenIssuer
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign %s token: %w", t, err)
	}

	return signed, expiresAt.Truncate(time.Second), nil
}

func (s *JWTService) verify(tokenString string, expected TokenType) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	secret, _ := s.settings(expected)
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.config.TokenIssuer != "" {
		opts = append(opts, jwt.WithIssuer(s.config.TokenIssuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, jwt.MapClaims{}, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	// The signature alone does not prove the token kind.
	if typ, _ := mapClaims["type"].(string); typ != string(expected) {
		return nil, ErrInvalidToken
	}

	subject, err := mapClaims.GetSubject()
	if err != nil || subject == "" {
		return nil, ErrInvalidToken
	}

	jti, _ := mapClaims["jti"].(string)
	claims := &Claims{
		ID:      jti,
		Subject: subject,
		Type:    expected,
		Extra:   make(map[string]interface{}),
	}
	if iat, err := mapClaims.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}
	for k, v := range mapClaims {
		if _, reserved := reservedClaims[k]; !reserved {
			claims.Extra[k] = v
		}
	}

	return claims, nil
}

// ExtractBearerToken extracts the token from the Authorization header
func ExtractBearerToken(authHeader string) (string, error) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", ErrInvalidFormat
	}

	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidFormat
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrInvalidFormat
	}
	return token, nil
}
