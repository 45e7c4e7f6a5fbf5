package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"smartcity-server/internal/auth"
	"smartcity-server/internal/model"
)

// TokenKind tags the two token variants. Issuance stamps the kind into the
// "typ" claim and every verification site names the kind it expects, so an
// access token can never pass where a refresh token is required or vice versa.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// AccessClaims is the decoded payload of an access token.
type AccessClaims struct {
	UserID  int64
	Email   string
	Name    string
	Role    auth.Role
	TokenID string
}

// RefreshClaims is the decoded payload of a refresh token. It carries only
// the subject email; role and name are re-resolved when the token is
// exchanged.
type RefreshClaims struct {
	Email   string
	TokenID string
}

// TokenService mints and verifies HS256-signed tokens. The secret is fixed at
// construction and read concurrently without locking; nowFunc exists so tests
// can control the clock.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	nowFunc    func() time.Time
}

func NewTokenService(secret string, accessTTL time.Duration, refreshTTL time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("token secret is required")
	}
	if accessTTL <= 0 || refreshTTL <= 0 {
		return nil, fmt.Errorf("token lifetimes must be positive")
	}

	return &TokenService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		nowFunc:    time.Now,
	}, nil
}

// AccessTTL reports the configured access-token lifetime, used for the
// expires_in field of login responses.
func (s *TokenService) AccessTTL() time.Duration {
	return s.accessTTL
}

// IssueAccessToken encodes subject=user id with email, name and role claims,
// expiring after the access TTL.
func (s *TokenService) IssueAccessToken(user model.User) (string, error) {
	now := s.nowFunc().UTC()
	return s.sign(jwt.MapClaims{
		"sub":   strconv.FormatInt(user.ID, 10),
		"email": user.Email,
		"name":  user.Name,
		"role":  string(user.Role),
		"typ":   string(TokenKindAccess),
		"jti":   uuid.NewString(),
		"iat":   now.Unix(),
		"exp":   now.Add(s.accessTTL).Unix(),
	})
}

// IssueRefreshToken encodes subject=email with no role claim, expiring after
// the refresh TTL.
func (s *TokenService) IssueRefreshToken(user model.User) (string, error) {
	now := s.nowFunc().UTC()
	return s.sign(jwt.MapClaims{
		"sub": user.Email,
		"typ": string(TokenKindRefresh),
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": now.Add(s.refreshTTL).Unix(),
	})
}

// VerifyAccessToken checks signature, expiry and kind, then decodes the
// access claims. Failures map onto the fixed taxonomy: ErrMalformedToken,
// ErrExpiredToken or ErrInvalidToken; nothing is partially trusted.
func (s *TokenService) VerifyAccessToken(tokenString string) (AccessClaims, error) {
	claimsMap, err := s.parse(tokenString, TokenKindAccess)
	if err != nil {
		return AccessClaims{}, err
	}

	subject, _ := claimsMap["sub"].(string)
	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return AccessClaims{}, model.ErrInvalidToken
	}

	email, _ := claimsMap["email"].(string)
	if email == "" {
		return AccessClaims{}, model.ErrInvalidToken
	}

	rawRole, _ := claimsMap["role"].(string)
	role, err := auth.ParseRole(rawRole)
	if err != nil {
		return AccessClaims{}, model.ErrInvalidToken
	}

	name, _ := claimsMap["name"].(string)
	tokenID, _ := claimsMap["jti"].(string)

	return AccessClaims{
		UserID:  userID,
		Email:   email,
		Name:    name,
		Role:    role,
		TokenID: tokenID,
	}, nil
}

// VerifyRefreshToken checks signature, expiry and kind, then returns the
// subject email.
func (s *TokenService) VerifyRefreshToken(tokenString string) (RefreshClaims, error) {
	claimsMap, err := s.parse(tokenString, TokenKindRefresh)
	if err != nil {
		return RefreshClaims{}, err
	}

	email, _ := claimsMap["sub"].(string)
	if email == "" {
		return RefreshClaims{}, model.ErrInvalidToken
	}

	tokenID, _ := claimsMap["jti"].(string)

	return RefreshClaims{Email: email, TokenID: tokenID}, nil
}

func (s *TokenService) sign(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *TokenService) parse(tokenString string, expected TokenKind) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, model.ErrInvalidToken
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.nowFunc), jwt.WithExpirationRequired())
	if err != nil {
		return nil, classifyTokenError(err)
	}
	if !parsed.Valid {
		return nil, model.ErrInvalidToken
	}

	claimsMap, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, model.ErrInvalidToken
	}

	if typ, _ := claimsMap["typ"].(string); typ != string(expected) {
		return nil, model.ErrInvalidToken
	}

	return claimsMap, nil
}

// classifyTokenError folds jwt/v5 parse failures into the three sentinel
// kinds. Anything unrecognized is treated as an invalid token, never as a
// pass-through.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return model.ErrMalformedToken
	case errors.Is(err, jwt.ErrTokenExpired):
		return model.ErrExpiredToken
	default:
		return model.ErrInvalidToken
	}
}
