package service

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"smartcity-server/internal/auth"
	"smartcity-server/internal/model"
	"smartcity-server/pkg/apierror"
)

const bcryptCost = 12

// AuthService implements login, sign-up and the refresh exchange. Token
// verification is stateless; the only mitigation for a compromised but
// unexpired token is the active-flag check performed when a principal is
// resolved.
type AuthService struct {
	users  UserStore
	tokens *TokenService
}

func NewAuthService(users UserStore, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login validates the email/password pair and issues a token pair. A missing
// account and a wrong password are reported as distinct errors; the
// enumeration tradeoff is deliberate and documented.
func (s *AuthService) Login(ctx context.Context, email string, password string) (model.TokenPair, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		slog.Warn("login failed: user lookup", "email", email, "error", err)
		return model.TokenPair{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		slog.Warn("login failed: password mismatch", "user_id", user.ID)
		return model.TokenPair{}, model.ErrInvalidCredentials
	}

	return s.issueTokenPair(user)
}

// SignUp registers a new citizen account. The password is hashed before it
// ever reaches the store; role and active flag take their defaults.
func (s *AuthService) SignUp(ctx context.Context, req model.SignUpRequest) (model.UserResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)
	password := strings.TrimSpace(req.Password)

	if name == "" || email == "" || password == "" {
		return model.UserResponse{}, apierror.New("BAD_REQUEST", "name, email and password are required", "", http.StatusBadRequest)
	}

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return model.UserResponse{}, err
	}
	if exists {
		slog.Warn("signup rejected: email already registered", "email", email)
		return model.UserResponse{}, model.ErrDuplicateUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return model.UserResponse{}, err
	}

	now := time.Now().UTC()
	// The store's unique email constraint is the backstop for a signup racing
	// this existence check; a violation surfaces as ErrDuplicateUser too.
	created, err := s.users.Create(ctx, model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         auth.RoleCitizen,
		Active:       true,
		PhoneNumber:  strings.TrimSpace(req.PhoneNumber),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return model.UserResponse{}, err
	}

	slog.Info("user registered", "user_id", created.ID)
	return created.Public(), nil
}

// Refresh exchanges a refresh token for a fresh token pair. The account is
// re-loaded so a deleted or deactivated user cannot mint new access tokens
// from an old refresh token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error) {
	claims, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return model.TokenPair{}, err
	}

	user, err := s.users.FindByEmail(ctx, claims.Email)
	if err != nil {
		return model.TokenPair{}, apierror.New("UNAUTHORIZED", "user not found", "", http.StatusUnauthorized)
	}

	if !user.Active {
		return model.TokenPair{}, model.ErrAccessDenied
	}

	return s.issueTokenPair(user)
}

// Profile returns the public view of a user account.
func (s *AuthService) Profile(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return model.UserResponse{}, err
	}

	return user.Public(), nil
}

func (s *AuthService) issueTokenPair(user model.User) (model.TokenPair, error) {
	accessToken, err := s.tokens.IssueAccessToken(user)
	if err != nil {
		return model.TokenPair{}, err
	}

	refreshToken, err := s.tokens.IssueRefreshToken(user)
	if err != nil {
		return model.TokenPair{}, err
	}

	return model.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.tokens.AccessTTL().Seconds()),
		User:         user.Public(),
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
