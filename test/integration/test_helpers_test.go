package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"smartcity-server/internal/auth"
	"smartcity-server/internal/config"
	"smartcity-server/internal/handler"
	"smartcity-server/internal/middleware"
	"smartcity-server/internal/model"
	"smartcity-server/internal/router"
	"smartcity-server/internal/service"
)

type env struct {
	server     *httptest.Server
	users      *userStore
	complaints *complaintStore
	contacts   *contactStore
	bills      *billStore

	admin   model.User
	maria   model.User
	jorge   model.User
	blocked model.User
}

// newEnv wires the real router, middleware, handlers and services over
// in-memory stores and seeds one admin and three citizens (one deactivated).
// All seeded accounts use the password "secret123".
func newEnv(t *testing.T) *env {
	t.Helper()

	users := newUserStore()
	complaints := newComplaintStore()
	contacts := newContactStore()
	bills := newBillStore()

	tokens, err := service.NewTokenService("test-secret", 15*time.Minute, 360*time.Hour)
	require.NoError(t, err)

	authService := service.NewAuthService(users, tokens)
	authMiddleware := middleware.NewAuthMiddleware(tokens, users)

	handlers := router.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		User:      handler.NewUserHandler(authService),
		Complaint: handler.NewComplaintHandler(service.NewComplaintService(complaints)),
		Contact:   handler.NewContactHandler(service.NewContactService(contacts)),
		Bill:      handler.NewBillHandler(service.NewBillService(bills, users)),
	}

	cfg := &config.Config{
		ServerPort:       "8080",
		RequestTimeout:   30 * time.Second,
		JWTSecret:        "test-secret",
		JWTAccessTTL:     15 * time.Minute,
		JWTRefreshTTL:    360 * time.Hour,
		CORSOrigins:      []string{"*"},
		RateLimitRPM:     10000,
		AuthRateLimitRPM: 10000,
	}

	server := httptest.NewServer(router.New(cfg, authMiddleware, handlers))
	t.Cleanup(server.Close)

	e := &env{
		server:     server,
		users:      users,
		complaints: complaints,
		contacts:   contacts,
		bills:      bills,
	}
	e.admin = e.seed(t, "Admin", "admin@city.gov", auth.RoleAdmin, true)
	e.maria = e.seed(t, "Maria Lopez", "maria@example.com", auth.RoleCitizen, true)
	e.jorge = e.seed(t, "Jorge Diaz", "jorge@example.com", auth.RoleCitizen, true)
	e.blocked = e.seed(t, "Blocked User", "blocked@example.com", auth.RoleCitizen, false)

	return e
}

func (e *env) seed(t *testing.T, name string, email string, role auth.Role, active bool) model.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	now := time.Now().UTC()
	return e.users.add(model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Active:       active,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *model.APIError `json:"error"`
}

// do sends a request with an optional JSON payload and bearer token and
// decodes the envelope.
func (e *env) do(t *testing.T, method string, path string, token string, payload any) (int, apiResponse) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, e.server.URL+path, body)
	require.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp.StatusCode, parsed
}

func decodeData[T any](t *testing.T, resp apiResponse) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(resp.Data, &out))
	return out
}

// login exchanges seeded credentials for a token pair over HTTP.
func (e *env) login(t *testing.T, email string) model.TokenPair {
	t.Helper()

	status, resp := e.do(t, http.MethodPost, "/api/v1/auth/login", "", model.LoginRequest{
		Email:    email,
		Password: "secret123",
	})
	require.Equal(t, http.StatusOK, status)
	require.True(t, resp.Success)

	pair := decodeData[model.TokenPair](t, resp)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	return pair
}
