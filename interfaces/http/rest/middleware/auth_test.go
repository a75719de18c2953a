package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Emm4L92/DreamsConnect/pkg/auth"
)

const testSecret = "test-secret"

func newTestValidator(t *testing.T) *auth.JWTValidator {
	t.Helper()
	validator, err := auth.NewJWTValidator(auth.JWTConfig{
		Secret: testSecret,
		Issuer: "dreamsconnect",
	})
	require.NoError(t, err)
	return validator
}

func mintToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	generator, err := auth.NewJWTGenerator(auth.JWTGeneratorConfig{
		Secret: testSecret,
		Issuer: "dreamsconnect",
		TTL:    ttl,
	})
	require.NoError(t, err)

	token, err := generator.GenerateToken("user-1", "user@example.com", "dreamer")
	require.NoError(t, err)
	return token
}

func authedHandler(t *testing.T, gotUser **auth.UserContext) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := auth.GetUserFromContext(r.Context())
		require.NoError(t, err)
		*gotUser = user
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate_ValidToken(t *testing.T) {
	var gotUser *auth.UserContext
	handler := Authenticate(newTestValidator(t), nil, zap.NewNop())(authedHandler(t, &gotUser))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dreams", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, time.Hour))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotUser)
	assert.Equal(t, "user-1", gotUser.UserID)
	assert.Equal(t, "dreamer", gotUser.Username)
}

func TestAuthenticate_MissingToken(t *testing.T) {
	handler := Authenticate(newTestValidator(t), nil, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dreams", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	handler := Authenticate(newTestValidator(t), nil, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dreams", nil)
	req.Header.Set("Authorization", "Bearer "+mintToken(t, -time.Minute))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "expired")
}

func TestAuthenticate_TokenFromCookie(t *testing.T) {
	var gotUser *auth.UserContext
	handler := Authenticate(newTestValidator(t), nil, zap.NewNop())(authedHandler(t, &gotUser))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dreams", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: mintToken(t, time.Hour)})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotUser)
	assert.Equal(t, "user-1", gotUser.UserID)
}

func TestAuthenticate_IPRateLimit(t *testing.T) {
	limiters := &RateLimiters{IP: auth.NewIPRateLimiter(2)}
	handler := Authenticate(newTestValidator(t), limiters, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	token := mintToken(t, time.Hour)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/dreams", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		req.RemoteAddr = "203.0.113.7:1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
