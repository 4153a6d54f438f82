package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwellfront/dashboard-service/internal/utils"
)

func testKeyPair(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return key
}

func echoIdentityHandler(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserID(r.Context())
		require.True(t, ok)
		utils.RespondWithJSON(w, http.StatusOK, map[string]string{
			"user_id": userID.String(),
			"role":    Role(r.Context()),
		})
	})
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body utils.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Code
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	key := testKeyPair(t)
	userID := uuid.New()

	token, err := GenerateAccessToken(key, userID, RolePropertyManager, time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	AuthMiddleware(&key.PublicKey)(echoIdentityHandler(t)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, userID.String(), body["user_id"])
	assert.Equal(t, RolePropertyManager, body["role"])
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	key := testKeyPair(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()

	AuthMiddleware(&key.PublicKey)(echoIdentityHandler(t)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, utils.ErrCodeUnauthorized, errorCode(t, rec))
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	key := testKeyPair(t)

	token, err := GenerateAccessToken(key, uuid.New(), RoleTenant, -time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	AuthMiddleware(&key.PublicKey)(echoIdentityHandler(t)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, utils.ErrCodeTokenExpired, errorCode(t, rec))
}

func TestAuthMiddlewareRejectsWrongKey(t *testing.T) {
	signingKey := testKeyPair(t)
	otherKey := testKeyPair(t)

	token, err := GenerateAccessToken(signingKey, uuid.New(), RoleTenant, time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	AuthMiddleware(&otherKey.PublicKey)(echoIdentityHandler(t)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, utils.ErrCodeUnauthorized, errorCode(t, rec))
}

func TestRequireRolesGatesByRole(t *testing.T) {
	key := testKeyPair(t)

	handler := AuthMiddleware(&key.PublicKey)(
		RequireRoles(RoleLandlord, RolePropertyManager)(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				utils.RespondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
			}),
		),
	)

	cases := []struct {
		role     string
		wantCode int
	}{
		{RoleLandlord, http.StatusOK},
		{RolePropertyManager, http.StatusOK},
		{RoleTenant, http.StatusForbidden},
	}
	for _, tc := range cases {
		token, err := GenerateAccessToken(key, uuid.New(), tc.role, time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/gated", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, tc.wantCode, rec.Code, "role %s", tc.role)
	}
}
