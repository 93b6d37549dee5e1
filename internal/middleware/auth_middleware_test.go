package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/BibekKushwaha/enterprise-rental-app/internal/utils"
)

func init() {
	utils.InitLogger("rental-api-test")
}

func signTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func runAuth(t *testing.T, token string, roles ...string) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()
	var captured *http.Request
	handler := AuthMiddleware(roles...)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/leases", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, captured
}

func TestAuthMiddlewareAllowsMatchingRole(t *testing.T) {
	token := signTestToken(t, jwt.MapClaims{"sub": "tenant-7", "custom:role": "tenant"})

	rec, captured := runAuth(t, token, "tenant")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, captured)
	require.Equal(t, "tenant-7", captured.Context().Value(ContextKeyUserID))
	require.Equal(t, "tenant", captured.Context().Value(ContextKeyUserRole))
}

func TestAuthMiddlewareRoleMatchIsCaseInsensitive(t *testing.T) {
	token := signTestToken(t, jwt.MapClaims{"sub": "mgr-1", "custom:role": "Manager"})

	rec, _ := runAuth(t, token, "manager")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddlewareRejectsWrongRole(t *testing.T) {
	token := signTestToken(t, jwt.MapClaims{"sub": "tenant-7", "custom:role": "tenant"})

	rec, captured := runAuth(t, token, "manager")
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Nil(t, captured)
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	rec, captured := runAuth(t, "", "tenant")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Nil(t, captured)
}

func TestAuthMiddlewareMalformedToken(t *testing.T) {
	rec, captured := runAuth(t, "not.a.jwt", "tenant")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Nil(t, captured)
}

func TestAuthMiddlewareMissingSubject(t *testing.T) {
	token := signTestToken(t, jwt.MapClaims{"custom:role": "tenant"})

	rec, captured := runAuth(t, token, "tenant")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Nil(t, captured)
}

func TestAuthMiddlewareMissingRoleClaim(t *testing.T) {
	token := signTestToken(t, jwt.MapClaims{"sub": "tenant-7"})

	rec, captured := runAuth(t, token, "tenant")
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Nil(t, captured)
}
