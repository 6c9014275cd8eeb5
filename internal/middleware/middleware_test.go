package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, role string, expiresAt time.Time) string {
	t.Helper()
	claims := Claims{
		UserID: 7,
		Email:  "accounts@example.com",
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": GetUserEmail(c), "role": GetUserRole(c), "user_id": GetUserID(c)})
	})
	r.GET("/", handlers...)
	return r
}

func TestAuth(t *testing.T) {
	valid := signToken(t, testSecret, RoleAdmin, time.Now().Add(time.Hour))

	tests := []struct {
		name     string
		header   string
		query    string
		expected int
	}{
		{"valid bearer", "Bearer " + valid, "", http.StatusOK},
		{"token query param", "", "?token=" + valid, http.StatusOK},
		{"missing", "", "", http.StatusUnauthorized},
		{"bad scheme", "Basic " + valid, "", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + signToken(t, "other", RoleAdmin, time.Now().Add(time.Hour)), "", http.StatusUnauthorized},
		{"expired", "Bearer " + signToken(t, testSecret, RoleAdmin, time.Now().Add(-time.Hour)), "", http.StatusUnauthorized},
	}

	router := newRouter(Auth(testSecret))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.expected, w.Code)
		})
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+valid)
	router.ServeHTTP(w, req)
	assert.JSONEq(t, `{"email":"accounts@example.com","role":"admin","user_id":7}`, w.Body.String())
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		guard    gin.HandlerFunc
		expected int
	}{
		{"admin passes admin guard", RoleAdmin, RequireAdmin(), http.StatusOK},
		{"accountant blocked by admin guard", RoleAccountant, RequireAdmin(), http.StatusForbidden},
		{"accountant passes shared guard", RoleAccountant, RequireRole(RoleAdmin, RoleAccountant), http.StatusOK},
		{"unknown role blocked", "viewer", RequireRole(RoleAdmin, RoleAccountant), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(Auth(testSecret), tt.guard)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, tt.role, time.Now().Add(time.Hour)))
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.expected, w.Code)
		})
	}
}

func TestRequestID(t *testing.T) {
	router := newRouter(RequestID())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)

	incoming := uuid.NewString()
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incoming)
	router.ServeHTTP(w, req)
	assert.Equal(t, incoming, w.Header().Get(RequestIDHeader))

	// Anything that is not a uuid is replaced.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	router.ServeHTTP(w, req)
	assert.NotEqual(t, "<script>", w.Header().Get(RequestIDHeader))
}

func TestCORS(t *testing.T) {
	router := newRouter(CORS([]string{"https://payroll.example.com"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://payroll.example.com")
	router.ServeHTTP(w, req)
	assert.Equal(t, "https://payroll.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
