package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func sign(t *testing.T, key []byte, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func validClaims(sub string) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Subject:   sub,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
}

func router(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", mw, func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("address"))
	})
	return r
}

func get(r http.Handler, target, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJwtAuthMiddleware(t *testing.T) {
	r := router(JwtAuthMiddleware(secret))

	tests := []struct {
		name   string
		target string
		bearer string
		status int
		body   string
	}{
		{"header", "/me", sign(t, secret, validClaims("0xABC")), http.StatusOK, "0xABC"},
		{"query", "/me?token=" + sign(t, secret, validClaims("0xDEF")), "", http.StatusOK, "0xDEF"},
		{"missing", "/me", "", http.StatusUnauthorized, ""},
		{"wrong key", "/me", sign(t, []byte("other"), validClaims("0xABC")), http.StatusUnauthorized, ""},
		{"expired", "/me", sign(t, secret, jwt.RegisteredClaims{
			Subject:   "0xABC",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		}), http.StatusUnauthorized, ""},
		{"no expiry", "/me", sign(t, secret, jwt.RegisteredClaims{Subject: "0xABC"}), http.StatusUnauthorized, ""},
		{"no subject", "/me", sign(t, secret, validClaims("")), http.StatusUnauthorized, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, tt.target, tt.bearer)
			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, tt.body, w.Body.String())
			}
		})
	}
}

func TestJwtRejectsOtherAlgorithms(t *testing.T) {
	r := router(JwtAuthMiddleware(secret))
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, validClaims("0xABC")).SignedString(secret)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", tok).Code)
}

func TestOptionalJwt(t *testing.T) {
	r := router(OptionalJwt(secret))

	w := get(r, "/me", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	w = get(r, "/me", sign(t, secret, validClaims("0xABC")))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0xABC", w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "garbage").Code)
}
