package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(store NonceStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(store, []byte("secret"), time.Minute, time.Hour).Register(r.Group("/auth"))
	return r
}

func call(r http.Handler, method, target string, body any) (*httptest.ResponseRecorder, map[string]string) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	out := map[string]string{}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	return w, out
}

func TestLoginFlow(t *testing.T) {
	for name, store := range map[string]func(*testing.T) NonceStore{
		"memory": func(*testing.T) NonceStore { return NewMemoryStore() },
		"redis": func(t *testing.T) NonceStore {
			s, _ := newRedisStore(t)
			return s
		},
	} {
		t.Run(name, func(t *testing.T) {
			r := newAuthRouter(store(t))
			key, addr := newWallet(t)

			w, body := call(r, http.MethodGet, "/auth/nonce", nil)
			require.Equal(t, http.StatusOK, w.Code)
			nonce := body["nonce"]
			require.NotEmpty(t, nonce)
			assert.Equal(t, SignMessage(nonce), body["message"])

			login := LoginRequest{Address: addr, Nonce: nonce, Signature: walletSign(t, key, SignMessage(nonce))}
			w, body = call(r, http.MethodPost, "/auth/login", login)
			require.Equal(t, http.StatusOK, w.Code)
			assert.NotEmpty(t, body["jwt"])

			// replay
			w, body = call(r, http.MethodPost, "/auth/login", login)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "invalid nonce", body["error"])
		})
	}
}

func TestLoginRejects(t *testing.T) {
	r := newAuthRouter(NewMemoryStore())
	key, addr := newWallet(t)
	_, other := newWallet(t)

	nonce := func() string {
		_, body := call(r, http.MethodPost, "/auth/nonce", nil)
		return body["nonce"]
	}

	w, _ := call(r, http.MethodPost, "/auth/login", map[string]string{"address": addr})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	n := nonce()
	w, _ = call(r, http.MethodPost, "/auth/login", LoginRequest{Address: other, Nonce: n, Signature: walletSign(t, key, SignMessage(n))})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	n = nonce()
	w, _ = call(r, http.MethodPost, "/auth/login", LoginRequest{Address: addr, Nonce: n, Signature: "0x1234"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginStoreDown(t *testing.T) {
	s, mr := newRedisStore(t)
	r := newAuthRouter(s)
	mr.Close()

	w, _ := call(r, http.MethodGet, "/auth/nonce", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w, _ = call(r, http.MethodPost, "/auth/login", LoginRequest{Address: "0x1", Nonce: "n", Signature: "0x"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
