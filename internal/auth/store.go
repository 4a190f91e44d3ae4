package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// NonceStore 登录随机数存储，每个 nonce 只能使用一次
type NonceStore interface {
	Save(ctx context.Context, nonce string, ttl time.Duration) error
	// Consume deletes the nonce and reports whether it was live.
	Consume(ctx context.Context, nonce string) (bool, error)
}

func generateNonce() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// ---------- 内存实现 ----------

type memStore struct {
	mu     sync.Mutex
	nonces map[string]time.Time // nonce -> expiry
	now    func() time.Time
}

func NewMemoryStore() NonceStore {
	return &memStore{nonces: make(map[string]time.Time), now: time.Now}
}

func (m *memStore) Save(ctx context.Context, nonce string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	// 顺便清理过期 nonce
	for n, exp := range m.nonces {
		if now.After(exp) {
			delete(m.nonces, n)
		}
	}
	m.nonces[nonce] = now.Add(ttl)
	return nil
}

func (m *memStore) Consume(ctx context.Context, nonce string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	exp, ok := m.nonces[nonce]
	if !ok {
		return false, nil
	}
	delete(m.nonces, nonce)
	return !m.now().After(exp), nil
}

// ---------- Redis 实现 ----------

type redisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) NonceStore {
	return &redisStore{rdb: rdb}
}

// key: auth:nonce:{nonce} -> "1", expires with the nonce
func nonceKey(nonce string) string {
	return fmt.Sprintf("auth:nonce:%s", nonce)
}

func (r *redisStore) Save(ctx context.Context, nonce string, ttl time.Duration) error {
	return r.rdb.Set(ctx, nonceKey(nonce), "1", ttl).Err()
}

// DEL is atomic, so only one concurrent login can win the nonce.
func (r *redisStore) Consume(ctx context.Context, nonce string) (bool, error) {
	n, err := r.rdb.Del(ctx, nonceKey(nonce)).Result()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
