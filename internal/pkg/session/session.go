package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidSession marks tokens that are malformed, tampered with or expired.
var ErrInvalidSession = errors.New("invalid session token")

const defaultTTL = 24 * time.Hour

// Manager issues and verifies signed session tokens. A token carries the
// user ID and an expiry, signed with an HMAC-SHA256 secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// New builds a Manager with the provided secret. Non-positive ttl selects
// the default of 24 hours.
func New(secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue generates a signed session token for the user.
func (m *Manager) Issue(userID int64) (string, error) {
	expires := time.Now().Add(m.ttl).Unix()
	payload := fmt.Sprintf("%d:%d", userID, expires)
	token := fmt.Sprintf("%s:%s", payload, m.sign(payload))
	return base64.StdEncoding.EncodeToString([]byte(token)), nil
}

// Parse validates a token and returns the encoded user ID.
func (m *Manager) Parse(token string) (int64, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return 0, ErrInvalidSession
	}

	parts := strings.Split(string(raw), ":")
	if len(parts) != 3 {
		return 0, ErrInvalidSession
	}

	payload := strings.Join(parts[:2], ":")
	if !hmac.Equal([]byte(m.sign(payload)), []byte(parts[2])) {
		return 0, ErrInvalidSession
	}

	userID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, ErrInvalidSession
	}

	expires, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, ErrInvalidSession
	}

	if time.Unix(expires, 0).Before(time.Now()) {
		return 0, ErrInvalidSession
	}

	return userID, nil
}

func (m *Manager) sign(payload string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(payload))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
