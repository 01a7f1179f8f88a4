package security

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// KeyStore is the persistence surface for signing keys. Implementations
// return "" (not an error) when a user has no key.
type KeyStore interface {
	GetSigningKey(ctx context.Context, userID string) (string, error)
	SetSigningKey(ctx context.Context, userID, secretHex string) error
}

// KeyManager owns the signing-key lifecycle. It is the only component that
// creates, reads, or overwrites a user's secret.
//
// Each user has at most one active key. Regenerate runs on every successful
// login, so logging in on a second device invalidates the first device's
// key; its signed requests start failing and the client must re-login. This
// trades multi-device ergonomics for not needing a revocation list.
type KeyManager struct {
	store KeyStore
}

func NewKeyManager(store KeyStore) *KeyManager {
	return &KeyManager{store: store}
}

// Get returns the user's persisted secret, or "" if none exists.
func (m *KeyManager) Get(ctx context.Context, userID string) (string, error) {
	return m.store.GetSigningKey(ctx, userID)
}

// GetOrCreate returns the existing secret, generating and persisting a
// fresh one for users that have never had a key.
func (m *KeyManager) GetOrCreate(ctx context.Context, userID string) (string, error) {
	secret, err := m.store.GetSigningKey(ctx, userID)
	if err != nil {
		return "", err
	}
	if secret != "" {
		return secret, nil
	}
	return m.Regenerate(ctx, userID)
}

// Regenerate unconditionally replaces the user's secret. The returned value
// is the only copy ever sent to the client, over the authenticated login
// response. A failed write must fail the login: an unsynced key makes the
// session's requests unverifiable.
func (m *KeyManager) Regenerate(ctx context.Context, userID string) (string, error) {
	secret, err := newSecret()
	if err != nil {
		return "", err
	}
	if err := m.store.SetSigningKey(ctx, userID, secret); err != nil {
		return "", fmt.Errorf("persist signing key: %w", err)
	}
	return secret, nil
}

// newSecret returns 256 bits of crypto/rand entropy as lowercase hex.
func newSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate signing key: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
