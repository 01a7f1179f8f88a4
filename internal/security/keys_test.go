package security_test

import (
	"context"
	"errors"
	"testing"

	"github.com/StinkyJeans/Ecommerce-sub001/internal/security"
)

type fakeKeyStore struct {
	keys    map[string]string
	failSet bool
}

func newFakeKeyStore() *fakeKeyStore {
	return &fakeKeyStore{keys: make(map[string]string)}
}

func (f *fakeKeyStore) GetSigningKey(_ context.Context, userID string) (string, error) {
	return f.keys[userID], nil
}

func (f *fakeKeyStore) SetSigningKey(_ context.Context, userID, secretHex string) error {
	if f.failSet {
		return errors.New("storage down")
	}
	f.keys[userID] = secretHex
	return nil
}

func TestKeyManager_GetOrCreate(t *testing.T) {
	ctx := context.Background()
	km := security.NewKeyManager(newFakeKeyStore())

	s1, err := km.GetOrCreate(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s1) != 64 {
		t.Fatalf("expected 256-bit hex secret, got %d chars", len(s1))
	}

	s2, err := km.GetOrCreate(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s1 != s2 {
		t.Fatalf("GetOrCreate re-issued an existing key")
	}
}

func TestKeyManager_Get_Absent(t *testing.T) {
	km := security.NewKeyManager(newFakeKeyStore())
	s, err := km.Get(context.Background(), "nobody")
	if err != nil || s != "" {
		t.Fatalf("expected empty secret, got %q err=%v", s, err)
	}
}

func TestKeyManager_Regenerate_Replaces(t *testing.T) {
	ctx := context.Background()
	fs := newFakeKeyStore()
	km := security.NewKeyManager(fs)

	s1, err := km.Regenerate(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s2, err := km.Regenerate(ctx, "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s1 == s2 {
		t.Fatalf("regenerate returned the same secret twice")
	}
	if fs.keys["u1"] != s2 {
		t.Fatalf("store holds %q, want the latest secret", fs.keys["u1"])
	}
}

func TestKeyManager_Regenerate_WriteFailure(t *testing.T) {
	fs := newFakeKeyStore()
	fs.failSet = true
	km := security.NewKeyManager(fs)

	if _, err := km.Regenerate(context.Background(), "u1"); err == nil {
		t.Fatalf("expected error when the key write fails")
	}
}
