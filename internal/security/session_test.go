package security_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/StinkyJeans/Ecommerce-sub001/internal/security"
)

func TestSessions_RoundTrip(t *testing.T) {
	s := security.NewSessions([]byte("test-session-secret"), time.Hour)

	token, ttl, err := s.Issue("u1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if ttl != 3600 {
		t.Fatalf("expected ttl 3600, got %d", ttl)
	}

	req := httptest.NewRequest("GET", "/api/cart", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	userID, err := s.ResolveUserID(req)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if userID != "u1" {
		t.Fatalf("expected u1, got %q", userID)
	}
}

func TestSessions_MissingToken(t *testing.T) {
	s := security.NewSessions([]byte("test-session-secret"), time.Hour)
	req := httptest.NewRequest("GET", "/api/cart", nil)
	if _, err := s.ResolveUserID(req); err == nil {
		t.Fatalf("expected error without a token")
	}
}

func TestSessions_WrongSecret(t *testing.T) {
	issuer := security.NewSessions([]byte("secret-a"), time.Hour)
	resolver := security.NewSessions([]byte("secret-b"), time.Hour)

	token, _, err := issuer.Issue("u1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/cart", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	if _, err := resolver.ResolveUserID(req); err == nil {
		t.Fatalf("expected error for token signed with another secret")
	}
}
