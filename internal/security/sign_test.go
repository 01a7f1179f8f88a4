package security_test

import (
	"strings"
	"testing"

	"github.com/StinkyJeans/Ecommerce-sub001/internal/security"
)

const testSecret = "6368616e676520746869732070617373776f726420746f206120736563726574"

func TestSign_Deterministic(t *testing.T) {
	canonical := "POST\n/api/addToCart\n\n1700000000000\nabc"

	s1, err := security.Sign(canonical, testSecret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s2, err := security.Sign(canonical, testSecret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s1 != s2 {
		t.Fatalf("signatures differ: %q vs %q", s1, s2)
	}
	if len(s1) != 64 || s1 != strings.ToLower(s1) {
		t.Fatalf("expected 64 lowercase hex chars, got %q", s1)
	}
}

func TestSign_DifferentBodiesDiffer(t *testing.T) {
	d1, _ := security.BodyDigest([]byte(`{"productId":"P1","quantity":2}`), "POST")
	d2, _ := security.BodyDigest([]byte(`{"productId":"P1","quantity":3}`), "POST")

	c1 := security.CanonicalRequest("POST", "/api/addToCart", "", "1700000000000", d1)
	c2 := security.CanonicalRequest("POST", "/api/addToCart", "", "1700000000000", d2)

	s1, err := security.Sign(c1, testSecret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s2, err := security.Sign(c2, testSecret)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s1 == s2 {
		t.Fatalf("different bodies produced the same signature")
	}
}

func TestSign_BadSecret(t *testing.T) {
	if _, err := security.Sign("canonical", "not-hex"); err == nil {
		t.Fatalf("expected error for non-hex secret")
	}
}
