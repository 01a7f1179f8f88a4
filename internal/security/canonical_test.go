package security_test

import (
	"testing"

	"github.com/StinkyJeans/Ecommerce-sub001/internal/security"
)

func TestCanonicalJSON_KeyOrderInvariant(t *testing.T) {
	a, err := security.CanonicalJSON([]byte(`{"a":1,"b":2}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := security.CanonicalJSON([]byte(`{"b":2,"a":1}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(a) != string(b) {
		t.Fatalf("expected identical canonical JSON, got %q vs %q", a, b)
	}
	if string(a) != `{"a":1,"b":2}` {
		t.Fatalf("unexpected canonical form: %q", a)
	}
}

func TestCanonicalJSON_NestedAndArrays(t *testing.T) {
	a, err := security.CanonicalJSON([]byte(`{"z":{"b":null,"a":[{"y":2,"x":1},3]},"a":"s"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"a":"s","z":{"a":[{"x":1,"y":2},3],"b":null}}`
	if string(a) != want {
		t.Fatalf("got %q, want %q", a, want)
	}
}

func TestCanonicalJSON_ArrayOrderPreserved(t *testing.T) {
	a, err := security.CanonicalJSON([]byte(`[3,1,2]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(a) != `[3,1,2]` {
		t.Fatalf("array order changed: %q", a)
	}
}

func TestBodyDigest_EmptyCases(t *testing.T) {
	// No body at all.
	d, err := security.BodyDigest(nil, "POST")
	if err != nil || d != "" {
		t.Fatalf("expected empty digest, got %q err=%v", d, err)
	}
	// Zero-length payload on a body-carrying method.
	d, err = security.BodyDigest([]byte{}, "DELETE")
	if err != nil || d != "" {
		t.Fatalf("expected empty digest, got %q err=%v", d, err)
	}
	// Method that never carries a body.
	d, err = security.BodyDigest([]byte(`{"a":1}`), "GET")
	if err != nil || d != "" {
		t.Fatalf("expected empty digest for GET, got %q err=%v", d, err)
	}
}

func TestBodyDigest_EmptyObjectIsNotEmptyBody(t *testing.T) {
	d, err := security.BodyDigest([]byte(`{}`), "POST")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d == "" {
		t.Fatalf("digest of {} must not equal the empty-body digest")
	}
}

func TestBodyDigest_KeyOrderInvariant(t *testing.T) {
	d1, err := security.BodyDigest([]byte(`{"a":1,"b":2}`), "POST")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d2, err := security.BodyDigest([]byte(`{"b":2,"a":1}`), "POST")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d1 != d2 {
		t.Fatalf("digest differs across key order: %q vs %q", d1, d2)
	}
	if len(d1) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(d1))
	}
}

func TestCanonicalQuery_OrderInvariant(t *testing.T) {
	a, err := security.CanonicalQuery("a=1&b=2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := security.CanonicalQuery("b=2&a=1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b || a != "a=1&b=2" {
		t.Fatalf("got %q and %q, want a=1&b=2", a, b)
	}
}

func TestCanonicalQuery_StatusFilter(t *testing.T) {
	q, err := security.CanonicalQuery("status=pending&b=1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q != "b=1&status=pending" {
		t.Fatalf("got %q, want b=1&status=pending", q)
	}
}

func TestCanonicalQuery_Empty(t *testing.T) {
	q, err := security.CanonicalQuery("")
	if err != nil || q != "" {
		t.Fatalf("expected empty, got %q err=%v", q, err)
	}
}

func TestCanonicalRequest_Format(t *testing.T) {
	got := security.CanonicalRequest("post", "/api/addToCart", "", "1700000000000", "abc")
	want := "POST\n/api/addToCart\n\n1700000000000\nabc"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
