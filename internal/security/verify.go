package security

import (
	"crypto/hmac"
	"net/http"
	"strconv"
	"time"
)

const (
	// HeaderSignature carries the lowercase hex HMAC-SHA256 digest,
	// fixed 64 characters.
	HeaderSignature = "X-Signature"
	// HeaderTimestamp carries sender-generated epoch milliseconds as a
	// decimal string.
	HeaderTimestamp = "X-Request-Timestamp"

	// maxSkewMillis bounds replay exposure without a nonce store.
	maxSkewMillis = 300000
)

// Rejection states, in evaluation order.
const (
	StateKeyNotFound    = "key_not_found"
	StateMissingHeaders = "missing_headers"
	StateStaleTimestamp = "stale_timestamp"
	StateMalformedURL   = "malformed_url"
	StateMismatch       = "mismatch"
)

// Rejection is a terminal verification failure plus the ready-made HTTP
// response the caller returns verbatim. Messages never reveal the secret,
// the expected signature, or internal state.
type Rejection struct {
	State   string
	Status  int
	Message string
}

func (r *Rejection) Error() string { return r.Message }

// WriteResponse writes the rejection as the HTTP response.
func (r *Rejection) WriteResponse(w http.ResponseWriter) {
	http.Error(w, r.Message, r.Status)
}

var (
	rejectKeyNotFound = &Rejection{
		State:   StateKeyNotFound,
		Status:  http.StatusForbidden,
		Message: "Signing key not found. Please re-login.",
	}
	rejectMissingHeaders = &Rejection{
		State:   StateMissingHeaders,
		Status:  http.StatusForbidden,
		Message: "Invalid request signature",
	}
	rejectStaleTimestamp = &Rejection{
		State:   StateStaleTimestamp,
		Status:  http.StatusForbidden,
		Message: "Invalid request signature",
	}
	rejectMalformedURL = &Rejection{
		State:   StateMalformedURL,
		Status:  http.StatusForbidden,
		Message: "Invalid request signature",
	}
	rejectMismatch = &Rejection{
		State:   StateMismatch,
		Status:  http.StatusForbidden,
		Message: "Invalid request signature",
	}
)

// Verifier gates inbound requests. It reconstructs the canonical string
// exactly as the client built it, recomputes the signature with the user's
// persisted key, and compares in constant time.
type Verifier struct {
	keys *KeyManager

	// Now is swappable for tests.
	Now func() time.Time
}

func NewVerifier(keys *KeyManager) *Verifier {
	return &Verifier{keys: keys, Now: time.Now}
}

// Verify checks a single request for userID. rawBody is the request payload
// as read off the wire, before any parsing; emptiness of that slice is the
// body-presence predicate. A nil return means the request is valid.
//
// The returned *Rejection doubles as the HTTP response for the caller; on
// storage errors a generic error is returned instead and the caller decides.
func (v *Verifier) Verify(r *http.Request, userID string, rawBody []byte) (*Rejection, error) {
	// 1. Load the caller's key.
	secret, err := v.keys.Get(r.Context(), userID)
	if err != nil {
		return nil, err
	}
	if secret == "" {
		return rejectKeyNotFound, nil
	}

	// 2. Both headers are required.
	sig := r.Header.Get(HeaderSignature)
	ts := r.Header.Get(HeaderTimestamp)
	if sig == "" || ts == "" {
		return rejectMissingHeaders, nil
	}

	// 3. Freshness window on the parsed value.
	millis, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return rejectStaleTimestamp, nil
	}
	now := v.Now().UnixMilli()
	if diff := now - millis; diff > maxSkewMillis || diff < -maxSkewMillis {
		return rejectStaleTimestamp, nil
	}

	// 4. Reconstruct path and sorted query exactly as the client did.
	sortedQuery, err := CanonicalQuery(r.URL.RawQuery)
	if err != nil {
		return rejectMalformedURL, nil
	}

	// 5. Recompute the canonical string with the raw header timestamp.
	digest, err := BodyDigest(rawBody, r.Method)
	if err != nil {
		return rejectMismatch, nil
	}
	canonical := CanonicalRequest(r.Method, r.URL.Path, sortedQuery, ts, digest)
	expected, err := Sign(canonical, secret)
	if err != nil {
		return nil, err
	}

	// 6. Constant-time compare. hmac.Equal also rejects length mismatches.
	if !hmac.Equal([]byte(expected), []byte(sig)) {
		return rejectMismatch, nil
	}
	return nil, nil
}
