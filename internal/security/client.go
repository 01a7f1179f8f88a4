package security

import (
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// SignRequest stamps an outgoing request with X-Signature and
// X-Request-Timestamp. body must be the exact payload bytes the request
// will carry (nil for query-only requests); the same emptiness predicate
// the verifier applies decides whether a body digest is included.
func SignRequest(req *http.Request, body []byte, secretHex string, now time.Time) error {
	ts := strconv.FormatInt(now.UnixMilli(), 10)

	sortedQuery, err := CanonicalQuery(req.URL.RawQuery)
	if err != nil {
		return fmt.Errorf("sign request: %w", err)
	}
	digest, err := BodyDigest(body, req.Method)
	if err != nil {
		return fmt.Errorf("sign request: %w", err)
	}

	canonical := CanonicalRequest(req.Method, req.URL.Path, sortedQuery, ts, digest)
	sig, err := Sign(canonical, secretHex)
	if err != nil {
		return fmt.Errorf("sign request: %w", err)
	}

	req.Header.Set(HeaderTimestamp, ts)
	req.Header.Set(HeaderSignature, sig)
	return nil
}
