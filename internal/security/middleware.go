package security

import (
	"bytes"
	"context"
	"io"
	"net/http"
)

// Identity resolves the authenticated caller from the session layer. The
// signature gate never inspects cookies or tokens itself.
type Identity interface {
	ResolveUserID(r *http.Request) (string, error)
}

// SignedRequestMiddleware is the per-endpoint gate for protected handlers.
// It resolves the caller's identity, reads the raw body once (restoring it
// for the handler), verifies the request signature, and only then lets the
// business logic run. On rejection it writes the verifier's response
// unchanged and stops.
func SignedRequestMiddleware(verifier *Verifier, identity Identity) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := identity.ResolveUserID(r)
			if err != nil || userID == "" {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			// The raw bytes, not the parsed body, feed verification:
			// an empty payload must verify against an empty digest.
			body := readBodyAndRestore(r)

			rej, err := verifier.Verify(r, userID, body)
			if err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			if rej != nil {
				rej.WriteResponse(w)
				return
			}

			ctx := context.WithValue(r.Context(), CtxKeyUserID, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the verified caller set by the middleware.
func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(CtxKeyUserID).(string)
	return id
}

// readBodyAndRestore reads the body for verification and restores it for
// the handler.
func readBodyAndRestore(r *http.Request) []byte {
	if r.Body == nil {
		return nil
	}
	b, _ := io.ReadAll(r.Body)
	r.Body = io.NopCloser(bytes.NewReader(b))
	return b
}
