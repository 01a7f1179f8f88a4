package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/StinkyJeans/Ecommerce-sub001/internal/audit"
	"github.com/StinkyJeans/Ecommerce-sub001/internal/config"
	"github.com/StinkyJeans/Ecommerce-sub001/internal/security"
	"github.com/StinkyJeans/Ecommerce-sub001/internal/store"
)

func New(
	cfg *config.Config,
	st *store.Store,
	aud *audit.Logger,
	sessions *security.Sessions,
	keys *security.KeyManager,
) *Server {
	return &Server{
		cfg:      cfg,
		st:       st,
		audit:    aud,
		sessions: sessions,
		keys:     keys,
		verifier: security.NewVerifier(keys),
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func emailNorm(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}
