package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Sign computes the HMAC-SHA256 signature of a canonical request string,
// keyed by the raw bytes decoded from secretHex. Pure function; the same
// code runs on the signing client and the verifying server.
func Sign(canonical, secretHex string) (string, error) {
	key, err := hex.DecodeString(secretHex)
	if err != nil {
		return "", fmt.Errorf("decode signing key: %w", err)
	}
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(canonical))
	return hex.EncodeToString(mac.Sum(nil)), nil
}
