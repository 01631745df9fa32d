package canonical

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed identity. The version suffix leaves
// room for a future change of encoding.
const (
	DomainPreset = "statroll/preset/v1"
	DomainTrace  = "statroll/trace/v1"
)

// Hash computes SHA256(domain + 0x00 + data) as lowercase hex.
// The null byte keeps domain and data from running together.
func Hash(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// ID canonically encodes v and hashes it under domain.
func ID(domain string, v any) (string, error) {
	data, err := Encode(v)
	if err != nil {
		return "", fmt.Errorf("%s: %w", domain, err)
	}
	return Hash(domain, data), nil
}
