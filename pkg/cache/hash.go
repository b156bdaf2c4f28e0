package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// hashKey builds a "prefix:sha256(parts)" key. Parts are JSON-encoded
// first so mixed value types (asset refs, scales, tiers) hash
// deterministically regardless of formatting.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return prefix + ":" + hex.EncodeToString(sum[:])
}

// Hash returns the hex SHA-256 of data. Used to fingerprint template
// bodies for export-artifact keys; the full 64 characters are kept so
// distinct templates never share a key.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
