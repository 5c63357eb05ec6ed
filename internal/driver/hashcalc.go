package driver

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest is a sha256 cache key.
type Digest [32]byte

func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// IsZero reports an unset digest.
func (d Digest) IsZero() bool { return d == Digest{} }

// combineDigest: H(content || part1 || part2 ...). Порядок частей важен.
func combineDigest(content [32]byte, parts ...[]byte) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, p := range parts {
		_, _ = h.Write(p)
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// TokenCacheKey keys cached token streams by file content and cache schema.
func TokenCacheKey(contentHash [32]byte) Digest {
	return combineDigest(contentHash, []byte{byte(diskCacheSchemaVersion >> 8), byte(diskCacheSchemaVersion)})
}
