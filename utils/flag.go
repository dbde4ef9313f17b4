package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
)

// Flags look like KCTF{answer}: literal prefix, 1-80 chars of
// [A-Za-z0-9_] inside the braces, nothing else. Anything that fails
// the shape is rejected before any data access.
var flagRe = regexp.MustCompile(`^KCTF\{[A-Za-z0-9_]{1,80}\}$`)

// NormalizeFlag trims surrounding whitespace; nothing else is
// normalized, the prefix is case-sensitive.
func NormalizeFlag(raw string) string {
	return strings.TrimSpace(raw)
}

func ValidFlagFormat(flag string) bool {
	return flagRe.MatchString(flag)
}

// HashFlag returns the hex SHA-256 digest of the normalized flag,
// the same encoding stored in challenges.flag_hash.
func HashFlag(flag string) string {
	sum := sha256.Sum256([]byte(flag))
	return hex.EncodeToString(sum[:])
}
