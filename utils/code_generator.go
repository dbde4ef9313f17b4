package utils

import (
	"math/rand"
	"strings"
	"time"
)

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var seededRand *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

// GenerateJoinCode generates a random team join code of the given
// length. Uniqueness is enforced by the teams.code unique index, not
// here; callers retry on conflict.
func GenerateJoinCode(length int) string {
	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		sb.WriteByte(codeCharset[seededRand.Intn(len(codeCharset))])
	}
	return sb.String()
}
