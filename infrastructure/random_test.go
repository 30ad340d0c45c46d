package infrastructure

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateVerificationCodeShape(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := GenerateVerificationCode()
		assert.Len(t, code, 6)
		for _, c := range code {
			assert.True(t, strings.ContainsRune(codeCharset, c), "unexpected character %q", c)
		}
		seen[code] = true
	}
	// 100 draws from a 36^6 space should not all collide
	assert.Greater(t, len(seen), 1)
}
