package infrastructure

import (
	"crypto/rand"
	"math/big"
	"time"
)

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateVerificationCode returns a 6-character uppercase alphanumeric
// one-time code.
func GenerateVerificationCode() string {
	const codeLength = 6
	b := make([]byte, codeLength)
	max := big.NewInt(int64(len(codeCharset)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand should never fail; degrade rather than panic
			b[i] = codeCharset[int(time.Now().UnixNano())%len(codeCharset)]
			continue
		}
		b[i] = codeCharset[n.Int64()]
	}
	return string(b)
}
