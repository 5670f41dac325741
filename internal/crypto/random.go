package crypto

import (
	"crypto/rand"
	"math/big"
	"strings"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

var base36Len = big.NewInt(int64(len(base36)))

// RandomBase36 returns n random characters from [0-9a-z].
func RandomBase36(n int) (string, error) {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, base36Len)
		if err != nil {
			return "", err
		}
		b.WriteByte(base36[idx.Int64()])
	}
	return b.String(), nil
}
