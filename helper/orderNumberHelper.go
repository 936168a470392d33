package helper

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const base36 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateOrderNumber builds "ORD-<base36 millis>-<4 random base36 chars>".
// Collisions are not checked; the unique index on order_number is the backstop.
func GenerateOrderNumber(now time.Time) string {
	timestamp := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	return "ORD-" + timestamp + "-" + randomBase36(4)
}

func randomBase36(n int) string {
	var b strings.Builder
	max := big.NewInt(int64(len(base36)))
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand does not fail on supported platforms
			idx = big.NewInt(time.Now().UnixNano() % int64(len(base36)))
		}
		b.WriteByte(base36[idx.Int64()])
	}
	return b.String()
}
