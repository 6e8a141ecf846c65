// Package randompkg provides functionality gor generating random applications common items.
package randompkg

import (
	"crypto/rand"
	"math"
	"math/big"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Intn is a shortcut for generating a random integer between 0 and max using crypto/rand.
func Intn(max int) int64 {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		panic(err)
	}

	return nBig.Int64()
}

// Float64 is a shortcut for generating a random float between 0 and 1 using crypto/rand.
func Float64() float64 {
	return float64(Intn(1<<32)) / (1 << 32)
}

// IntBetween generates a random integer in [min, max].
func IntBetween(min, max int64) int64 {
	return min + Intn(int(max-min+1))
}

// FloatBetween generates a random decimal number between min and max rounded to 4 decimals.
func FloatBetween(min, max float64) float64 {
	numInRange := min + Float64()*(max-min)
	return math.Floor(numInRange*10_000) / 10_000
}

// String generates a random string of length n.
func String(n int) string {
	var sb strings.Builder

	k := len(alphabet)

	for i := 0; i < n; i++ {
		c := alphabet[Intn(k)]

		_ = sb.WriteByte(c) // The returned err is always nil.
	}

	return sb.String()
}

// MoneyAmountBetween generates a random amount of money between min and max rounded to cents.
func MoneyAmountBetween(min, max float64) float64 {
	return decimal.NewFromFloat(FloatBetween(min, max)).Round(2).InexactFloat64()
}

// Details generates a random transaction description.
func Details() string {
	return String(12)
}

// Account generates a random account name.
func Account() string {
	accounts := []string{"checking", "savings", "credit"}
	return accounts[Intn(len(accounts))]
}

// Type generates a random transaction type.
func Type() string {
	types := []string{"income", "expense"}
	return types[Intn(len(types))]
}

// Date generates a random UTC date within the last year, truncated to seconds.
func Date() time.Time {
	back := time.Duration(Intn(365*24)) * time.Hour
	return time.Now().UTC().Add(-back).Truncate(time.Second)
}
