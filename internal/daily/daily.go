package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// epoch is the first game day; game numbers count days from here.
var epoch = time.Date(2021, time.June, 19, 0, 0, 0, 0, time.UTC)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// GameNumber returns the cosmetic game number for a date: whole days
// elapsed since the epoch. Never negative.
func GameNumber(t time.Time) int {
	n := int(t.UTC().Sub(epoch).Hours() / 24)
	if n < 0 {
		return 0
	}
	return n
}

// WordIndex returns a deterministic index for a date using HMAC(salt, YYYY-MM-DD) % dictLen.
func WordIndex(date time.Time, salt string, dictLen int) int {
	if dictLen <= 0 {
		return 0
	}
	dk := DateKey(date)
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(dk))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(dictLen))
}
