package services

import (
	"math/rand/v2"
	"time"

	"github.com/lufergio/clipcode/internal/database"
)

// Share codes avoid characters that read ambiguously when typed
// between devices (O/I/0/1). Pairing and room codes are digits only
// so they can be entered on a numeric keypad.
const (
	ShareCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	DigitAlphabet     = "0123456789"

	ShareCodeLength = 6
	PairCodeLength  = 6
	RoomCodeLength  = 6

	// Collision probability is governed by keyspace size against this
	// retry budget; 32^6 share codes keep it negligible.
	mintAttempts = 8
)

// GenerateCode draws a code uniformly from the given alphabet.
func GenerateCode(alphabet string, length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(b)
}

// mintRecord generates codes until one lands on a free key in the
// target namespace, claiming it with SET NX so two concurrent minters
// can never both win the same code. Exhausting the retry budget fails
// with ErrCodeGenerationExhausted.
func mintRecord(keyForCode func(code string) string, alphabet string, length int, value interface{}, ttl time.Duration) (string, error) {
	for i := 0; i < mintAttempts; i++ {
		code := GenerateCode(alphabet, length)
		ok, err := database.SetJSONNX(keyForCode(code), value, ttl)
		if err != nil {
			return "", err
		}
		if ok {
			return code, nil
		}
	}
	return "", ErrCodeGenerationExhausted
}
