package utils

import (
	"crypto/rand"
	"encoding/hex"
	mrand "math/rand"
)

// Rand is the randomness a battle consumes. *math/rand.Rand satisfies it;
// tests substitute scripted streams.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a deterministic generator for the seed (0 is remapped to 1).
func NewRand(seed int64) *mrand.Rand {
	if seed == 0 {
		seed = 1
	}
	return mrand.New(mrand.NewSource(seed))
}

// GenerateID returns a short random hex id used for battles and summoned combatants.
func GenerateID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}
