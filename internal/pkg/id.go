package pkg

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const gameIDBytes = 4

// GenerateGameID - a short random hex id.
func GenerateGameID() (string, error) {
	buf := make([]byte, gameIDBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}
