package tool

import (
	"github.com/google/uuid"
)

func GenerateRandomUUID() string {
	return uuid.New().String()
}

// GenerateRunID returns the first 8 hex chars of a random UUID, used to tag the log lines of one batch run.
func GenerateRunID() string {
	return GenerateRandomUUID()[:8]
}
