package tool

import (
	"testing"

	"github.com/google/uuid"
)

func TestGenerateRunID(t *testing.T) {
	id := GenerateRunID()
	if len(id) != 8 {
		t.Fatalf("Expected 8 chars, got %q", id)
	}
	if id == GenerateRunID() {
		t.Error("Run IDs should differ between calls")
	}
}

func TestGenerateRandomUUID(t *testing.T) {
	if _, err := uuid.Parse(GenerateRandomUUID()); err != nil {
		t.Errorf("Expected a valid UUID: %v", err)
	}
}
