package crypto

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	digest, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	if digest == "" {
		t.Fatal("HashPassword() returned empty string")
	}
	if strings.Contains(digest, "password123") {
		t.Fatal("HashPassword() digest contains the plaintext")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	second, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password should differ")
	}
}

func TestVerifyPassword(t *testing.T) {
	digest, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}

	if !VerifyPassword("password123", digest) {
		t.Error("VerifyPassword() = false for the correct password")
	}
	if VerifyPassword("wrong-password", digest) {
		t.Error("VerifyPassword() = true for a wrong password")
	}
	if VerifyPassword("password123", "not-a-bcrypt-digest") {
		t.Error("VerifyPassword() = true for a malformed digest")
	}
}
