package auth

import (
	"testing"
)

func TestHashPassword(t *testing.T) {
	password := "turn-it-up-to-11"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if hash == "" {
		t.Fatal("Expected hash to be generated")
	}

	if hash == password {
		t.Fatal("Hash should not equal plain password")
	}
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	password := "turn-it-up-to-11"

	first, err := HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	second, err := HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	if first == second {
		t.Error("Expected salted hashes to differ between calls")
	}
}

func TestCheckPassword_Valid(t *testing.T) {
	password := "turn-it-up-to-11"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	if err := CheckPassword(hash, password); err != nil {
		t.Errorf("Expected password to match, got error: %v", err)
	}
}

func TestCheckPassword_Invalid(t *testing.T) {
	hash, err := HashPassword("turn-it-up-to-11")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	if err := CheckPassword(hash, "turn-it-down"); err == nil {
		t.Error("Expected error for wrong password")
	}
}

func TestHashPassword_EmptyString(t *testing.T) {
	hash, err := HashPassword("")
	if err != nil {
		t.Fatalf("Expected no error for empty password, got %v", err)
	}

	if hash == "" {
		t.Fatal("Expected hash to be generated even for empty password")
	}
}
