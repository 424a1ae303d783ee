package Models

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestVerifyPasswordRoundTrip(t *testing.T) {
	doctor := Doctor{Name: "Dr. Chen", Email: "chen@hospital.org", Password: "correct-horse"}
	if err := doctor.BeforeSave(); err != nil {
		t.Fatalf("BeforeSave: %v", err)
	}

	if err := VerifyPassword("correct-horse", doctor.Password); err != nil {
		t.Errorf("correct password rejected: %v", err)
	}

	err := VerifyPassword("wrong-password", doctor.Password)
	if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		t.Errorf("wrong password: got %v, want ErrMismatchedHashAndPassword", err)
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	// A corrupt stored hash fails with an error that is not the mismatch
	// sentinel. Login must treat it as a refusal all the same.
	err := VerifyPassword("any-password", "not-a-bcrypt-hash")
	if err == nil {
		t.Fatal("malformed hash must not verify")
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		t.Error("malformed hash must fail with its own error, not the mismatch sentinel")
	}
}
