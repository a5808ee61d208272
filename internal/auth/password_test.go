package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndCompare(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("s3cret-password")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if hash == "s3cret-password" {
		t.Fatal("hash must not equal the plaintext password")
	}

	ok, err := hasher.Compare(hash, "s3cret-password")
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if !ok {
		t.Fatal("expected matching password to compare true")
	}
}

func TestPasswordHasher_CompareMismatch(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("correct-password")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}

	ok, err := hasher.Compare(hash, "wrong-password")
	if err != nil {
		t.Fatalf("Compare returned unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected mismatched password to compare false")
	}
}

func TestPasswordHasher_OutOfRangeCostFallsBack(t *testing.T) {
	hasher := NewPasswordHasher(99)

	hash, err := hasher.Hash("password")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("Cost failed: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost %d, got %d", bcrypt.DefaultCost, cost)
	}
}
