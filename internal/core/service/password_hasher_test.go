package service

import "testing"

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher()

	hash, err := h.Hash("password123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "password123" {
		t.Fatalf("hash equals plaintext")
	}
	if !h.Check("password123", hash) {
		t.Fatalf("correct password rejected")
	}
	if h.Check("password124", hash) {
		t.Fatalf("wrong password accepted")
	}
}

func TestBcryptHasher_SaltedPerCall(t *testing.T) {
	h := NewBcryptHasher()

	first, err := h.Hash("password123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := h.Hash("password123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct hashes for the same plaintext")
	}
	if !h.Check("password123", first) || !h.Check("password123", second) {
		t.Fatalf("both hashes should verify")
	}
}
