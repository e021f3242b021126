package auth_test

import (
	"testing"

	"github.com/msomdec/pitchside/internal/auth"
)

func TestHasher_RoundTrip(t *testing.T) {
	// Cost 4 for fast tests.
	h := auth.NewHasher(4)

	digest, err := h.Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if digest == "correct horse battery staple" {
		t.Fatal("digest must not equal the plaintext")
	}

	if !h.Verify("correct horse battery staple", digest) {
		t.Fatal("expected matching password to verify")
	}
	if h.Verify("wrong password", digest) {
		t.Fatal("expected mismatched password to fail verification")
	}
}

func TestHasher_DistinctDigestsPerCall(t *testing.T) {
	h := auth.NewHasher(4)

	first, err := h.Hash("password123")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	second, err := h.Hash("password123")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	// Each digest carries its own random salt.
	if first == second {
		t.Fatal("expected distinct digests for the same plaintext")
	}
	if !h.Verify("password123", first) || !h.Verify("password123", second) {
		t.Fatal("both digests should verify against the plaintext")
	}
}

func TestHasher_MalformedDigest(t *testing.T) {
	h := auth.NewHasher(4)

	tests := []struct {
		name   string
		digest string
	}{
		{"empty", ""},
		{"garbage", "not-a-bcrypt-digest"},
		{"truncated", "$2a$04$short"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if h.Verify("password123", tc.digest) {
				t.Fatal("malformed digest must verify as false")
			}
		})
	}
}
