package password

import (
	"testing"
)

func TestHashIsDeterministic(t *testing.T) {
	t.Parallel()

	a := Hash("secret", "salt1")
	b := Hash("secret", "salt1")
	if a != b {
		t.Fatalf("same inputs produced different digests: %q vs %q", a, b)
	}

	if Hash("secret", "salt2") == a {
		t.Fatalf("different salts produced the same digest")
	}
	if Hash("other", "salt1") == a {
		t.Fatalf("different passwords produced the same digest")
	}
}

func TestHashLength(t *testing.T) {
	t.Parallel()

	// 64 key bytes, hex encoded.
	if got := len(Hash("secret", "salt")); got != 128 {
		t.Fatalf("digest length = %d, want 128", got)
	}
}

func TestNewSalt(t *testing.T) {
	t.Parallel()

	a, err := NewSalt()
	if err != nil {
		t.Fatalf("NewSalt error: %v", err)
	}
	b, err := NewSalt()
	if err != nil {
		t.Fatalf("NewSalt error: %v", err)
	}

	// 16 salt bytes, hex encoded.
	if len(a) != 32 {
		t.Fatalf("salt length = %d, want 32", len(a))
	}
	if a == b {
		t.Fatalf("two fresh salts are identical")
	}
}

func TestVerify(t *testing.T) {
	t.Parallel()

	salt, err := NewSalt()
	if err != nil {
		t.Fatalf("NewSalt error: %v", err)
	}
	digest := Hash("secret", salt)

	if !Verify("secret", salt, digest) {
		t.Fatalf("Verify rejected the correct password")
	}
	if Verify("wrong", salt, digest) {
		t.Fatalf("Verify accepted a wrong password")
	}
	if Verify("secret", "othersalt", digest) {
		t.Fatalf("Verify accepted a wrong salt")
	}
}
