package jwt

import (
	"testing"
)

func TestGenerateAndValidate_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	tok, err := GenerateToken(secret, "wheels4u", "supplier")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims, err := ValidateToken(secret, tok)
	if err != nil {
		t.Fatalf("ValidateToken error: %v", err)
	}
	if claims.Username != "wheels4u" {
		t.Fatalf("username mismatch: got %q want %q", claims.Username, "wheels4u")
	}
	if claims.Role != "supplier" {
		t.Fatalf("role mismatch: got %q want %q", claims.Role, "supplier")
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken([]byte("right-secret"), "boss", "admin")
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = ValidateToken([]byte("wrong-secret"), tok)
	if err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestValidateToken_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := ValidateToken([]byte("k"), "not.a.jwt")
	if err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}
