package auth

import (
	"errors"
	"testing"
	"time"
)

func TestTokenManager_IssueAndParse(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, err := tm.Issue("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "agent@example.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := tm.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.UserID != "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa" {
		t.Fatalf("user_id = %q", claims.UserID)
	}
	if claims.Email != "agent@example.com" {
		t.Fatalf("email = %q", claims.Email)
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now()) {
		t.Fatalf("expiry not in the future: %v", claims.ExpiresAt)
	}
}

func TestTokenManager_Parse_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Issue("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "x@example.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := verifier.Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken, got %v", err)
	}
}

func TestTokenManager_Parse_Expired(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Minute)

	token, err := tm.Issue("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "x@example.com")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := tm.Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenManager_Parse_Garbage(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	for _, s := range []string{"", "not.a.jwt", "eyJhbGciOiJub25lIn0.e30."} {
		if _, err := tm.Parse(s); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("want ErrInvalidToken for %q, got %v", s, err)
		}
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPassword(hash, "s3cret-pass") {
		t.Fatal("CheckPassword rejected the right password")
	}
	if CheckPassword(hash, "wrong-pass") {
		t.Fatal("CheckPassword accepted the wrong password")
	}
}
