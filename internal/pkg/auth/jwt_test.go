package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/arjun/placehub/internal/pkg/apperrors"
)

func testService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: exp,
		TokenIssuer:    "placehub-test",
	})
}

func TestTokenRoundTrip(t *testing.T) {
	svc := testService(time.Hour)

	token, expiresIn, err := svc.GenerateToken("21CS001", "STUDENT", "21CS001", "Asha Rao")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}

	claims, err := svc.ValidateAndExtractClaims(token)
	if err != nil {
		t.Fatalf("ValidateAndExtractClaims: %v", err)
	}
	if claims.Subject != "21CS001" || claims.Role != "STUDENT" || claims.StudentID != "21CS001" {
		t.Errorf("claims not preserved: %+v", claims)
	}
	if claims.Name != "Asha Rao" {
		t.Errorf("Name = %q, want Asha Rao", claims.Name)
	}
}

func TestExpiredToken(t *testing.T) {
	svc := testService(-time.Minute)

	token, _, err := svc.GenerateToken("coordinator@placehub.local", "COORDINATOR", "", "")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	_, err = svc.ValidateAndExtractClaims(token)
	if !errors.Is(err, apperrors.ErrTokenExpired) {
		t.Errorf("got %v, want token expired", err)
	}
}

func TestWrongSecret(t *testing.T) {
	token, _, err := testService(time.Hour).GenerateToken("x", "STUDENT", "x", "")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "different", AccessTokenExp: time.Hour})
	if _, err := other.ValidateAndExtractClaims(token); err == nil {
		t.Error("a token signed with another secret must not validate")
	}
}

func TestGarbageToken(t *testing.T) {
	svc := testService(time.Hour)
	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := svc.ValidateAndExtractClaims(tok); err == nil {
			t.Errorf("token %q should not validate", tok)
		}
	}
}

func TestExtractBearerToken(t *testing.T) {
	if _, err := ExtractBearerToken(""); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Error("empty header should be rejected")
	}
	got, err := ExtractBearerToken("Bearer abc123")
	if err != nil || got != "abc123" {
		t.Errorf("got (%q, %v), want (abc123, nil)", got, err)
	}
	// Raw tokens without the scheme prefix are accepted as-is.
	got, err = ExtractBearerToken("abc123")
	if err != nil || got != "abc123" {
		t.Errorf("got (%q, %v), want (abc123, nil)", got, err)
	}
}
