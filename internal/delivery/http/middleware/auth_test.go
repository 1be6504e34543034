package middleware

import (
	"testing"
	"time"

	"github.com/LavaJover/shvark-gig-service/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

func TestTokenRoundTrip(t *testing.T) {
	auth := NewAuthenticator("secret", time.Hour)
	want := domain.Identity{UserID: "u-1", Role: domain.RoleVendor}

	token, err := auth.IssueToken(want, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	got, err := auth.ParseToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("identity = %+v, want %+v", got, want)
	}
}

func TestParseTokenRejects(t *testing.T) {
	auth := NewAuthenticator("secret", time.Hour)
	identity := domain.Identity{UserID: "u-1", Role: domain.RoleAdmin}

	expired, _ := NewAuthenticator("secret", time.Minute).IssueToken(identity, time.Now().Add(-time.Hour))
	foreign, _ := NewAuthenticator("other", time.Hour).IssueToken(identity, time.Now())
	badRole, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Role:             "root",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u-1"},
	}).SignedString([]byte("secret"))
	unsigned, _ := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		Role:             "admin",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u-1"},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)

	tests := map[string]string{
		"expired":      expired,
		"wrong secret": foreign,
		"unknown role": badRole,
		"alg none":     unsigned,
		"not a jwt":    "abc.def",
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := auth.ParseToken(token); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
