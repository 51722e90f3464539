package auth

import (
	"testing"
	"time"
)

func newTestJWTer(ttl time.Duration) *JWTer {
	return &JWTer{Secret: []byte("test-secret"), Issuer: "donation-api", TTL: ttl}
}

func TestIssueAndParse(t *testing.T) {
	j := newTestJWTer(24 * time.Hour)

	token, err := j.Issue("1", "admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := j.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UID != "1" || claims.Username != "admin" {
		t.Fatalf("unexpected claims: uid=%q username=%q", claims.UID, claims.Username)
	}

	exp := claims.ExpiresAt.Time
	want := time.Now().Add(24 * time.Hour)
	if d := exp.Sub(want); d < -time.Minute || d > time.Minute {
		t.Fatalf("expiry not ~24h from issuance: %v", exp)
	}
}

func TestParseExpiredToken(t *testing.T) {
	// Negative TTL produces a token that expired one second ago; with no
	// leeway it must be rejected.
	j := newTestJWTer(-time.Second)
	token, err := j.Issue("1", "admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := j.Parse(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestParseWrongSecret(t *testing.T) {
	j := newTestJWTer(time.Hour)
	token, err := j.Issue("1", "admin")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	other := &JWTer{Secret: []byte("other-secret"), Issuer: "donation-api", TTL: time.Hour}
	if _, err := other.Parse(token); err == nil {
		t.Fatal("expected token signed with another secret to be rejected")
	}
}

func TestParseGarbage(t *testing.T) {
	j := newTestJWTer(time.Hour)
	if _, err := j.Parse("not-a-token"); err == nil {
		t.Fatal("expected garbage token to be rejected")
	}
}
