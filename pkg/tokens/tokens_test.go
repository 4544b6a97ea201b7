package tokens

import (
	"errors"
	"testing"
	"time"

	"github.com/go-test/deep"
)

var testSecret = []byte("test-shared-secret")

func issueTestToken(t *testing.T, caps, aud []string, ttl time.Duration) string {
	t.Helper()
	token, err := NewIssuer(testSecret).Issue("agent-1", caps, aud, ttl)
	if err != nil {
		t.Fatalf("failed to issue token: %s", err)
	}
	return token
}

func TestMatches(t *testing.T) {
	for _, tc := range []struct {
		granted  string
		required string
		expected bool
	}{
		{"db:inventory:read", "db:inventory:read", true},
		{"db:inventory:read", "db:inventory:write", false},
		{"event:publish:inventory:*", "event:publish:inventory:prod_12345", true},
		{"event:publish:inventory:*", "event:publish:orders:new", false},
		{"*", "anything:at:all", true},
		{"inventory:*:low_stock", "inventory:prod:low_stock", true},
		{"inventory:*:low_stock", "inventory:foo:other", true},
		{"inventory:*:low_stock", "orders:new", false},
		{"inventory:*", "inventory:prod:low_stock", true},
		{"db:inventory:read", "db:inventory:rea", false},
		{"db:inventory:*", "db:inventory:", true},
	} {
		if actual := Matches(tc.granted, tc.required); actual != tc.expected {
			t.Errorf("Matches(%q, %q) = %t, expected %t", tc.granted, tc.required, actual, tc.expected)
		}
	}
}

func TestVerify(t *testing.T) {
	t.Run("Round-trips claims", func(t *testing.T) {
		token := issueTestToken(t, []string{"db:inventory:read"}, []string{"InventoryDB_*"}, time.Hour)

		claims, err := NewVerifier(testSecret).Verify(token)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if claims.Subject != "agent-1" {
			t.Fatalf("unexpected subject: %q", claims.Subject)
		}
		if diff := deep.Equal(claims.Capabilities, []string{"db:inventory:read"}); diff != nil {
			t.Fatalf("capabilities mismatch: %v", diff)
		}
		if diff := deep.Equal(claims.Audience, []string{"InventoryDB_*"}); diff != nil {
			t.Fatalf("audience mismatch: %v", diff)
		}
	})

	t.Run("Rejects an expired token", func(t *testing.T) {
		token := issueTestToken(t, []string{"db:inventory:read"}, []string{"*"}, -time.Minute)

		_, err := NewVerifier(testSecret).Verify(token)
		if !errors.Is(err, ErrExpired) {
			t.Fatalf("expected ErrExpired, got %v", err)
		}
	})

	t.Run("Rejects a tampered token", func(t *testing.T) {
		token := issueTestToken(t, []string{"db:inventory:read"}, []string{"*"}, time.Hour)

		_, err := NewVerifier([]byte("a-different-secret")).Verify(token)
		if !errors.Is(err, ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature, got %v", err)
		}
	})

	t.Run("Rejects garbage", func(t *testing.T) {
		_, err := NewVerifier(testSecret).Verify("not.a.jwt")
		if !errors.Is(err, ErrMalformed) {
			t.Fatalf("expected ErrMalformed, got %v", err)
		}
	})

	t.Run("Rejects a token missing capabilities", func(t *testing.T) {
		token := issueTestToken(t, nil, []string{"*"}, time.Hour)

		_, err := NewVerifier(testSecret).Verify(token)
		if !errors.Is(err, ErrMalformed) {
			t.Fatalf("expected ErrMalformed, got %v", err)
		}
	})

	t.Run("Honors a rotated secret", func(t *testing.T) {
		token := issueTestToken(t, []string{"db:inventory:read"}, []string{"*"}, time.Hour)

		verifier := NewVerifier(testSecret)
		if _, err := verifier.Verify(token); err != nil {
			t.Fatalf("unexpected error before rotation: %s", err)
		}
		verifier.SetSecret([]byte("rotated"))
		if _, err := verifier.Verify(token); !errors.Is(err, ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature after rotation, got %v", err)
		}
	})
}

func TestHasCapability(t *testing.T) {
	claims := &Claims{
		Subject:      "agent-1",
		Capabilities: []string{"db:inventory:read", "event:publish:inventory:*"},
	}

	if !HasCapability(claims, "db:inventory:read") {
		t.Error("expected exact capability to match")
	}
	if !HasCapability(claims, "event:publish:inventory:prod_12345:low_stock") {
		t.Error("expected wildcard capability to match")
	}
	if HasCapability(claims, "tool:sql_query") {
		t.Error("expected unrelated capability not to match")
	}
}

func TestHasAudience(t *testing.T) {
	claims := &Claims{Audience: []string{"InventoryDB_*"}}

	if !HasAudience(claims, "InventoryDB_Primary") {
		t.Error("expected wildcard audience to match")
	}
	if HasAudience(claims, "OrdersDB_Primary") {
		t.Error("expected unrelated audience not to match")
	}
}

func TestVerifyDelegation(t *testing.T) {
	issuer := NewIssuer(testSecret)
	verifier := NewVerifier(testSecret)

	primary := &Claims{
		Subject:      "agent-1",
		Capabilities: []string{"db:inventory:read", "tool:*"},
	}

	t.Run("Accepts a subset proof", func(t *testing.T) {
		proof, err := issuer.IssueDelegation("agent-1", "agent-2", []string{"tool:compute_pricing"}, time.Hour)
		if err != nil {
			t.Fatalf("failed to issue proof: %s", err)
		}

		dc, err := verifier.VerifyDelegation(primary, proof)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if dc.Delegatee != "agent-2" {
			t.Fatalf("unexpected delegatee: %q", dc.Delegatee)
		}
	})

	t.Run("Rejects a proof exceeding the primary's capabilities", func(t *testing.T) {
		proof, err := issuer.IssueDelegation("agent-1", "agent-2", []string{"db:orders:read"}, time.Hour)
		if err != nil {
			t.Fatalf("failed to issue proof: %s", err)
		}

		if _, err := verifier.VerifyDelegation(primary, proof); !errors.Is(err, ErrDelegation) {
			t.Fatalf("expected ErrDelegation, got %v", err)
		}
	})

	t.Run("Rejects a proof from a different delegator", func(t *testing.T) {
		proof, err := issuer.IssueDelegation("agent-9", "agent-2", []string{"db:inventory:read"}, time.Hour)
		if err != nil {
			t.Fatalf("failed to issue proof: %s", err)
		}

		if _, err := verifier.VerifyDelegation(primary, proof); !errors.Is(err, ErrDelegation) {
			t.Fatalf("expected ErrDelegation, got %v", err)
		}
	})

	t.Run("Rejects an expired proof", func(t *testing.T) {
		proof, err := issuer.IssueDelegation("agent-1", "agent-2", []string{"db:inventory:read"}, -time.Minute)
		if err != nil {
			t.Fatalf("failed to issue proof: %s", err)
		}

		if _, err := verifier.VerifyDelegation(primary, proof); !errors.Is(err, ErrExpired) {
			t.Fatalf("expected ErrExpired, got %v", err)
		}
	})
}
