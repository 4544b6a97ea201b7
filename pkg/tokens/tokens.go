// Package tokens implements the capability credential model: signed bearer
// tokens carrying capability scopes and audience patterns, and delegation
// proofs that let one agent act on behalf of another for a scope subset.
package tokens

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrExpired indicates a token whose exp claim is in the past.
	ErrExpired = errors.New("token expired")
	// ErrInvalidSignature indicates a token that fails signature checks.
	ErrInvalidSignature = errors.New("token signature invalid")
	// ErrMalformed indicates a token that parses but is missing required
	// claims, or does not parse at all.
	ErrMalformed = errors.New("token malformed")
	// ErrDelegation indicates a delegation proof that is not grounded in the
	// primary token's capabilities.
	ErrDelegation = errors.New("delegation proof invalid")
)

// Claims is the verified view of a capability token.
type Claims struct {
	Subject      string
	Capabilities []string
	Audience     []string
	IssuedAt     time.Time
	ExpiresAt    time.Time
}

// DelegationClaims is the verified view of a delegation proof.
type DelegationClaims struct {
	Delegator             string
	Delegatee             string
	DelegatedCapabilities []string
	ExpiresAt             time.Time
}

type tokenClaims struct {
	Capabilities []string `json:"capabilities"`
	jwt.RegisteredClaims
}

type delegationProofClaims struct {
	Delegator             string   `json:"delegator"`
	Delegatee             string   `json:"delegatee"`
	DelegatedCapabilities []string `json:"delegated_capabilities"`
	jwt.RegisteredClaims
}

var signingMethods = []string{jwt.SigningMethodHS256.Alg()}

// Matches is the single wildcard predicate used for capability scopes,
// audience patterns, registry capability filters, and event topic filters. A
// granted scope matches a required scope when they are equal, or when the
// granted scope carries a "*" and everything before its first "*" is a bare
// prefix of the required scope. There is no per-segment interpretation (a
// filter like inventory:*:low_stock behaves as the prefix inventory:), and
// changing this rule changes authorization everywhere at once.
func Matches(granted, required string) bool {
	if i := strings.IndexByte(granted, '*'); i >= 0 {
		return strings.HasPrefix(required, granted[:i])
	}
	return granted == required
}

// HasCapability reports whether any capability held by the claims satisfies
// the required scope.
func HasCapability(c *Claims, required string) bool {
	for _, granted := range c.Capabilities {
		if Matches(granted, required) {
			return true
		}
	}
	return false
}

// HasAudience reports whether any audience pattern held by the claims matches
// the target server name.
func HasAudience(c *Claims, serverName string) bool {
	for _, pattern := range c.Audience {
		if Matches(pattern, serverName) {
			return true
		}
	}
	return false
}

// Issuer mints capability tokens and delegation proofs under a shared
// symmetric secret. Issuance is pure with respect to process state.
type Issuer struct {
	secret []byte
}

// NewIssuer returns an Issuer signing with the given HS256 secret.
func NewIssuer(secret []byte) *Issuer {
	return &Issuer{secret: secret}
}

// Issue produces a signed capability token for the subject.
func (i *Issuer) Issue(subject string, capabilities, audience []string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Capabilities: capabilities,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Audience:  jwt.ClaimStrings(audience),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// IssueDelegation produces a signed proof that delegator grants delegatee the
// listed capabilities until the ttl elapses. The subset check against the
// delegator's primary token happens at verification time, not here.
func (i *Issuer) IssueDelegation(delegator, delegatee string, capabilities []string, ttl time.Duration) (string, error) {
	claims := delegationProofClaims{
		Delegator:             delegator,
		Delegatee:             delegatee,
		DelegatedCapabilities: capabilities,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verifier validates capability tokens and delegation proofs. The secret may
// be swapped at run time when the deployment rotates it.
type Verifier struct {
	mu     sync.RWMutex
	secret []byte
}

// NewVerifier returns a Verifier checking HS256 signatures with the given
// secret.
func NewVerifier(secret []byte) *Verifier {
	return &Verifier{secret: secret}
}

// SetSecret replaces the verification secret. Tokens signed under the old
// secret fail verification from this point on.
func (v *Verifier) SetSecret(secret []byte) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.secret = secret
}

func (v *Verifier) keyFunc(*jwt.Token) (interface{}, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.secret, nil
}

// Verify validates the token signature and requires the sub, capabilities,
// aud, iat and exp claims to all be present.
func (v *Verifier) Verify(token string) (*Claims, error) {
	var tc tokenClaims
	_, err := jwt.ParseWithClaims(token, &tc, v.keyFunc, jwt.WithValidMethods(signingMethods))
	if err != nil {
		return nil, mapJWTError(err)
	}
	if tc.Subject == "" || len(tc.Capabilities) == 0 || len(tc.Audience) == 0 ||
		tc.IssuedAt == nil || tc.ExpiresAt == nil {
		return nil, fmt.Errorf("%w: missing required claims", ErrMalformed)
	}
	return &Claims{
		Subject:      tc.Subject,
		Capabilities: tc.Capabilities,
		Audience:     tc.Audience,
		IssuedAt:     tc.IssuedAt.Time,
		ExpiresAt:    tc.ExpiresAt.Time,
	}, nil
}

// VerifyDelegation validates a delegation proof in the context of the primary
// token's claims: the proof must be signed and unexpired, its delegator must
// be the primary subject, and every delegated capability must be implied by
// some capability the primary token holds.
func (v *Verifier) VerifyDelegation(primary *Claims, proof string) (*DelegationClaims, error) {
	var dc delegationProofClaims
	_, err := jwt.ParseWithClaims(proof, &dc, v.keyFunc, jwt.WithValidMethods(signingMethods))
	if err != nil {
		return nil, mapJWTError(err)
	}
	if dc.ExpiresAt == nil {
		return nil, fmt.Errorf("%w: missing exp", ErrMalformed)
	}
	if dc.Delegator != primary.Subject {
		return nil, fmt.Errorf("%w: delegator %q is not the token subject %q", ErrDelegation, dc.Delegator, primary.Subject)
	}
	for _, scope := range dc.DelegatedCapabilities {
		if !HasCapability(primary, scope) {
			return nil, fmt.Errorf("%w: scope %q exceeds the delegator's capabilities", ErrDelegation, scope)
		}
	}
	return &DelegationClaims{
		Delegator:             dc.Delegator,
		Delegatee:             dc.Delegatee,
		DelegatedCapabilities: dc.DelegatedCapabilities,
		ExpiresAt:             dc.ExpiresAt.Time,
	}, nil
}

// LoadSecret reads the shared signing secret from path, trimming trailing
// whitespace.
func LoadSecret(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	secret := bytes.TrimSpace(raw)
	if len(secret) == 0 {
		return nil, fmt.Errorf("secret file %s is empty", path)
	}
	return secret, nil
}

func mapJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %s", ErrExpired, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %s", ErrInvalidSignature, err)
	default:
		return fmt.Errorf("%w: %s", ErrMalformed, err)
	}
}
