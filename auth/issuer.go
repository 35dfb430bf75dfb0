package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// Audience is the fixed aud claim WeatherKit expects
	Audience = "weatherkit"

	// TokenLifetime is the validity window of every issued token
	TokenLifetime = time.Hour
)

// Identity holds the static developer credentials used to sign tokens
type Identity struct {
	TeamID    string `yaml:"teamID"`    // iss claim
	KeyID     string `yaml:"keyID"`     // kid header
	ServiceID string `yaml:"serviceID"` // sub claim
	KeyFile   string `yaml:"keyFile"`   // path to the PEM encoded EC private key
}

// tokenClaims encodes aud as a single string rather than the one-element
// array RegisteredClaims produces
type tokenClaims struct {
	jwt.RegisteredClaims
	Audience string `json:"aud"`
}

// Issuer signs short-lived ES256 tokens for a single identity
type Issuer struct {
	identity Identity
	now      func() time.Time
}

// NewIssuer creates an issuer that stamps tokens with the wall clock
func NewIssuer(identity Identity) *Issuer {
	return &Issuer{
		identity: identity,
		now:      time.Now,
	}
}

// Issue signs a fresh token issued at the current time
func (i *Issuer) Issue() (string, error) {
	return i.IssueAt(i.now())
}

// IssueAt signs a fresh token issued at now.
// The key file is read on every call.
func (i *Issuer) IssueAt(now time.Time) (string, error) {
	pemBytes, err := os.ReadFile(i.identity.KeyFile)
	if err != nil {
		return "", &KeyReadError{Path: i.identity.KeyFile, Err: err}
	}

	key, err := jwt.ParseECPrivateKeyFromPEM(pemBytes)
	if err != nil {
		return "", &SigningError{Err: fmt.Errorf("failed to parse private key: %w", err)}
	}

	issuedAt := now.Truncate(time.Second)
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.identity.TeamID,
			Subject:   i.identity.ServiceID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(TokenLifetime)),
		},
		Audience: Audience,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodES256, claims)
	token.Header["kid"] = i.identity.KeyID

	// ES256 rejects keys that are not on P-256
	signed, err := token.SignedString(key)
	if err != nil {
		return "", &SigningError{Err: fmt.Errorf("failed to sign token: %w", err)}
	}

	return signed, nil
}
