package form

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenField is the name of the hidden input carrying the form token.
const TokenField = "form_token"

var ErrInvalidToken = errors.New("invalid form token")

// Signer is implemented by engine.TokenIssuer.
type Signer interface {
	Sign(*jwt.RegisteredClaims) (string, error)
	Verify(string, ...jwt.ParserOption) (*jwt.RegisteredClaims, error)
}

// Tokens issues tokens that bind a rendered form to the user it was rendered for.
type Tokens struct {
	signer Signer
	ttl    time.Duration
}

func NewTokens(signer Signer) *Tokens {
	return &Tokens{signer: signer, ttl: time.Hour}
}

func (t *Tokens) Issue(formID, subject string) (string, error) {
	now := time.Now()
	tok, err := t.signer.Sign(&jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   subject,
		Audience:  jwt.ClaimStrings{formID},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	})
	if err != nil {
		return "", fmt.Errorf("signing form token: %w", err)
	}
	return tok, nil
}

func (t *Tokens) Verify(tok, formID, subject string) error {
	if tok == "" {
		return ErrInvalidToken
	}
	_, err := t.signer.Verify(tok,
		jwt.WithAudience(formID),
		jwt.WithSubject(subject),
		jwt.WithExpirationRequired())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return nil
}
