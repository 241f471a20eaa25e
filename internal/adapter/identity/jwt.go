// Package identity resolves the acting principal from HS256 bearer tokens.
package identity

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vadimbarashkov/shortlink/internal/entity"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carries the principal id in the subject and its role in a private claim.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Verifier struct {
	secret []byte
	issuer string
	now    func() time.Time
}

func NewVerifier(secret, issuer string) *Verifier {
	return &Verifier{
		secret: []byte(secret),
		issuer: issuer,
		now:    time.Now,
	}
}

// Verify parses token and returns the principal it names.
// Every failure wraps both ErrInvalidToken and entity.ErrUnauthenticated.
func (v *Verifier) Verify(token string) (entity.Principal, error) {
	const op = "adapter.identity.Verifier.Verify"

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	var claims Claims
	if _, err := jwt.ParseWithClaims(token, &claims, v.key, opts...); err != nil {
		return entity.Principal{}, v.fail(op, err)
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return entity.Principal{}, v.fail(op, fmt.Errorf("malformed subject %q", claims.Subject))
	}

	p := entity.Principal{ID: id, Role: entity.Role(claims.Role)}
	if !p.IsAuthenticated() {
		return entity.Principal{}, v.fail(op, fmt.Errorf("unknown role %q", claims.Role))
	}

	return p, nil
}

// Issue signs a token for p that expires after ttl.
func (v *Verifier) Issue(p entity.Principal, ttl time.Duration) (string, error) {
	const op = "adapter.identity.Verifier.Issue"

	now := v.now()
	claims := Claims{
		Role: string(p.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(p.ID, 10),
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("%s: failed to sign token: %w", op, err)
	}

	return token, nil
}

func (v *Verifier) key(*jwt.Token) (any, error) {
	return v.secret, nil
}

func (v *Verifier) fail(op string, err error) error {
	return fmt.Errorf("%s: %w: %w: %w", op, entity.ErrUnauthenticated, ErrInvalidToken, err)
}
