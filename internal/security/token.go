package security

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"go-todo-api/internal/model"
)

const DefaultAccessTTL = 30 * time.Minute

// TokenCodec signs and verifies access tokens with a single HMAC algorithm.
// It holds no mutable state and is safe for concurrent use.
type TokenCodec struct {
	method jwt.SigningMethod
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(secret string, algorithm string, ttl time.Duration) (*TokenCodec, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("token secret is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", ttl)
	}

	method := jwt.GetSigningMethod(strings.ToUpper(strings.TrimSpace(algorithm)))
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported token algorithm %q", algorithm)
	}

	return &TokenCodec{method: method, secret: []byte(secret), ttl: ttl}, nil
}

func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

func (c *TokenCodec) Algorithm() string {
	return c.method.Alg()
}

// Issue signs a token for subject that expires at now + TTL, rounded up to
// the whole second the exp claim can carry.
func (c *TokenCodec) Issue(subject string, now time.Time) (string, error) {
	if strings.TrimSpace(subject) == "" {
		return "", fmt.Errorf("issue token: %w", model.ErrInvalidInput)
	}

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(ceilSecond(now.Add(c.ttl))),
	}

	signed, err := jwt.NewWithClaims(c.method, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Decode verifies the signature first and the expiry second. It returns
// model.ErrTokenExpired only for correctly signed tokens whose expiry is not
// after now; every other failure is model.ErrTokenInvalid.
func (c *TokenCodec) Decode(token string, now time.Time) (model.TokenClaims, error) {
	var claims jwt.RegisteredClaims

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{c.method.Alg()}),
		jwt.WithStrictDecoding(),
		jwt.WithoutClaimsValidation(),
	)

	parsed, err := parser.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
	if err != nil || !parsed.Valid {
		return model.TokenClaims{}, model.ErrTokenInvalid
	}

	if strings.TrimSpace(claims.Subject) == "" || claims.ExpiresAt == nil {
		return model.TokenClaims{}, model.ErrTokenInvalid
	}

	if !now.Before(claims.ExpiresAt.Time) {
		return model.TokenClaims{}, model.ErrTokenExpired
	}

	return model.TokenClaims{Subject: claims.Subject, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// ceilSecond rounds t up to the next whole second. NumericDate claims are
// encoded in seconds, so truncating would end a token before now + TTL.
func ceilSecond(t time.Time) time.Time {
	floor := t.Truncate(time.Second)
	if floor.Equal(t) {
		return t
	}
	return floor.Add(time.Second)
}
