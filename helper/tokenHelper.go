package helper

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("invalid token")
)

type SignedDetails struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenHelper signs and verifies HS256 access tokens.
type TokenHelper struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenHelper(secret string, ttl time.Duration) *TokenHelper {
	return &TokenHelper{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// WithClock replaces the time source, used to exercise expiry.
func (h *TokenHelper) WithClock(now func() time.Time) *TokenHelper {
	clone := *h
	clone.now = now
	return &clone
}

func (h *TokenHelper) GenerateToken(userID, username, role string) (string, time.Time, error) {
	issuedAt := h.now()
	expiresAt := issuedAt.Add(h.ttl)

	claims := &SignedDetails{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateToken checks signature, algorithm and expiry.
func (h *TokenHelper) ValidateToken(signedToken string) (*SignedDetails, error) {
	claims := &SignedDetails{}
	token, err := jwt.ParseWithClaims(
		signedToken,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			return h.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(h.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if !token.Valid || claims.UserID == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// ExtractToken strips an optional "Bearer " prefix from a header value.
func ExtractToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(header[len("Bearer "):])
	}
	return header
}
