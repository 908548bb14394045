package utils // package utils provides helper functions for token creation and hashing

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// ErrInvalidToken is returned by ParseUserID for any token that fails
// signature verification or lacks a usable subject claim. Callers should not
// distinguish between the failure modes.
var ErrInvalidToken = errors.New("invalid token")

// NewToken builds and signs an HS256 JWT for a user. The claim set is
// {sub, iat} with no exp: tokens remain valid until the signing secret
// rotates. That is a deliberate carry-over of the existing client contract,
// not an oversight; see DESIGN.md before adding an expiry here.
func NewToken(secret string, userID uint64) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ParseUserID verifies the token signature and extracts the subject claim as
// a user ID. Only HMAC-signed tokens are accepted; a token signed with any
// other method is rejected before the key is even consulted.
func ParseUserID(secret, raw string) (uint64, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return 0, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	// JSON numbers decode as float64; tolerate string subjects the way the
	// rest of the jwt ecosystem does.
	switch sub := claims["sub"].(type) {
	case float64:
		if sub < 1 {
			return 0, ErrInvalidToken
		}
		return uint64(sub), nil
	case string:
		id, err := strconv.ParseUint(sub, 10, 64)
		if err != nil || id == 0 {
			return 0, ErrInvalidToken
		}
		return id, nil
	default:
		return 0, ErrInvalidToken
	}
}
