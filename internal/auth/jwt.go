package auth

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"

	"github.com/fivetwenty-io/partnercenter/internal/constants"
)

// ExpiryFromJWT reads the exp claim of a bearer token without verifying
// its signature. The partner service verifies the token; the client only
// needs to know when to refresh it.
func ExpiryFromJWT(token string) (time.Time, error) {
	if len(strings.Split(token, ".")) != constants.TokenPartsCount {
		return time.Time{}, constants.ErrInvalidJWTFormat
	}

	claims := jwt.MapClaims{}

	_, _, err := new(jwt.Parser).ParseUnverified(token, claims)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", constants.ErrInvalidJWTFormat, err)
	}

	var seconds int64

	switch exp := claims["exp"].(type) {
	case float64:
		seconds = int64(exp)
	case json.Number:
		seconds, err = exp.Int64()
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %w", constants.ErrNoExpirationClaim, err)
		}
	default:
		return time.Time{}, constants.ErrNoExpirationClaim
	}

	return time.Unix(seconds, 0), nil
}
