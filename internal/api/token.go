package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// expirySlack is how close to expiry a token may get before the client
// refreshes it ahead of a request instead of eating a guaranteed 401.
const expirySlack = 30 * time.Second

var peekParser = jwt.NewParser()

// tokenExpiringSoon inspects the access token's exp claim without
// verifying the signature — verification is the server's job; the client
// only wants to know whether sending this token is pointless.
func tokenExpiringSoon(token string) bool {
	claims := jwt.RegisteredClaims{}
	if _, _, err := peekParser.ParseUnverified(token, &claims); err != nil {
		return false // opaque token, let the server judge it
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return time.Until(claims.ExpiresAt.Time) < expirySlack
}
