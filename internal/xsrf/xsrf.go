// Package xsrf issues and checks the anti-forgery tokens behind the
// double-submit cookie convention: the server hands the token to the browser
// in a JavaScript-readable XSRF-TOKEN cookie, and the client must echo it in
// the X-XSRF-TOKEN header on every state-changing request. Tokens are signed
// and bound to the anonymous session that received them, so an attacker can
// neither forge one nor replay one issued to a different browser.
package xsrf

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	xsrfSecret   = []byte(getEnv("XSRF_SECRET", "development-insecure-secret-change-me"))
	xsrfIssuer   = getEnv("XSRF_ISSUER", "programmers-api")
	xsrfLifetime = 2 * time.Hour
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Configure replaces the signing secret and token lifetime. Call once at
// startup, before any token is issued.
func Configure(secret string, lifetime time.Duration) {
	if secret != "" {
		xsrfSecret = []byte(secret)
	}
	if lifetime > 0 {
		xsrfLifetime = lifetime
	}
}

// Claims represents the signed contents of an anti-forgery token
type Claims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed anti-forgery token for the given session
func GenerateToken(sessionID string) (string, error) {
	if sessionID == "" {
		return "", errors.New("session id is required")
	}

	claims := Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(xsrfLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    xsrfIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(xsrfSecret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateToken checks a token's signature, expiry and issuer, and that it
// was issued to the given session. It returns the claims on success.
func ValidateToken(tokenString, sessionID string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}

		return xsrfSecret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.Issuer != xsrfIssuer {
		return nil, errors.New("invalid token issuer")
	}
	if claims.SessionID == "" || claims.SessionID != sessionID {
		return nil, errors.New("token does not belong to this session")
	}

	return claims, nil
}
