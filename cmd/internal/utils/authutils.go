package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

type TokenData struct {
	Sub   string
	Email string
	Exp   int64
}

// TokenVerifier authenticates a raw bearer token.
type TokenVerifier interface {
	ValidateToken(tokenString string) (*TokenData, error)
}

// JWKSVerifier checks RS/ES signed tokens against a remote key set.
type JWKSVerifier struct {
	jwks keyfunc.Keyfunc
}

func NewJWKSVerifier(jwksURL string) (*JWKSVerifier, error) {
	jwks, err := keyfunc.NewDefault([]string{jwksURL})
	if err != nil {
		return nil, fmt.Errorf("failed to create JWKS from resource at %s: %w", jwksURL, err)
	}

	log.Infof("JWKS initialized. Keys loaded from %s", jwksURL)
	return &JWKSVerifier{jwks: jwks}, nil
}

// ValidateToken parses AND validates the signature locally.
// It returns the data if the token is authentic and unexpired.
func (v *JWKSVerifier) ValidateToken(tokenString string) (*TokenData, error) {
	return parseToken(tokenString, v.jwks.Keyfunc)
}

// HMACVerifier checks HS256 tokens signed with a shared secret.
type HMACVerifier struct {
	secret []byte
}

func NewHMACVerifier(secret string) *HMACVerifier {
	return &HMACVerifier{secret: []byte(secret)}
}

func (v *HMACVerifier) ValidateToken(tokenString string) (*TokenData, error) {
	return parseToken(tokenString, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
}

// SignHMAC signs claims with the shared secret, for local development and tests.
func (v *HMACVerifier) SignHMAC(claims jwt.MapClaims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

func parseToken(tokenString string, keyFunc jwt.Keyfunc, opts ...jwt.ParserOption) (*TokenData, error) {
	clean := sanitizeToken(tokenString)
	if clean == "" {
		return nil, errors.New("token is empty")
	}

	opts = append(opts, jwt.WithExpirationRequired())
	token, err := jwt.Parse(clean, keyFunc, opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims format")
	}

	return &TokenData{
		Sub:   getValue(claims, "sub"),
		Email: getValue(claims, "email"),
		Exp:   getInt64(claims, "exp"),
	}, nil
}

// BearerToken reads the Authorization header, empty when absent.
func BearerToken(ctx echo.Context) string {
	return ctx.Request().Header.Get(echo.HeaderAuthorization)
}

func sanitizeToken(token string) string {
	return strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
}

func getValue(claims jwt.MapClaims, key string) string {
	if val, ok := claims[key].(string); ok {
		return val
	}
	return ""
}

func getInt64(claims jwt.MapClaims, key string) int64 {
	val, ok := claims[key]
	if !ok {
		return 0
	}
	if f, ok := val.(float64); ok {
		return int64(f)
	}
	if i, ok := val.(int64); ok {
		return i
	}
	return 0
}
