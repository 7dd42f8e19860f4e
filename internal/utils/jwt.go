package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-blog-api/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrUnsupportedSigningAlgorithm is returned when the configured algorithm
// is not one of the HMAC family supported by the service.
var ErrUnsupportedSigningAlgorithm = errors.New("unsupported token signing algorithm")

// JWTParams groups the server-held parameters used to sign and verify
// access tokens.
type JWTParams struct {
	// SignKey is the HMAC secret.
	SignKey string

	// Algorithm is the JWS "alg" value: HS256, HS384 or HS512.
	Algorithm string

	// Issuer is optional. When set it is written to "iss" and required
	// on verification.
	Issuer string
}

// SigningMethod resolves Algorithm to a jwt HMAC signing method.
// An empty Algorithm defaults to HS256.
func (p JWTParams) SigningMethod() (*jwt.SigningMethodHMAC, error) {
	switch strings.ToUpper(p.Algorithm) {
	case "", jwt.SigningMethodHS256.Alg():
		return jwt.SigningMethodHS256, nil
	case jwt.SigningMethodHS384.Alg():
		return jwt.SigningMethodHS384, nil
	case jwt.SigningMethodHS512.Alg():
		return jwt.SigningMethodHS512, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSigningAlgorithm, p.Algorithm)
	}
}

// GenerateJWTToken creates a signed access token for user.
//
// The token carries:
//   - Subject   (sub): the user's email
//   - id             : the numeric user ID
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - Issuer    (iss): params.Issuer, if configured
//
// Returns an error if the sign key is empty, the duration is not positive,
// the user has no email, or signing fails.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(params, user, 30*time.Minute)
func GenerateJWTToken(params JWTParams, user models.User, tokenDuration time.Duration) (models.Token, error) {
	if params.SignKey == "" || tokenDuration <= 0 || user.Email == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	method, err := params.SigningMethod()
	if err != nil {
		return models.Token{}, err
	}

	now := time.Now()
	claims := &models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    params.Issuer,
			Subject:   user.Email,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: user.ID,
	}

	token := jwt.NewWithClaims(method, claims)
	tokenString, err := token.SignedString([]byte(params.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	claims.Token = token
	claims.SignedString = tokenString

	return *claims, nil
}

// ValidateAndParseJWTToken verifies tokenString and extracts its claims.
//
// Validation includes:
//   - signature verification with params.SignKey, restricted to the
//     configured algorithm
//   - presence and validity of the exp claim (no extra leeway)
//   - issuer check when params.Issuer is set
//   - presence of the sub claim
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(rawToken, params)
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString string, params JWTParams) (models.Token, error) {
	method, err := params.SigningMethod()
	if err != nil {
		return models.Token{}, err
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{method.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if params.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(params.Issuer))
	}

	claims := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(params.SignKey), nil
	}, opts...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	claims.Token = token
	claims.SignedString = tokenString

	return *claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
