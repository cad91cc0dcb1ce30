package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"tudu/config"
	"tudu/shared/timezone"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token has expired")
	ErrInvalidClaim  = errors.New("invalid token claim")
	ErrMissingSecret = errors.New("jwt access secret is not configured")
)

const (
	TokenType        = "Bearer"
	defaultExpireMin = 30
)

// Claims represents the JWT claims structure
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWT issues and verifies access tokens carrying a username claim.
type JWT interface {
	Issue(username string) (string, error)
	Verify(tokenString string) (*Claims, error)
}

// Service handles JWT operations
type Service struct {
	secret    []byte
	issuer    string
	expiresIn time.Duration
}

// New creates a new JWT service. The signing secret is read once and never changes afterwards.
func New(cfg *config.Config) JWT {
	expireMin := cfg.JWT.AccessExpireMin
	if expireMin <= 0 {
		expireMin = defaultExpireMin
	}

	return &Service{
		secret:    []byte(cfg.JWT.AccessSecret),
		issuer:    cfg.App.Name,
		expiresIn: time.Duration(expireMin) * time.Minute,
	}
}

// Issue signs an HS256 access token for username.
func (s *Service) Issue(username string) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrMissingSecret
	}

	if username == "" {
		return "", ErrInvalidClaim
	}

	issuedAt := timezone.Now()

	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(s.expiresIn)),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			Issuer:    s.issuer,
			Subject:   username,
			ID:        uuid.NewString(),
		},
	}

	signedToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Verify validates and parses an access token
func (s *Service) Verify(tokenString string) (*Claims, error) {
	if len(s.secret) == 0 {
		return nil, ErrMissingSecret
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return s.secret, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Username == "" || claims.Subject != claims.Username {
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

// ExtractTokenFromHeader extracts JWT token from Authorization header
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("authorization header is required")
	}

	prefix := TokenType + " "
	if len(authHeader) < len(prefix) || !strings.EqualFold(authHeader[:len(prefix)], prefix) {
		return "", errors.New("authorization header must start with 'Bearer '")
	}

	token := strings.TrimSpace(authHeader[len(prefix):])
	if token == "" {
		return "", errors.New("authorization header carries an empty token")
	}

	return token, nil
}

