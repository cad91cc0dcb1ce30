package password

//go:generate go run go.uber.org/mock/mockgen -source=./password.go -destination=./mocks/password_mock.go -package=mocks

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default cost for bcrypt hashing
	DefaultCost = bcrypt.DefaultCost

	// MaxLength is the longest password bcrypt accepts, in bytes.
	MaxLength = 72
)

var (
	ErrEmptyPassword     = errors.New("password cannot be empty")
	ErrPasswordTooLong   = errors.New("password exceeds 72 bytes")
	ErrHashingPassword   = errors.New("error hashing password")
	ErrVerifyingPassword = errors.New("error verifying password")
)

// Hasher turns plaintext passwords into opaque digests and checks them back.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) (bool, error)
}

type bcryptHasher struct {
	cost int
}

// New returns a bcrypt backed Hasher using DefaultCost.
func New() Hasher {
	return NewWithCost(DefaultCost)
}

// NewWithCost returns a bcrypt backed Hasher. Costs outside bcrypt's range fall back to DefaultCost.
func NewWithCost(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash generates a salted bcrypt digest of the password.
func (h *bcryptHasher) Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}

	if len(plain) > MaxLength {
		return "", fmt.Errorf("%w: %w", ErrHashingPassword, ErrPasswordTooLong)
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	return string(bytes), nil
}

// Verify reports whether digest was produced from plain. A mismatch is not an error;
// a digest bcrypt cannot parse is.
func (h *bcryptHasher) Verify(plain, digest string) (bool, error) {
	if plain == "" || digest == "" {
		return false, nil
	}

	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain))
	if err == nil {
		return true, nil
	}

	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}

	return false, fmt.Errorf("%w: %w", ErrVerifyingPassword, err)
}
