package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher wraps bcrypt with a fixed work factor. Each Hash call draws
// a fresh random salt which bcrypt embeds in the digest.
type PasswordHasher struct {
	cost      int
	dummyHash []byte
}

// NewPasswordHasher returns a hasher for cost. The dummy hash lets Compare
// spend the same time on unknown accounts as on real ones.
func NewPasswordHasher(cost int) (*PasswordHasher, error) {
	dummy, err := bcrypt.GenerateFromPassword([]byte("authkeeper-dummy-password"), cost)
	if err != nil {
		return nil, err
	}
	return &PasswordHasher{cost: cost, dummyHash: dummy}, nil
}

// ErrPasswordTooLong is returned for passwords bcrypt cannot hash (over 72 bytes).
var ErrPasswordTooLong = bcrypt.ErrPasswordTooLong

func (h *PasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Compare reports whether password matches hash. bcrypt compares the
// derived keys in constant time.
func (h *PasswordHasher) Compare(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// CompareDummy burns one bcrypt comparison and always reports false.
func (h *PasswordHasher) CompareDummy(password string) bool {
	_ = bcrypt.CompareHashAndPassword(h.dummyHash, []byte(password))
	return false
}

// IsPasswordTooLong reports whether err came from an over-long password.
func IsPasswordTooLong(err error) bool {
	return errors.Is(err, ErrPasswordTooLong)
}
