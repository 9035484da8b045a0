package mocks

import (
	"errors"
	"strings"

	"github.com/phrazzld/bookstore-api/internal/service/auth"
)

// hashPrefix marks values produced by MockPasswordHasher's default Hash.
const hashPrefix = "hashed:"

// MockPasswordHasher implements auth.PasswordHasher for testing. Without
// function fields it "hashes" by prefixing the password.
type MockPasswordHasher struct {
	HashFn    func(password string) (string, error)
	CompareFn func(hashedPassword, password string) error
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

// Hash implements auth.PasswordHasher.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	return hashPrefix + password, nil
}

// Compare implements auth.PasswordHasher.
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if strings.TrimPrefix(hashedPassword, hashPrefix) != password {
		return errors.New("password mismatch")
	}
	return nil
}
