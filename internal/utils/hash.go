package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns the bcrypt hash of password.
//
// bcrypt draws a fresh random salt on every call, so hashing the same
// password twice yields different outputs. A zero cost selects
// bcrypt.DefaultCost.
//
// Example usage:
//
//	hash, err := utils.HashPassword("pw123456", 0)
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// CheckPassword reports whether password matches hash.
//
// A corrupt or truncated hash is reported as a mismatch; callers cannot
// distinguish it from a wrong password.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
