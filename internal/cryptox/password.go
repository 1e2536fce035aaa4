// Package cryptox wraps the password hashing primitives used by the auth
// service. Hashing is one-way; verification goes through the bcrypt compare
// primitive and never a manual byte comparison.
package cryptox

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a salted bcrypt hash of password. Cost 0 selects
// bcrypt.DefaultCost.
func HashPassword(password string, cost int) (string, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
func VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
