package crypto

import (
	"golang.org/x/crypto/bcrypt"
)

// hashCost is the bcrypt work factor. Existing stores hold cost-10
// digests, so changing it only affects newly registered users.
const hashCost = 10

// HashPassword hashes a password with bcrypt at the fixed work factor.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// VerifyPassword reports whether a password matches the given bcrypt
// digest. Comparison is delegated to bcrypt, which is constant-time.
func VerifyPassword(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
