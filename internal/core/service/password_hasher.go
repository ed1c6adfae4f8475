package service

import "golang.org/x/crypto/bcrypt"

// bcrypt work factor; one hash takes a few hundred milliseconds.
const hashCost = 12

// BcryptHasher implements ports.PasswordHasher over bcrypt. Each Hash call
// draws a fresh random salt, so equal plaintexts never produce equal hashes.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: hashCost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *BcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
