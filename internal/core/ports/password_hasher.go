package ports

// PasswordHasher abstracts the one-way password hashing scheme so the auth
// core never depends on a concrete algorithm.
type PasswordHasher interface {
	// Hash produces a salted hash; the same plaintext yields a different
	// hash on every call.
	Hash(password string) (string, error)
	// Check reports whether plaintext matches the stored hash.
	Check(password, hash string) bool
}
