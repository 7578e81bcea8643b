package service

import "golang.org/x/crypto/bcrypt"

const defaultBcryptCost = 12

// PasswordHasher wraps bcrypt with a fixed work factor. Each Hash call
// embeds a fresh random salt in the digest, so equal passwords never
// produce equal digests.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher with the given bcrypt cost.
// Out-of-range costs fall back to the default of 12 rounds.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = defaultBcryptCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash derives a salted digest from the plaintext password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether the plaintext matches the stored digest.
// Any error — mismatch or a malformed digest — reads as non-match, so a
// corrupted stored digest can never authenticate.
func (h *PasswordHasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
