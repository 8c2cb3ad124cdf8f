package auth

import "golang.org/x/crypto/bcrypt"

// CredentialVerifier checks a login submission. The storefront ships with a
// single static admin pair, real deployments can plug in their own identity
// source without touching the session flow.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

type StaticVerifier struct {
	username     string
	passwordHash []byte
}

// NewStaticVerifier hashes the configured password once so the plaintext is
// not kept around for the lifetime of the process.
func NewStaticVerifier(username, password string) (*StaticVerifier, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &StaticVerifier{username: username, passwordHash: hash}, nil
}

func (v *StaticVerifier) Verify(username, password string) bool {
	if username != v.username {
		return false
	}
	return bcrypt.CompareHashAndPassword(v.passwordHash, []byte(password)) == nil
}
