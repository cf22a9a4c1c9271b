package auth

import (
	"crypto/subtle"

	"github.com/shortsreel/backend/pkg/utils"
)

// Credentials holds the single admin identity: a username and a bcrypt
// hash of the configured password. It is built once during startup and
// read-only afterwards, so no locking is needed.
type Credentials struct {
	username     string
	passwordHash string
}

// NewCredentials derives the stored hash from the raw configured
// password. The raw password is not retained.
func NewCredentials(username, rawPassword string) (*Credentials, error) {
	hash, err := utils.HashPassword(rawPassword)
	if err != nil {
		return nil, err
	}
	return &Credentials{username: username, passwordHash: hash}, nil
}

// Verify reports whether the given username and password match the
// configured admin identity. The username comparison is constant-time;
// the password comparison inherits bcrypt's timing resistance.
func (c *Credentials) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.username)) == 1
	passOK := utils.CheckPassword(password, c.passwordHash)
	return userOK && passOK
}

// Username returns the configured admin username.
func (c *Credentials) Username() string {
	return c.username
}
