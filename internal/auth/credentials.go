package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes is bcrypt's input limit; longer inputs would be silently truncated.
const maxPasswordBytes = 72

// Credentials is what the login form submits.
type Credentials struct {
	Email    string
	Password string
	OTP      string
}

// Verifier decides whether submitted credentials are acceptable.
type Verifier interface {
	Verify(creds Credentials) bool
}

// FixedCredential accepts exactly one email/password/OTP triple.
type FixedCredential struct {
	email        []byte
	passwordHash []byte
	otp          []byte
}

var _ Verifier = (*FixedCredential)(nil)

// NewFixedCredential hashes password with the given bcrypt cost.
func NewFixedCredential(email, password, otp string, cost int) (*FixedCredential, error) {
	if len(password) > maxPasswordBytes {
		return nil, fmt.Errorf("password longer than %d bytes", maxPasswordBytes)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return NewFixedCredentialFromHash(email, string(hash), otp)
}

// NewFixedCredentialFromHash uses a precomputed bcrypt hash.
func NewFixedCredentialFromHash(email, passwordHash, otp string) (*FixedCredential, error) {
	if email == "" || otp == "" {
		return nil, errors.New("email and otp are required")
	}
	if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
		return nil, fmt.Errorf("invalid password hash: %w", err)
	}
	return &FixedCredential{
		email:        []byte(email),
		passwordHash: []byte(passwordHash),
		otp:          []byte(otp),
	}, nil
}

// Verify reports whether all three fields match exactly.
func (f *FixedCredential) Verify(creds Credentials) bool {
	emailOK := subtle.ConstantTimeCompare([]byte(creds.Email), f.email) == 1
	otpOK := subtle.ConstantTimeCompare([]byte(creds.OTP), f.otp) == 1
	if len(creds.Password) > maxPasswordBytes {
		return false
	}
	passwordOK := bcrypt.CompareHashAndPassword(f.passwordHash, []byte(creds.Password)) == nil
	return emailOK && otpOK && passwordOK
}
