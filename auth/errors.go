package auth

import "fmt"

// KeyReadError reports that the private key file could not be read
type KeyReadError struct {
	Path string
	Err  error
}

func (e *KeyReadError) Error() string {
	return fmt.Sprintf("failed to read private key %q: %v", e.Path, e.Err)
}

func (e *KeyReadError) Unwrap() error {
	return e.Err
}

// SigningError reports malformed key material or a key the signing
// algorithm cannot use
type SigningError struct {
	Err error
}

func (e *SigningError) Error() string {
	return fmt.Sprintf("failed to issue token: %v", e.Err)
}

func (e *SigningError) Unwrap() error {
	return e.Err
}
