package crypto

import "errors"

var (
	// ErrMalformedDigest is returned by Verify for strings that are not
	// argon2id PHC digests.
	ErrMalformedDigest = errors.New("malformed secret digest")

	// ErrIncompatibleVersion is returned by Verify for digests produced by
	// another argon2 version.
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
)
