package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/secret_hasher_mock.go -package=mock

// SecretHasher turns secret field values into one-way digests before they
// are stored. The plaintext never leaves the process.
//
// Digests are self-describing PHC strings:
//
//	$argon2id$v=19$m=<memory KiB>,t=<time>,p=<threads>$<salt>$<key>
//
// so Verify works even after the default parameters change.
type SecretHasher interface {
	// Hash derives a digest of secret with a fresh random salt.
	Hash(secret string) (string, error)

	// Verify reports whether secret produces encoded. It returns
	// ErrMalformedDigest when encoded is not a digest produced by Hash.
	Verify(secret, encoded string) (bool, error)
}
