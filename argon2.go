package userauth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"golang.org/x/crypto/argon2"
)

// Fixed, deployment-wide argon2id cost parameters. The memory cost is the
// point: 64 MiB per guess keeps GPU and ASIC brute force expensive.
const (
	argon2Memory  = 64 * 1024 // KiB
	argon2Time    = 1
	argon2Threads = 1
	argon2SaltLen = 16
	argon2KeyLen  = 32
)

// ErrEmptyPassword is returned when attempting to hash an empty password.
var ErrEmptyPassword = goerrors.New("password must not be empty", goerrors.CategoryValidation)

// Argon2Hasher implements PasswordAuthenticator using argon2id with the
// package-level cost constants. Callers never supply parameters.
type Argon2Hasher struct{}

var _ PasswordAuthenticator = (*Argon2Hasher)(nil)

// NewArgon2Hasher returns the process-wide password hasher.
func NewArgon2Hasher() *Argon2Hasher {
	return &Argon2Hasher{}
}

// Hash produces a PHC-encoded argon2id digest of the password:
// $argon2id$v=19$m=65536,t=1,p=1$<salt>$<hash>
func (h *Argon2Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	salt := make([]byte, argon2SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", goerrors.Wrap(err, goerrors.CategoryInternal, "failed to generate salt")
	}

	key := argon2.IDKey([]byte(password), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)

	digest := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argon2Memory,
		argon2Time,
		argon2Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return digest, nil
}

// Verify recomputes the digest with the parameters encoded in it and
// compares in constant time. A mismatch is (false, nil); only a digest
// this hasher could not have produced is an error.
func (h *Argon2Hasher) Verify(digest, candidate string) (bool, error) {
	parts := strings.Split(digest, "$")
	if len(parts) != 6 {
		return false, goerrors.New("invalid password digest format", goerrors.CategoryInternal)
	}

	if parts[1] != "argon2id" {
		return false, goerrors.New("unsupported password digest algorithm: "+parts[1], goerrors.CategoryInternal)
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, goerrors.Wrap(err, goerrors.CategoryInternal, "invalid password digest version")
	}

	var memory, time, threads uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false, goerrors.Wrap(err, goerrors.CategoryInternal, "invalid password digest parameters")
	}

	if threads == 0 || threads > 255 {
		return false, goerrors.New("invalid password digest parallelism", goerrors.CategoryInternal)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, goerrors.Wrap(err, goerrors.CategoryInternal, "invalid password digest salt")
	}

	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, goerrors.Wrap(err, goerrors.CategoryInternal, "invalid password digest key")
	}

	if len(want) == 0 || len(want) > 1<<10 {
		return false, goerrors.New("invalid password digest key length", goerrors.CategoryInternal)
	}

	got := argon2.IDKey([]byte(candidate), salt, time, memory, uint8(threads), uint32(len(want)))

	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
