package user

import "golang.org/x/crypto/bcrypt"

// PasswordScheme is the single point where credentials are stored and
// compared, so the comparison can be hardened without touching session logic.
type PasswordScheme interface {
	// Hash converts a raw password into its stored form.
	Hash(pwd string) (string, error)
	// Match reports whether a supplied raw password matches the stored form.
	Match(stored, supplied string) bool
}

type (
	// PlainScheme stores and compares raw passwords. This matches the legacy
	// storage layout; do not pick it for anything beyond demo data.
	PlainScheme struct{}

	// BcryptScheme stores bcrypt hashes.
	BcryptScheme struct{}
)

var (
	_ PasswordScheme = (*PlainScheme)(nil)
	_ PasswordScheme = (*BcryptScheme)(nil)
)

func (PlainScheme) Hash(pwd string) (string, error) { return pwd, nil }

func (PlainScheme) Match(stored, supplied string) bool { return stored == supplied }

func (BcryptScheme) Hash(pwd string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (BcryptScheme) Match(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}

// SchemeFromName maps a configured scheme name to an implementation,
// defaulting to plain for unknown names.
func SchemeFromName(name string) PasswordScheme {
	if name == "bcrypt" {
		return BcryptScheme{}
	}
	return PlainScheme{}
}
