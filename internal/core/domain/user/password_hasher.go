package user

type PasswordHasher interface {
	// HashPassword derives a salted one-way hash; every call salts anew,
	// so two hashes of the same password never compare equal. Equality
	// checks go through ValidatePassword only.
	HashPassword(password RawPassword) (PasswordHash, error)
	ValidatePassword(password RawPassword, hash PasswordHash) bool
}
