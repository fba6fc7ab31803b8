// Package session gates access to the punch view. It is a flag check, not
// authentication: the hosted version of this app only ever verified that a
// "loggedIn" marker was present, and this keeps the same contract.
package session

const (
	keyLoggedIn  = "loggedIn"
	keyUserEmail = "userEmail"
)

// KV is the slice of the store this package needs.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// LoggedIn reports whether the store holds the literal string "true" under
// the login key. Anything else, including a read error, counts as logged out.
func LoggedIn(kv KV) bool {
	v, ok, err := kv.Get(keyLoggedIn)
	return err == nil && ok && v == "true"
}

// Login records the flag and the user's email.
func Login(kv KV, email string) error {
	if err := kv.Set(keyLoggedIn, "true"); err != nil {
		return err
	}
	return kv.Set(keyUserEmail, email)
}

// Logout clears the session keys. Punch history is deliberately left alone.
func Logout(kv KV) error {
	if err := kv.Delete(keyLoggedIn); err != nil {
		return err
	}
	return kv.Delete(keyUserEmail)
}

// Email returns the stored user email, or "" when absent.
func Email(kv KV) string {
	v, _, _ := kv.Get(keyUserEmail)
	return v
}
