package catalog

import (
	"errors"
	"regexp"
)

// KeyFormat decides whether a string is acceptable as a course key. The
// check must be pure: it may not depend on catalog contents.
type KeyFormat interface {
	// Validate returns nil for a well-formed key and a descriptive error
	// otherwise.
	Validate(key string) error
}

// maxKeyLength is a defensive bound; no real course key comes close.
const maxKeyLength = 20

// keyPattern matches a 2-4 letter subject prefix followed by a course
// number of at least 3 digits, e.g. "CS101" or "MATH2010".
var keyPattern = regexp.MustCompile(`^[A-Za-z]{2,4}[0-9]{3,}$`)

// StandardKeyFormat is the default course key format: 2-4 alphabetic
// characters followed by 3 or more digits, nothing else, at most 20
// characters in total.
type StandardKeyFormat struct{}

// Validate implements KeyFormat.
func (StandardKeyFormat) Validate(key string) error {
	if key == "" {
		return errors.New("key is empty")
	}
	if len(key) > maxKeyLength {
		return errors.New("key is too long")
	}
	if !keyPattern.MatchString(key) {
		return errors.New("key must be 2-4 letters followed by at least 3 digits")
	}
	return nil
}
