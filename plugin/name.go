package plugin

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// MaxNameLength is the longest accepted Name, in characters.
const MaxNameLength = 255

var ErrInvalidName = errors.New("invalid name")

// Name identifies a plugin instance. It starts with a letter followed by
// letters, digits or hyphens. Names are case-sensitive.
type Name string

// ParseName validates s as a Name.
func ParseName(s string) (Name, error) {
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidName)
	}

	if n := utf8.RuneCountInString(s); n > MaxNameLength {
		return "", fmt.Errorf("%w: length %d greater than %d", ErrInvalidName, n, MaxNameLength)
	}

	for i, r := range s {
		if unicode.IsLetter(r) || (i > 0 && (unicode.IsDigit(r) || r == '-')) {
			continue
		}

		return "", fmt.Errorf("%w: invalid character %q at %d in %q", ErrInvalidName, r, i, s)
	}

	return Name(s), nil
}

// MustName is ParseName that panics on invalid input, for static names.
func MustName(s string) Name {
	n, err := ParseName(s)
	if err != nil {
		panic(err)
	}

	return n
}

func (n Name) String() string {
	return string(n)
}
