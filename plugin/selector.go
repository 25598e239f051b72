package plugin

import (
	"strings"
)

// Selector is a Name with free text parameters interpreted by the provider
// of that name.
type Selector struct {
	Name   Name
	Params string
}

// NewSelector returns a selector with trimmed parameters.
func NewSelector(name Name, params string) Selector {
	return Selector{Name: name, Params: strings.TrimSpace(params)}
}

// ParseSelector splits text at the first space into a Name and parameters.
func ParseSelector(text string) (Selector, error) {
	text = strings.TrimSpace(text)
	nameText, params, _ := strings.Cut(text, " ")

	name, err := ParseName(nameText)
	if err != nil {
		return Selector{}, err
	}

	return NewSelector(name, params), nil
}

// MustSelector is ParseSelector that panics on invalid input.
func MustSelector(text string) Selector {
	s, err := ParseSelector(text)
	if err != nil {
		panic(err)
	}

	return s
}

// String returns the text ParseSelector accepts.
func (s Selector) String() string {
	if s.Params == "" {
		return s.Name.String()
	}

	return s.Name.String() + " " + s.Params
}
