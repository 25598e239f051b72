package reference

// MaxLabelLength bounds label text.
const MaxLabelLength = 255

// Label is a named alias for another selection, resolved through a context.
type Label string

func (l Label) Kind() Kind     { return KindLabel }
func (l Label) Axis() Axis     { return AxisNone }
func (l Label) String() string { return string(l) }

// ParseLabel validates label text: a letter, underscore or backslash first,
// then letters, digits, underscores or dots. Text that is also a valid cell
// reference is rejected.
func ParseLabel(text string) (Label, error) {
	if text == "" {
		return "", emptyText(text, 0, "label")
	}

	if len(text) > MaxLabelLength {
		return "", &ParseError{Text: text, Pos: MaxLabelLength, Message: "Label too long"}
	}

	for i, r := range text {
		switch {
		case isLetter(r), r == '_', r == '\\':
		case i > 0 && (isDigit(r) || r == '.'):
		default:
			return "", invalidCharacter(text, i)
		}
	}

	if _, err := ParseCell(text); err == nil {
		return "", &ParseError{Text: text, Pos: 0, Message: "Label is a cell reference"}
	}

	return Label(text), nil
}
