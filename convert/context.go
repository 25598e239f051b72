package convert

import (
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/mP1/walkingkooka-spreadsheet-sub024/reference"
	"github.com/mP1/walkingkooka-spreadsheet-sub024/value"
)

// Context supplies the locale dependent symbols and policies a conversion
// needs. Implementations must be safe for concurrent reads.
type Context interface {
	Locale() language.Tag
	// NumberKind is the representation of numbers produced by conversions.
	NumberKind() value.NumberKind
	// MissingNumber is what a nil value converts to when a number is wanted.
	MissingNumber() value.Number
	DecimalSeparator() rune
	GroupSeparator() rune
	// DateOffset is added to serial day numbers: 0 for the 1900 date system,
	// 1462 for the 1904 one.
	DateOffset() int64
	// TwoDigitYear is the pivot for two digit years: below it a year is in
	// the 2000s, otherwise the 1900s.
	TwoDigitYear() int
	DateLayout() string
	TimeLayout() string
	DateTimeLayout() string
	ResolveLabel(label reference.Label) (reference.Selection, bool)
	Logger() *zap.Logger
}

const (
	DefaultDateLayout     = "2006-01-02"
	DefaultTimeLayout     = "15:04:05"
	DefaultDateTimeLayout = "2006-01-02 15:04:05"
	DefaultTwoDigitYear   = 50
)

// BasicContext is a Context backed by plain fields. Zero fields fall back to
// the defaults of DefaultContext.
type BasicContext struct {
	Lang     language.Tag
	Kind     value.NumberKind
	Missing  *value.Number
	Decimal  rune
	Group    rune
	Offset   int64
	Pivot    int
	Date     string
	Time     string
	DateTime string
	Labels   map[reference.Label]reference.Selection
	Log      *zap.Logger
}

var _ Context = (*BasicContext)(nil)

// DefaultContext returns an en-US context producing decimal numbers.
func DefaultContext() *BasicContext {
	return &BasicContext{
		Lang:     language.AmericanEnglish,
		Kind:     value.NumberKindDecimal,
		Decimal:  '.',
		Group:    ',',
		Pivot:    DefaultTwoDigitYear,
		Date:     DefaultDateLayout,
		Time:     DefaultTimeLayout,
		DateTime: DefaultDateTimeLayout,
		Log:      zap.NewNop(),
	}
}

func (c *BasicContext) Locale() language.Tag {
	if c.Lang == language.Und {
		return language.AmericanEnglish
	}

	return c.Lang
}

func (c *BasicContext) NumberKind() value.NumberKind {
	if c.Kind == 0 {
		return value.NumberKindDecimal
	}

	return c.Kind
}

// MissingNumber returns the configured missing number, or zero of the
// context number kind.
func (c *BasicContext) MissingNumber() value.Number {
	if c.Missing != nil {
		return c.Missing.SetKind(c.NumberKind())
	}

	return c.NumberKind().Zero()
}

func (c *BasicContext) DecimalSeparator() rune {
	if c.Decimal == 0 {
		return '.'
	}

	return c.Decimal
}

func (c *BasicContext) GroupSeparator() rune {
	if c.Group == 0 {
		return ','
	}

	return c.Group
}

func (c *BasicContext) DateOffset() int64 { return c.Offset }

func (c *BasicContext) TwoDigitYear() int {
	if c.Pivot == 0 {
		return DefaultTwoDigitYear
	}

	return c.Pivot
}

func (c *BasicContext) DateLayout() string {
	return orDefault(c.Date, DefaultDateLayout)
}

func (c *BasicContext) TimeLayout() string {
	return orDefault(c.Time, DefaultTimeLayout)
}

func (c *BasicContext) DateTimeLayout() string {
	return orDefault(c.DateTime, DefaultDateTimeLayout)
}

func (c *BasicContext) ResolveLabel(label reference.Label) (reference.Selection, bool) {
	sel, ok := c.Labels[label]
	return sel, ok
}

func (c *BasicContext) Logger() *zap.Logger {
	if c.Log == nil {
		return zap.NewNop()
	}

	return c.Log
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}

	return s
}
