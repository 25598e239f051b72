package convert

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mP1/walkingkooka-spreadsheet-sub024/value"
)

const (
	trueText  = "TRUE"
	falseText = "FALSE"
)

var (
	extraTimeLayouts = []string{
		"15:04",
		"3:04 PM",
		"3:04:05 PM",
	}
	extraDateTimeLayouts = []string{
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
		"2006-01-02 15:04",
	}
)

func formatBoolean(b bool, _ Context) (any, error) {
	if b {
		return trueText, nil
	}

	return falseText, nil
}

// parseBoolean accepts "true" and "false" in any case.
func parseBoolean(s string, _ Context) (any, error) {
	switch s = strings.TrimSpace(s); {
	case strings.EqualFold(s, trueText):
		return true, nil
	case strings.EqualFold(s, falseText):
		return false, nil
	default:
		return nil, fmt.Errorf("%w: %q is not a boolean", ErrConversionFailed, s)
	}
}

// formatNumber writes the plain digits with the context decimal separator
// and no grouping.
func formatNumber(n value.Number, ctx Context) (any, error) {
	s := n.String()
	if sep := ctx.DecimalSeparator(); sep != '.' {
		s = strings.Replace(s, ".", string(sep), 1)
	}

	return s, nil
}

// parseNumber accepts an optional sign, group separators, the context
// decimal separator, an exponent and a trailing percent sign.
func parseNumber(s string, ctx Context) (any, error) {
	text := strings.TrimSpace(s)

	percent := strings.HasSuffix(text, "%")
	if percent {
		text = strings.TrimSpace(strings.TrimSuffix(text, "%"))
	}

	decimalSep, groupSep := ctx.DecimalSeparator(), ctx.GroupSeparator()

	var b strings.Builder

	for _, r := range text {
		switch r {
		case groupSep:
		case decimalSep:
			b.WriteByte('.')
		default:
			b.WriteRune(r)
		}
	}

	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", ErrConversionFailed, s)
	}

	if percent {
		d = d.Shift(-2)
	}

	return ctx.NumberKind().FromDecimal(d), nil
}

func formatDate(d value.Date, ctx Context) (any, error) {
	return d.Time().Format(ctx.DateLayout()), nil
}

func parseDate(s string, ctx Context) (any, error) {
	t, err := parseLayouts(s, ctx, ctx.DateLayout(), DefaultDateLayout)
	if err != nil {
		return nil, err
	}

	return value.DateOf(t), nil
}

func formatDateTime(t time.Time, ctx Context) (any, error) {
	return t.Format(ctx.DateTimeLayout()), nil
}

func parseDateTime(s string, ctx Context) (any, error) {
	layouts := append([]string{ctx.DateTimeLayout(), DefaultDateTimeLayout}, extraDateTimeLayouts...)
	return parseLayouts(s, ctx, layouts...)
}

func formatTime(t value.Time, ctx Context) (any, error) {
	return t.OnEpoch().Format(ctx.TimeLayout()), nil
}

func parseTime(s string, ctx Context) (any, error) {
	layouts := append([]string{ctx.TimeLayout(), DefaultTimeLayout}, extraTimeLayouts...)

	t, err := parseLayouts(s, ctx, layouts...)
	if err != nil {
		return nil, err
	}

	return value.TimeOf(t), nil
}

// parseLayouts tries each layout in order. Two digit years are placed in
// the century selected by the context pivot.
func parseLayouts(s string, ctx Context, layouts ...string) (time.Time, error) {
	text := strings.TrimSpace(s)

	for _, layout := range layouts {
		t, err := time.Parse(layout, text)
		if err != nil {
			continue
		}

		if strings.Contains(layout, "06") && !strings.Contains(layout, "2006") {
			t = pivotYear(t, ctx.TwoDigitYear())
		}

		return t, nil
	}

	return time.Time{}, fmt.Errorf("%w: %q does not match %s", ErrConversionFailed, s, strings.Join(layouts, " or "))
}

func pivotYear(t time.Time, pivot int) time.Time {
	yy := t.Year() % 100

	year := 1900 + yy
	if yy < pivot {
		year = 2000 + yy
	}

	return t.AddDate(year-t.Year(), 0, 0)
}
