package value

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	// NanosPerDay is the number of nanoseconds in a day.
	NanosPerDay = int64(24 * time.Hour)

	secondsPerDay = 24 * 60 * 60
	dateLayout    = "2006-01-02"
)

// serialEpoch is day 0 of the 1900 date system. Day 1 is 1899-12-31.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// Date is a calendar date without a time or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate normalizes its arguments the way time.Date does, so day 0 means
// the last day of the previous month.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the date part of t, in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// DateFromSerial converts a serial day number into a date. Serial 0 is
// 1899-12-30; offset shifts the epoch, 1462 selects the 1904 date system.
func DateFromSerial(serial int64, offset int64) Date {
	return DateOf(serialEpoch.AddDate(0, 0, int(serial+offset)))
}

// Time returns midnight of the date in UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// Serial returns the number of days since 1899-12-30, minus offset. Days are
// counted in Unix seconds since a time.Duration only spans about 292 years.
func (d Date) Serial(offset int64) int64 {
	days := (d.Time().Unix() - serialEpoch.Unix()) / secondsPerDay
	return days - offset
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

func (d Date) YearDay() int {
	return d.Time().YearDay()
}

// Compare returns -1, 0 or 1.
func (d Date) Compare(other Date) int {
	return d.Time().Compare(other.Time())
}

// At combines the date with a time of day.
func (d Date) At(t Time) time.Time {
	return d.Time().Add(time.Duration(t.nanos))
}

func (d Date) String() string {
	return d.Time().Format(dateLayout)
}

// Time is a time of day with nanosecond precision. The zero Time is midnight.
type Time struct {
	nanos int64
}

// NewTime returns the time of day; it panics when any field is out of range.
func NewTime(hour, minute, second, nanosecond int) Time {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 ||
		nanosecond < 0 || nanosecond >= int(time.Second) {
		panic(fmt.Sprintf("invalid time %02d:%02d:%02d.%09d", hour, minute, second, nanosecond))
	}

	return Time{nanos: int64(hour)*int64(time.Hour) +
		int64(minute)*int64(time.Minute) +
		int64(second)*int64(time.Second) +
		int64(nanosecond)}
}

// TimeOf returns the clock part of t.
func TimeOf(t time.Time) Time {
	h, m, s := t.Clock()
	return NewTime(h, m, s, t.Nanosecond())
}

// TimeFromNanos wraps nanos into a single day, so negative values count back
// from midnight.
func TimeFromNanos(nanos int64) Time {
	nanos %= NanosPerDay
	if nanos < 0 {
		nanos += NanosPerDay
	}

	return Time{nanos: nanos}
}

// Nanos returns nanoseconds since midnight.
func (t Time) Nanos() int64 { return t.nanos }

func (t Time) Hour() int       { return int(t.nanos / int64(time.Hour)) }
func (t Time) Minute() int     { return int(t.nanos / int64(time.Minute) % 60) }
func (t Time) Second() int     { return int(t.nanos / int64(time.Second) % 60) }
func (t Time) Nanosecond() int { return int(t.nanos % int64(time.Second)) }

// Compare returns -1, 0 or 1.
func (t Time) Compare(other Time) int {
	switch {
	case t.nanos < other.nanos:
		return -1
	case t.nanos > other.nanos:
		return 1
	default:
		return 0
	}
}

// OnEpoch returns the time on the serial epoch date.
func (t Time) OnEpoch() time.Time {
	return serialEpoch.Add(time.Duration(t.nanos))
}

func (t Time) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
	if ns := t.Nanosecond(); ns != 0 {
		s += fmt.Sprintf(".%09d", ns)
	}

	return s
}

// FractionOfDay returns the time as a fraction of a day, the form used by
// serial date-times, in the given number kind.
func (t Time) FractionOfDay(kind NumberKind) Number {
	if kind == NumberKindDouble {
		return NewDouble(float64(t.nanos) / float64(NanosPerDay))
	}

	return NewDecimal(decimal.NewFromInt(t.nanos).Div(decimal.NewFromInt(NanosPerDay)))
}

// TimeFromFraction returns the time of day for the fractional part of n,
// rounded to the nearest nanosecond. The integer part is ignored.
func TimeFromFraction(n Number) Time {
	frac := n.Decimal().Sub(n.Decimal().Floor())
	nanos := frac.Mul(decimal.NewFromInt(NanosPerDay)).Round(0).IntPart()

	return TimeFromNanos(nanos)
}
