package value

import (
	"errors"
	"fmt"
	"time"

	"google.golang.org/genproto/googleapis/type/date"
	"google.golang.org/genproto/googleapis/type/timeofday"
)

var (
	ErrIncompleteDate = errors.New("date message has no full year, month and day")
	ErrInvalidTime    = errors.New("time of day message out of range")
)

// DateFromProto converts a google.type.Date. Partial dates (zero year, month
// or day) have no spreadsheet equivalent and are rejected.
func DateFromProto(d *date.Date) (Date, error) {
	if d == nil || d.GetYear() == 0 || d.GetMonth() == 0 || d.GetDay() == 0 {
		return Date{}, ErrIncompleteDate
	}

	return NewDate(int(d.GetYear()), time.Month(d.GetMonth()), int(d.GetDay())), nil
}

// Proto returns the date as a google.type.Date.
func (d Date) Proto() *date.Date {
	return &date.Date{Year: int32(d.Year), Month: int32(d.Month), Day: int32(d.Day)}
}

// TimeFromProto converts a google.type.TimeOfDay. The leap second 60 and the
// end-of-day 24:00:00 are not representable.
func TimeFromProto(t *timeofday.TimeOfDay) (Time, error) {
	if t == nil {
		return Time{}, ErrInvalidTime
	}

	h, m, s, n := int(t.GetHours()), int(t.GetMinutes()), int(t.GetSeconds()), int(t.GetNanos())
	if h < 0 || h > 23 || m < 0 || m > 59 || s < 0 || s > 59 || n < 0 || n >= int(time.Second) {
		return Time{}, fmt.Errorf("%w: %02d:%02d:%02d.%09d", ErrInvalidTime, h, m, s, n)
	}

	return NewTime(h, m, s, n), nil
}

// Proto returns the time as a google.type.TimeOfDay.
func (t Time) Proto() *timeofday.TimeOfDay {
	return &timeofday.TimeOfDay{
		Hours:   int32(t.Hour()),
		Minutes: int32(t.Minute()),
		Seconds: int32(t.Second()),
		Nanos:   int32(t.Nanosecond()),
	}
}
