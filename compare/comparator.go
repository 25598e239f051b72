package compare

import (
	"cmp"
	"reflect"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mP1/walkingkooka-spreadsheet-sub024/convert"
	"github.com/mP1/walkingkooka-spreadsheet-sub024/value"
)

// Context is a conversion context that also supplies the converter used
// to bring cell values to the type of each comparator.
type Context interface {
	convert.Context
	Converter() convert.Converter
}

// NewContext pairs a conversion context with a converter.
func NewContext(ctx convert.Context, converter convert.Converter) Context {
	return basicContext{Context: ctx, converter: converter}
}

type basicContext struct {
	convert.Context
	converter convert.Converter
}

func (c basicContext) Converter() convert.Converter { return c.converter }

// Comparator orders two values of Type.
type Comparator interface {
	Type() reflect.Type
	// Compare receives values already converted to Type.
	Compare(a, b any, ctx Context) Ordering
}

// Of returns a comparator over values of type T.
func Of[T any](name string, compare func(a, b T, ctx Context) int) Comparator {
	return comparator[T]{name: name, compare: compare}
}

type comparator[T any] struct {
	name    string
	compare func(a, b T, ctx Context) int
}

func (c comparator[T]) Type() reflect.Type {
	return convert.TypeOf[T]()
}

func (c comparator[T]) Compare(a, b any, ctx Context) Ordering {
	return OrderingOf(c.compare(a.(T), b.(T), ctx))
}

func (c comparator[T]) String() string { return c.name }

// field compares a single integer derived from a value, such as the month of
// a date.
func field[T any](name string, get func(T) int) Comparator {
	return Of(name, func(a, b T, _ Context) int { return cmp.Compare(get(a), get(b)) })
}

var (
	textComparator = Of("text", func(a, b string, ctx Context) int {
		return textCollators.compare(ctx.Locale(), false, a, b)
	})
	textCaseInsensitiveComparator = Of("text-case-insensitive", func(a, b string, ctx Context) int {
		return textCollators.compare(ctx.Locale(), true, a, b)
	})
	numberComparator = Of("number", func(a, b value.Number, _ Context) int {
		return a.Cmp(b)
	})
	booleanComparator = Of("boolean", func(a, b bool, _ Context) int {
		return cmp.Compare(boolInt(a), boolInt(b))
	})
	dateComparator = Of("date", func(a, b value.Date, _ Context) int {
		return a.Compare(b)
	})
	dateTimeComparator = Of("date-time", func(a, b time.Time, _ Context) int {
		return a.Compare(b)
	})
	timeComparator = Of("time", func(a, b value.Time, _ Context) int {
		return a.Compare(b)
	})

	yearComparator        = field("year", func(d value.Date) int { return d.Year })
	monthOfYearComparator = field("month-of-year", func(d value.Date) int { return int(d.Month) })
	dayOfMonthComparator  = field("day-of-month", func(d value.Date) int { return d.Day })
	dayOfYearComparator   = field("day-of-year", value.Date.YearDay)
	// Monday is the first day of the week.
	dayOfWeekComparator = field("day-of-week", func(d value.Date) int { return (int(d.Weekday()) + 6) % 7 })

	hourOfDayComparator       = field("hour-of-day", value.Time.Hour)
	hourOfAmPmComparator      = field("hour-of-am-pm", func(t value.Time) int { return t.Hour() % 12 })
	minuteOfHourComparator    = field("minute-of-hour", value.Time.Minute)
	secondsOfMinuteComparator = field("seconds-of-minute", value.Time.Second)
	nanoOfSecondComparator    = field("nano-of-second", value.Time.Nanosecond)
)

func boolInt(b bool) int {
	if b {
		return 1
	}

	return 0
}

// A collate.Collator keeps scratch buffers and must not be shared between
// goroutines, so collators are pooled per locale.
var textCollators = &collators{pools: make(map[collatorKey]*sync.Pool)}

type collatorKey struct {
	tag        language.Tag
	ignoreCase bool
}

type collators struct {
	mu    sync.Mutex
	pools map[collatorKey]*sync.Pool
}

func (c *collators) compare(tag language.Tag, ignoreCase bool, a, b string) int {
	pool := c.pool(collatorKey{tag: tag, ignoreCase: ignoreCase})

	collator := pool.Get().(*collate.Collator)
	defer pool.Put(collator)

	return collator.CompareString(a, b)
}

func (c *collators) pool(key collatorKey) *sync.Pool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.pools[key]; ok {
		return p
	}

	var options []collate.Option
	if key.ignoreCase {
		options = append(options, collate.IgnoreCase)
	}

	p := &sync.Pool{New: func() any { return collate.New(key.tag, options...) }}
	c.pools[key] = p

	return p
}
