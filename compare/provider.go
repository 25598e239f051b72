package compare

import (
	"github.com/mP1/walkingkooka-spreadsheet-sub024/plugin"
)

// Kind labels comparators in provider errors.
const Kind = "comparator"

const infoURL = "https://github.com/mP1/walkingkooka-spreadsheet-sub024/compare/"

var provider = plugin.NewRegistry(Kind,
	register("boolean", booleanComparator),
	register("date", dateComparator),
	register("date-time", dateTimeComparator),
	register("day-of-month", dayOfMonthComparator),
	register("day-of-week", dayOfWeekComparator),
	register("day-of-year", dayOfYearComparator),
	register("hour-of-am-pm", hourOfAmPmComparator),
	register("hour-of-day", hourOfDayComparator),
	register("minute-of-hour", minuteOfHourComparator),
	register("month-of-year", monthOfYearComparator),
	register("nano-of-second", nanoOfSecondComparator),
	register("number", numberComparator),
	register("seconds-of-minute", secondsOfMinuteComparator),
	register("text", textComparator),
	register("text-case-insensitive", textCaseInsensitiveComparator),
	register("time", timeComparator),
	register("year", yearComparator),
)

// Provider returns the built-in comparators by name.
func Provider() *plugin.Registry[Comparator] {
	return provider
}

func register(name string, c Comparator) plugin.Entry[Comparator] {
	return plugin.Fixed(Kind, plugin.Info{Name: plugin.MustName(name), URL: infoURL + name}, c)
}
