package chrono

// Datetime field supported by a [Chronology].
//
// Fields are declared from the largest unit to the smallest, partial dates
// rely on this ordering.
type Field int

const (
	Year Field = iota
	MonthOfYear
	DayOfMonth
	DayOfYear
	DayOfWeek
	HourOfDay
	MinuteOfHour
	SecondOfMinute
	MillisOfSecond
)

var fieldNames = map[Field]string{
	Year:           "year",
	MonthOfYear:    "monthOfYear",
	DayOfMonth:     "dayOfMonth",
	DayOfYear:      "dayOfYear",
	DayOfWeek:      "dayOfWeek",
	HourOfDay:      "hourOfDay",
	MinuteOfHour:   "minuteOfHour",
	SecondOfMinute: "secondOfMinute",
	MillisOfSecond: "millisOfSecond",
}

func (f Field) String() string {
	if n, ok := fieldNames[f]; ok {
		return n
	}
	return "unknown"
}

// Check if the field is one of the supported fields.
func (f Field) Valid() bool {
	_, ok := fieldNames[f]
	return ok
}
