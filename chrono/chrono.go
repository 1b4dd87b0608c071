// Package chrono provides the calendar system engine used by the value types
// and the converter registry.
//
// A [Chronology] performs field arithmetic and validation on instants
// (milliseconds since unix epoch) for one calendar system in one time zone.
// Only the ISO-8601 calendar is implemented, backed by the proleptic-Gregorian
// arithmetic of the standard time package.
package chrono

import (
	"sync/atomic"
	"time"

	"github.com/curtisnewbie/chronon/util/errs"
	log "github.com/sirupsen/logrus"
)

// Calendar system scoped to a time zone.
//
// Implementations must be immutable and safe for concurrent use.
type Chronology interface {

	// Time zone of the chronology.
	Zone() *time.Location

	// Same chronology in the given zone.
	WithZone(zone *time.Location) Chronology

	// Same chronology in UTC.
	WithUTC() Chronology

	// Get field value of the instant.
	Get(f Field, instant int64) int

	// Add amount of field units to the instant.
	Add(f Field, instant int64, amount int) int64

	// Validate the field/value combination, fields are ordered from largest to smallest.
	Validate(fields []Field, values []int) error

	String() string
}

var defaultZone atomic.Pointer[time.Location]

// Change the default time zone used when no explicit zone is given.
//
// If name cannot be resolved, the previous default (initially time.Local) is kept.
func SetDefaultZone(name string) error {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Debugf("Failed to load zone '%v', default zone unchanged, %v", name, err)
		return errs.ErrIllegalArgument.Wrapf(err, "unknown time zone: %v", name)
	}
	defaultZone.Store(loc)
	return nil
}

// Default time zone, time.Local unless changed by [SetDefaultZone].
func DefaultZone() *time.Location {
	if z := defaultZone.Load(); z != nil {
		return z
	}
	return time.Local
}

// ISO chronology in the given zone, nil zone falls back to the default zone.
func ISO(zone *time.Location) Chronology {
	if zone == nil {
		zone = DefaultZone()
	}
	return isoChronology{zone: zone}
}

// ISO chronology in UTC.
func ISOUTC() Chronology {
	return isoChronology{zone: time.UTC}
}

// ISO chronology in the default zone.
func ISODefault() Chronology {
	return isoChronology{zone: DefaultZone()}
}

type isoChronology struct {
	zone *time.Location
}

func (c isoChronology) Zone() *time.Location {
	return c.zone
}

func (c isoChronology) WithZone(zone *time.Location) Chronology {
	if zone == nil {
		zone = DefaultZone()
	}
	return isoChronology{zone: zone}
}

func (c isoChronology) WithUTC() Chronology {
	return isoChronology{zone: time.UTC}
}

func (c isoChronology) String() string {
	return "ISOChronology[" + c.zone.String() + "]"
}

func (c isoChronology) Get(f Field, instant int64) int {
	t := time.UnixMilli(instant).In(c.zone)
	switch f {
	case Year:
		return t.Year()
	case MonthOfYear:
		return int(t.Month())
	case DayOfMonth:
		return t.Day()
	case DayOfYear:
		return t.YearDay()
	case DayOfWeek:
		// ISO numbering, Monday is 1, Sunday is 7
		wd := int(t.Weekday())
		if wd == 0 {
			wd = 7
		}
		return wd
	case HourOfDay:
		return t.Hour()
	case MinuteOfHour:
		return t.Minute()
	case SecondOfMinute:
		return t.Second()
	case MillisOfSecond:
		return t.Nanosecond() / int(time.Millisecond)
	}
	return 0
}

func (c isoChronology) Add(f Field, instant int64, amount int) int64 {
	t := time.UnixMilli(instant).In(c.zone)
	switch f {
	case Year:
		return t.AddDate(amount, 0, 0).UnixMilli()
	case MonthOfYear:
		return t.AddDate(0, amount, 0).UnixMilli()
	case DayOfMonth, DayOfYear, DayOfWeek:
		return t.AddDate(0, 0, amount).UnixMilli()
	case HourOfDay:
		return t.Add(time.Duration(amount) * time.Hour).UnixMilli()
	case MinuteOfHour:
		return t.Add(time.Duration(amount) * time.Minute).UnixMilli()
	case SecondOfMinute:
		return t.Add(time.Duration(amount) * time.Second).UnixMilli()
	case MillisOfSecond:
		return t.Add(time.Duration(amount) * time.Millisecond).UnixMilli()
	}
	return instant
}

// Validate the field/value combination.
//
// Each value is checked against its field range. Day-of-month is additionally
// checked against the month/year present in the same combination, e.g., 30
// is rejected for February.
func (c isoChronology) Validate(fields []Field, values []int) error {
	if len(fields) != len(values) {
		return errs.ErrIllegalArgument.WithInternalMsg("fields and values length mismatch: %v != %v", len(fields), len(values))
	}

	year, hasYear := 0, false
	month, hasMonth := 0, false
	for i, f := range fields {
		switch f {
		case Year:
			year, hasYear = values[i], true
		case MonthOfYear:
			month, hasMonth = values[i], true
		}
	}

	for i, f := range fields {
		v := values[i]
		switch f {
		case Year:
			// any year is representable
		case MonthOfYear:
			if v < 1 || v > 12 {
				return validateErr(f, v, 1, 12)
			}
		case DayOfMonth:
			max := 31
			if hasMonth {
				y := 2004 // leap year when the combination carries no year
				if hasYear {
					y = year
				}
				if month >= 1 && month <= 12 {
					max = daysInMonth(y, time.Month(month))
				}
			}
			if v < 1 || v > max {
				return validateErr(f, v, 1, max)
			}
		case DayOfYear:
			max := 366
			if hasYear && !isLeapYear(year) {
				max = 365
			}
			if v < 1 || v > max {
				return validateErr(f, v, 1, max)
			}
		case DayOfWeek:
			if v < 1 || v > 7 {
				return validateErr(f, v, 1, 7)
			}
		case HourOfDay:
			if v < 0 || v > 23 {
				return validateErr(f, v, 0, 23)
			}
		case MinuteOfHour:
			if v < 0 || v > 59 {
				return validateErr(f, v, 0, 59)
			}
		case SecondOfMinute:
			if v < 0 || v > 59 {
				return validateErr(f, v, 0, 59)
			}
		case MillisOfSecond:
			if v < 0 || v > 999 {
				return validateErr(f, v, 0, 999)
			}
		default:
			return errs.ErrIllegalArgument.WithInternalMsg("unsupported field: %v", f)
		}
	}
	return nil
}

func validateErr(f Field, v int, min int, max int) error {
	return errs.ErrIllegalArgument.WithInternalMsg("value %v for %v must be in range [%v, %v]", v, f, min, max)
}

func daysInMonth(year int, month time.Month) int {
	// day 0 of the next month is the last day of this month
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
