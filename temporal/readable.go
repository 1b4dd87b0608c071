// Package temporal provides the date-time value types: instants, durations,
// periods, intervals and partial dates.
//
// The Readable* interfaces are the generic dispatch surface used by the
// convert package, any type implementing one of them can be fed to the
// corresponding converter family.
package temporal

import (
	"github.com/curtisnewbie/chronon/chrono"
)

// Readable instant in time, milliseconds since unix epoch.
type ReadableInstant interface {
	Millis() int64
	Chronology() chrono.Chronology
}

// Readable duration of time in milliseconds.
type ReadableDuration interface {
	DurationMillis() int64
}

// Readable period of time described in calendar fields.
type ReadablePeriod interface {
	PeriodValues() PeriodValues
}

// Readable time interval between two instants.
type ReadableInterval interface {
	StartMillis() int64
	EndMillis() int64
	Chronology() chrono.Chronology
}

// Readable partial date-time, a consistent subset of datetime fields.
//
// Fields are ordered from the largest unit to the smallest.
type ReadablePartial interface {
	Fields() []chrono.Field
	Value(i int) int
	Chronology() chrono.Chronology
}
