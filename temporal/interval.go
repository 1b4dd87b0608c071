package temporal

import (
	"fmt"

	"github.com/curtisnewbie/chronon/chrono"
	"github.com/curtisnewbie/chronon/util/errs"
)

// Immutable time interval between two instants, start inclusive, end exclusive.
type Interval struct {
	start int64
	end   int64
	chron chrono.Chronology
}

// Create interval, end must not be before start.
func NewInterval(startMillis int64, endMillis int64, c chrono.Chronology) (Interval, error) {
	if endMillis < startMillis {
		return Interval{}, errs.ErrIllegalArgument.WithInternalMsg("interval end %v is before start %v", endMillis, startMillis)
	}
	return Interval{start: startMillis, end: endMillis, chron: c}, nil
}

func (i Interval) StartMillis() int64 {
	return i.start
}

func (i Interval) EndMillis() int64 {
	return i.end
}

// Chronology of the interval, never nil.
func (i Interval) Chronology() chrono.Chronology {
	if i.chron == nil {
		return chrono.ISODefault()
	}
	return i.chron
}

func (i Interval) Start() Instant {
	return NewInstant(i.start, i.chron)
}

func (i Interval) End() Instant {
	return NewInstant(i.end, i.chron)
}

// Millisecond length of the interval as a Duration.
//
// Interval deliberately does not implement [ReadableDuration], an interval
// converts through the interval family, not the duration family.
func (i Interval) Duration() Duration {
	return NewDuration(i.end - i.start)
}

// Check whether the instant is within the interval, start inclusive, end exclusive.
func (i Interval) Contains(millis int64) bool {
	return millis >= i.start && millis < i.end
}

func (i Interval) String() string {
	return fmt.Sprintf("%v/%v", i.Start(), i.End())
}

// Mutable interval holder, the destination written by interval converters.
//
// Use [MutableInterval.Snapshot] to obtain the immutable value once populated.
// MutableInterval is not safe for concurrent use.
type MutableInterval struct {
	start int64
	end   int64
	chron chrono.Chronology
}

func (m *MutableInterval) SetInterval(startMillis int64, endMillis int64) {
	m.start = startMillis
	m.end = endMillis
}

func (m *MutableInterval) SetChronology(c chrono.Chronology) {
	m.chron = c
}

func (m *MutableInterval) StartMillis() int64 {
	return m.start
}

func (m *MutableInterval) EndMillis() int64 {
	return m.end
}

func (m *MutableInterval) Chronology() chrono.Chronology {
	if m.chron == nil {
		return chrono.ISODefault()
	}
	return m.chron
}

// Immutable snapshot of the current state, the holder can be reused afterwards.
func (m *MutableInterval) Snapshot() (Interval, error) {
	return NewInterval(m.start, m.end, m.chron)
}
