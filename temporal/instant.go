package temporal

import (
	"fmt"
	"strconv"
	"time"

	"github.com/curtisnewbie/chronon/chrono"
	"github.com/curtisnewbie/chronon/util/strutil"
)

// Instant on the time-line, milliseconds since unix epoch plus a chronology.
//
// The zero value is the epoch itself in the default chronology.
//
// Instant implements json Marshaler and Unmarshaler, it's marshalled as epoch
// milliseconds unless changed through [SetTimeMarshalFormat], and unmarshalled
// from epoch milliseconds or any of the registered textual formats.
type Instant struct {
	millis int64
	chron  chrono.Chronology
}

func NewInstant(millis int64, c chrono.Chronology) Instant {
	return Instant{millis: millis, chron: c}
}

// Current instant in the default chronology.
func NowInstant() Instant {
	return Instant{millis: time.Now().UnixMilli()}
}

// Wrap a time.Time, the chronology zone is taken from the time itself.
func WrapInstant(t time.Time) Instant {
	return Instant{millis: t.UnixMilli(), chron: chrono.ISO(t.Location())}
}

func (i Instant) Millis() int64 {
	return i.millis
}

// Chronology of the instant, never nil.
func (i Instant) Chronology() chrono.Chronology {
	if i.chron == nil {
		return chrono.ISODefault()
	}
	return i.chron
}

// Same instant with another chronology.
func (i Instant) WithChronology(c chrono.Chronology) Instant {
	return Instant{millis: i.millis, chron: c}
}

func (i Instant) Time() time.Time {
	return time.UnixMilli(i.millis).In(i.Chronology().Zone())
}

func (i Instant) Add(d Duration) Instant {
	return Instant{millis: i.millis + d.DurationMillis(), chron: i.chron}
}

func (i Instant) Before(o Instant) bool {
	return i.millis < o.millis
}

func (i Instant) After(o Instant) bool {
	return i.millis > o.millis
}

func (i Instant) Equal(o Instant) bool {
	return i.millis == o.millis
}

// Get a datetime field value of the instant.
func (i Instant) Get(f chrono.Field) int {
	return i.Chronology().Get(f, i.millis)
}

func (i Instant) String() string {
	return i.Time().Format("2006-01-02 15:04:05.999999 (MST)")
}

// Implements encoding/json Marshaler
func (i Instant) MarshalJSON() ([]byte, error) {
	var v string
	if instantMarshalFormat != "" {
		v = strutil.QuoteStr(i.Time().Format(instantMarshalFormat))
	} else {
		v = fmt.Sprintf("%d", i.millis) // epoch milli by default
	}
	return strutil.UnsafeStr2Byt(v), nil
}

// Implements encoding/json Unmarshaler.
func (i *Instant) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "" || s == "null" {
		return nil
	}
	millisec, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		s = strutil.UnquoteStr(s)
		t, xer := ParseDateTime(s, chrono.DefaultZone())
		if xer != nil {
			return fmt.Errorf("failed to UnmarshalJSON, tried epoch milliseconds format %w, tried textual formats %w", err, xer)
		}
		*i = WrapInstant(t)
		return nil
	}

	*i = Instant{millis: millisec}
	return nil
}
