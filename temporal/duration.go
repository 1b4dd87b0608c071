package temporal

import (
	"strconv"
	"time"

	"github.com/curtisnewbie/chronon/util/strutil"
)

// Duration of time in milliseconds, unaware of calendar fields.
type Duration struct {
	millis int64
}

func NewDuration(millis int64) Duration {
	return Duration{millis: millis}
}

// Duration between two instants.
func DurationBetween(start Instant, end Instant) Duration {
	return Duration{millis: end.Millis() - start.Millis()}
}

func (d Duration) DurationMillis() int64 {
	return d.millis
}

func (d Duration) Neg() Duration {
	return Duration{millis: -d.millis}
}

func (d Duration) IsZero() bool {
	return d.millis == 0
}

func (d Duration) Std() time.Duration {
	return time.Duration(d.millis) * time.Millisecond
}

// Canonical ISO-8601 seconds representation, e.g., "PT130.567S", "PT-0.001S".
func (d Duration) String() string {
	ms := d.millis
	neg := ms < 0
	ums := uint64(ms)
	if neg {
		ums = -ums
	}
	secs := ums / 1000
	frac := ums % 1000

	b := []byte("PT")
	if neg {
		b = append(b, '-')
	}
	b = strconv.AppendUint(b, secs, 10)
	if frac != 0 {
		b = append(b, '.')
		b = append(b, strutil.PadNum(int(frac), 3)...)
	}
	b = append(b, 'S')
	return string(b)
}
