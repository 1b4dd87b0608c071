package temporal

import (
	"strconv"
	"time"
)

// Component values of a period, one value per calendar unit.
type PeriodValues struct {
	Years   int
	Months  int
	Weeks   int
	Days    int
	Hours   int
	Minutes int
	Seconds int
	Millis  int
}

func (v PeriodValues) IsZero() bool {
	return v == PeriodValues{}
}

func (v PeriodValues) Negated() PeriodValues {
	return PeriodValues{
		Years:   -v.Years,
		Months:  -v.Months,
		Weeks:   -v.Weeks,
		Days:    -v.Days,
		Hours:   -v.Hours,
		Minutes: -v.Minutes,
		Seconds: -v.Seconds,
		Millis:  -v.Millis,
	}
}

// Add the period to the time, calendar fields first, then the time fields.
func (v PeriodValues) AddTo(t time.Time) time.Time {
	t = t.AddDate(v.Years, v.Months, v.Weeks*7+v.Days)
	return t.Add(time.Duration(v.Hours)*time.Hour +
		time.Duration(v.Minutes)*time.Minute +
		time.Duration(v.Seconds)*time.Second +
		time.Duration(v.Millis)*time.Millisecond)
}

func (v PeriodValues) SubtractFrom(t time.Time) time.Time {
	return v.Negated().AddTo(t)
}

// Period of time described in calendar fields, e.g., "1 month and 2 days".
//
// Unlike [Duration], the millisecond length of a Period depends on the instant
// it's applied to.
type Period struct {
	vals PeriodValues
}

func NewPeriod(vals PeriodValues) Period {
	return Period{vals: vals}
}

func (p Period) PeriodValues() PeriodValues {
	return p.vals
}

func (p Period) IsZero() bool {
	return p.vals.IsZero()
}

func (p Period) Negated() Period {
	return Period{vals: p.vals.Negated()}
}

func (p Period) AddTo(t time.Time) time.Time {
	return p.vals.AddTo(t)
}

func (p Period) SubtractFrom(t time.Time) time.Time {
	return p.vals.SubtractFrom(t)
}

// ISO-8601 representation, e.g., "P1Y2M3DT4H5M6.007S". Zero period is "PT0S".
func (p Period) String() string {
	v := p.vals
	if v.IsZero() {
		return "PT0S"
	}

	b := []byte{'P'}
	appendComp := func(n int, unit byte) {
		if n != 0 {
			b = strconv.AppendInt(b, int64(n), 10)
			b = append(b, unit)
		}
	}
	appendComp(v.Years, 'Y')
	appendComp(v.Months, 'M')
	appendComp(v.Weeks, 'W')
	appendComp(v.Days, 'D')

	if v.Hours != 0 || v.Minutes != 0 || v.Seconds != 0 || v.Millis != 0 {
		b = append(b, 'T')
		appendComp(v.Hours, 'H')
		appendComp(v.Minutes, 'M')
		if v.Millis != 0 {
			ms := int64(v.Seconds)*1000 + int64(v.Millis)
			neg := ms < 0
			if neg {
				ms = -ms
			}
			if neg {
				b = append(b, '-')
			}
			b = strconv.AppendInt(b, ms/1000, 10)
			b = append(b, '.')
			frac := ms % 1000
			b = append(b, byte('0'+frac/100), byte('0'+(frac/10)%10), byte('0'+frac%10))
			b = append(b, 'S')
		} else {
			appendComp(v.Seconds, 'S')
		}
	}
	return string(b)
}
