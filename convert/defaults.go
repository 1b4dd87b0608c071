package convert

import (
	stdjson "encoding/json"
	"reflect"
	"strings"
	"time"

	"github.com/curtisnewbie/chronon/chrono"
	"github.com/curtisnewbie/chronon/format"
	"github.com/curtisnewbie/chronon/temporal"
	"github.com/curtisnewbie/chronon/util/errs"
	"github.com/spf13/cast"
)

var (
	typString     = reflect.TypeOf("")
	typInt64      = reflect.TypeOf(int64(0))
	typInt        = reflect.TypeOf(int(0))
	typTime       = reflect.TypeOf(time.Time{})
	typJsonNumber = reflect.TypeOf(stdjson.Number(""))

	typReadableInstant  = reflect.TypeOf((*temporal.ReadableInstant)(nil)).Elem()
	typReadableDuration = reflect.TypeOf((*temporal.ReadableDuration)(nil)).Elem()
	typReadablePeriod   = reflect.TypeOf((*temporal.ReadablePeriod)(nil)).Elem()
	typReadableInterval = reflect.TypeOf((*temporal.ReadableInterval)(nil)).Elem()
	typReadablePartial  = reflect.TypeOf((*temporal.ReadablePartial)(nil)).Elem()
)

// Handler for untyped nil input: "now" for instants and partials, zero for
// durations and periods, a zero-length interval anchored at the current
// instant.
var nilConverter = NewConverter(nil, Funcs{
	InstantMillis: func(v any, c chrono.Chronology) (int64, error) {
		return time.Now().UnixMilli(), nil
	},
	DurationMillis: func(v any) (int64, error) {
		return 0, nil
	},
	Period: func(v any, c chrono.Chronology) (temporal.PeriodValues, error) {
		return temporal.PeriodValues{}, nil
	},
	SetInterval: func(w IntervalWriter, v any, c chrono.Chronology) error {
		now := time.Now().UnixMilli()
		w.SetInterval(now, now)
		w.SetChronology(c)
		return nil
	},
	PartialValues: func(req temporal.ReadablePartial, v any, c chrono.Chronology) ([]int, error) {
		return partialFromMillis(req, time.Now().UnixMilli(), c), nil
	},
})

// Handler for textual input, covers all five families.
var stringConverter = NewConverter(typString, Funcs{
	InstantMillis: func(v any, c chrono.Chronology) (int64, error) {
		t, err := temporal.ParseDateTime(v.(string), c.Zone())
		if err != nil {
			return 0, err
		}
		return t.UnixMilli(), nil
	},
	DurationMillis: func(v any) (int64, error) {
		return format.ParseDurationSeconds(v.(string))
	},
	Period: func(v any, c chrono.Chronology) (temporal.PeriodValues, error) {
		return format.ParsePeriod(v.(string))
	},
	SetInterval: stringSetInterval,
	PartialValues: func(req temporal.ReadablePartial, v any, c chrono.Chronology) ([]int, error) {
		t, err := temporal.ParseDateTime(v.(string), c.Zone())
		if err != nil {
			return nil, err
		}
		return partialFromMillis(req, t.UnixMilli(), c), nil
	},
})

// Handler for time.Time, the chronology zone is read from the value itself.
var timeConverter = NewConverter(typTime, Funcs{
	InstantMillis: func(v any, c chrono.Chronology) (int64, error) {
		return v.(time.Time).UnixMilli(), nil
	},
	PartialValues: func(req temporal.ReadablePartial, v any, c chrono.Chronology) ([]int, error) {
		return partialFromMillis(req, v.(time.Time).UnixMilli(), c), nil
	},
	Chronology: func(v any, zone *time.Location) chrono.Chronology {
		if zone != nil {
			return chrono.ISO(zone)
		}
		loc := v.(time.Time).Location()
		if loc == nil {
			loc = chrono.DefaultZone()
		}
		return chrono.ISO(loc)
	},
})

var int64Converter = NewConverter(typInt64, Funcs{
	InstantMillis: func(v any, c chrono.Chronology) (int64, error) {
		return v.(int64), nil
	},
	DurationMillis: func(v any) (int64, error) {
		return v.(int64), nil
	},
})

var intConverter = NewConverter(typInt, Funcs{
	InstantMillis: func(v any, c chrono.Chronology) (int64, error) {
		return cast.ToInt64E(v)
	},
	DurationMillis: func(v any) (int64, error) {
		return cast.ToInt64E(v)
	},
})

// Handler for json.Number, i.e., numbers decoded from json in number mode,
// interpreted as epoch/duration milliseconds.
var jsonNumberConverter = NewConverter(typJsonNumber, Funcs{
	InstantMillis: func(v any, c chrono.Chronology) (int64, error) {
		return jsonNumberMillis(v)
	},
	DurationMillis: jsonNumberMillis,
})

var readableInstantConverter = NewConverter(typReadableInstant, Funcs{
	InstantMillis: func(v any, c chrono.Chronology) (int64, error) {
		return v.(temporal.ReadableInstant).Millis(), nil
	},
	PartialValues: func(req temporal.ReadablePartial, v any, c chrono.Chronology) ([]int, error) {
		return partialFromMillis(req, v.(temporal.ReadableInstant).Millis(), c), nil
	},
	Chronology: readableInstantChronology,
})

var readableDurationConverter = NewConverter(typReadableDuration, Funcs{
	DurationMillis: func(v any) (int64, error) {
		return v.(temporal.ReadableDuration).DurationMillis(), nil
	},
	Period: func(v any, c chrono.Chronology) (temporal.PeriodValues, error) {
		return millisPeriodValues(v.(temporal.ReadableDuration).DurationMillis()), nil
	},
})

var readablePeriodConverter = NewConverter(typReadablePeriod, Funcs{
	Period: func(v any, c chrono.Chronology) (temporal.PeriodValues, error) {
		return v.(temporal.ReadablePeriod).PeriodValues(), nil
	},
})

var readableIntervalConverter = NewConverter(typReadableInterval, Funcs{
	DurationMillis: func(v any) (int64, error) {
		i := v.(temporal.ReadableInterval)
		return i.EndMillis() - i.StartMillis(), nil
	},
	Period: func(v any, c chrono.Chronology) (temporal.PeriodValues, error) {
		i := v.(temporal.ReadableInterval)
		return millisPeriodValues(i.EndMillis() - i.StartMillis()), nil
	},
	SetInterval: func(w IntervalWriter, v any, c chrono.Chronology) error {
		i := v.(temporal.ReadableInterval)
		w.SetInterval(i.StartMillis(), i.EndMillis())
		w.SetChronology(c)
		return nil
	},
	Chronology: func(v any, zone *time.Location) chrono.Chronology {
		ch := v.(temporal.ReadableInterval).Chronology()
		if ch == nil {
			ch = chrono.ISODefault()
		}
		if zone != nil {
			ch = ch.WithZone(zone)
		}
		return ch
	},
})

var readablePartialConverter = NewConverter(typReadablePartial, Funcs{
	PartialValues: func(req temporal.ReadablePartial, v any, c chrono.Chronology) ([]int, error) {
		p := v.(temporal.ReadablePartial)
		pf := p.Fields()
		fields := req.Fields()
		vals := make([]int, len(fields))
		for i, f := range fields {
			found := false
			for j, owned := range pf {
				if owned == f {
					vals[i] = p.Value(j)
					found = true
					break
				}
			}
			if !found {
				return nil, errs.ErrIllegalArgument.WithInternalMsg("partial does not carry requested field: %v", f)
			}
		}
		return vals, nil
	},
	Chronology: func(v any, zone *time.Location) chrono.Chronology {
		ch := v.(temporal.ReadablePartial).Chronology()
		if ch == nil {
			ch = chrono.ISODefault()
		}
		if zone != nil {
			ch = ch.WithZone(zone)
		}
		return ch
	},
})

func readableInstantChronology(v any, zone *time.Location) chrono.Chronology {
	ch := v.(temporal.ReadableInstant).Chronology()
	if ch == nil {
		ch = chrono.ISODefault()
	}
	if zone != nil {
		ch = ch.WithZone(zone)
	}
	return ch
}

func partialFromMillis(req temporal.ReadablePartial, millis int64, c chrono.Chronology) []int {
	fields := req.Fields()
	vals := make([]int, len(fields))
	for i, f := range fields {
		vals[i] = c.Get(f, millis)
	}
	return vals
}

func jsonNumberMillis(v any) (int64, error) {
	n := v.(stdjson.Number)
	ms, err := n.Int64()
	if err != nil {
		return 0, errs.ErrInvalidFormat.WithInternalMsg("invalid numeric milliseconds: '%s'", n.String())
	}
	return ms, nil
}

// Split a millisecond length into precise period fields, days downwards.
func millisPeriodValues(ms int64) temporal.PeriodValues {
	return temporal.PeriodValues{
		Days:    int(ms / 86400000),
		Hours:   int(ms % 86400000 / 3600000),
		Minutes: int(ms % 3600000 / 60000),
		Seconds: int(ms % 60000 / 1000),
		Millis:  int(ms % 1000),
	}
}

// Parse an interval literal, 'start/end' where each side is either an
// absolute date-time or a period expression (leading P). At most one side
// may be a period, the other absolute side anchors it.
func stringSetInterval(w IntervalWriter, v any, ch chrono.Chronology) error {
	s := v.(string)
	sep := strings.Index(s, "/")
	if sep < 0 {
		return errs.ErrInvalidFormat.WithInternalMsg("invalid interval, missing '/' separator: '%s'", s)
	}
	left, right := s[:sep], s[sep+1:]
	if left == "" || right == "" {
		return errs.ErrInvalidFormat.WithInternalMsg("invalid interval, empty side: '%s'", s)
	}
	leftPeriod := left[0] == 'P' || left[0] == 'p'
	rightPeriod := right[0] == 'P' || right[0] == 'p'
	if leftPeriod && rightPeriod {
		return errs.ErrInvalidFormat.WithInternalMsg("invalid interval, both sides are periods: '%s'", s)
	}

	var start, end int64
	switch {
	case leftPeriod:
		pv, err := format.ParsePeriod(left)
		if err != nil {
			return err
		}
		endT, err := temporal.ParseDateTime(right, ch.Zone())
		if err != nil {
			return err
		}
		end = endT.UnixMilli()
		start = pv.SubtractFrom(endT).UnixMilli()
	case rightPeriod:
		startT, err := temporal.ParseDateTime(left, ch.Zone())
		if err != nil {
			return err
		}
		pv, err := format.ParsePeriod(right)
		if err != nil {
			return err
		}
		start = startT.UnixMilli()
		end = pv.AddTo(startT).UnixMilli()
	default:
		startT, err := temporal.ParseDateTime(left, ch.Zone())
		if err != nil {
			return err
		}
		endT, err := temporal.ParseDateTime(right, ch.Zone())
		if err != nil {
			return err
		}
		start, end = startT.UnixMilli(), endT.UnixMilli()
	}

	if end < start {
		return errs.ErrIllegalArgument.WithInternalMsg("interval end is before start: '%s'", s)
	}
	w.SetInterval(start, end)
	w.SetChronology(ch)
	return nil
}

func mustNewSet(converters ...*Converter) *Set {
	s, err := NewSet(converters...)
	if err != nil {
		panic(err)
	}
	return s
}

func defaultInstantSet() *Set {
	return mustNewSet(readableInstantConverter, stringConverter, timeConverter, jsonNumberConverter, int64Converter, intConverter, nilConverter)
}

func defaultPartialSet() *Set {
	return mustNewSet(readablePartialConverter, readableInstantConverter, stringConverter, timeConverter, nilConverter)
}

func defaultDurationSet() *Set {
	return mustNewSet(readableDurationConverter, readableIntervalConverter, stringConverter, jsonNumberConverter, int64Converter, intConverter, nilConverter)
}

func defaultPeriodSet() *Set {
	return mustNewSet(readablePeriodConverter, readableIntervalConverter, readableDurationConverter, stringConverter, nilConverter)
}

func defaultIntervalSet() *Set {
	return mustNewSet(readableIntervalConverter, stringConverter, nilConverter)
}
