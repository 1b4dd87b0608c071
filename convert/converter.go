// Package convert implements the converter registry, a thread-safe,
// self-optimizing lookup structure mapping a runtime type to the most
// specific registered handler capable of extracting time values from an
// object of that type.
//
// Converters are capability-tagged records, one per supported input shape,
// organized in five families (instant, partial, duration, period, interval).
// Selection is by exact runtime type first, then by assignability with a
// most-specific-wins tie-break, results are cached per type.
package convert

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/curtisnewbie/chronon/chrono"
	"github.com/curtisnewbie/chronon/temporal"
	"github.com/curtisnewbie/chronon/util/errs"
)

// Extraction capability of a Converter, a bitmask.
type Capability uint8

const (
	CapInstant Capability = 1 << iota
	CapDuration
	CapPeriod
	CapInterval
	CapPartial
)

var capNames = []struct {
	c    Capability
	name string
}{
	{CapInstant, "instant"},
	{CapDuration, "duration"},
	{CapPeriod, "period"},
	{CapInterval, "interval"},
	{CapPartial, "partial"},
}

func (c Capability) Has(o Capability) bool {
	return c&o == o
}

func (c Capability) String() string {
	tok := []string{}
	for _, cn := range capNames {
		if c.Has(cn.c) {
			tok = append(tok, cn.name)
		}
	}
	if len(tok) == 0 {
		return "none"
	}
	return strings.Join(tok, "|")
}

// Destination written by interval extraction.
//
// Implemented by [temporal.MutableInterval].
type IntervalWriter interface {
	SetInterval(startMillis int64, endMillis int64)
	SetChronology(c chrono.Chronology)
}

// Extraction operations of a Converter, nil operations are simply not
// supported, the capability mask is derived from the non-nil ones.
//
// Each operation receives a value that is an exact instance of the
// converter's supported type, the chronology argument is never nil.
type Funcs struct {

	// Extract millisecond instant, invalid input is an error, never a sentinel value.
	InstantMillis func(v any, c chrono.Chronology) (int64, error)

	// Extract millisecond duration.
	DurationMillis func(v any) (int64, error)

	// Extract period component values.
	Period func(v any, c chrono.Chronology) (temporal.PeriodValues, error)

	// Extract interval bounds into the destination holder.
	SetInterval func(w IntervalWriter, v any, c chrono.Chronology) error

	// Extract one value per field requested by req, largest to smallest.
	PartialValues func(req temporal.ReadablePartial, v any, c chrono.Chronology) ([]int, error)

	// Resolve the chronology of the value, e.g., reading an embedded time
	// zone. Optional, the ISO chronology in the given (or default) zone is
	// used when absent. Must never return nil.
	Chronology func(v any, zone *time.Location) chrono.Chronology
}

// Capability-tagged extraction handler for one exact runtime type.
//
// Converters are stateless, immutable once created, and compared by identity
// within a [Set]. A nil supported type is the sentinel for untyped nil input.
type Converter struct {
	typ  reflect.Type
	caps Capability
	f    Funcs
}

// Create converter for the exact runtime type, nil typ handles untyped nil input.
func NewConverter(typ reflect.Type, f Funcs) *Converter {
	var caps Capability
	if f.InstantMillis != nil {
		caps |= CapInstant
	}
	if f.DurationMillis != nil {
		caps |= CapDuration
	}
	if f.Period != nil {
		caps |= CapPeriod
	}
	if f.SetInterval != nil {
		caps |= CapInterval
	}
	if f.PartialValues != nil {
		caps |= CapPartial
	}
	return &Converter{typ: typ, caps: caps, f: f}
}

// Exact runtime type this converter targets, nil for the untyped nil handler.
func (c *Converter) Type() reflect.Type {
	return c.typ
}

func (c *Converter) Caps() Capability {
	return c.caps
}

func (c *Converter) Supports(cap Capability) bool {
	return c.caps.Has(cap)
}

// Resolve the chronology for the value, never nil.
func (c *Converter) ChronologyOf(v any, zone *time.Location) chrono.Chronology {
	if c.f.Chronology != nil {
		if ch := c.f.Chronology(v, zone); ch != nil {
			return ch
		}
	}
	if zone != nil {
		return chrono.ISO(zone)
	}
	return chrono.ISODefault()
}

// Extract millisecond instant, nil chronology resolves via [Converter.ChronologyOf].
func (c *Converter) InstantMillis(v any, ch chrono.Chronology) (int64, error) {
	if c.f.InstantMillis == nil {
		return 0, c.unsupportedErr("instant")
	}
	if ch == nil {
		ch = c.ChronologyOf(v, nil)
	}
	return c.f.InstantMillis(v, ch)
}

// Extract millisecond duration.
func (c *Converter) DurationMillis(v any) (int64, error) {
	if c.f.DurationMillis == nil {
		return 0, c.unsupportedErr("duration")
	}
	return c.f.DurationMillis(v)
}

// Extract period component values.
func (c *Converter) Period(v any, ch chrono.Chronology) (temporal.PeriodValues, error) {
	if c.f.Period == nil {
		return temporal.PeriodValues{}, c.unsupportedErr("period")
	}
	if ch == nil {
		ch = c.ChronologyOf(v, nil)
	}
	return c.f.Period(v, ch)
}

// Extract interval bounds into the destination holder.
func (c *Converter) SetInterval(w IntervalWriter, v any, ch chrono.Chronology) error {
	if c.f.SetInterval == nil {
		return c.unsupportedErr("interval")
	}
	if w == nil {
		return errs.ErrIllegalArgument.WithInternalMsg("interval destination must not be nil")
	}
	if ch == nil {
		ch = c.ChronologyOf(v, nil)
	}
	return c.f.SetInterval(w, v, ch)
}

// Extract one value per field requested by req, then validate the
// combination through the chronology.
func (c *Converter) PartialValues(req temporal.ReadablePartial, v any, ch chrono.Chronology) ([]int, error) {
	if c.f.PartialValues == nil {
		return nil, c.unsupportedErr("partial")
	}
	if req == nil {
		return nil, errs.ErrIllegalArgument.WithInternalMsg("partial request must not be nil")
	}
	if ch == nil {
		ch = c.ChronologyOf(v, nil)
	}
	vals, err := c.f.PartialValues(req, v, ch)
	if err != nil {
		return nil, err
	}
	if err := ch.Validate(req.Fields(), vals); err != nil {
		return nil, err
	}
	return vals, nil
}

func (c *Converter) unsupportedErr(op string) error {
	return errs.ErrIllegalArgument.WithInternalMsg("converter for type %v does not support %s extraction", typeName(c.typ), op)
}

func (c *Converter) String() string {
	return fmt.Sprintf("Converter[%v, %v]", typeName(c.typ), c.caps)
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
