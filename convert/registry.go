package convert

import (
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/curtisnewbie/chronon/temporal"
	"github.com/curtisnewbie/chronon/util/errs"
	log "github.com/sirupsen/logrus"
)

// Permission hook consulted before any registry mutation.
//
// Returning an error aborts the mutation before any state is touched, the
// error is surfaced to the caller wrapped as NOT_PERMITTED.
type MutationGuard func(action string) error

// Registry of converters, five independent families: instant, partial,
// duration, period and interval.
//
// Lookups are lock-free, mutations swap the family's converter set through a
// compare-and-swap loop, so concurrent mutations never silently overwrite
// each other. Mutations rebuild the family's selection cache and are safe at
// any time but relatively expensive, avoid them on hot paths.
//
// Construct with [NewRegistry], or use the process-wide [Default] instance.
type Registry struct {
	guard    MutationGuard
	instant  atomic.Pointer[Set]
	partial  atomic.Pointer[Set]
	duration atomic.Pointer[Set]
	period   atomic.Pointer[Set]
	interval atomic.Pointer[Set]
}

// Create registry pre-seeded with the default converters of each family.
func NewRegistry() *Registry {
	return NewRegistryWithGuard(nil)
}

// Create registry with a mutation guard, nil guard allows all mutations.
func NewRegistryWithGuard(guard MutationGuard) *Registry {
	r := &Registry{guard: guard}
	r.instant.Store(defaultInstantSet())
	r.partial.Store(defaultPartialSet())
	r.duration.Store(defaultDurationSet())
	r.period.Store(defaultPeriodSet())
	r.interval.Store(defaultIntervalSet())
	return r
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Process-wide default registry, lazily constructed.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

func (r *Registry) checkGuard(action string) error {
	if r.guard == nil {
		return nil
	}
	if err := r.guard(action); err != nil {
		return errs.ErrNotPermitted.Wrapf(err, "%v rejected", action)
	}
	return nil
}

func (r *Registry) converterFor(slot *atomic.Pointer[Set], fam string, v any) (*Converter, error) {
	t := reflect.TypeOf(v)
	c, err := slot.Load().Select(t)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errs.ErrIllegalArgument.WithInternalMsg("no %s converter found for type: %v", fam, typeName(t))
	}
	return c, nil
}

func (r *Registry) addConverter(slot *atomic.Pointer[Set], fam string, cap Capability, c *Converter) (*Converter, error) {
	if c == nil {
		return nil, errs.ErrIllegalArgument.WithInternalMsg("converter must not be nil")
	}
	if !c.Supports(cap) {
		return nil, errs.ErrIllegalArgument.WithInternalMsg("converter for type %v does not support %s extraction", typeName(c.typ), fam)
	}
	if err := r.checkGuard("add " + fam + " converter"); err != nil {
		return nil, err
	}
	for {
		cur := slot.Load()
		ns, removed, err := cur.Add(c)
		if err != nil {
			return nil, err
		}
		if ns == cur {
			return removed, nil
		}
		if slot.CompareAndSwap(cur, ns) {
			log.Debugf("Added %s converter for type %v", fam, typeName(c.typ))
			return removed, nil
		}
	}
}

func (r *Registry) removeConverter(slot *atomic.Pointer[Set], fam string, c *Converter) (*Converter, error) {
	if c == nil {
		return nil, errs.ErrIllegalArgument.WithInternalMsg("converter must not be nil")
	}
	if err := r.checkGuard("remove " + fam + " converter"); err != nil {
		return nil, err
	}
	for {
		cur := slot.Load()
		ns, removed := cur.Remove(c)
		if ns == cur {
			return removed, nil
		}
		if slot.CompareAndSwap(cur, ns) {
			log.Debugf("Removed %s converter for type %v", fam, typeName(c.typ))
			return removed, nil
		}
	}
}

// Select the instant converter for the value's runtime type.
//
// Fails with ILLEGAL_ARGUMENT when no converter matches, with
// AMBIGUOUS_MATCH when several tie.
func (r *Registry) InstantConverterFor(v any) (*Converter, error) {
	return r.converterFor(&r.instant, "instant", v)
}

func (r *Registry) PartialConverterFor(v any) (*Converter, error) {
	return r.converterFor(&r.partial, "partial", v)
}

func (r *Registry) DurationConverterFor(v any) (*Converter, error) {
	return r.converterFor(&r.duration, "duration", v)
}

func (r *Registry) PeriodConverterFor(v any) (*Converter, error) {
	return r.converterFor(&r.period, "period", v)
}

func (r *Registry) IntervalConverterFor(v any) (*Converter, error) {
	return r.converterFor(&r.interval, "interval", v)
}

// Register instant converter, returns the converter previously claiming the
// same exact type if any.
func (r *Registry) AddInstantConverter(c *Converter) (*Converter, error) {
	return r.addConverter(&r.instant, "instant", CapInstant, c)
}

func (r *Registry) AddPartialConverter(c *Converter) (*Converter, error) {
	return r.addConverter(&r.partial, "partial", CapPartial, c)
}

func (r *Registry) AddDurationConverter(c *Converter) (*Converter, error) {
	return r.addConverter(&r.duration, "duration", CapDuration, c)
}

func (r *Registry) AddPeriodConverter(c *Converter) (*Converter, error) {
	return r.addConverter(&r.period, "period", CapPeriod, c)
}

func (r *Registry) AddIntervalConverter(c *Converter) (*Converter, error) {
	return r.addConverter(&r.interval, "interval", CapInterval, c)
}

// Deregister instant converter by identity, returns the removed converter or nil.
func (r *Registry) RemoveInstantConverter(c *Converter) (*Converter, error) {
	return r.removeConverter(&r.instant, "instant", c)
}

func (r *Registry) RemovePartialConverter(c *Converter) (*Converter, error) {
	return r.removeConverter(&r.partial, "partial", c)
}

func (r *Registry) RemoveDurationConverter(c *Converter) (*Converter, error) {
	return r.removeConverter(&r.duration, "duration", c)
}

func (r *Registry) RemovePeriodConverter(c *Converter) (*Converter, error) {
	return r.removeConverter(&r.period, "period", c)
}

func (r *Registry) RemoveIntervalConverter(c *Converter) (*Converter, error) {
	return r.removeConverter(&r.interval, "interval", c)
}

// Snapshot copy of the registered instant converters.
func (r *Registry) InstantConverters() []*Converter {
	return r.instant.Load().Converters()
}

func (r *Registry) PartialConverters() []*Converter {
	return r.partial.Load().Converters()
}

func (r *Registry) DurationConverters() []*Converter {
	return r.duration.Load().Converters()
}

func (r *Registry) PeriodConverters() []*Converter {
	return r.period.Load().Converters()
}

func (r *Registry) IntervalConverters() []*Converter {
	return r.interval.Load().Converters()
}

// Convert an arbitrary value to an Instant through the registry.
func (r *Registry) ToInstant(v any) (temporal.Instant, error) {
	c, err := r.InstantConverterFor(v)
	if err != nil {
		return temporal.Instant{}, err
	}
	ch := c.ChronologyOf(v, nil)
	ms, err := c.InstantMillis(v, ch)
	if err != nil {
		return temporal.Instant{}, err
	}
	return temporal.NewInstant(ms, ch), nil
}

// Convert an arbitrary value to a Duration through the registry.
func (r *Registry) ToDuration(v any) (temporal.Duration, error) {
	c, err := r.DurationConverterFor(v)
	if err != nil {
		return temporal.Duration{}, err
	}
	ms, err := c.DurationMillis(v)
	if err != nil {
		return temporal.Duration{}, err
	}
	return temporal.NewDuration(ms), nil
}

// Convert an arbitrary value to a Period through the registry.
func (r *Registry) ToPeriod(v any) (temporal.Period, error) {
	c, err := r.PeriodConverterFor(v)
	if err != nil {
		return temporal.Period{}, err
	}
	vals, err := c.Period(v, c.ChronologyOf(v, nil))
	if err != nil {
		return temporal.Period{}, err
	}
	return temporal.NewPeriod(vals), nil
}

// Convert an arbitrary value to an Interval through the registry.
func (r *Registry) ToInterval(v any) (temporal.Interval, error) {
	c, err := r.IntervalConverterFor(v)
	if err != nil {
		return temporal.Interval{}, err
	}
	var mi temporal.MutableInterval
	if err := c.SetInterval(&mi, v, c.ChronologyOf(v, nil)); err != nil {
		return temporal.Interval{}, err
	}
	return mi.Snapshot()
}

// Convert an arbitrary value to a Partial carrying the fields requested by req.
func (r *Registry) ToPartial(req temporal.ReadablePartial, v any) (temporal.Partial, error) {
	c, err := r.PartialConverterFor(v)
	if err != nil {
		return temporal.Partial{}, err
	}
	ch := c.ChronologyOf(v, nil)
	vals, err := c.PartialValues(req, v, ch)
	if err != nil {
		return temporal.Partial{}, err
	}
	return temporal.NewPartial(ch, req.Fields(), vals)
}

// Convert to Instant using the default registry.
func ToInstant(v any) (temporal.Instant, error) {
	return Default().ToInstant(v)
}

// Convert to Duration using the default registry.
func ToDuration(v any) (temporal.Duration, error) {
	return Default().ToDuration(v)
}

// Convert to Period using the default registry.
func ToPeriod(v any) (temporal.Period, error) {
	return Default().ToPeriod(v)
}

// Convert to Interval using the default registry.
func ToInterval(v any) (temporal.Interval, error) {
	return Default().ToInterval(v)
}

// Convert to Partial using the default registry.
func ToPartial(req temporal.ReadablePartial, v any) (temporal.Partial, error) {
	return Default().ToPartial(req, v)
}
