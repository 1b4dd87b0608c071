package temporal

import (
	"fmt"
	"strings"

	"github.com/curtisnewbie/chronon/chrono"
	"github.com/curtisnewbie/chronon/util/copyutil"
	"github.com/curtisnewbie/chronon/util/errs"
)

// Immutable partial date-time, a consistent subset of datetime fields,
// e.g., a month and a day without a year.
//
// Fields are kept from the largest unit to the smallest.
type Partial struct {
	chron  chrono.Chronology
	fields []chrono.Field
	values []int
}

// Create partial, validating field ordering, uniqueness and value legality.
//
// Fields must be ordered from the largest unit to the smallest, values are
// validated through the chronology, e.g., day-of-month must fit the given
// month/year combination.
func NewPartial(c chrono.Chronology, fields []chrono.Field, values []int) (Partial, error) {
	if len(fields) != len(values) {
		return Partial{}, errs.ErrIllegalArgument.WithInternalMsg("fields and values length mismatch: %v != %v", len(fields), len(values))
	}
	for i, f := range fields {
		if !f.Valid() {
			return Partial{}, errs.ErrIllegalArgument.WithInternalMsg("unsupported field: %v", f)
		}
		if i > 0 && fields[i-1] >= f {
			return Partial{}, errs.ErrIllegalArgument.WithInternalMsg("fields must be ordered from largest to smallest and unique, got %v before %v", fields[i-1], f)
		}
	}
	if c == nil {
		c = chrono.ISODefault()
	}
	if err := c.Validate(fields, values); err != nil {
		return Partial{}, err
	}
	return Partial{
		chron:  c,
		fields: copyutil.CopyNew[[]chrono.Field](fields),
		values: copyutil.CopyNew[[]int](values),
	}, nil
}

// Prototype partial carrying the given field slots with the smallest legal values.
//
// Useful as the extraction request handed to partial converters.
func PartialOf(fields ...chrono.Field) Partial {
	values := make([]int, len(fields))
	for i, f := range fields {
		// smallest legal value per field so the prototype itself is valid
		switch f {
		case chrono.MonthOfYear, chrono.DayOfMonth, chrono.DayOfYear, chrono.DayOfWeek:
			values[i] = 1
		}
	}
	p, err := NewPartial(nil, fields, values)
	if err != nil {
		panic(err)
	}
	return p
}

// Fields of the partial, largest to smallest.
func (p Partial) Fields() []chrono.Field {
	return copyutil.CopyNew[[]chrono.Field](p.fields)
}

// Value of the i-th field.
func (p Partial) Value(i int) int {
	return p.values[i]
}

// Values of the partial, one per field.
func (p Partial) Values() []int {
	return copyutil.CopyNew[[]int](p.values)
}

func (p Partial) Size() int {
	return len(p.fields)
}

// Get value of the field, false if the partial doesn't carry the field.
func (p Partial) Get(f chrono.Field) (int, bool) {
	for i, pf := range p.fields {
		if pf == f {
			return p.values[i], true
		}
	}
	return 0, false
}

// Chronology of the partial, never nil.
func (p Partial) Chronology() chrono.Chronology {
	if p.chron == nil {
		return chrono.ISODefault()
	}
	return p.chron
}

func (p Partial) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	for i, f := range p.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprintf("%v=%v", f, p.values[i]))
	}
	b.WriteByte(']')
	return b.String()
}
