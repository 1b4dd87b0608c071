package format

import (
	"testing"

	"github.com/curtisnewbie/chronon/temporal"
	"github.com/curtisnewbie/chronon/test"
	"github.com/curtisnewbie/chronon/util/errs"
)

func TestParsePeriod(t *testing.T) {
	pv, err := ParsePeriod("P1Y2M3W4DT5H6M7.890S")
	test.TestNoErr(t, err)
	test.TestEqual(t, temporal.PeriodValues{
		Years: 1, Months: 2, Weeks: 3, Days: 4, Hours: 5, Minutes: 6, Seconds: 7, Millis: 890,
	}, pv)

	pv, err = ParsePeriod("P1D")
	test.TestNoErr(t, err)
	test.TestEqual(t, temporal.PeriodValues{Days: 1}, pv)

	pv, err = ParsePeriod("PT15M")
	test.TestNoErr(t, err)
	test.TestEqual(t, temporal.PeriodValues{Minutes: 15}, pv)

	pv, err = ParsePeriod("PT0S")
	test.TestNoErr(t, err)
	test.TestTrue(t, pv.IsZero())

	// fraction shorter than 3 digits scales up to milliseconds
	pv, err = ParsePeriod("PT1.5S")
	test.TestNoErr(t, err)
	test.TestEqual(t, temporal.PeriodValues{Seconds: 1, Millis: 500}, pv)

	pv, err = ParsePeriod("-P1DT2H")
	test.TestNoErr(t, err)
	test.TestEqual(t, temporal.PeriodValues{Days: -1, Hours: -2}, pv)

	pv, err = ParsePeriod("+p1y")
	test.TestNoErr(t, err)
	test.TestEqual(t, temporal.PeriodValues{Years: 1}, pv)
}

func TestParsePeriodInvalid(t *testing.T) {
	bad := []string{
		"",
		"P",
		"PT",
		"1D",
		"P1X",
		"P1D2",
		"PT1D",  // date unit after T
		"P1H",   // time unit before T
		"P1D1D", // duplicate unit
		"PT1.5M",
		"PT1.2345S",
		"PT1.S",
		"P1DT",
		"P1.5D",
		"P1D ",
	}
	for _, s := range bad {
		_, err := ParsePeriod(s)
		t.Logf("'%v' -> %v", s, err)
		test.TestErrIs(t, err, errs.ErrInvalidFormat)
	}
}
