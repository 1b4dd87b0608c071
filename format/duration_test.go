package format

import (
	"math"
	"testing"

	"github.com/curtisnewbie/chronon/test"
	"github.com/curtisnewbie/chronon/util/errs"
)

func TestParseDurationSeconds(t *testing.T) {
	ms, err := ParseDurationSeconds("PT130.567S")
	test.TestNoErr(t, err)
	test.TestEqual(t, int64(130567), ms)

	ms, err = ParseDurationSeconds("PT-0.001S")
	test.TestNoErr(t, err)
	test.TestEqual(t, int64(-1), ms)

	ms, err = ParseDurationSeconds("PT72S")
	test.TestNoErr(t, err)
	test.TestEqual(t, int64(72000), ms)

	ms, err = ParseDurationSeconds("pt5.000s")
	test.TestNoErr(t, err)
	test.TestEqual(t, int64(5000), ms)

	ms, err = ParseDurationSeconds("PT-130S")
	test.TestNoErr(t, err)
	test.TestEqual(t, int64(-130000), ms)
}

func TestParseDurationSecondsInvalid(t *testing.T) {
	bad := []string{
		"",
		"PT",
		"PTS",
		"P1D",
		"PT10M",
		"PT1.5S",
		"PT1.2345S",
		"PT1..234S",
		"PT1.2.3S",
		"PT1a2S",
		"XT1S",
		"PT1S ",
		"PT.567S",
	}
	for _, s := range bad {
		_, err := ParseDurationSeconds(s)
		t.Logf("'%v' -> %v", s, err)
		test.TestErrIs(t, err, errs.ErrInvalidFormat)
	}
}

func TestParseDurationSecondsOverflow(t *testing.T) {
	_, err := ParseDurationSeconds("PT9223372036854775807S")
	test.TestErrIs(t, err, errs.ErrOverflow)

	_, err = ParseDurationSeconds("PT99999999999999999999S")
	test.TestErrIs(t, err, errs.ErrOverflow)

	_, err = ParseDurationSeconds("PT9223372036854775.808S")
	test.TestErrIs(t, err, errs.ErrOverflow)

	_, err = ParseDurationSeconds("PT-9223372036854775.809S")
	test.TestErrIs(t, err, errs.ErrOverflow)
}

func TestParseDurationSecondsRange(t *testing.T) {
	ms, err := ParseDurationSeconds("PT9223372036854775.807S")
	test.TestNoErr(t, err)
	test.TestEqual(t, int64(math.MaxInt64), ms)

	// the most negative millisecond value is representable
	ms, err = ParseDurationSeconds("PT-9223372036854775.808S")
	test.TestNoErr(t, err)
	test.TestEqual(t, int64(math.MinInt64), ms)
}
