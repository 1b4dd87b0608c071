// Package format parses the restricted ISO-8601 textual grammars consumed by
// the string converters: exact-seconds durations and calendar periods.
package format

import (
	"math"
	"strconv"

	"github.com/curtisnewbie/chronon/util/errs"
)

// Parse the restricted ISO-8601 seconds duration grammar 'PT[-]sss[.fff]S'.
//
// The sign follows 'PT', seconds are integral, the fraction is optional and
// must be exactly three digits (milliseconds). Anything else, e.g., "PT10M",
// extra characters or multiple decimal points, is an INVALID_FORMAT error.
// Values beyond the representable millisecond range are an OVERFLOW error,
// never a silent wraparound.
func ParseDurationSeconds(s string) (int64, error) {
	badFmt := func() (int64, error) {
		return 0, errs.ErrInvalidFormat.WithInternalMsg("invalid duration: '%s'", s)
	}

	if len(s) < 4 { // minimum is "PT0S"
		return badFmt()
	}
	if (s[0] != 'P' && s[0] != 'p') || (s[1] != 'T' && s[1] != 't') {
		return badFmt()
	}
	if last := s[len(s)-1]; last != 'S' && last != 's' {
		return badFmt()
	}

	body := s[2 : len(s)-1]
	neg := false
	if body != "" && (body[0] == '-' || body[0] == '+') {
		neg = body[0] == '-'
		body = body[1:]
	}

	dot := -1
	for i := 0; i < len(body); i++ {
		ch := body[i]
		if ch == '.' {
			if dot >= 0 { // multiple decimal points
				return badFmt()
			}
			dot = i
			continue
		}
		if ch < '0' || ch > '9' {
			return badFmt()
		}
	}

	secPart := body
	msPart := ""
	if dot >= 0 {
		secPart, msPart = body[:dot], body[dot+1:]
		if len(msPart) != 3 {
			return badFmt()
		}
	}
	if secPart == "" {
		return badFmt()
	}

	secs, err := strconv.ParseInt(secPart, 10, 64)
	if err != nil {
		// only digits reach this point, failure means the value is too large
		return 0, overflowErr(s)
	}
	var ms uint64
	if msPart != "" {
		ms, _ = strconv.ParseUint(msPart, 10, 64)
	}

	// the negative range reaches one millisecond further than the positive one
	limit := uint64(math.MaxInt64)
	if neg {
		limit++
	}
	if uint64(secs) > (limit-ms)/1000 {
		return 0, overflowErr(s)
	}
	total := int64(uint64(secs)*1000 + ms)
	if neg {
		total = -total
	}
	return total, nil
}

func overflowErr(s string) error {
	return errs.ErrOverflow.WithInternalMsg("duration '%s' exceeds the representable millisecond range", s)
}
