package format

import (
	"strconv"

	"github.com/curtisnewbie/chronon/temporal"
	"github.com/curtisnewbie/chronon/util/errs"
)

// Parse an ISO-8601 period, e.g., "P1Y2M3W4DT5H6M7.890S", "-P1D", "PT0S".
//
// An optional leading sign negates the whole period. A fraction of at most
// three digits is accepted on the seconds component only. Empty periods ("P",
// "PT"), unknown units, duplicate units and stray characters are
// INVALID_FORMAT errors carrying the literal.
func ParsePeriod(s string) (temporal.PeriodValues, error) {
	var pv temporal.PeriodValues

	badFmt := func() (temporal.PeriodValues, error) {
		return temporal.PeriodValues{}, errs.ErrInvalidFormat.WithInternalMsg("invalid period: '%s'", s)
	}

	i := 0
	neg := false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}
	if i >= len(s) || (s[i] != 'P' && s[i] != 'p') {
		return badFmt()
	}
	i++

	inTime := false
	compCount := 0
	compAtT := -1
	var seenUnits uint8
	const (
		unitYear uint8 = 1 << iota
		unitMonth
		unitWeek
		unitDay
		unitHour
		unitMinute
		unitSecond
	)
	markSeen := func(u uint8) bool {
		if seenUnits&u != 0 {
			return false
		}
		seenUnits |= u
		return true
	}

	for i < len(s) {
		if s[i] == 'T' || s[i] == 't' {
			if inTime {
				return badFmt()
			}
			inTime = true
			compAtT = compCount
			i++
			continue
		}

		numStart := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		numStr := s[numStart:i]
		frac := ""
		if i < len(s) && s[i] == '.' {
			i++
			fracStart := i
			for i < len(s) && s[i] >= '0' && s[i] <= '9' {
				i++
			}
			frac = s[fracStart:i]
			if frac == "" || len(frac) > 3 {
				return badFmt()
			}
		}
		if numStr == "" || i >= len(s) {
			return badFmt()
		}

		n, err := strconv.Atoi(numStr)
		if err != nil {
			return badFmt()
		}

		unit := s[i]
		i++
		if unit >= 'a' && unit <= 'z' {
			unit -= 'a' - 'A'
		}
		if frac != "" && unit != 'S' {
			return badFmt()
		}

		switch unit {
		case 'Y':
			if inTime || !markSeen(unitYear) {
				return badFmt()
			}
			pv.Years = n
		case 'M':
			if inTime {
				if !markSeen(unitMinute) {
					return badFmt()
				}
				pv.Minutes = n
			} else {
				if !markSeen(unitMonth) {
					return badFmt()
				}
				pv.Months = n
			}
		case 'W':
			if inTime || !markSeen(unitWeek) {
				return badFmt()
			}
			pv.Weeks = n
		case 'D':
			if inTime || !markSeen(unitDay) {
				return badFmt()
			}
			pv.Days = n
		case 'H':
			if !inTime || !markSeen(unitHour) {
				return badFmt()
			}
			pv.Hours = n
		case 'S':
			if !inTime || !markSeen(unitSecond) {
				return badFmt()
			}
			pv.Seconds = n
			if frac != "" {
				ms, _ := strconv.Atoi(frac)
				for j := len(frac); j < 3; j++ {
					ms *= 10
				}
				pv.Millis = ms
			}
		default:
			return badFmt()
		}
		compCount++
	}

	if compCount == 0 || (inTime && compCount == compAtT) {
		return badFmt()
	}
	if neg {
		pv = pv.Negated()
	}
	return pv, nil
}
