package temporal

import (
	"errors"
	"fmt"
	"time"

	"github.com/curtisnewbie/chronon/util/errs"
	"github.com/curtisnewbie/chronon/util/hash"
)

const (
	ClassicDateTimeFormat  = "2006/01/02 15:04:05"
	StdDateTimeFormat      = "2006-01-02 15:04:05"
	StdDateTimeMilliFormat = "2006-01-02 15:04:05.000"
	SQLDateTimeFormat      = "2006-01-02 15:04:05.999999"
	SQLDateTimeFormatWithT = "2006-01-02T15:04:05.999999"
	SQLDateFormat          = "2006-01-02"
)

var (
	timeParseFormats = []string{
		time.RFC3339Nano,
		SQLDateTimeFormat,
		SQLDateFormat,
		SQLDateTimeFormatWithT,
	}

	// format used when marshalling Instant, epoch milliseconds if empty
	instantMarshalFormat = ""
)

// Change the format used to marshal [Instant], empty restores the default epoch milliseconds.
func SetTimeMarshalFormat(fmt string) {
	instantMarshalFormat = fmt
}

// Add extra formats recognized when parsing textual date-times.
func AddTimeParseFormat(fmt ...string) {
	m := hash.NewSet(timeParseFormats...)
	m.AddAll(fmt)
	timeParseFormats = m.CopyKeys()
}

// Overwrite the formats recognized when parsing textual date-times.
func SetTimeParseFormat(fmt ...string) {
	s := hash.NewSet(fmt...)
	timeParseFormats = s.CopyKeys()
}

func FuzzParseTime(formats []string, value string) (time.Time, error) {
	return FuzzParseTimeLoc(formats, value, time.UTC)
}

// Attempt to parse the value with each of the formats, first match wins.
func FuzzParseTimeLoc(formats []string, value string, loc *time.Location) (time.Time, error) {
	if len(formats) < 1 {
		return time.Time{}, errors.New("formats is empty")
	}
	if loc == nil {
		loc = time.UTC
	}

	var t time.Time
	var err error
	for _, f := range formats {
		t, err = time.ParseInLocation(f, value, loc)
		if err == nil {
			return t, nil
		}
	}
	return t, fmt.Errorf("failed to parse time '%s'", value)
}

// Parse a textual date-time using the registered parse formats.
//
// Returns INVALID_FORMAT error carrying the literal if none of the formats match.
func ParseDateTime(value string, loc *time.Location) (time.Time, error) {
	t, err := FuzzParseTimeLoc(timeParseFormats, value, loc)
	if err != nil {
		return time.Time{}, errs.ErrInvalidFormat.WithInternalMsg("invalid date-time: '%s'", value)
	}
	return t, nil
}
