package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/curtisnewbie/chronon/chrono"
	"github.com/curtisnewbie/chronon/temporal"
	"github.com/curtisnewbie/chronon/test"
)

func TestAppConfigProps(t *testing.T) {
	a := NewAppConfig()

	test.TestFalse(t, a.HasProp(PropTimeZone))
	a.SetProp(PropTimeZone, "UTC")
	test.TestTrue(t, a.HasProp(PropTimeZone))
	test.TestEqual(t, "UTC", a.GetPropStr(PropTimeZone))

	a.SetDefProp(PropTimeMarshalFormat, "2006-01-02")
	test.TestEqual(t, "2006-01-02", a.GetPropStr(PropTimeMarshalFormat))
	a.SetProp(PropTimeMarshalFormat, "2006/01/02")
	test.TestEqual(t, "2006/01/02", a.GetPropStr(PropTimeMarshalFormat))
}

func TestLoadConfigFromFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "conf.yml")
	doc := `
chronon:
  time:
    zone: "UTC"
    marshal-format: "2006-01-02 15:04:05"
    parse-formats:
      - "02/01/2006"
`
	test.TestNoErr(t, os.WriteFile(p, []byte(doc), 0644))

	a := NewAppConfig()
	test.TestNoErr(t, a.LoadConfigFromFile(p))
	test.TestEqual(t, "UTC", a.GetPropStr(PropTimeZone))
	test.TestEqual(t, "2006-01-02 15:04:05", a.GetPropStr(PropTimeMarshalFormat))
	test.TestEqual(t, 1, len(a.GetPropStrSlice(PropTimeParseFormats)))

	test.TestTrue(t, a.LoadConfigFromFile(filepath.Join(t.TempDir(), "missing.yml")) != nil)
}

func TestDumpProps(t *testing.T) {
	a := NewAppConfig()
	a.SetProp(PropTimeZone, "UTC")

	s, err := a.DumpProps()
	test.TestNoErr(t, err)
	t.Logf("dumped props:\n%v", s)
	test.TestTrue(t, strings.Contains(s, `"zone": "UTC"`))
}

func TestApplyTimeProps(t *testing.T) {
	defer temporal.SetTimeMarshalFormat("")

	a := NewAppConfig()
	a.SetProp(PropTimeZone, "UTC")
	a.SetProp(PropTimeParseFormats, []string{"02/01/2006"})
	test.TestNoErr(t, a.ApplyTimeProps())

	test.TestEqual(t, "UTC", chrono.DefaultZone().String())
	tt, err := temporal.ParseDateTime("17/05/2023", time.UTC)
	test.TestNoErr(t, err)
	test.TestEqual(t, time.Date(2023, 5, 17, 0, 0, 0, 0, time.UTC), tt)

	a.SetProp(PropTimeZone, "Not/AZone")
	test.TestTrue(t, a.ApplyTimeProps() != nil)
}
