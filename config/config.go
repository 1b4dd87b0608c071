// Package config holds the library-level defaults, backed by viper.
//
// Configuration is optional, the library works with built-in defaults when no
// config file is loaded. Recognized props:
//
//	chronon.time.zone            default time zone name, e.g., "UTC", "Asia/Shanghai"
//	chronon.time.marshal-format  format used to marshal instants, epoch milliseconds if empty
//	chronon.time.parse-formats   extra formats recognized when parsing textual date-times
//
// Call [ApplyTimeProps] after loading to push the props onto the chrono and
// temporal packages.
package config

import (
	"sync"

	"github.com/curtisnewbie/chronon/chrono"
	"github.com/curtisnewbie/chronon/encoding/json"
	"github.com/curtisnewbie/chronon/temporal"
	"github.com/curtisnewbie/chronon/util/errs"
	"github.com/curtisnewbie/chronon/util/strutil"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	PropTimeZone          = "chronon.time.zone"
	PropTimeMarshalFormat = "chronon.time.marshal-format"
	PropTimeParseFormats  = "chronon.time.parse-formats"
)

// App configuration, a thin thread-safe wrapper of viper.
type AppConfig struct {
	vp   *viper.Viper
	rwmu *sync.RWMutex
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		vp:   viper.New(),
		rwmu: &sync.RWMutex{},
	}
}

// Set value for the prop
func (a *AppConfig) SetProp(prop string, val any) {
	a.rwmu.Lock()
	defer a.rwmu.Unlock()
	a.vp.Set(prop, val)
}

// Set default value for the prop
func (a *AppConfig) SetDefProp(prop string, defVal any) {
	a.rwmu.Lock()
	defer a.rwmu.Unlock()
	a.vp.SetDefault(prop, defVal)
}

// Check whether the prop exists
func (a *AppConfig) HasProp(prop string) bool {
	a.rwmu.RLock()
	defer a.rwmu.RUnlock()
	return a.vp.IsSet(prop)
}

// Get prop as string
func (a *AppConfig) GetPropStr(prop string) string {
	a.rwmu.RLock()
	defer a.rwmu.RUnlock()
	return a.vp.GetString(prop)
}

// Get prop as string slice
func (a *AppConfig) GetPropStrSlice(prop string) []string {
	a.rwmu.RLock()
	defer a.rwmu.RUnlock()
	return a.vp.GetStringSlice(prop)
}

// Get prop as bool
func (a *AppConfig) GetPropBool(prop string) bool {
	a.rwmu.RLock()
	defer a.rwmu.RUnlock()
	return a.vp.GetBool(prop)
}

// Load config from file, e.g., a yaml file.
func (a *AppConfig) LoadConfigFromFile(path string) error {
	a.rwmu.Lock()
	defer a.rwmu.Unlock()
	a.vp.SetConfigFile(path)
	if err := a.vp.ReadInConfig(); err != nil {
		return errs.WrapErrf(err, "failed to load config file: %v", path)
	}
	log.Infof("Loaded config file: '%v'", path)
	return nil
}

// Pretty-printed json dump of all resolved props, e.g., for startup logging.
func (a *AppConfig) DumpProps() (string, error) {
	a.rwmu.RLock()
	defer a.rwmu.RUnlock()
	buf, err := json.WriteJsonIndent(a.vp.AllSettings())
	if err != nil {
		return "", errs.WrapErrf(err, "failed to dump props")
	}
	return strutil.UnsafeByt2Str(buf), nil
}

// Push the time-related props onto the chrono and temporal packages.
func (a *AppConfig) ApplyTimeProps() error {
	if zone := a.GetPropStr(PropTimeZone); !strutil.IsBlankStr(zone) {
		if err := chrono.SetDefaultZone(zone); err != nil {
			return err
		}
	}
	temporal.SetTimeMarshalFormat(a.GetPropStr(PropTimeMarshalFormat))
	if extra := a.GetPropStrSlice(PropTimeParseFormats); len(extra) > 0 {
		temporal.AddTimeParseFormat(extra...)
	}
	return nil
}

var globalConfig = NewAppConfig()

// Global AppConfig.
func GlobalConfig() *AppConfig {
	return globalConfig
}

func SetProp(prop string, val any) {
	globalConfig.SetProp(prop, val)
}

func SetDefProp(prop string, defVal any) {
	globalConfig.SetDefProp(prop, defVal)
}

func HasProp(prop string) bool {
	return globalConfig.HasProp(prop)
}

func GetPropStr(prop string) string {
	return globalConfig.GetPropStr(prop)
}

func GetPropStrSlice(prop string) []string {
	return globalConfig.GetPropStrSlice(prop)
}

func LoadConfigFromFile(path string) error {
	return globalConfig.LoadConfigFromFile(path)
}

func ApplyTimeProps() error {
	return globalConfig.ApplyTimeProps()
}
