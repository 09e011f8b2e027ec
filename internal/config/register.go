package config

import (
	"reflect"

	"github.com/spf13/viper"
)

// Register declares every key of Default() on v, so AutomaticEnv can
// override nested keys (FAUXLOG_LINES_DOWNGRADE_PROBABILITY) that appear in
// no config file.
func Register(v *viper.Viper) {
	register(v, "", reflect.ValueOf(Default()))
}

func register(v *viper.Viper, prefix string, rv reflect.Value) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		key := rt.Field(i).Tag.Get("mapstructure")
		if key == "" {
			continue
		}
		if prefix != "" {
			key = prefix + "." + key
		}
		fv := rv.Field(i)
		if fv.Kind() == reflect.Struct {
			register(v, key, fv)
			continue
		}
		v.SetDefault(key, fv.Interface())
	}
}
