package config

import (
	"github.com/spf13/viper"
)

const mempoolSection = "mempool"

// ViperSource reads options through a viper instance, so flags, environment
// variables and config files all feed the same lookup. An option is looked
// up as "key" first and then as "mempool.key".
//
// viper's typed getters return zero values on bad input, so values are
// fetched raw and coerced here.
type ViperSource struct {
	v *viper.Viper
}

var _ Source = (*ViperSource)(nil)

// NewViperSource wraps v. A nil v uses the global viper instance.
func NewViperSource(v *viper.Viper) *ViperSource {
	if v == nil {
		v = viper.GetViper()
	}
	return &ViperSource{v: v}
}

func (s *ViperSource) GetInt(key string, def int) (int, error) {
	raw, ok := s.lookup(key)
	if !ok {
		return def, nil
	}
	return coerceInt(key, raw)
}

func (s *ViperSource) GetBool(key string, def bool) (bool, error) {
	raw, ok := s.lookup(key)
	if !ok {
		return def, nil
	}
	return coerceBool(key, raw)
}

func (s *ViperSource) lookup(key string) (interface{}, bool) {
	for _, k := range []string{key, mempoolSection + "." + key} {
		if s.v.IsSet(k) {
			return s.v.Get(k), true
		}
	}
	return nil, false
}
