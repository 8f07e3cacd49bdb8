package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// TOMLSource reads options from a TOML document. An option may sit at the
// top level or inside a [mempool] table; the top level wins.
type TOMLSource struct {
	values map[string]interface{}
}

var _ Source = (*TOMLSource)(nil)

// LoadTOMLSource decodes the TOML file at path.
func LoadTOMLSource(path string) (*TOMLSource, error) {
	values := make(map[string]interface{})
	if _, err := toml.DecodeFile(path, &values); err != nil {
		return nil, errors.Wrapf(err, "failed to load config file %q", path)
	}
	return &TOMLSource{values: values}, nil
}

// NewTOMLSource decodes a TOML document held in memory.
func NewTOMLSource(data string) (*TOMLSource, error) {
	values := make(map[string]interface{})
	if _, err := toml.Decode(data, &values); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}
	return &TOMLSource{values: values}, nil
}

func (s *TOMLSource) GetInt(key string, def int) (int, error) {
	raw, ok := s.lookup(key)
	if !ok {
		return def, nil
	}
	return coerceInt(key, raw)
}

func (s *TOMLSource) GetBool(key string, def bool) (bool, error) {
	raw, ok := s.lookup(key)
	if !ok {
		return def, nil
	}
	return coerceBool(key, raw)
}

func (s *TOMLSource) lookup(key string) (interface{}, bool) {
	if v, ok := s.values[key]; ok {
		if _, isTable := v.(map[string]interface{}); !isTable {
			return v, true
		}
	}
	if section, ok := s.values[mempoolSection].(map[string]interface{}); ok {
		v, ok := section[key]
		return v, ok
	}
	return nil, false
}
