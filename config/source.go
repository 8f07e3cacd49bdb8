package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// Source supplies raw option values keyed by lowercase option name. A
// missing key yields the supplied default; a present value that cannot be
// coerced to the requested type yields a *ValueError.
type Source interface {
	GetInt(key string, def int) (int, error)
	GetBool(key string, def bool) (bool, error)
}

// ValueError reports an option value that could not be coerced.
type ValueError struct {
	Key   string
	Value interface{}
	Kind  string
	Err   error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid %s value %q for option %q: %v", e.Kind, fmt.Sprint(e.Value), e.Key, e.Err)
}

func (e *ValueError) Unwrap() error { return e.Err }

func coerceInt(key string, raw interface{}) (int, error) {
	invalid := func(err error) (int, error) {
		return 0, &ValueError{Key: key, Value: raw, Kind: "integer", Err: err}
	}
	switch v := raw.(type) {
	case bool:
		// cast turns booleans into 0/1, which hides a misconfigured option.
		return invalid(fmt.Errorf("unexpected boolean"))
	case string:
		// Decimal only: cast reads "0300" as octal and "0x10" as hex.
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 0)
		if err != nil {
			return invalid(err)
		}
		return int(n), nil
	case float64:
		if v != math.Trunc(v) {
			return invalid(fmt.Errorf("unexpected fraction"))
		}
	case float32:
		if float64(v) != math.Trunc(float64(v)) {
			return invalid(fmt.Errorf("unexpected fraction"))
		}
	}
	n, err := cast.ToIntE(raw)
	if err != nil {
		return invalid(err)
	}
	return n, nil
}

func coerceBool(key string, raw interface{}) (bool, error) {
	// TOML decodes integers as int64, which cast does not treat as a flag.
	if n, ok := raw.(int64); ok {
		raw = int(n)
	}
	v, err := cast.ToBoolE(raw)
	if err != nil {
		return false, &ValueError{Key: key, Value: raw, Kind: "boolean", Err: err}
	}
	return v, nil
}
