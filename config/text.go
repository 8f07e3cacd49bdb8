package config

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// TextSource holds options in the node's classic text format, as given on
// the command line (-key=value) or in a configuration file (key=value, one
// per line). Keys are case-insensitive. When an option is given more than
// once the first value wins, so values merged from a file never override
// command-line arguments.
type TextSource struct {
	values map[string][]string
}

var _ Source = (*TextSource)(nil)

// NewTextSource parses command-line arguments. A leading run of dashes is
// stripped from each argument and a bare flag such as -blocksonly is read
// as "1".
func NewTextSource(args []string) *TextSource {
	s := &TextSource{values: make(map[string][]string)}
	for _, arg := range args {
		key, value, ok := splitOption(arg)
		if !ok {
			value = "1"
		}
		if key = normalizeKey(key); key == "" {
			continue
		}
		s.add(key, value)
	}
	return s
}

// Merge appends the options of a configuration file body. Blank lines,
// comments starting with '#' and [section] headers are skipped; every other
// line must be key=value.
func (s *TextSource) Merge(text string) error {
	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "[") {
			continue
		}
		key, value, ok := splitOption(line)
		if !ok {
			return errors.Errorf("line %d: no value is set", lineNo)
		}
		if key = normalizeKey(key); key == "" {
			return errors.Errorf("line %d: no key is set", lineNo)
		}
		s.add(key, value)
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "line %d", lineNo+1)
	}
	return nil
}

// MergeFile reads path and merges its options.
func (s *TextSource) MergeFile(path string) error {
	bz, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read config file")
	}
	return errors.Wrapf(s.Merge(string(bz)), "parse %s", path)
}

// GetAll returns every value given for key, in precedence order.
func (s *TextSource) GetAll(key string) []string {
	return s.values[normalizeKey(key)]
}

func (s *TextSource) GetInt(key string, def int) (int, error) {
	raw, ok := s.first(key)
	if !ok {
		return def, nil
	}
	return coerceInt(key, raw)
}

func (s *TextSource) GetBool(key string, def bool) (bool, error) {
	raw, ok := s.first(key)
	if !ok {
		return def, nil
	}
	return coerceBool(key, raw)
}

func (s *TextSource) first(key string) (string, bool) {
	vals := s.GetAll(key)
	if len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

func (s *TextSource) add(key, value string) {
	s.values[key] = append(s.values[key], value)
}

func splitOption(s string) (key, value string, ok bool) {
	i := strings.IndexByte(s, '=')
	if i < 0 {
		return strings.TrimSpace(s), "", false
	}
	return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:]), true
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimLeft(strings.TrimSpace(key), "-"))
}
