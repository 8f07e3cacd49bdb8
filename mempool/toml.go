package mempool

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/template"

	"github.com/creachadair/atomicfile"
	"github.com/creachadair/tomledit"
	"github.com/creachadair/tomledit/parser"
	"github.com/creachadair/tomledit/transform"
	"github.com/pkg/errors"
)

// defaultDirPerm is the default permissions used when creating directories.
const defaultDirPerm = 0700

// configTable is the TOML table holding the mempool options.
const configTable = "mempool"

var configTemplate *template.Template

func init() {
	var err error
	if configTemplate, err = template.New("mempoolConfigTemplate").Parse(defaultConfigTemplate); err != nil {
		panic(err)
	}
}

type templateOption struct {
	Key         string
	Description string
	Value       interface{}
}

// BuildDefaultConfigurationFile writes a configuration file holding every
// mempool option at its default value.
func BuildDefaultConfigurationFile(w io.Writer) error {
	return DefaultSettings().WriteTemplate(w)
}

// WriteTemplate renders the settings as a TOML [mempool] section.
func (s *Settings) WriteTemplate(w io.Writer) error {
	opts := make([]templateOption, 0, len(options))
	for _, o := range options {
		v, _ := s.Value(o.Key)
		opts = append(opts, templateOption{Key: o.Key, Description: o.Description, Value: v})
	}
	return errors.Wrap(configTemplate.Execute(w, opts), "render mempool config")
}

// WriteConfigFile renders the settings and atomically replaces the file at
// path, creating its directory if needed.
func (s *Settings) WriteConfigFile(path string) error {
	var buffer bytes.Buffer
	if err := s.WriteTemplate(&buffer); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), defaultDirPerm); err != nil {
		return errors.Wrap(err, "create config dir")
	}
	_, err := atomicfile.WriteAll(path, &buffer, 0644)
	return err
}

// UpdateConfigFile sets the mempool options of the TOML file at path to the
// values of s, keeping the layout and comments of everything else. An option
// already present, either at the top level or in the [mempool] table, is
// changed in place; a missing one is appended to the [mempool] table. A
// missing file is written from the template.
func (s *Settings) UpdateConfigFile(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return s.WriteConfigFile(path)
	} else if err != nil {
		return errors.Wrap(err, "open config file")
	}
	doc, err := tomledit.Parse(f)
	f.Close()
	if err != nil {
		return errors.Wrapf(err, "parse %s", path)
	}

	if err := s.updatePlan().Apply(ctx, doc); err != nil {
		return errors.Wrapf(err, "update %s", path)
	}

	var buffer bytes.Buffer
	if err := tomledit.Format(&buffer, doc); err != nil {
		return errors.Wrap(err, "format mempool config")
	}
	_, err = atomicfile.WriteAll(path, &buffer, 0644)
	return err
}

// updatePlan has one step per option, in the order of Options.
func (s *Settings) updatePlan() transform.Plan {
	plan := make(transform.Plan, 0, len(options))
	for _, o := range options {
		o := o
		v, _ := s.Value(o.Key)
		value := parser.MustValue(fmt.Sprint(v))

		plan = append(plan, transform.Step{
			Desc: fmt.Sprintf("Set %s.%s", configTable, o.Key),
			T: transform.Func(func(_ context.Context, doc *tomledit.Document) error {
				for _, key := range [][]string{{o.Key}, {configTable, o.Key}} {
					if e := doc.First(key...); e != nil {
						if !e.IsMapping() {
							return fmt.Errorf("%s is not a key-value pair", parser.Key(key))
						}
						e.Value.X = value.X
						return nil
					}
				}

				var sec *tomledit.Section
				if tab := transform.FindTable(doc, configTable); tab != nil {
					sec = tab.Section
				} else {
					sec = &tomledit.Section{
						Heading: &parser.Heading{
							Block: parser.Comments{
								"#######################################################",
								"###          Mempool Configuration Options          ###",
								"#######################################################",
							},
							Name: parser.Key{configTable},
						},
					}
					doc.Sections = append(doc.Sections, sec)
				}
				transform.InsertMapping(sec, &parser.KeyValue{
					Block: parser.Comments{o.Description},
					Name:  parser.Key{o.Key},
					Value: value,
				}, false)
				return nil
			}),
		})
	}
	return plan
}

const defaultConfigTemplate = `# This is a TOML config file.
# For more information, see https://github.com/toml-lang/toml

#######################################################
###          Mempool Configuration Options          ###
#######################################################
[mempool]
{{ range . }}
# {{ .Description }}
{{ .Key }} = {{ .Value }}
{{ end }}`
