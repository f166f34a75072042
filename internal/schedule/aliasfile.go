package schedule

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides is the operator-editable tuning file: extra column-name
// candidates per canonical field and extra stop words for the token
// extractor. New schedule releases occasionally invent headers; shipping a
// yaml file beats shipping a new binary.
type Overrides struct {
	Aliases   map[string][]string `yaml:"aliases"`
	StopWords []string            `yaml:"stop_words"`
}

// LoadOverrides reads and parses an overrides YAML file.
func LoadOverrides(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("overrides file not found: %s — check that the path is correct", path)
		}
		return nil, fmt.Errorf("could not read overrides file %s: %w", path, err)
	}

	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("invalid overrides YAML: %w", err)
	}

	for name := range o.Aliases {
		if !knownField(Field(name)) {
			return nil, fmt.Errorf("unknown field %q in overrides — valid fields: %v", name, AllFields)
		}
	}
	return &o, nil
}

// Apply merges the overrides into a copy of the alias table.
func (o *Overrides) Apply(table AliasTable) AliasTable {
	if o == nil || len(o.Aliases) == 0 {
		return table
	}
	extra := make(map[Field][]string, len(o.Aliases))
	for name, cands := range o.Aliases {
		extra[Field(name)] = cands
	}
	return table.Merge(extra)
}

func knownField(f Field) bool {
	for _, known := range AllFields {
		if known == f {
			return true
		}
	}
	return false
}
