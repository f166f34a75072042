package schedule

import (
	"github.com/monykiss/schedkit/internal/formats/xlsx"
)

// LoadFile reads the workbook at path and normalizes it. overridesPath, when
// non-empty, names a YAML file of extra alias candidates applied on top of
// the built-in table.
func LoadFile(path, overridesPath string) (*Store, error) {
	aliases := DefaultAliases()
	var stops []string
	if overridesPath != "" {
		o, err := LoadOverrides(overridesPath)
		if err != nil {
			return nil, err
		}
		aliases = o.Apply(aliases)
		stops = o.StopWords
	}

	wb, err := xlsx.ReadFile(path)
	if err != nil {
		return nil, err
	}
	store, err := LoadWithAliases(wb, aliases)
	if err != nil {
		return nil, err
	}
	store.StopWords = stops
	return store, nil
}
