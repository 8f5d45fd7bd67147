package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogueFile is the on-disk YAML layout for a custom catalogue.
type catalogueFile struct {
	Sections  []SectionDefinition `yaml:"sections"`
	Templates []BusinessTemplate  `yaml:"templates"`
	Experts   []ExpertPersona     `yaml:"experts"`
}

// Load reads a catalogue from a YAML file. The file must define at least one
// section and one expert; templates are optional.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalogue: %w", err)
	}

	var file catalogueFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalogue: %w", err)
	}

	if len(file.Sections) == 0 {
		return nil, fmt.Errorf("catalogue defines no sections")
	}
	if len(file.Experts) == 0 {
		return nil, fmt.Errorf("catalogue defines no experts")
	}

	return New(file.Sections, file.Templates, file.Experts)
}
