package header

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// rawDescription is the YAML form of a Description.
type rawDescription struct {
	Model      string     `yaml:"model,omitempty"`
	Attributes []rawEntry `yaml:"attributes"`
}

// rawEntry is the YAML form of an Entry.
type rawEntry struct {
	Name   string          `yaml:"name"`
	From   string          `yaml:"from,omitempty"`
	Type   string          `yaml:"type,omitempty"`
	Wrap   bool            `yaml:"wrap,omitempty"`
	Group  bool            `yaml:"group,omitempty"`
	Model  string          `yaml:"model,omitempty"`
	Header *rawDescription `yaml:"header,omitempty"`
}

// UnmarshalYAML implements custom YAML unmarshaling for rawEntry.
// Accepts:
//   - Scalar shorthand: "name"
//   - Full mapping: {name: tasks, type: array, group: true, header: [...]}
func (e *rawEntry) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var name string

		err := node.Decode(&name)
		if err != nil {
			return err
		}

		*e = rawEntry{Name: name}

		return nil

	case yaml.MappingNode:
		type plain rawEntry

		var p plain

		err := node.Decode(&p)
		if err != nil {
			return err
		}

		*e = rawEntry(p)

		return nil

	default:
		return fmt.Errorf("line %d: expected attribute name or mapping, got %v", node.Line, kindName(node.Kind))
	}
}

// UnmarshalYAML implements custom YAML unmarshaling for rawDescription.
// Accepts:
//   - Plain list of attributes: [id, {name: title}]
//   - Mapping with model: {model: Task, attributes: [...]}
func (d *rawDescription) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var entries []rawEntry

		err := node.Decode(&entries)
		if err != nil {
			return err
		}

		*d = rawDescription{Attributes: entries}

		return nil

	case yaml.MappingNode:
		type plain rawDescription

		var p plain

		err := node.Decode(&p)
		if err != nil {
			return err
		}

		*d = rawDescription(p)

		return nil

	default:
		return fmt.Errorf("line %d: expected attribute list or mapping, got %v", node.Line, kindName(node.Kind))
	}
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
