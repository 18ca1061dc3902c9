package header

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"tuple-mapper/model"
)

// LoadFile loads and parses a YAML mapping description from the given path.
func LoadFile(path string, registry *model.Registry) (Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Description{}, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}

	return Parse(data, registry)
}

// Parse parses YAML data into a Description, resolving model names through
// registry. The result still has to be coerced.
func Parse(data []byte, registry *model.Registry) (Description, error) {
	var raw rawDescription

	err := yaml.Unmarshal(data, &raw)
	if err != nil {
		return Description{}, fmt.Errorf("failed to parse mapping YAML: %w", err)
	}

	return resolve(&raw, "", registry)
}

// resolve converts the YAML form into a Description.
func resolve(raw *rawDescription, path string, registry *model.Registry) (Description, error) {
	var desc Description

	if raw.Model != "" {
		m, ok := registry.Get(raw.Model)
		if !ok {
			return Description{}, fmt.Errorf("%s: %w %q", pathOrRoot(path), ErrUnknownModel, raw.Model)
		}

		desc.Model = m
	}

	desc.Attributes = make([]Entry, 0, len(raw.Attributes))

	for _, re := range raw.Attributes {
		entryPath := joinPath(path, re.Name)

		e := Entry{
			Name: re.Name,
			Options: Options{
				From:  re.From,
				Type:  NormalizeTypeMarker(re.Type),
				Wrap:  re.Wrap,
				Group: re.Group,
			},
		}

		sub := re.Header

		if re.Model != "" {
			if sub == nil {
				return Description{}, fmt.Errorf("%s: %w: model %q requires a header", entryPath, ErrInvalidMapping, re.Model)
			}

			if sub.Model != "" && sub.Model != re.Model {
				return Description{}, fmt.Errorf("%s: %w: conflicting models %q and %q",
					entryPath, ErrInvalidMapping, re.Model, sub.Model)
			}

			withModel := *sub
			withModel.Model = re.Model
			sub = &withModel
		}

		if sub != nil {
			subDesc, err := resolve(sub, entryPath, registry)
			if err != nil {
				return Description{}, err
			}

			e.Options.Header = &subDesc
		}

		desc.Attributes = append(desc.Attributes, e)
	}

	return desc, nil
}

func pathOrRoot(path string) string {
	if path == "" {
		return "<root>"
	}

	return path
}
