// Package model describes the domain types a pipeline level can be
// instantiated into.
//
// A Model receives the final tuple of a level and returns a value. Two kinds
// of models are provided:
//
//   - Struct models fill the exported fields of a struct type by key, matching
//     keys against (in order) a `map:"..."` tag, the `json` tag name, the exact
//     field name and finally the case-insensitive field name.
//   - Function models delegate to a constructor of the form
//     func(map[string]any) T or func(map[string]any) (T, error).
//
// Models are looked up by name through a Registry when mapping descriptions
// are loaded from YAML.
package model
