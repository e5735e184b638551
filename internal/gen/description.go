package gen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Format is the syntax of a description file.
type Format string

const (
	// YAML descriptions use the .yaml or .yml extension.
	YAML Format = "yaml"
	// JSON descriptions use the .json or .jsonc extension and may contain
	// comments and trailing commas.
	JSON Format = "json"
)

// DefaultRepr is the representation used when a description omits one.
const DefaultRepr = "int"

// description is the on-disk form of an Enum.
type description struct {
	Package  string               `yaml:"package" json:"package"`
	Type     string               `yaml:"type" json:"type"`
	Repr     string               `yaml:"repr,omitempty" json:"repr,omitempty"`
	Doc      string               `yaml:"doc,omitempty" json:"doc,omitempty"`
	Text     bool                 `yaml:"text,omitempty" json:"text,omitempty"`
	Variants []variantDescription `yaml:"variants" json:"variants"`
}

// variantDescription is either a bare name or a name with an explicit value.
// A variant without a value takes the previous variant's value plus one; the
// first defaults to zero.
type variantDescription struct {
	Name  string `yaml:"name" json:"name"`
	Value *int64 `yaml:"value,omitempty" json:"value,omitempty"`
}

func (v *variantDescription) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		v.Name = node.Value
		return nil
	}

	type plain variantDescription
	return node.Decode((*plain)(v))
}

func (v *variantDescription) UnmarshalJSON(data []byte) error {
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '"' {
		return json.Unmarshal(trimmed, &v.Name)
	}

	type plain variantDescription
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	return dec.Decode((*plain)(v))
}

// FormatOf returns the description format implied by path's extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json", ".jsonc":
		return JSON, nil
	}

	return "", fmt.Errorf("%s: unknown description format, want .yaml, .yml, .json or .jsonc", path)
}

// LoadDescription reads a description file.
func LoadDescription(path string) (*Enum, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	enum, err := ParseDescription(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return enum, nil
}

// ParseDescription decodes a description. Unknown fields are rejected.
func ParseDescription(data []byte, format Format) (*Enum, error) {
	var d description

	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&d); err != nil {
			return nil, fmt.Errorf("parsing description: %w", err)
		}
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&d); err != nil {
			return nil, fmt.Errorf("parsing description: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown description format %q", format)
	}

	enum := &Enum{
		Package:  d.Package,
		Name:     d.Type,
		Repr:     d.Repr,
		Doc:      d.Doc,
		Text:     d.Text,
		Declare:  true,
		Variants: make([]Variant, 0, len(d.Variants)),
	}

	if enum.Repr == "" {
		enum.Repr = DefaultRepr
	}

	var next int64
	for _, v := range d.Variants {
		if v.Value != nil {
			next = *v.Value
		}

		enum.Variants = append(enum.Variants, Variant{Name: v.Name, Value: next})
		next++
	}

	return enum, nil
}
