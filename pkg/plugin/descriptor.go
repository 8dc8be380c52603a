package plugin

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrMissingName    = errors.New("plugin descriptor: name is required")
	ErrMissingVersion = errors.New("plugin descriptor: version is required")
	ErrMissingMain    = errors.New("plugin descriptor: main is required")
	ErrInvalidCommand = errors.New("plugin descriptor: invalid command name")
	ErrAPIVersion     = errors.New("plugin descriptor: unsupported api-version")
)

// StringList accepts either a single YAML scalar or a sequence.
type StringList []string

func (s *StringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var one string
		if err := value.Decode(&one); err != nil {
			return err
		}
		*s = StringList{one}
		return nil
	case yaml.SequenceNode:
		var many []string
		if err := value.Decode(&many); err != nil {
			return err
		}
		*s = many
		return nil
	default:
		return fmt.Errorf("line %d: expected string or list of strings", value.Line)
	}
}

// CommandSpec is one entry under "commands" in plugin.yml.
type CommandSpec struct {
	Description string     `yaml:"description,omitempty"`
	Usage       string     `yaml:"usage,omitempty"`
	Aliases     StringList `yaml:"aliases,omitempty"`
}

// RenderUsage substitutes <command> in the usage text with the label the
// sender typed.
func (c CommandSpec) RenderUsage(label string) string {
	return strings.ReplaceAll(c.Usage, "<command>", label)
}

// Descriptor is the plugin.yml metadata the host reads before loading a plugin.
type Descriptor struct {
	Name        string                 `yaml:"name"`
	Version     string                 `yaml:"version"`
	Main        string                 `yaml:"main"`
	APIVersion  string                 `yaml:"api-version,omitempty"`
	Description string                 `yaml:"description,omitempty"`
	Author      string                 `yaml:"author,omitempty"`
	Authors     StringList             `yaml:"authors,omitempty"`
	Commands    map[string]CommandSpec `yaml:"commands,omitempty"`
}

// ParseDescriptor decodes and validates plugin.yml content.
func ParseDescriptor(data []byte) (Descriptor, error) {
	var d Descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Descriptor{}, fmt.Errorf("plugin descriptor: %w", err)
	}
	if err := d.Validate(); err != nil {
		return Descriptor{}, err
	}
	return d, nil
}

// MustParseDescriptor is ParseDescriptor for embedded descriptors.
func MustParseDescriptor(data []byte) Descriptor {
	d, err := ParseDescriptor(data)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Descriptor) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrMissingName
	}
	if strings.TrimSpace(d.Version) == "" {
		return ErrMissingVersion
	}
	if strings.TrimSpace(d.Main) == "" {
		return ErrMissingMain
	}
	for name, spec := range d.Commands {
		if !validCommandName(name) {
			return fmt.Errorf("%w: %q", ErrInvalidCommand, name)
		}
		for _, alias := range spec.Aliases {
			if !validCommandName(alias) {
				return fmt.Errorf("%w: alias %q of %q", ErrInvalidCommand, alias, name)
			}
		}
	}
	return nil
}

// AllAuthors merges author and authors, in declaration order.
func (d Descriptor) AllAuthors() []string {
	var out []string
	if d.Author != "" {
		out = append(out, d.Author)
	}
	return append(out, d.Authors...)
}

// CommandNames returns declared command names, sorted.
func (d Descriptor) CommandNames() []string {
	names := make([]string, 0, len(d.Commands))
	for name := range d.Commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Marshal renders the descriptor back to YAML.
func (d Descriptor) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}

func validCommandName(name string) bool {
	if name == "" {
		return false
	}
	return !strings.ContainsAny(name, " \t\n:/")
}
