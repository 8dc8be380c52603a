// Package scaffold writes the plugin.yml of a new hello-style plugin from a
// small set of template options.
package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/myplugin/pkg/plugin"
)

const DescriptorFile = "plugin.yml"

var ErrInvalidPackage = errors.New("scaffold: package must be a dotted identifier")

// Options parameterize the generated descriptor. Zero fields take the
// values of DefaultOptions.
type Options struct {
	Name        string
	Package     string
	Version     string
	APIVersion  string
	Author      string
	Description string
}

func DefaultOptions() Options {
	return Options{
		Name:       "MyPlugin",
		Package:    "com.example.myplugin",
		Version:    "1.0-SNAPSHOT",
		APIVersion: plugin.APIVersion,
		Author:     "you",
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Name == "" {
		o.Name = d.Name
	}
	if o.Package == "" {
		o.Package = d.Package
	}
	if o.Version == "" {
		o.Version = d.Version
	}
	if o.APIVersion == "" {
		o.APIVersion = d.APIVersion
	}
	if o.Author == "" {
		o.Author = d.Author
	}
	return o
}

// Descriptor builds the plugin.yml content for o. The entry point class is
// named after the plugin inside Package, and the only command is hello.
func (o Options) Descriptor() (plugin.Descriptor, error) {
	o = o.withDefaults()
	if !validPackage(o.Package) {
		return plugin.Descriptor{}, fmt.Errorf("%w: %q", ErrInvalidPackage, o.Package)
	}
	if strings.ContainsAny(o.Name, " \t\n.") {
		return plugin.Descriptor{}, fmt.Errorf("scaffold: invalid plugin name %q", o.Name)
	}
	if o.APIVersion != plugin.APIVersion {
		return plugin.Descriptor{}, fmt.Errorf("%w: got %s, want %s", plugin.ErrAPIVersion, o.APIVersion, plugin.APIVersion)
	}

	d := plugin.Descriptor{
		Name:        o.Name,
		Version:     o.Version,
		Main:        o.Package + "." + o.Name,
		APIVersion:  o.APIVersion,
		Description: o.Description,
		Author:      o.Author,
		Commands: map[string]plugin.CommandSpec{
			"hello": {Description: "Say hello", Usage: "/hello"},
		},
	}
	if err := d.Validate(); err != nil {
		return plugin.Descriptor{}, err
	}
	return d, nil
}

// Write renders o into dir/plugin.yml and returns the file path. An existing
// descriptor is only replaced when force is set.
func Write(dir string, o Options, force bool) (string, error) {
	d, err := o.Descriptor()
	if err != nil {
		return "", err
	}
	data, err := d.Marshal()
	if err != nil {
		return "", fmt.Errorf("rendering descriptor: %w", err)
	}

	path := filepath.Join(dir, DescriptorFile)
	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create plugin directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", DescriptorFile, err)
	}
	return path, nil
}

func validPackage(pkg string) bool {
	parts := strings.Split(pkg, ".")
	for _, part := range parts {
		if part == "" {
			return false
		}
		for i, r := range part {
			switch {
			case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			case r >= '0' && r <= '9' && i > 0:
			default:
				return false
			}
		}
	}
	return true
}
