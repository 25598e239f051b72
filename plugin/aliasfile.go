package plugin

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AliasFile is the YAML form of a list of aliases:
//
//	version: "1"
//	aliases:
//	  - name: by-day
//	    selector: day-of-month
//	  - name: lenient
//	    defaults: collection number text
//	    url: https://example.com/lenient
type AliasFile struct {
	Version string       `yaml:"version,omitempty"`
	Aliases []AliasEntry `yaml:"aliases"`
}

// AliasEntry sets exactly one of Selector and Defaults.
type AliasEntry struct {
	Name     string `yaml:"name"`
	Selector string `yaml:"selector,omitempty"`
	Defaults string `yaml:"defaults,omitempty"`
	URL      string `yaml:"url,omitempty"`
}

// LoadAliases loads and parses a YAML alias file from the given path.
func LoadAliases(path string) ([]Alias, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read alias file %s: %w", path, err)
	}

	return ParseAliases(data)
}

// ParseAliases parses YAML data into aliases.
func ParseAliases(data []byte) ([]Alias, error) {
	var af AliasFile

	err := yaml.Unmarshal(data, &af)
	if err != nil {
		return nil, fmt.Errorf("failed to parse alias YAML: %w", err)
	}

	aliases := make([]Alias, 0, len(af.Aliases))

	var errs []error

	for i, entry := range af.Aliases {
		alias, err := entry.alias()
		if err != nil {
			errs = append(errs, fmt.Errorf("alias %d: %w", i+1, err))
			continue
		}

		aliases = append(aliases, alias)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return aliases, nil
}

func (e AliasEntry) alias() (Alias, error) {
	name, err := ParseName(e.Name)
	if err != nil {
		return Alias{}, err
	}

	if (e.Selector == "") == (e.Defaults == "") {
		return Alias{}, fmt.Errorf("%s needs exactly one of selector and defaults", name)
	}

	text, defaults := e.Selector, false
	if e.Defaults != "" {
		text, defaults = e.Defaults, true
	}

	target, err := ParseSelector(text)
	if err != nil {
		return Alias{}, fmt.Errorf("%s: %w", name, err)
	}

	return Alias{Name: name, Target: target, Defaults: defaults, URL: e.URL}, nil
}

// Marshal serializes aliases to YAML.
func Marshal(aliases []Alias) ([]byte, error) {
	af := AliasFile{Version: "1", Aliases: make([]AliasEntry, len(aliases))}

	for i, a := range aliases {
		entry := AliasEntry{Name: a.Name.String(), URL: a.URL}
		if a.Defaults {
			entry.Defaults = a.Target.String()
		} else {
			entry.Selector = a.Target.String()
		}

		af.Aliases[i] = entry
	}

	return yaml.Marshal(&af)
}
