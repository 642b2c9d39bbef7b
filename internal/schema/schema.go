// Package schema loads YAML descriptions of a keyword set and its domain
// inventory, and builds the live keyword store and core data used by the
// validation tooling.
package schema

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// KeywordSpec describes one keyword declaration.
type KeywordSpec struct {
	Name        string   `yaml:"name"`
	Kind        string   `yaml:"kind"`
	Description string   `yaml:"description"`
	Arguments   string   `yaml:"arguments"`
	Min         *float64 `yaml:"min"`     // optional scalar lower limit
	Max         *float64 `yaml:"max"`     // optional scalar upper limit
	Choices     []string `yaml:"choices"` // EnumOptions option names
	ModuleTypes []string `yaml:"moduleTypes"`
	Options     []string `yaml:"options"` // InRestartFile, ModificationRequiresSetUp
}

// AtomTypeSpec describes one atom type in the domain inventory.
type AtomTypeSpec struct {
	Name    string `yaml:"name"`
	Element string `yaml:"element"`
}

// SpeciesSpec describes one species and its children.
type SpeciesSpec struct {
	Name          string   `yaml:"name"`
	Sites         []string `yaml:"sites"`
	Isotopologues []string `yaml:"isotopologues"`
}

// ModuleSpec describes one module instance.
type ModuleSpec struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// NodeSpec describes one procedure node.
type NodeSpec struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// DomainSpec lists the domain objects keyword references may resolve to.
type DomainSpec struct {
	AtomTypes      []AtomTypeSpec `yaml:"atomTypes"`
	Species        []SpeciesSpec  `yaml:"species"`
	Configurations []string       `yaml:"configurations"`
	Modules        []ModuleSpec   `yaml:"modules"`
	Nodes          []NodeSpec     `yaml:"nodes"`
}

// Schema is a complete keyword-set description.
type Schema struct {
	Keywords []KeywordSpec `yaml:"keywords"`
	Domain   DomainSpec    `yaml:"domain"`
}

// Parse decodes a schema from YAML.
func Parse(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing schema: %w", err)
	}
	if len(s.Keywords) == 0 {
		return nil, fmt.Errorf("schema declares no keywords")
	}
	// Keyword-name matching is case-insensitive at parse time, so the
	// duplicate check must be too.
	seen := map[string]bool{}
	for _, kw := range s.Keywords {
		if kw.Name == "" {
			return nil, fmt.Errorf("schema keyword with empty name")
		}
		key := strings.ToLower(kw.Name)
		if seen[key] {
			return nil, fmt.Errorf("schema keyword %q declared twice", kw.Name)
		}
		seen[key] = true
	}
	return &s, nil
}

// ParseFile reads and decodes a schema file.
func ParseFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}
	return Parse(data)
}
