package keywords

import (
	"fmt"
	"strings"

	"github.com/quenchsim/quench/internal/coredata"
	"github.com/quenchsim/quench/internal/lineparser"
)

// ConfigurationVectorKeyword stores an ordered list of non-owning
// configuration references. Parsing appends to the list, so the keyword
// may appear on several input lines; each parse is still all-or-nothing.
type ConfigurationVectorKeyword struct {
	Base
	configurations []*coredata.Configuration
}

// NewConfigurationVector creates an empty configuration-list keyword.
func NewConfigurationVector() *ConfigurationVectorKeyword {
	return &ConfigurationVectorKeyword{Base: newBase(ConfigurationVectorKind)}
}

// Configurations returns the referenced configurations in order.
func (k *ConfigurationVectorKeyword) Configurations() []*coredata.Configuration {
	return k.configurations
}

// IsDataEmpty reports whether the list is empty.
func (k *ConfigurationVectorKeyword) IsDataEmpty() bool { return len(k.configurations) == 0 }

// MinArguments returns the minimum number of arguments accepted.
func (k *ConfigurationVectorKeyword) MinArguments() int { return 1 }

// MaxArguments returns the maximum number of arguments accepted.
func (k *ConfigurationVectorKeyword) MaxArguments() int { return UnboundedArguments }

// Read resolves every argument from startArg onward to a live
// configuration and appends them. Unknown names and duplicates (within the
// line or against the current list) fail without modifying the list.
func (k *ConfigurationVectorKeyword) Read(args lineparser.Args, startArg int, data *coredata.CoreData) error {
	var parsed []*coredata.Configuration
	for i := startArg; i < args.N(); i++ {
		name, err := args.S(i)
		if err != nil {
			return err
		}
		cfg := data.FindConfiguration(name)
		if cfg == nil {
			return fmt.Errorf("no configuration named %q exists", name)
		}
		for _, existing := range append(k.configurations, parsed...) {
			if existing == cfg {
				return fmt.Errorf("configuration %q is already in the list", name)
			}
		}
		parsed = append(parsed, cfg)
	}
	k.configurations = append(k.configurations, parsed...)
	k.markSet()
	return nil
}

// Write serializes all referenced configuration names on one line.
func (k *ConfigurationVectorKeyword) Write(w *lineparser.Writer, keywordName, prefix string) error {
	names := make([]string, len(k.configurations))
	for i, cfg := range k.configurations {
		names[i] = lineparser.Quote(cfg.Name())
	}
	if len(names) == 0 {
		return w.WriteLineF("%s%s", prefix, keywordName)
	}
	return w.WriteLineF("%s%s  %s", prefix, keywordName, strings.Join(names, " "))
}

// AsString returns the referenced configuration names separated by spaces.
func (k *ConfigurationVectorKeyword) AsString() (string, error) {
	names := make([]string, len(k.configurations))
	for i, cfg := range k.configurations {
		names[i] = cfg.Name()
	}
	return strings.Join(names, " "), nil
}

// RemoveReferencesTo erases the entity from the list if present.
func (k *ConfigurationVectorKeyword) RemoveReferencesTo(e coredata.Entity) {
	cfg, ok := e.(*coredata.Configuration)
	if !ok {
		return
	}
	for i, existing := range k.configurations {
		if existing == cfg {
			k.configurations = append(k.configurations[:i], k.configurations[i+1:]...)
			return
		}
	}
}
