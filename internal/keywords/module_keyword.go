package keywords

import (
	"fmt"
	"strings"

	"github.com/quenchsim/quench/internal/coredata"
	"github.com/quenchsim/quench/internal/lineparser"
)

// ModuleKeyword stores a non-owning reference to a module, optionally
// restricted to a set of allowed module types. The reference is cleared by
// pruning when the module is destroyed.
type ModuleKeyword struct {
	Base
	module       *coredata.Module
	allowedTypes []string
}

// NewModule creates a module-reference keyword. If any allowed types are
// given, only modules of those types may be assigned.
func NewModule(allowedTypes ...string) *ModuleKeyword {
	return &ModuleKeyword{Base: newBase(ModuleKind), allowedTypes: allowedTypes}
}

// Module returns the referenced module, or nil.
func (k *ModuleKeyword) Module() *coredata.Module { return k.module }

// SetModule validates the module's type, then stores the reference and
// marks the keyword as set.
func (k *ModuleKeyword) SetModule(m *coredata.Module) error {
	if m != nil && !k.typeAllowed(m.Type()) {
		return fmt.Errorf("module %q is of type %q but only %s allowed", m.Name(), m.Type(), strings.Join(k.allowedTypes, ", "))
	}
	k.module = m
	k.markSet()
	return nil
}

func (k *ModuleKeyword) typeAllowed(moduleType string) bool {
	if len(k.allowedTypes) == 0 {
		return true
	}
	for _, t := range k.allowedTypes {
		if strings.EqualFold(t, moduleType) {
			return true
		}
	}
	return false
}

// IsDataEmpty reports whether no module is currently referenced.
func (k *ModuleKeyword) IsDataEmpty() bool { return k.module == nil }

// MinArguments returns the minimum number of arguments accepted.
func (k *ModuleKeyword) MinArguments() int { return 1 }

// MaxArguments returns the maximum number of arguments accepted.
func (k *ModuleKeyword) MaxArguments() int { return 1 }

// Read resolves the argument at startArg to a live module. An unknown
// name or disallowed type is a failure; a nil reference is never stored
// silently.
func (k *ModuleKeyword) Read(args lineparser.Args, startArg int, data *coredata.CoreData) error {
	name, err := args.S(startArg)
	if err != nil {
		return err
	}
	m := data.FindModule(name)
	if m == nil {
		return fmt.Errorf("no module named %q exists", name)
	}
	if !k.typeAllowed(m.Type()) {
		return fmt.Errorf("module %q is of type %q but only %s allowed", m.Name(), m.Type(), strings.Join(k.allowedTypes, ", "))
	}
	k.module = m
	k.markSet()
	return nil
}

// Write serializes the referenced module's unique name.
func (k *ModuleKeyword) Write(w *lineparser.Writer, keywordName, prefix string) error {
	if k.module == nil {
		return w.WriteLineF("%s%s", prefix, keywordName)
	}
	return w.WriteLineF("%s%s  %s", prefix, keywordName, lineparser.Quote(k.module.Name()))
}

// AsString returns the referenced module's unique name, or an empty string
// if no module is referenced.
func (k *ModuleKeyword) AsString() (string, error) {
	if k.module == nil {
		return "", nil
	}
	return k.module.Name(), nil
}

// RemoveReferencesTo clears the reference if it points at the entity.
func (k *ModuleKeyword) RemoveReferencesTo(e coredata.Entity) {
	if m, ok := e.(*coredata.Module); ok && k.module == m {
		k.module = nil
	}
}
