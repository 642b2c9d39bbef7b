package keywords

import (
	"fmt"

	"github.com/quenchsim/quench/internal/coredata"
	"github.com/quenchsim/quench/internal/lineparser"
)

// SpeciesKeyword stores a non-owning reference to a single species.
type SpeciesKeyword struct {
	Base
	species *coredata.Species
}

// NewSpecies creates a species-reference keyword.
func NewSpecies() *SpeciesKeyword {
	return &SpeciesKeyword{Base: newBase(SpeciesKind)}
}

// Species returns the referenced species, or nil.
func (k *SpeciesKeyword) Species() *coredata.Species { return k.species }

// SetSpecies stores the reference and marks the keyword as set.
func (k *SpeciesKeyword) SetSpecies(sp *coredata.Species) {
	k.species = sp
	k.markSet()
}

// IsDataEmpty reports whether no species is currently referenced.
func (k *SpeciesKeyword) IsDataEmpty() bool { return k.species == nil }

// MinArguments returns the minimum number of arguments accepted.
func (k *SpeciesKeyword) MinArguments() int { return 1 }

// MaxArguments returns the maximum number of arguments accepted.
func (k *SpeciesKeyword) MaxArguments() int { return 1 }

// Read resolves the argument at startArg to a live species.
func (k *SpeciesKeyword) Read(args lineparser.Args, startArg int, data *coredata.CoreData) error {
	name, err := args.S(startArg)
	if err != nil {
		return err
	}
	sp := data.FindSpecies(name)
	if sp == nil {
		return fmt.Errorf("no species named %q exists", name)
	}
	k.species = sp
	k.markSet()
	return nil
}

// Write serializes the referenced species' name.
func (k *SpeciesKeyword) Write(w *lineparser.Writer, keywordName, prefix string) error {
	if k.species == nil {
		return w.WriteLineF("%s%s", prefix, keywordName)
	}
	return w.WriteLineF("%s%s  %s", prefix, keywordName, lineparser.Quote(k.species.Name()))
}

// AsString returns the referenced species' name, or an empty string if no
// species is referenced.
func (k *SpeciesKeyword) AsString() (string, error) {
	if k.species == nil {
		return "", nil
	}
	return k.species.Name(), nil
}

// RemoveReferencesTo clears the reference if it points at the entity.
func (k *SpeciesKeyword) RemoveReferencesTo(e coredata.Entity) {
	if sp, ok := e.(*coredata.Species); ok && k.species == sp {
		k.species = nil
	}
}
