package coredata

import (
	"errors"
	"fmt"
	"strings"
)

// Store errors
var (
	ErrNotFound     = errors.New("entity not found")
	ErrDuplicateKey = errors.New("duplicate entity name")
)

// CoreData owns the simulation's domain objects and resolves names to live
// handles during keyword parsing. Removal operations fire the registered
// invalidation hooks exactly once, synchronously, before the object is
// released, so no keyword is left holding a dangling reference.
type CoreData struct {
	atomTypes      []*AtomType
	species        []*Species
	configurations []*Configuration
	modules        []*Module
	nodes          []*ProcedureNode

	invalidationHooks []func(Entity)
}

// New creates an empty CoreData.
func New() *CoreData {
	return &CoreData{}
}

// OnEntityRemoved registers a hook called for every entity about to be
// removed. Hooks must only clear references; triggering further removals
// from inside a hook is not allowed.
func (cd *CoreData) OnEntityRemoved(fn func(Entity)) {
	cd.invalidationHooks = append(cd.invalidationHooks, fn)
}

func (cd *CoreData) notifyRemoved(e Entity) {
	for _, fn := range cd.invalidationHooks {
		fn(e)
	}
}

// AddAtomType creates and stores a new atom type.
func (cd *CoreData) AddAtomType(name, element string) (*AtomType, error) {
	if cd.FindAtomType(name) != nil {
		return nil, fmt.Errorf("%w: atom type %q", ErrDuplicateKey, name)
	}
	at := NewAtomType(name, element)
	cd.atomTypes = append(cd.atomTypes, at)
	return at, nil
}

// FindAtomType returns the named atom type, or nil.
func (cd *CoreData) FindAtomType(name string) *AtomType {
	for _, at := range cd.atomTypes {
		if strings.EqualFold(at.name, name) {
			return at
		}
	}
	return nil
}

// AtomTypes returns all atom types in creation order.
func (cd *CoreData) AtomTypes() []*AtomType { return cd.atomTypes }

// RemoveAtomType removes the atom type, notifying hooks first.
func (cd *CoreData) RemoveAtomType(at *AtomType) error {
	for i, existing := range cd.atomTypes {
		if existing == at {
			cd.notifyRemoved(at)
			cd.atomTypes = append(cd.atomTypes[:i], cd.atomTypes[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: atom type %q", ErrNotFound, at.Name())
}

// AddSpecies creates and stores a new species.
func (cd *CoreData) AddSpecies(name string) (*Species, error) {
	if cd.FindSpecies(name) != nil {
		return nil, fmt.Errorf("%w: species %q", ErrDuplicateKey, name)
	}
	sp := NewSpecies(name)
	cd.species = append(cd.species, sp)
	return sp, nil
}

// FindSpecies returns the named species, or nil.
func (cd *CoreData) FindSpecies(name string) *Species {
	for _, sp := range cd.species {
		if strings.EqualFold(sp.name, name) {
			return sp
		}
	}
	return nil
}

// Species returns all species in creation order.
func (cd *CoreData) Species() []*Species { return cd.species }

// RemoveSpecies removes the species, notifying hooks for its sites and
// isotopologues first (children become invalid with their parent), then for
// the species itself.
func (cd *CoreData) RemoveSpecies(sp *Species) error {
	for i, existing := range cd.species {
		if existing == sp {
			for _, site := range sp.sites {
				cd.notifyRemoved(site)
			}
			for _, iso := range sp.isotopologues {
				cd.notifyRemoved(iso)
			}
			cd.notifyRemoved(sp)
			cd.species = append(cd.species[:i], cd.species[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: species %q", ErrNotFound, sp.Name())
}

// RemoveSpeciesSite removes a single site from its parent species,
// notifying hooks first.
func (cd *CoreData) RemoveSpeciesSite(site *SpeciesSite) error {
	sp := site.parent
	for i, existing := range sp.sites {
		if existing == site {
			cd.notifyRemoved(site)
			sp.sites = append(sp.sites[:i], sp.sites[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: site %q on species %q", ErrNotFound, site.Name(), sp.Name())
}

// RemoveIsotopologue removes a single isotopologue from its parent species,
// notifying hooks first.
func (cd *CoreData) RemoveIsotopologue(iso *Isotopologue) error {
	sp := iso.parent
	for i, existing := range sp.isotopologues {
		if existing == iso {
			cd.notifyRemoved(iso)
			sp.isotopologues = append(sp.isotopologues[:i], sp.isotopologues[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: isotopologue %q on species %q", ErrNotFound, iso.Name(), sp.Name())
}

// AddConfiguration creates and stores a new configuration.
func (cd *CoreData) AddConfiguration(name string) (*Configuration, error) {
	if cd.FindConfiguration(name) != nil {
		return nil, fmt.Errorf("%w: configuration %q", ErrDuplicateKey, name)
	}
	cfg := NewConfiguration(name)
	cd.configurations = append(cd.configurations, cfg)
	return cfg, nil
}

// FindConfiguration returns the named configuration, or nil.
func (cd *CoreData) FindConfiguration(name string) *Configuration {
	for _, cfg := range cd.configurations {
		if strings.EqualFold(cfg.name, name) {
			return cfg
		}
	}
	return nil
}

// Configurations returns all configurations in creation order.
func (cd *CoreData) Configurations() []*Configuration { return cd.configurations }

// RemoveConfiguration removes the configuration, notifying hooks first.
func (cd *CoreData) RemoveConfiguration(cfg *Configuration) error {
	for i, existing := range cd.configurations {
		if existing == cfg {
			cd.notifyRemoved(cfg)
			cd.configurations = append(cd.configurations[:i], cd.configurations[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: configuration %q", ErrNotFound, cfg.Name())
}

// AddModule creates and stores a new module instance.
func (cd *CoreData) AddModule(uniqueName, moduleType string) (*Module, error) {
	if cd.FindModule(uniqueName) != nil {
		return nil, fmt.Errorf("%w: module %q", ErrDuplicateKey, uniqueName)
	}
	m := NewModule(uniqueName, moduleType)
	cd.modules = append(cd.modules, m)
	return m, nil
}

// FindModule returns the module with the given unique name, or nil.
func (cd *CoreData) FindModule(uniqueName string) *Module {
	for _, m := range cd.modules {
		if strings.EqualFold(m.uniqueName, uniqueName) {
			return m
		}
	}
	return nil
}

// Modules returns all modules in creation order.
func (cd *CoreData) Modules() []*Module { return cd.modules }

// RemoveModule removes the module, notifying hooks first.
func (cd *CoreData) RemoveModule(m *Module) error {
	for i, existing := range cd.modules {
		if existing == m {
			cd.notifyRemoved(m)
			cd.modules = append(cd.modules[:i], cd.modules[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: module %q", ErrNotFound, m.Name())
}

// AddProcedureNode creates and stores a new procedure node.
func (cd *CoreData) AddProcedureNode(name, nodeType string) (*ProcedureNode, error) {
	if cd.FindProcedureNode(name) != nil {
		return nil, fmt.Errorf("%w: procedure node %q", ErrDuplicateKey, name)
	}
	pn := NewProcedureNode(name, nodeType)
	cd.nodes = append(cd.nodes, pn)
	return pn, nil
}

// FindProcedureNode returns the named procedure node, or nil.
func (cd *CoreData) FindProcedureNode(name string) *ProcedureNode {
	for _, pn := range cd.nodes {
		if strings.EqualFold(pn.name, name) {
			return pn
		}
	}
	return nil
}

// ProcedureNodes returns all procedure nodes in creation order.
func (cd *CoreData) ProcedureNodes() []*ProcedureNode { return cd.nodes }

// RemoveProcedureNode removes the node, notifying hooks first.
func (cd *CoreData) RemoveProcedureNode(pn *ProcedureNode) error {
	for i, existing := range cd.nodes {
		if existing == pn {
			cd.notifyRemoved(pn)
			cd.nodes = append(cd.nodes[:i], cd.nodes[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: procedure node %q", ErrNotFound, pn.Name())
}
