// Package coredata holds the simulation's core domain objects and their
// name-based lookup. Keywords reference these objects but never own them;
// ownership and lifetime live here.
package coredata

// Entity is implemented by every domain object a keyword may reference.
type Entity interface {
	// Name returns the object's unique name within its own store.
	Name() string
}

// AtomType describes a distinct atomic species parameterisation.
type AtomType struct {
	name    string
	element string
	charge  float64
}

// NewAtomType creates an atom type for the given element.
func NewAtomType(name, element string) *AtomType {
	return &AtomType{name: name, element: element}
}

// Name returns the atom type's unique name.
func (at *AtomType) Name() string { return at.name }

// Element returns the chemical element symbol.
func (at *AtomType) Element() string { return at.element }

// Charge returns the assigned atomic charge.
func (at *AtomType) Charge() float64 { return at.charge }

// SetCharge sets the assigned atomic charge.
func (at *AtomType) SetCharge(q float64) { at.charge = q }

// Species is a distinct molecular or atomic unit used to build configurations.
type Species struct {
	name          string
	sites         []*SpeciesSite
	isotopologues []*Isotopologue
}

// NewSpecies creates an empty species.
func NewSpecies(name string) *Species {
	return &Species{name: name}
}

// Name returns the species name.
func (sp *Species) Name() string { return sp.name }

// Sites returns the species' defined sites.
func (sp *Species) Sites() []*SpeciesSite { return sp.sites }

// AddSite defines a new named site on the species.
func (sp *Species) AddSite(name string) *SpeciesSite {
	site := &SpeciesSite{name: name, parent: sp}
	sp.sites = append(sp.sites, site)
	return site
}

// FindSite returns the named site, or nil if not defined.
func (sp *Species) FindSite(name string) *SpeciesSite {
	for _, site := range sp.sites {
		if site.name == name {
			return site
		}
	}
	return nil
}

// Isotopologues returns the species' isotopologues.
func (sp *Species) Isotopologues() []*Isotopologue { return sp.isotopologues }

// AddIsotopologue defines a new named isotopologue of the species.
func (sp *Species) AddIsotopologue(name string) *Isotopologue {
	iso := &Isotopologue{name: name, parent: sp}
	sp.isotopologues = append(sp.isotopologues, iso)
	return iso
}

// FindIsotopologue returns the named isotopologue, or nil if not defined.
func (sp *Species) FindIsotopologue(name string) *Isotopologue {
	for _, iso := range sp.isotopologues {
		if iso.name == name {
			return iso
		}
	}
	return nil
}

// SpeciesSite is a named site (origin, axis definitions) on a species.
type SpeciesSite struct {
	name   string
	parent *Species
}

// Name returns the site name, unique within its parent species.
func (ss *SpeciesSite) Name() string { return ss.name }

// Parent returns the owning species.
func (ss *SpeciesSite) Parent() *Species { return ss.parent }

// Isotopologue is a named isotopic substitution pattern for a species.
type Isotopologue struct {
	name   string
	parent *Species
}

// Name returns the isotopologue name, unique within its parent species.
func (iso *Isotopologue) Name() string { return iso.name }

// Parent returns the owning species.
func (iso *Isotopologue) Parent() *Species { return iso.parent }

// Configuration is a simulation box populated from species.
type Configuration struct {
	name string
}

// NewConfiguration creates a configuration.
func NewConfiguration(name string) *Configuration {
	return &Configuration{name: name}
}

// Name returns the configuration name.
func (cfg *Configuration) Name() string { return cfg.name }

// Module is a processing step with its own keyword settings. The keyword
// store itself lives with the module's owner; coredata only carries identity.
type Module struct {
	uniqueName string
	moduleType string
}

// NewModule creates a module instance of the given type.
func NewModule(uniqueName, moduleType string) *Module {
	return &Module{uniqueName: uniqueName, moduleType: moduleType}
}

// Name returns the module's unique instance name.
func (m *Module) Name() string { return m.uniqueName }

// Type returns the module type name (e.g. "MD", "RDF").
func (m *Module) Type() string { return m.moduleType }

// ProcedureNode is a step in an analysis or generation procedure.
type ProcedureNode struct {
	name     string
	nodeType string
}

// NewProcedureNode creates a procedure node of the given type.
func NewProcedureNode(name, nodeType string) *ProcedureNode {
	return &ProcedureNode{name: name, nodeType: nodeType}
}

// Name returns the node name.
func (pn *ProcedureNode) Name() string { return pn.name }

// Type returns the node type name.
func (pn *ProcedureNode) Type() string { return pn.nodeType }
