// Package keywords implements the typed keyword system: named, parseable
// settings declared by simulation modules, procedures, and data objects.
package keywords

import "fmt"

// Kind identifies the concrete shape of data a keyword stores.
// The set is closed; display names are stable across versions because they
// appear in error messages and serialized files.
type Kind int

const (
	AtomTypeRefListKind Kind = iota
	AtomTypeSelectionKind
	BoolKind
	ConfigurationVectorKind
	Data1DStoreKind
	Data2DStoreKind
	Data3DStoreKind
	DoubleKind
	DynamicSiteNodesKind
	ElementVectorKind
	EnumOptionsKind
	ExpressionKind
	ExpressionVariableVectorKind
	FileAndFormatKind
	Function1DKind
	GeometryListKind
	IntegerKind
	IsotopologueListKind
	IsotopologueSetKind
	LinkToKeywordKind
	ModuleKind
	ModuleGroupsKind
	ModuleRefListKind
	NodeKind
	NodeAndIntegerKind
	NodeBranchKind
	NodeValueKind
	NodeValueEnumOptionsKind
	NodeVectorKind
	ProcedureKind
	RangeKind
	SpeciesKind
	SpeciesSiteKind
	SpeciesSiteVectorKind
	SpeciesVectorKind
	StringKind
	ValueStoreKind
	Vec3DoubleKind
	Vec3IntegerKind
	Vec3NodeValueKind
	VectorIntegerDoubleKind
	VectorIntegerStringKind
	VectorStringPairKind
)

var kindNames = map[Kind]string{
	AtomTypeRefListKind:          "AtomTypeRefList",
	AtomTypeSelectionKind:        "AtomTypeSelection",
	BoolKind:                     "Bool",
	ConfigurationVectorKind:      "ConfigurationVector",
	Data1DStoreKind:              "Data1DStore",
	Data2DStoreKind:              "Data2DStore",
	Data3DStoreKind:              "Data3DStore",
	DoubleKind:                   "Double",
	DynamicSiteNodesKind:         "DynamicSiteNodes",
	ElementVectorKind:            "ElementVector",
	EnumOptionsKind:              "EnumOptions",
	ExpressionKind:               "Expression",
	ExpressionVariableVectorKind: "ExpressionVariableVector",
	FileAndFormatKind:            "FileAndFormat",
	Function1DKind:               "Function1D",
	GeometryListKind:             "GeometryList",
	IntegerKind:                  "Integer",
	IsotopologueListKind:         "IsotopologueList",
	IsotopologueSetKind:          "IsotopologueSet",
	LinkToKeywordKind:            "LinkToKeyword",
	ModuleKind:                   "Module",
	ModuleGroupsKind:             "ModuleGroups",
	ModuleRefListKind:            "ModuleRefList",
	NodeKind:                     "Node",
	NodeAndIntegerKind:           "NodeAndInteger",
	NodeBranchKind:               "NodeBranch",
	NodeValueKind:                "NodeValue",
	NodeValueEnumOptionsKind:     "NodeValueEnumOptions",
	NodeVectorKind:               "NodeVector",
	ProcedureKind:                "Procedure",
	RangeKind:                    "Range",
	SpeciesKind:                  "Species",
	SpeciesSiteKind:              "SpeciesSite",
	SpeciesSiteVectorKind:        "SpeciesSiteVector",
	SpeciesVectorKind:            "SpeciesVector",
	StringKind:                   "String",
	ValueStoreKind:               "ValueStore",
	Vec3DoubleKind:               "Vec3Double",
	Vec3IntegerKind:              "Vec3Integer",
	Vec3NodeValueKind:            "Vec3NodeValue",
	VectorIntegerDoubleKind:      "VectorIntegerDouble",
	VectorIntegerStringKind:      "VectorIntegerString",
	VectorStringPairKind:         "VectorStringPair",
}

// String returns the stable display name for the kind.
// An unrecognised kind is a programming error since the set is closed.
func (k Kind) String() string {
	name, ok := kindNames[k]
	if !ok {
		panic(fmt.Sprintf("keywords: unrecognised kind %d", int(k)))
	}
	return name
}

// KindFromName returns the kind with the given display name.
// Lookup is case-sensitive; names are stable across versions.
func KindFromName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// Kinds returns all kinds in declaration order.
func Kinds() []Kind {
	all := make([]Kind, 0, len(kindNames))
	for k := AtomTypeRefListKind; k <= VectorStringPairKind; k++ {
		all = append(all, k)
	}
	return all
}
