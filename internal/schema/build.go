package schema

import (
	"fmt"

	"github.com/quenchsim/quench/internal/coredata"
	"github.com/quenchsim/quench/internal/keywords"
	"github.com/quenchsim/quench/internal/log"
)

// Build materializes the schema: the domain inventory becomes a CoreData
// and every keyword declaration becomes a live keyword in a Store bound to
// the given registry. The registry's pruning broadcast is attached to the
// CoreData's removal hooks.
func (s *Schema) Build(registry *keywords.Registry) (*keywords.Store, *coredata.CoreData, error) {
	data, err := s.buildDomain()
	if err != nil {
		return nil, nil, err
	}
	registry.AttachTo(data)

	store := keywords.NewStore(registry)
	for _, spec := range s.Keywords {
		kw, err := buildKeyword(spec)
		if err != nil {
			return nil, nil, fmt.Errorf("keyword %q: %w", spec.Name, err)
		}
		options, err := parseOptions(spec.Options)
		if err != nil {
			return nil, nil, fmt.Errorf("keyword %q: %w", spec.Name, err)
		}
		store.Add(kw, spec.Name, spec.Description, spec.Arguments, options...)
	}

	log.Debug(log.CatSchema, "schema built", "keywords", len(s.Keywords))
	return store, data, nil
}

func (s *Schema) buildDomain() (*coredata.CoreData, error) {
	data := coredata.New()
	for _, at := range s.Domain.AtomTypes {
		if _, err := data.AddAtomType(at.Name, at.Element); err != nil {
			return nil, err
		}
	}
	for _, spSpec := range s.Domain.Species {
		sp, err := data.AddSpecies(spSpec.Name)
		if err != nil {
			return nil, err
		}
		for _, site := range spSpec.Sites {
			sp.AddSite(site)
		}
		for _, iso := range spSpec.Isotopologues {
			sp.AddIsotopologue(iso)
		}
	}
	for _, cfg := range s.Domain.Configurations {
		if _, err := data.AddConfiguration(cfg); err != nil {
			return nil, err
		}
	}
	for _, m := range s.Domain.Modules {
		if _, err := data.AddModule(m.Name, m.Type); err != nil {
			return nil, err
		}
	}
	for _, n := range s.Domain.Nodes {
		if _, err := data.AddProcedureNode(n.Name, n.Type); err != nil {
			return nil, err
		}
	}
	return data, nil
}

func buildKeyword(spec KeywordSpec) (keywords.Keyword, error) {
	kind, ok := keywords.KindFromName(spec.Kind)
	if !ok {
		return nil, fmt.Errorf("unknown kind %q", spec.Kind)
	}

	switch kind {
	case keywords.BoolKind:
		return keywords.NewBool(false), nil
	case keywords.IntegerKind:
		kw := keywords.NewInteger(0)
		if spec.Min != nil {
			kw.WithMin(int(*spec.Min))
		}
		if spec.Max != nil {
			kw.WithMax(int(*spec.Max))
		}
		return kw, nil
	case keywords.DoubleKind:
		kw := keywords.NewDouble(0)
		if spec.Min != nil {
			kw.WithMin(*spec.Min)
		}
		if spec.Max != nil {
			kw.WithMax(*spec.Max)
		}
		return kw, nil
	case keywords.StringKind:
		return keywords.NewString(""), nil
	case keywords.Vec3IntegerKind:
		kw := keywords.NewVec3Integer(keywords.Vec3[int]{})
		if spec.Min != nil {
			kw.WithMin(int(*spec.Min))
		}
		if spec.Max != nil {
			kw.WithMax(int(*spec.Max))
		}
		return kw, nil
	case keywords.Vec3DoubleKind:
		kw := keywords.NewVec3Double(keywords.Vec3[float64]{})
		if spec.Min != nil {
			kw.WithMin(*spec.Min)
		}
		if spec.Max != nil {
			kw.WithMax(*spec.Max)
		}
		return kw, nil
	case keywords.RangeKind:
		return keywords.NewRange(keywords.Range{}), nil
	case keywords.EnumOptionsKind:
		if len(spec.Choices) == 0 {
			return nil, fmt.Errorf("EnumOptions requires at least one choice")
		}
		return keywords.NewEnumOptions(0, spec.Choices), nil
	case keywords.ModuleKind:
		return keywords.NewModule(spec.ModuleTypes...), nil
	case keywords.SpeciesKind:
		return keywords.NewSpecies(), nil
	case keywords.ConfigurationVectorKind:
		return keywords.NewConfigurationVector(), nil
	case keywords.SpeciesSiteVectorKind:
		return keywords.NewSpeciesSiteVector(), nil
	default:
		return nil, fmt.Errorf("kind %s is not supported by the schema loader", kind)
	}
}

func parseOptions(names []string) ([]keywords.Option, error) {
	var options []keywords.Option
	for _, name := range names {
		switch name {
		case "InRestartFile":
			options = append(options, keywords.InRestartFile)
		case "ModificationRequiresSetUp":
			options = append(options, keywords.ModificationRequiresSetUp)
		default:
			return nil, fmt.Errorf("unknown option %q", name)
		}
	}
	return options, nil
}
