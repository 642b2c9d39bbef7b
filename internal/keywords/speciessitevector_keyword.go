package keywords

import (
	"fmt"
	"strings"

	"github.com/quenchsim/quench/internal/coredata"
	"github.com/quenchsim/quench/internal/lineparser"
)

// SpeciesSiteVectorKeyword stores an ordered list of non-owning species
// site references. Arguments come in pairs: the parent species name
// followed by the site name. Pruning removes individual sites and, when a
// whole species is invalidated, every site belonging to it.
type SpeciesSiteVectorKeyword struct {
	Base
	sites []*coredata.SpeciesSite
}

// NewSpeciesSiteVector creates an empty site-list keyword.
func NewSpeciesSiteVector() *SpeciesSiteVectorKeyword {
	return &SpeciesSiteVectorKeyword{Base: newBase(SpeciesSiteVectorKind)}
}

// Sites returns the referenced sites in order.
func (k *SpeciesSiteVectorKeyword) Sites() []*coredata.SpeciesSite { return k.sites }

// IsDataEmpty reports whether the list is empty.
func (k *SpeciesSiteVectorKeyword) IsDataEmpty() bool { return len(k.sites) == 0 }

// MinArguments returns the minimum number of arguments accepted.
func (k *SpeciesSiteVectorKeyword) MinArguments() int { return 2 }

// MaxArguments returns the maximum number of arguments accepted.
func (k *SpeciesSiteVectorKeyword) MaxArguments() int { return UnboundedArguments }

// Read resolves (species, site) argument pairs from startArg onward and
// appends the sites. An odd argument count, unknown species, unknown site,
// or duplicate fails without modifying the list.
func (k *SpeciesSiteVectorKeyword) Read(args lineparser.Args, startArg int, data *coredata.CoreData) error {
	if (args.N()-startArg)%2 != 0 {
		return fmt.Errorf("site references require species and site name pairs, but %d argument(s) given", args.N()-startArg)
	}
	var parsed []*coredata.SpeciesSite
	for i := startArg; i < args.N(); i += 2 {
		spName, err := args.S(i)
		if err != nil {
			return err
		}
		siteName, err := args.S(i + 1)
		if err != nil {
			return err
		}
		sp := data.FindSpecies(spName)
		if sp == nil {
			return fmt.Errorf("no species named %q exists", spName)
		}
		site := sp.FindSite(siteName)
		if site == nil {
			return fmt.Errorf("species %q has no site named %q", spName, siteName)
		}
		for _, existing := range append(k.sites, parsed...) {
			if existing == site {
				return fmt.Errorf("site %q on species %q is already in the list", siteName, spName)
			}
		}
		parsed = append(parsed, site)
	}
	k.sites = append(k.sites, parsed...)
	k.markSet()
	return nil
}

// Write serializes all referenced sites as species/site name pairs.
func (k *SpeciesSiteVectorKeyword) Write(w *lineparser.Writer, keywordName, prefix string) error {
	if len(k.sites) == 0 {
		return w.WriteLineF("%s%s", prefix, keywordName)
	}
	pairs := make([]string, len(k.sites))
	for i, site := range k.sites {
		pairs[i] = fmt.Sprintf("%s %s", lineparser.Quote(site.Parent().Name()), lineparser.Quote(site.Name()))
	}
	return w.WriteLineF("%s%s  %s", prefix, keywordName, strings.Join(pairs, " "))
}

// AsString returns the referenced sites as "Species/Site" tokens separated
// by spaces.
func (k *SpeciesSiteVectorKeyword) AsString() (string, error) {
	tokens := make([]string, len(k.sites))
	for i, site := range k.sites {
		tokens[i] = site.Parent().Name() + "/" + site.Name()
	}
	return strings.Join(tokens, " "), nil
}

// RemoveReferencesTo erases the site, or every site of an invalidated
// species, from the list.
func (k *SpeciesSiteVectorKeyword) RemoveReferencesTo(e coredata.Entity) {
	switch obj := e.(type) {
	case *coredata.SpeciesSite:
		k.filterSites(func(s *coredata.SpeciesSite) bool { return s != obj })
	case *coredata.Species:
		k.filterSites(func(s *coredata.SpeciesSite) bool { return s.Parent() != obj })
	}
}

func (k *SpeciesSiteVectorKeyword) filterSites(keep func(*coredata.SpeciesSite) bool) {
	kept := k.sites[:0]
	for _, site := range k.sites {
		if keep(site) {
			kept = append(kept, site)
		}
	}
	k.sites = kept
}
