package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quenchsim/quench/internal/keywords"
	"github.com/quenchsim/quench/internal/lineparser"
)

func TestBuild(t *testing.T) {
	s, err := Parse([]byte(sampleSchema))
	require.NoError(t, err)

	registry := keywords.NewRegistry()
	store, data, err := s.Build(registry)
	require.NoError(t, err)
	require.Equal(t, 6, registry.Len())

	// Domain inventory is live and resolvable.
	require.NotNil(t, data.FindSpecies("Water"))
	require.NotNil(t, data.FindSpecies("Water").FindSite("COM"))
	require.NotNil(t, data.FindConfiguration("Slab"))
	require.NotNil(t, data.FindModule("RDF01"))
	require.NotNil(t, data.FindAtomType("OW"))
	require.NotNil(t, data.FindProcedureNode("Box01"))

	// Declarations carry descriptor metadata and options across.
	nsteps := store.Find("NSteps")
	require.Equal(t, keywords.IntegerKind, nsteps.Kind())
	require.Equal(t, "Number of steps to run", nsteps.Description())
	require.True(t, store.Find("Temperature").IsOptionSet(keywords.InRestartFile))
	require.False(t, nsteps.IsOptionSet(keywords.InRestartFile))

	// The built store parses real input lines against the domain.
	args, err := lineparser.TokenizeArgs("SourceModule RDF01")
	require.NoError(t, err)
	result, err := store.Parse(args, data)
	require.NoError(t, err)
	require.Equal(t, keywords.Success, result)

	// The min limit from the declaration is enforced.
	args, err = lineparser.TokenizeArgs("NSteps 0")
	require.NoError(t, err)
	result, err = store.Parse(args, data)
	require.Equal(t, keywords.Failed, result)
	require.Error(t, err)
}

func TestBuild_AttachesPruning(t *testing.T) {
	s, err := Parse([]byte(sampleSchema))
	require.NoError(t, err)

	registry := keywords.NewRegistry()
	store, data, err := s.Build(registry)
	require.NoError(t, err)

	args, err := lineparser.TokenizeArgs("Configurations Bulk Slab")
	require.NoError(t, err)
	_, err = store.Parse(args, data)
	require.NoError(t, err)

	require.NoError(t, data.RemoveConfiguration(data.FindConfiguration("Bulk")))

	var sb strings.Builder
	require.NoError(t, store.Write(lineparser.NewWriter(&sb), ""))
	require.Equal(t, "Configurations  Slab\n", sb.String())
}

func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown kind", "keywords:\n  - name: A\n    kind: Nope", `unknown kind "Nope"`},
		{"unsupported kind", "keywords:\n  - name: A\n    kind: AtomTypeRefList", "not supported"},
		{"enum without choices", "keywords:\n  - name: A\n    kind: EnumOptions", "at least one choice"},
		{"unknown option", "keywords:\n  - name: A\n    kind: Bool\n    options: [Sticky]", `unknown option "Sticky"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := Parse([]byte(tc.yaml))
			require.NoError(t, err)
			_, _, err = s.Build(keywords.NewRegistry())
			require.ErrorContains(t, err, tc.want)
		})
	}
}
