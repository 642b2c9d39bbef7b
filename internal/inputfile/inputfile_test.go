package inputfile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quenchsim/quench/internal/coredata"
	"github.com/quenchsim/quench/internal/keywords"
)

func testStore(t *testing.T) (*keywords.Store, *coredata.CoreData) {
	t.Helper()
	data := coredata.New()
	_, err := data.AddModule("RDF01", "RDF")
	require.NoError(t, err)

	registry := keywords.NewRegistry()
	registry.AttachTo(data)
	store := keywords.NewStore(registry)
	store.Add(keywords.NewInteger(100).WithMin(1), "NSteps", "", "<n>")
	store.Add(keywords.NewDouble(300), "Temperature", "", "<T>")
	store.Add(keywords.NewString(""), "Label", "", "<text>")
	store.Add(keywords.NewModule(), "SourceModule", "", "<module>")
	return store, data
}

func TestProcess_CleanFile(t *testing.T) {
	store, data := testStore(t)

	input := strings.Join([]string{
		"# run parameters",
		"",
		"NSteps  5000",
		"Temperature  310.5   # physiological",
		"Label  'production run'",
		"SourceModule  RDF01",
	}, "\n")

	issues, err := Process(strings.NewReader(input), store, data)
	require.NoError(t, err)
	require.Empty(t, issues)

	require.Equal(t, 5000, store.Find("NSteps").(*keywords.IntegerKeyword).Value())
	require.Equal(t, "production run", store.Find("Label").(*keywords.StringKeyword).Value())
}

func TestProcess_ReportsIssuesWithLineNumbers(t *testing.T) {
	store, data := testStore(t)

	input := strings.Join([]string{
		"NSteps  5000",
		"Pressure  1.0",
		"NSteps  zero",
		"Label  'unterminated",
	}, "\n")

	issues, err := Process(strings.NewReader(input), store, data)
	require.NoError(t, err)
	require.Len(t, issues, 3)

	require.Equal(t, 2, issues[0].Line)
	require.Equal(t, keywords.Unrecognised, issues[0].Result)
	require.Contains(t, issues[0].String(), "unrecognised keyword: Pressure  1.0")

	require.Equal(t, 3, issues[1].Line)
	require.Equal(t, keywords.Failed, issues[1].Result)
	require.Contains(t, issues[1].String(), "keyword NSteps")

	require.Equal(t, 4, issues[2].Line)
	require.Equal(t, keywords.Failed, issues[2].Result)
	require.Contains(t, issues[2].String(), "unterminated")

	// The valid first line still committed.
	require.Equal(t, 5000, store.Find("NSteps").(*keywords.IntegerKeyword).Value())
}

func TestFormat(t *testing.T) {
	store, data := testStore(t)

	input := "Temperature 310.5\nNSteps 5000\nLabel 'two words'\n"
	issues, err := Process(strings.NewReader(input), store, data)
	require.NoError(t, err)
	require.Empty(t, issues)

	var sb strings.Builder
	require.NoError(t, Format(store, &sb, "  "))

	// Declaration order, canonical spacing, quoting preserved.
	require.Equal(t, "  NSteps  5000\n  Temperature  310.5\n  Label  'two words'\n", sb.String())
}

func TestFormat_RoundTrips(t *testing.T) {
	store, data := testStore(t)
	input := "NSteps 7\nSourceModule RDF01\n"
	_, err := Process(strings.NewReader(input), store, data)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, Format(store, &sb, ""))

	reread, rereadData := testStore(t)
	issues, err := Process(strings.NewReader(sb.String()), reread, rereadData)
	require.NoError(t, err)
	require.Empty(t, issues)
	require.Equal(t, "RDF01", reread.Find("SourceModule").(*keywords.ModuleKeyword).Module().Name())
}
