package keywords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quenchsim/quench/internal/lineparser"
)

func buildStore(t *testing.T) (*Store, *Registry) {
	t.Helper()
	registry := NewRegistry()
	store := NewStore(registry)
	store.Add(NewInteger(100).WithMin(1), "NSteps", "Number of steps to run", "<n>")
	store.Add(NewDouble(300.0), "Temperature", "Target temperature", "<T>", InRestartFile)
	store.Add(NewBool(false), "Restart", "Continue from a restart point", "<bool>")
	store.Add(NewString(""), "Label", "Free-form label", "<text>")
	return store, registry
}

func TestStore_ParseSuccess(t *testing.T) {
	store, _ := buildStore(t)

	result, err := store.Parse(mustArgs(t, "NSteps  2500"), nil)
	require.NoError(t, err)
	require.Equal(t, Success, result)

	kw := store.Find("NSteps").(*IntegerKeyword)
	require.Equal(t, 2500, kw.Value())
	require.True(t, HasBeenSet(kw))
}

func TestStore_ParseUnrecognised(t *testing.T) {
	store, _ := buildStore(t)

	result, err := store.Parse(mustArgs(t, "Pressure 1.0"), nil)
	require.NoError(t, err)
	require.Equal(t, Unrecognised, result)

	// Nothing in the store was touched.
	for _, kw := range store.Keywords() {
		require.False(t, HasBeenSet(kw))
	}
}

func TestStore_ParseEmptyLine(t *testing.T) {
	store, _ := buildStore(t)

	result, err := store.Parse(mustArgs(t, "   # just a comment"), nil)
	require.NoError(t, err)
	require.Equal(t, Unrecognised, result)
}

func TestStore_ParseArgumentCount(t *testing.T) {
	store, _ := buildStore(t)

	result, err := store.Parse(mustArgs(t, "NSteps"), nil)
	require.Equal(t, Failed, result)
	require.ErrorContains(t, err, "NSteps expects between 1 and 1 argument(s) but 0 provided")

	result, err = store.Parse(mustArgs(t, "NSteps 10 20"), nil)
	require.Equal(t, Failed, result)
	require.ErrorContains(t, err, "2 provided")
}

func TestStore_ParseUnboundedArgumentCount(t *testing.T) {
	registry := NewRegistry()
	store := NewStore(registry)
	store.Add(NewConfigurationVector(), "Configurations", "", "<name>...")

	result, err := store.Parse(mustArgs(t, "Configurations"), nil)
	require.Equal(t, Failed, result)
	require.ErrorContains(t, err, "at least 1 argument(s) but 0 provided")
}

func TestStore_ParseFailureLeavesValue(t *testing.T) {
	store, _ := buildStore(t)

	result, err := store.Parse(mustArgs(t, "NSteps notanumber"), nil)
	require.Equal(t, Failed, result)
	require.ErrorContains(t, err, "keyword NSteps:")

	kw := store.Find("NSteps").(*IntegerKeyword)
	require.Equal(t, 100, kw.Value(), "failed parse must not disturb the stored value")
	require.False(t, HasBeenSet(kw))
}

func TestStore_ParseCaseInsensitiveName(t *testing.T) {
	store, _ := buildStore(t)

	result, err := store.Parse(mustArgs(t, "nsteps 42"), nil)
	require.NoError(t, err)
	require.Equal(t, Success, result)
}

func TestStore_AddDuplicateNamePanics(t *testing.T) {
	store, _ := buildStore(t)
	require.Panics(t, func() {
		store.Add(NewBool(true), "nsteps", "", "")
	})
}

func TestStore_WriteOnlySetKeywords(t *testing.T) {
	store, _ := buildStore(t)

	_, err := store.Parse(mustArgs(t, "NSteps 500"), nil)
	require.NoError(t, err)
	_, err = store.Parse(mustArgs(t, "Restart on"), nil)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, store.Write(lineparser.NewWriter(&sb), "  "))
	require.Equal(t, "  NSteps  500\n  Restart  True\n", sb.String())
}

func TestStore_WriteRestart(t *testing.T) {
	store, _ := buildStore(t)

	_, err := store.Parse(mustArgs(t, "NSteps 500"), nil)
	require.NoError(t, err)
	_, err = store.Parse(mustArgs(t, "Temperature 310.5"), nil)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, store.WriteRestart(lineparser.NewWriter(&sb), ""))
	require.Equal(t, "Temperature  310.5\n", sb.String(), "only InRestartFile keywords are written")
}

func TestStore_WriteParseRoundTrip(t *testing.T) {
	store, _ := buildStore(t)

	_, err := store.Parse(mustArgs(t, "Label 'two words'"), nil)
	require.NoError(t, err)
	_, err = store.Parse(mustArgs(t, "Temperature 0.30000000000000004"), nil)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, store.Write(lineparser.NewWriter(&sb), ""))

	reread, _ := buildStore(t)
	for _, line := range strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n") {
		result, err := reread.Parse(mustArgs(t, line), nil)
		require.NoError(t, err)
		require.Equal(t, Success, result)
	}
	require.Equal(t, "two words", reread.Find("Label").(*StringKeyword).Value())
	require.Equal(t, 0.30000000000000004, reread.Find("Temperature").(*DoubleKeyword).Value())
}

func TestStore_Reset(t *testing.T) {
	store, _ := buildStore(t)

	_, err := store.Parse(mustArgs(t, "NSteps 500"), nil)
	require.NoError(t, err)
	store.Reset()

	kw := store.Find("NSteps").(*IntegerKeyword)
	require.False(t, HasBeenSet(kw))
	require.Equal(t, 500, kw.Value(), "reset clears the flag, not the value")
}

func TestStore_Close(t *testing.T) {
	store, registry := buildStore(t)
	require.Equal(t, 4, registry.Len())

	store.Close()
	require.Equal(t, 0, registry.Len())
	require.Empty(t, store.Keywords())
}
