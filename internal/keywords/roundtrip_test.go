package keywords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/quenchsim/quench/internal/lineparser"
)

// roundTrip serializes kw, re-parses the emitted line into fresh, and
// fails the property if the line does not parse cleanly.
func roundTrip(t *rapid.T, kw, fresh Keyword, name string) {
	var sb strings.Builder
	if err := kw.Write(lineparser.NewWriter(&sb), name, ""); err != nil {
		t.Fatalf("write: %v", err)
	}
	line := strings.TrimSuffix(sb.String(), "\n")

	args, err := lineparser.TokenizeArgs(line)
	if err != nil {
		t.Fatalf("tokenizing %q: %v", line, err)
	}
	if err := fresh.Read(args, 1, nil); err != nil {
		t.Fatalf("re-reading %q: %v", line, err)
	}
}

func TestRoundTrip_Integer(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Int().Draw(t, "v")

		kw := NewInteger(0)
		require.NoError(t, kw.SetValue(v))

		fresh := NewInteger(0)
		roundTrip(t, kw, fresh, "NSteps")
		if fresh.Value() != v {
			t.Fatalf("got %d back, want %d", fresh.Value(), v)
		}
	})
}

func TestRoundTrip_Double(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Float64Range(-1e15, 1e15).Draw(t, "v")

		kw := NewDouble(0)
		require.NoError(t, kw.SetValue(v))

		fresh := NewDouble(0)
		roundTrip(t, kw, fresh, "Temperature")
		if fresh.Value() != v {
			t.Fatalf("got %v back, want %v", fresh.Value(), v)
		}
	})
}

func TestRoundTrip_Bool(t *testing.T) {
	for _, v := range []bool{true, false} {
		kw := NewBool(!v)
		kw.SetValue(v)

		var sb strings.Builder
		require.NoError(t, kw.Write(lineparser.NewWriter(&sb), "Restart", ""))

		fresh := NewBool(!v)
		args, err := lineparser.TokenizeArgs(strings.TrimSuffix(sb.String(), "\n"))
		require.NoError(t, err)
		require.NoError(t, fresh.Read(args, 1, nil))
		require.Equal(t, v, fresh.Value())
	}
}

func TestRoundTrip_String(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.StringMatching(`[a-zA-Z0-9 _#./'"-]{0,40}`).Draw(t, "v")

		kw := NewString("")
		kw.SetValue(v)

		fresh := NewString("")
		roundTrip(t, kw, fresh, "Label")
		if fresh.Value() != v {
			t.Fatalf("got %q back, want %q", fresh.Value(), v)
		}
	})
}

func TestRoundTrip_Vec3Integer(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Int().Draw(t, "x")
		y := rapid.Int().Draw(t, "y")
		z := rapid.Int().Draw(t, "z")

		kw := NewVec3Integer(Vec3[int]{})
		require.NoError(t, kw.SetValue(NewVec3(x, y, z)))

		fresh := NewVec3Integer(Vec3[int]{})
		roundTrip(t, kw, fresh, "Grid")
		if fresh.Value() != NewVec3(x, y, z) {
			t.Fatalf("got %v back, want (%d %d %d)", fresh.Value(), x, y, z)
		}
	})
}

func TestRoundTrip_Vec3Double(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Float64Range(-1e9, 1e9).Draw(t, "x")
		y := rapid.Float64Range(-1e9, 1e9).Draw(t, "y")
		z := rapid.Float64Range(-1e9, 1e9).Draw(t, "z")

		kw := NewVec3Double(Vec3[float64]{})
		require.NoError(t, kw.SetValue(NewVec3(x, y, z)))

		fresh := NewVec3Double(Vec3[float64]{})
		roundTrip(t, kw, fresh, "CellLengths")
		if fresh.Value() != NewVec3(x, y, z) {
			t.Fatalf("got %v back, want (%v %v %v)", fresh.Value(), x, y, z)
		}
	})
}

func TestRoundTrip_Range(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		min := rapid.Float64Range(-1e9, 1e9).Draw(t, "min")
		max := rapid.Float64Range(min, 1e9).Draw(t, "max")

		kw := NewRange(Range{})
		require.NoError(t, kw.SetValue(Range{Minimum: min, Maximum: max}))

		fresh := NewRange(Range{})
		roundTrip(t, kw, fresh, "QRange")
		if fresh.Value() != (Range{Minimum: min, Maximum: max}) {
			t.Fatalf("got %v back, want [%v, %v]", fresh.Value(), min, max)
		}
	})
}
