package keywords

import (
	"github.com/quenchsim/quench/internal/coredata"
	"github.com/quenchsim/quench/internal/lineparser"
)

// BoolKeyword stores a single boolean value.
type BoolKeyword struct {
	Base
	value bool
}

// NewBool creates a boolean keyword with the given default value.
func NewBool(def bool) *BoolKeyword {
	return &BoolKeyword{Base: newBase(BoolKind), value: def}
}

// Value returns the current value.
func (k *BoolKeyword) Value() bool { return k.value }

// SetValue sets the value and marks the keyword as set.
func (k *BoolKeyword) SetValue(v bool) {
	k.value = v
	k.markSet()
}

// MinArguments returns the minimum number of arguments accepted.
func (k *BoolKeyword) MinArguments() int { return 1 }

// MaxArguments returns the maximum number of arguments accepted.
func (k *BoolKeyword) MaxArguments() int { return 1 }

// Read parses a boolean from the argument at startArg.
func (k *BoolKeyword) Read(args lineparser.Args, startArg int, _ *coredata.CoreData) error {
	v, err := args.B(startArg)
	if err != nil {
		return err
	}
	k.value = v
	k.markSet()
	return nil
}

// Write serializes the value as a single line.
func (k *BoolKeyword) Write(w *lineparser.Writer, keywordName, prefix string) error {
	return w.WriteLineF("%s%s  %s", prefix, keywordName, boolString(k.value))
}

// AsBool returns the stored value.
func (k *BoolKeyword) AsBool() (bool, error) { return k.value, nil }

// AsInt returns 1 for true and 0 for false.
func (k *BoolKeyword) AsInt() (int, error) {
	if k.value {
		return 1, nil
	}
	return 0, nil
}

// AsDouble returns 1.0 for true and 0.0 for false.
func (k *BoolKeyword) AsDouble() (float64, error) {
	if k.value {
		return 1.0, nil
	}
	return 0.0, nil
}

// AsString returns "True" or "False".
func (k *BoolKeyword) AsString() (string, error) { return boolString(k.value), nil }

func boolString(v bool) string {
	if v {
		return "True"
	}
	return "False"
}
