package keywords

import (
	"github.com/quenchsim/quench/internal/coredata"
	"github.com/quenchsim/quench/internal/lineparser"
)

// StringKeyword stores a single text value.
type StringKeyword struct {
	Base
	value string
}

// NewString creates a string keyword with the given default value.
func NewString(def string) *StringKeyword {
	return &StringKeyword{Base: newBase(StringKind), value: def}
}

// Value returns the current value.
func (k *StringKeyword) Value() string { return k.value }

// SetValue sets the value and marks the keyword as set.
func (k *StringKeyword) SetValue(v string) {
	k.value = v
	k.markSet()
}

// MinArguments returns the minimum number of arguments accepted.
func (k *StringKeyword) MinArguments() int { return 1 }

// MaxArguments returns the maximum number of arguments accepted.
func (k *StringKeyword) MaxArguments() int { return 1 }

// Read takes the argument at startArg verbatim.
func (k *StringKeyword) Read(args lineparser.Args, startArg int, _ *coredata.CoreData) error {
	v, err := args.S(startArg)
	if err != nil {
		return err
	}
	k.value = v
	k.markSet()
	return nil
}

// Write serializes the value, quoting if needed for round-tripping.
func (k *StringKeyword) Write(w *lineparser.Writer, keywordName, prefix string) error {
	return w.WriteLineF("%s%s  %s", prefix, keywordName, lineparser.Quote(k.value))
}

// AsString returns the stored value.
func (k *StringKeyword) AsString() (string, error) { return k.value, nil }
