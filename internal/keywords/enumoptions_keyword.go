package keywords

import (
	"fmt"
	"strings"

	"github.com/quenchsim/quench/internal/coredata"
	"github.com/quenchsim/quench/internal/lineparser"
)

// EnumOptionsKeyword stores one value of a closed enumeration T, parsed
// from and written as the option's display name. Option names are indexed
// by the enumeration's integer value.
type EnumOptionsKeyword[T ~int] struct {
	Base
	value   T
	options []string
}

// NewEnumOptions creates an enumeration keyword with the given default
// value and option names. The name at index i corresponds to enum value i;
// an out-of-range default panics since the option table is fixed in code.
func NewEnumOptions[T ~int](def T, options []string) *EnumOptionsKeyword[T] {
	if int(def) < 0 || int(def) >= len(options) {
		panic(fmt.Sprintf("keywords: enum default %d outside the %d defined options", int(def), len(options)))
	}
	return &EnumOptionsKeyword[T]{Base: newBase(EnumOptionsKind), value: def, options: options}
}

// Value returns the current enumeration value.
func (k *EnumOptionsKeyword[T]) Value() T { return k.value }

// SetValue validates the value against the option table, then stores it
// and marks the keyword as set.
func (k *EnumOptionsKeyword[T]) SetValue(v T) error {
	if int(v) < 0 || int(v) >= len(k.options) {
		return fmt.Errorf("enum value %d outside the %d defined options", int(v), len(k.options))
	}
	k.value = v
	k.markSet()
	return nil
}

// Options returns the option names in enumeration order.
func (k *EnumOptionsKeyword[T]) Options() []string { return k.options }

// MinArguments returns the minimum number of arguments accepted.
func (k *EnumOptionsKeyword[T]) MinArguments() int { return 1 }

// MaxArguments returns the maximum number of arguments accepted.
func (k *EnumOptionsKeyword[T]) MaxArguments() int { return 1 }

// Read matches the argument at startArg against the option names
// (case-insensitive).
func (k *EnumOptionsKeyword[T]) Read(args lineparser.Args, startArg int, _ *coredata.CoreData) error {
	s, err := args.S(startArg)
	if err != nil {
		return err
	}
	for i, name := range k.options {
		if strings.EqualFold(name, s) {
			k.value = T(i)
			k.markSet()
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid option (expected one of: %s)", s, strings.Join(k.options, ", "))
}

// Write serializes the current option name.
func (k *EnumOptionsKeyword[T]) Write(w *lineparser.Writer, keywordName, prefix string) error {
	return w.WriteLineF("%s%s  %s", prefix, keywordName, k.options[int(k.value)])
}

// AsInt returns the enumeration's integer value.
func (k *EnumOptionsKeyword[T]) AsInt() (int, error) { return int(k.value), nil }

// AsString returns the current option name.
func (k *EnumOptionsKeyword[T]) AsString() (string, error) { return k.options[int(k.value)], nil }
