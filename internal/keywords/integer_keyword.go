package keywords

import (
	"fmt"
	"strconv"

	"github.com/quenchsim/quench/internal/coredata"
	"github.com/quenchsim/quench/internal/lineparser"
)

// IntegerKeyword stores a single integer, optionally bounded.
type IntegerKeyword struct {
	Base
	value  int
	min    int
	max    int
	hasMin bool
	hasMax bool
}

// NewInteger creates an integer keyword with the given default value.
func NewInteger(def int) *IntegerKeyword {
	return &IntegerKeyword{Base: newBase(IntegerKind), value: def}
}

// WithMin sets an inclusive lower validation limit.
func (k *IntegerKeyword) WithMin(min int) *IntegerKeyword {
	k.min = min
	k.hasMin = true
	return k
}

// WithMax sets an inclusive upper validation limit.
func (k *IntegerKeyword) WithMax(max int) *IntegerKeyword {
	k.max = max
	k.hasMax = true
	return k
}

// Value returns the current value.
func (k *IntegerKeyword) Value() int { return k.value }

// SetValue validates v against the limits, then stores it and marks the
// keyword as set.
func (k *IntegerKeyword) SetValue(v int) error {
	if err := k.validate(v); err != nil {
		return err
	}
	k.value = v
	k.markSet()
	return nil
}

func (k *IntegerKeyword) validate(v int) error {
	if k.hasMin && v < k.min {
		return fmt.Errorf("value %d is below the minimum of %d", v, k.min)
	}
	if k.hasMax && v > k.max {
		return fmt.Errorf("value %d is above the maximum of %d", v, k.max)
	}
	return nil
}

// MinArguments returns the minimum number of arguments accepted.
func (k *IntegerKeyword) MinArguments() int { return 1 }

// MaxArguments returns the maximum number of arguments accepted.
func (k *IntegerKeyword) MaxArguments() int { return 1 }

// Read parses and validates an integer from the argument at startArg.
func (k *IntegerKeyword) Read(args lineparser.Args, startArg int, _ *coredata.CoreData) error {
	v, err := args.I(startArg)
	if err != nil {
		return err
	}
	if err := k.validate(v); err != nil {
		return err
	}
	k.value = v
	k.markSet()
	return nil
}

// Write serializes the value as a single line.
func (k *IntegerKeyword) Write(w *lineparser.Writer, keywordName, prefix string) error {
	return w.WriteLineF("%s%s  %d", prefix, keywordName, k.value)
}

// AsInt returns the stored value.
func (k *IntegerKeyword) AsInt() (int, error) { return k.value, nil }

// AsDouble returns the stored value as a double.
func (k *IntegerKeyword) AsDouble() (float64, error) { return float64(k.value), nil }

// AsString returns the stored value formatted as text.
func (k *IntegerKeyword) AsString() (string, error) { return strconv.Itoa(k.value), nil }
