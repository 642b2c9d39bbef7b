package keywords

import (
	"fmt"

	"github.com/quenchsim/quench/internal/coredata"
	"github.com/quenchsim/quench/internal/lineparser"
)

// Range is an inclusive numeric interval.
type Range struct {
	Minimum float64
	Maximum float64
}

// Contains reports whether x lies within the range.
func (r Range) Contains(x float64) bool {
	return x >= r.Minimum && x <= r.Maximum
}

// RangeKeyword stores an inclusive numeric interval.
type RangeKeyword struct {
	Base
	value Range
}

// NewRange creates a range keyword with the given default interval.
func NewRange(def Range) *RangeKeyword {
	return &RangeKeyword{Base: newBase(RangeKind), value: def}
}

// Value returns the current range.
func (k *RangeKeyword) Value() Range { return k.value }

// SetValue validates and stores the range, marking the keyword as set.
func (k *RangeKeyword) SetValue(r Range) error {
	if r.Minimum > r.Maximum {
		return fmt.Errorf("range minimum %v exceeds maximum %v", r.Minimum, r.Maximum)
	}
	k.value = r
	k.markSet()
	return nil
}

// MinArguments returns the minimum number of arguments accepted.
func (k *RangeKeyword) MinArguments() int { return 2 }

// MaxArguments returns the maximum number of arguments accepted.
func (k *RangeKeyword) MaxArguments() int { return 2 }

// Read parses minimum and maximum values starting at startArg.
func (k *RangeKeyword) Read(args lineparser.Args, startArg int, _ *coredata.CoreData) error {
	min, err := args.D(startArg)
	if err != nil {
		return err
	}
	max, err := args.D(startArg + 1)
	if err != nil {
		return err
	}
	if min > max {
		return fmt.Errorf("range minimum %v exceeds maximum %v", min, max)
	}
	k.value = Range{Minimum: min, Maximum: max}
	k.markSet()
	return nil
}

// Write serializes the range as "min max" with round-trip precision.
func (k *RangeKeyword) Write(w *lineparser.Writer, keywordName, prefix string) error {
	return w.WriteLineF("%s%s  %s %s", prefix, keywordName,
		formatDouble(k.value.Minimum), formatDouble(k.value.Maximum))
}

// AsString returns "min max".
func (k *RangeKeyword) AsString() (string, error) {
	return fmt.Sprintf("%s %s", formatDouble(k.value.Minimum), formatDouble(k.value.Maximum)), nil
}
