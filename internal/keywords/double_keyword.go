package keywords

import (
	"fmt"
	"strconv"

	"github.com/quenchsim/quench/internal/coredata"
	"github.com/quenchsim/quench/internal/lineparser"
)

// DoubleKeyword stores a single floating-point value, optionally bounded.
type DoubleKeyword struct {
	Base
	value  float64
	min    float64
	max    float64
	hasMin bool
	hasMax bool
}

// NewDouble creates a double keyword with the given default value.
func NewDouble(def float64) *DoubleKeyword {
	return &DoubleKeyword{Base: newBase(DoubleKind), value: def}
}

// WithMin sets an inclusive lower validation limit.
func (k *DoubleKeyword) WithMin(min float64) *DoubleKeyword {
	k.min = min
	k.hasMin = true
	return k
}

// WithMax sets an inclusive upper validation limit.
func (k *DoubleKeyword) WithMax(max float64) *DoubleKeyword {
	k.max = max
	k.hasMax = true
	return k
}

// Value returns the current value.
func (k *DoubleKeyword) Value() float64 { return k.value }

// SetValue validates v against the limits, then stores it and marks the
// keyword as set.
func (k *DoubleKeyword) SetValue(v float64) error {
	if err := k.validate(v); err != nil {
		return err
	}
	k.value = v
	k.markSet()
	return nil
}

func (k *DoubleKeyword) validate(v float64) error {
	if k.hasMin && v < k.min {
		return fmt.Errorf("value %v is below the minimum of %v", v, k.min)
	}
	if k.hasMax && v > k.max {
		return fmt.Errorf("value %v is above the maximum of %v", v, k.max)
	}
	return nil
}

// MinArguments returns the minimum number of arguments accepted.
func (k *DoubleKeyword) MinArguments() int { return 1 }

// MaxArguments returns the maximum number of arguments accepted.
func (k *DoubleKeyword) MaxArguments() int { return 1 }

// Read parses and validates a double from the argument at startArg.
func (k *DoubleKeyword) Read(args lineparser.Args, startArg int, _ *coredata.CoreData) error {
	v, err := args.D(startArg)
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

// Write serializes the value with full round-trip precision.
func (k *DoubleKeyword) Write(w *lineparser.Writer, keywordName, prefix string) error {
	return w.WriteLineF("%s%s  %s", prefix, keywordName, formatDouble(k.value))
}

// AsBool returns true for any non-zero value.
func (k *DoubleKeyword) AsBool() (bool, error) { return k.value != 0.0, nil }

// AsInt returns the truncated integer value.
func (k *DoubleKeyword) AsInt() (int, error) { return int(k.value), nil }

// AsDouble returns the stored value.
func (k *DoubleKeyword) AsDouble() (float64, error) { return k.value, nil }

// AsString returns the stored value formatted as text.
func (k *DoubleKeyword) AsString() (string, error) { return formatDouble(k.value), nil }

// formatDouble renders with the shortest representation that parses back
// to exactly the same value.
func formatDouble(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
