package keywords

import (
	"fmt"

	"github.com/quenchsim/quench/internal/coredata"
	"github.com/quenchsim/quench/internal/lineparser"
)

// Vec3DoubleKeyword stores a double 3-vector, optionally bounded
// component-wise by a uniform limit.
type Vec3DoubleKeyword struct {
	Base
	value  Vec3[float64]
	labels Vec3Labels
	min    float64
	max    float64
	hasMin bool
	hasMax bool
}

// NewVec3Double creates a double 3-vector keyword with the given default.
func NewVec3Double(def Vec3[float64]) *Vec3DoubleKeyword {
	return &Vec3DoubleKeyword{Base: newBase(Vec3DoubleKind), value: def}
}

// WithMin sets an inclusive lower limit applied to every component.
func (k *Vec3DoubleKeyword) WithMin(min float64) *Vec3DoubleKeyword {
	k.min = min
	k.hasMin = true
	return k
}

// WithMax sets an inclusive upper limit applied to every component.
func (k *Vec3DoubleKeyword) WithMax(max float64) *Vec3DoubleKeyword {
	k.max = max
	k.hasMax = true
	return k
}

// WithLabels names the three components, used in validation messages and
// argument hints.
func (k *Vec3DoubleKeyword) WithLabels(labels Vec3Labels) *Vec3DoubleKeyword {
	k.labels = labels
	return k
}

// Labels returns the component labelling.
func (k *Vec3DoubleKeyword) Labels() Vec3Labels { return k.labels }

// Value returns the current vector.
func (k *Vec3DoubleKeyword) Value() Vec3[float64] { return k.value }

// SetValue validates v against the limits, then stores it and marks the
// keyword as set.
func (k *Vec3DoubleKeyword) SetValue(v Vec3[float64]) error {
	if err := k.validate(v); err != nil {
		return err
	}
	k.value = v
	k.markSet()
	return nil
}

func (k *Vec3DoubleKeyword) validate(v Vec3[float64]) error {
	names := k.labels.Strings()
	for i, c := range []float64{v.X, v.Y, v.Z} {
		if k.hasMin && c < k.min {
			return fmt.Errorf("%s component %v is below the minimum of %v", names[i], c, k.min)
		}
		if k.hasMax && c > k.max {
			return fmt.Errorf("%s component %v is above the maximum of %v", names[i], c, k.max)
		}
	}
	return nil
}

// MinArguments returns the minimum number of arguments accepted.
func (k *Vec3DoubleKeyword) MinArguments() int { return 3 }

// MaxArguments returns the maximum number of arguments accepted.
func (k *Vec3DoubleKeyword) MaxArguments() int { return 3 }

// Read parses three doubles starting at startArg.
func (k *Vec3DoubleKeyword) Read(args lineparser.Args, startArg int, _ *coredata.CoreData) error {
	var v Vec3[float64]
	for i, target := range []*float64{&v.X, &v.Y, &v.Z} {
		c, err := args.D(startArg + i)
		if err != nil {
			return err
		}
		*target = c
	}
	if err := k.validate(v); err != nil {
		return err
	}
	k.value = v
	k.markSet()
	return nil
}

// Write serializes the vector with full round-trip precision.
func (k *Vec3DoubleKeyword) Write(w *lineparser.Writer, keywordName, prefix string) error {
	return w.WriteLineF("%s%s  %s %s %s", prefix, keywordName,
		formatDouble(k.value.X), formatDouble(k.value.Y), formatDouble(k.value.Z))
}

// AsVec3Double returns the stored vector.
func (k *Vec3DoubleKeyword) AsVec3Double() (Vec3[float64], error) { return k.value, nil }

// AsString returns the three components separated by spaces.
func (k *Vec3DoubleKeyword) AsString() (string, error) {
	return fmt.Sprintf("%s %s %s", formatDouble(k.value.X), formatDouble(k.value.Y), formatDouble(k.value.Z)), nil
}
