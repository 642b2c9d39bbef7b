package keywords

import (
	"fmt"

	"github.com/quenchsim/quench/internal/coredata"
	"github.com/quenchsim/quench/internal/lineparser"
)

// Vec3IntegerKeyword stores an integer 3-vector, optionally bounded
// component-wise by a uniform limit.
type Vec3IntegerKeyword struct {
	Base
	value  Vec3[int]
	labels Vec3Labels
	min    int
	max    int
	hasMin bool
	hasMax bool
}

// NewVec3Integer creates an integer 3-vector keyword with the given default.
func NewVec3Integer(def Vec3[int]) *Vec3IntegerKeyword {
	return &Vec3IntegerKeyword{Base: newBase(Vec3IntegerKind), value: def}
}

// WithMin sets an inclusive lower limit applied to every component.
func (k *Vec3IntegerKeyword) WithMin(min int) *Vec3IntegerKeyword {
	k.min = min
	k.hasMin = true
	return k
}

// WithMax sets an inclusive upper limit applied to every component.
func (k *Vec3IntegerKeyword) WithMax(max int) *Vec3IntegerKeyword {
	k.max = max
	k.hasMax = true
	return k
}

// WithLabels names the three components, used in validation messages and
// argument hints.
func (k *Vec3IntegerKeyword) WithLabels(labels Vec3Labels) *Vec3IntegerKeyword {
	k.labels = labels
	return k
}

// Labels returns the component labelling.
func (k *Vec3IntegerKeyword) Labels() Vec3Labels { return k.labels }

// Value returns the current vector.
func (k *Vec3IntegerKeyword) Value() Vec3[int] { return k.value }

// SetValue validates v against the limits, then stores it and marks the
// keyword as set.
func (k *Vec3IntegerKeyword) SetValue(v Vec3[int]) error {
	if err := k.validate(v); err != nil {
		return err
	}
	k.value = v
	k.markSet()
	return nil
}

func (k *Vec3IntegerKeyword) validate(v Vec3[int]) error {
	names := k.labels.Strings()
	for i, c := range []int{v.X, v.Y, v.Z} {
		if k.hasMin && c < k.min {
			return fmt.Errorf("%s component %d is below the minimum of %d", names[i], c, k.min)
		}
		if k.hasMax && c > k.max {
			return fmt.Errorf("%s component %d is above the maximum of %d", names[i], c, k.max)
		}
	}
	return nil
}

// MinArguments returns the minimum number of arguments accepted.
func (k *Vec3IntegerKeyword) MinArguments() int { return 3 }

// MaxArguments returns the maximum number of arguments accepted.
func (k *Vec3IntegerKeyword) MaxArguments() int { return 3 }

// Read parses three integers starting at startArg.
func (k *Vec3IntegerKeyword) Read(args lineparser.Args, startArg int, _ *coredata.CoreData) error {
	var v Vec3[int]
	for i, target := range []*int{&v.X, &v.Y, &v.Z} {
		c, err := args.I(startArg + i)
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

// Write serializes the vector as a single line.
func (k *Vec3IntegerKeyword) Write(w *lineparser.Writer, keywordName, prefix string) error {
	return w.WriteLineF("%s%s  %d %d %d", prefix, keywordName, k.value.X, k.value.Y, k.value.Z)
}

// AsVec3Int returns the stored vector.
func (k *Vec3IntegerKeyword) AsVec3Int() (Vec3[int], error) { return k.value, nil }

// AsVec3Double returns the stored vector converted to doubles.
func (k *Vec3IntegerKeyword) AsVec3Double() (Vec3[float64], error) {
	return Vec3[float64]{X: float64(k.value.X), Y: float64(k.value.Y), Z: float64(k.value.Z)}, nil
}

// AsString returns the three components separated by spaces.
func (k *Vec3IntegerKeyword) AsString() (string, error) {
	return fmt.Sprintf("%d %d %d", k.value.X, k.value.Y, k.value.Z), nil
}
