package keywords

// Vec3 is a fixed three-component vector of ints or doubles.
type Vec3[T int | float64] struct {
	X, Y, Z T
}

// NewVec3 constructs a vector from its components.
func NewVec3[T int | float64](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Vec3Labels names the components of a three-vector keyword for argument
// hints and display.
type Vec3Labels int

const (
	NoLabels Vec3Labels = iota
	ABCLabels
	AlphaBetaGammaLabels
	HKLLabels
	MinMaxBinwidthLabels
	MinMaxDeltaLabels
	XYZLabels
)

// Strings returns the three component names.
func (l Vec3Labels) Strings() [3]string {
	switch l {
	case ABCLabels:
		return [3]string{"A", "B", "C"}
	case AlphaBetaGammaLabels:
		return [3]string{"Alpha", "Beta", "Gamma"}
	case HKLLabels:
		return [3]string{"H", "K", "L"}
	case MinMaxBinwidthLabels:
		return [3]string{"Min", "Max", "BinWidth"}
	case MinMaxDeltaLabels:
		return [3]string{"Min", "Max", "Delta"}
	case XYZLabels:
		return [3]string{"X", "Y", "Z"}
	default:
		return [3]string{"Value1", "Value2", "Value3"}
	}
}
