package keywords

import (
	"errors"
	"fmt"

	"github.com/quenchsim/quench/internal/coredata"
	"github.com/quenchsim/quench/internal/lineparser"
)

// Conversion errors
var (
	// ErrKindMismatch is returned by a conversion accessor that is not
	// meaningful for the keyword's kind. Callers must treat this as a
	// configuration bug, never as a usable zero value.
	ErrKindMismatch = errors.New("keyword kind mismatch")
)

// Option is a bitmask of keyword behaviour flags.
type Option int

const (
	// NoOptions sets no flags.
	NoOptions Option = 0
	// InRestartFile marks the keyword's data for restart-file serialization.
	InRestartFile Option = 1 << (iota - 1)
	// ModificationRequiresSetUp marks that changing the keyword's data
	// requires the owning object to be set up again.
	ModificationRequiresSetUp
)

// UnboundedArguments is the MaxArguments sentinel meaning "no upper bound".
const UnboundedArguments = -1

// Keyword is the interface implemented by every typed keyword variant.
// Descriptor behaviour (name, options, set flag) comes from the embedded
// Base; each variant adds value storage, parse/write, the conversions
// meaningful for its kind, and reference pruning.
type Keyword interface {
	// Kind returns the value kind stored by the keyword.
	Kind() Kind
	// Name returns the keyword name, unique within its owning store.
	Name() string
	// Description returns the human-readable description.
	Description() string
	// Arguments returns the argument-usage hint string.
	Arguments() string
	// OptionMask returns the full option bitmask.
	OptionMask() Option
	// IsOptionSet reports whether the given option flag is set.
	IsOptionSet(opt Option) bool
	// SetAsModified flags that data has been set by some means other than
	// parsing (e.g. a programmatic or UI edit).
	SetAsModified()
	// IsDataEmpty reports whether the stored data is currently empty
	// (empty list, unset reference). Scalars are never empty.
	IsDataEmpty() bool

	// MinArguments returns the minimum number of arguments accepted.
	MinArguments() int
	// MaxArguments returns the maximum number of arguments accepted, or
	// UnboundedArguments for no upper limit.
	MaxArguments() int
	// Read parses arguments from args starting at startArg, resolving any
	// entity references through data. On error the stored value is
	// unchanged (all-or-nothing parse).
	Read(args lineparser.Args, startArg int, data *coredata.CoreData) error
	// Write serializes the current value as one text line through w.
	Write(w *lineparser.Writer, keywordName, prefix string) error

	// Conversion accessors. A variant implements only those meaningful
	// for its kind; the rest return ErrKindMismatch.
	AsBool() (bool, error)
	AsInt() (int, error)
	AsDouble() (float64, error)
	AsString() (string, error)
	AsVec3Int() (Vec3[int], error)
	AsVec3Double() (Vec3[float64], error)

	// RemoveReferencesTo clears any stored reference to the entity. The
	// default is a no-op; reference-kind variants override it. Handlers
	// must only clear references, never trigger further destruction.
	RemoveReferencesTo(e coredata.Entity)

	configure(name, description, arguments string, options Option)
	wasSet() bool
	markSet()
	resetSet()
}

// Base carries the per-keyword descriptor shared by every variant: kind,
// name, description, argument hint, option mask, and the set flag. It is
// embedded, never used on its own.
type Base struct {
	kind        Kind
	name        string
	description string
	arguments   string
	optionMask  Option
	set         bool
}

func newBase(kind Kind) Base {
	return Base{kind: kind}
}

// Kind returns the value kind stored by the keyword. Immutable after
// construction.
func (b *Base) Kind() Kind { return b.kind }

// Name returns the keyword name.
func (b *Base) Name() string { return b.name }

// Description returns the keyword description.
func (b *Base) Description() string { return b.description }

// Arguments returns the argument-usage hint string.
func (b *Base) Arguments() string { return b.arguments }

// OptionMask returns the option bitmask.
func (b *Base) OptionMask() Option { return b.optionMask }

// IsOptionSet reports whether the given option flag is set.
func (b *Base) IsOptionSet(opt Option) bool { return b.optionMask&opt != 0 }

// SetAsModified flags that data has been set by some means other than
// parsing.
func (b *Base) SetAsModified() { b.set = true }

// IsDataEmpty reports whether the stored data is empty. Scalar variants
// inherit this default; list and reference variants override it.
func (b *Base) IsDataEmpty() bool { return false }

// RemoveReferencesTo is a no-op for variants whose kind cannot reference
// the entity; reference-kind variants override it.
func (b *Base) RemoveReferencesTo(coredata.Entity) {}

// configure sets the descriptor metadata. Reconfiguring is permitted only
// until the keyword has first been set; metadata of a keyword already in
// use is frozen so that written files stay consistent with what was read.
// An empty name is a contract violation and panics.
func (b *Base) configure(name, description, arguments string, options Option) {
	if name == "" {
		panic("keywords: configure called with an empty name")
	}
	if b.set {
		panic(fmt.Sprintf("keywords: keyword %q reconfigured after its data was set", b.name))
	}
	b.name = name
	b.description = description
	b.arguments = arguments
	b.optionMask = options
}

func (b *Base) wasSet() bool { return b.set }
func (b *Base) markSet()     { b.set = true }
func (b *Base) resetSet()    { b.set = false }

// Default conversions: loud kind-mismatch errors, never silent zero values.

func (b *Base) conversionError(target string) error {
	return fmt.Errorf("%w: keyword %q (%s) cannot be returned as %s", ErrKindMismatch, b.name, b.kind, target)
}

// AsBool returns the value as a bool, if the kind supports it.
func (b *Base) AsBool() (bool, error) { return false, b.conversionError("a bool") }

// AsInt returns the value as an int, if the kind supports it.
func (b *Base) AsInt() (int, error) { return 0, b.conversionError("an int") }

// AsDouble returns the value as a double, if the kind supports it.
func (b *Base) AsDouble() (float64, error) { return 0, b.conversionError("a double") }

// AsString returns the value as a string, if the kind supports it.
func (b *Base) AsString() (string, error) { return "", b.conversionError("a string") }

// AsVec3Int returns the value as an integer 3-vector, if the kind supports it.
func (b *Base) AsVec3Int() (Vec3[int], error) {
	return Vec3[int]{}, b.conversionError("a Vec3<int>")
}

// AsVec3Double returns the value as a double 3-vector, if the kind supports it.
func (b *Base) AsVec3Double() (Vec3[float64], error) {
	return Vec3[float64]{}, b.conversionError("a Vec3<double>")
}

// HasBeenSet reports whether the keyword has been set (parsed or marked
// modified) and is not currently empty. A keyword that was set and later
// emptied counts as unset for dependency resolution.
func HasBeenSet(kw Keyword) bool {
	return kw.wasSet() && !kw.IsDataEmpty()
}

// ValidArgumentCount reports whether n arguments satisfies the keyword's
// MinArguments/MaxArguments bounds, honouring the UnboundedArguments
// sentinel.
func ValidArgumentCount(kw Keyword, n int) bool {
	if n < kw.MinArguments() {
		return false
	}
	return kw.MaxArguments() == UnboundedArguments || n <= kw.MaxArguments()
}
