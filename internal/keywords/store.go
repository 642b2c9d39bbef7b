package keywords

import (
	"fmt"
	"strings"

	"github.com/quenchsim/quench/internal/coredata"
	"github.com/quenchsim/quench/internal/lineparser"
)

// ParseResult reports the outcome of offering a line to a keyword store.
type ParseResult int

const (
	// Unrecognised means the name token matched no keyword in the store;
	// the caller should try its next candidate set.
	Unrecognised ParseResult = -1
	// Failed means the name matched but the arguments were malformed,
	// badly counted, out of range, or referenced an unknown entity.
	Failed ParseResult = 0
	// Success means the value was parsed and committed.
	Success ParseResult = 1
)

// String returns a short name for the parse result.
func (pr ParseResult) String() string {
	switch pr {
	case Unrecognised:
		return "Unrecognised"
	case Failed:
		return "Failed"
	case Success:
		return "Success"
	default:
		return fmt.Sprintf("ParseResult(%d)", int(pr))
	}
}

// Store is the set of keywords declared by one owning object (a module,
// procedure node, or data object). Adding a keyword configures its
// descriptor and registers it with the shared registry; Close deregisters
// everything when the owner is destroyed.
type Store struct {
	registry *Registry
	keywords []Keyword
}

// NewStore creates an empty keyword store bound to the given registry.
func NewStore(registry *Registry) *Store {
	return &Store{registry: registry}
}

// Add configures a keyword's descriptor and registers it. The variant is
// returned for further fluent setup. Declaring two keywords with the same
// name in one store panics: the owner's keyword set is fixed in code, so a
// clash is always a programming error.
func (s *Store) Add(kw Keyword, name, description, arguments string, options ...Option) Keyword {
	if s.Find(name) != nil {
		panic(fmt.Sprintf("keywords: keyword %q declared twice in one store", name))
	}
	mask := NoOptions
	for _, opt := range options {
		mask |= opt
	}
	kw.configure(name, description, arguments, mask)
	if err := s.registry.Register(kw); err != nil {
		panic(fmt.Sprintf("keywords: %v", err))
	}
	s.keywords = append(s.keywords, kw)
	return kw
}

// Find returns the keyword with the given name (case-insensitive), or nil.
func (s *Store) Find(name string) Keyword {
	for _, kw := range s.keywords {
		if strings.EqualFold(kw.Name(), name) {
			return kw
		}
	}
	return nil
}

// Keywords returns the declared keywords in declaration order.
func (s *Store) Keywords() []Keyword {
	return s.keywords
}

// Parse offers one tokenized line to the store. The first token names the
// keyword; the rest are its arguments. Unrecognised names leave every
// keyword untouched. Argument-count and parse failures return Failed with
// an error carrying the keyword name and argument context.
func (s *Store) Parse(args lineparser.Args, data *coredata.CoreData) (ParseResult, error) {
	name, err := args.S(0)
	if err != nil {
		return Unrecognised, nil
	}
	kw := s.Find(name)
	if kw == nil {
		return Unrecognised, nil
	}

	nArgs := args.N() - 1
	if !ValidArgumentCount(kw, nArgs) {
		if kw.MaxArguments() == UnboundedArguments {
			return Failed, fmt.Errorf("keyword %s expects at least %d argument(s) but %d provided", kw.Name(), kw.MinArguments(), nArgs)
		}
		return Failed, fmt.Errorf("keyword %s expects between %d and %d argument(s) but %d provided", kw.Name(), kw.MinArguments(), kw.MaxArguments(), nArgs)
	}

	if err := kw.Read(args, 1, data); err != nil {
		return Failed, fmt.Errorf("keyword %s: %w", kw.Name(), err)
	}
	return Success, nil
}

// Write serializes every keyword whose data has been set, one line each,
// prefixed with the supplied indentation.
func (s *Store) Write(w *lineparser.Writer, prefix string) error {
	for _, kw := range s.keywords {
		if !HasBeenSet(kw) {
			continue
		}
		if err := kw.Write(w, kw.Name(), prefix); err != nil {
			return err
		}
	}
	return nil
}

// WriteRestart serializes the set keywords flagged for restart-file
// inclusion. The emitted lines must round-trip through Parse without loss.
func (s *Store) WriteRestart(w *lineparser.Writer, prefix string) error {
	for _, kw := range s.keywords {
		if !kw.IsOptionSet(InRestartFile) || !HasBeenSet(kw) {
			continue
		}
		if err := kw.Write(w, kw.Name(), prefix); err != nil {
			return err
		}
	}
	return nil
}

// Reset clears the set flag on every keyword. Values are retained; only
// the owner uses this, when reverting to a defaults-equivalent state.
func (s *Store) Reset() {
	for _, kw := range s.keywords {
		kw.resetSet()
	}
}

// Close deregisters every keyword from the registry. Called when the
// owning object is destroyed; the store must not be used afterwards.
func (s *Store) Close() {
	for _, kw := range s.keywords {
		s.registry.Deregister(kw)
	}
	s.keywords = nil
}
