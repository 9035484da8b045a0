package validation

// Group is an ordered phase of constraint evaluation.
type Group int

const (
	// Basic constraints check field presence and shape.
	Basic Group = iota + 1

	// Extended constraints check cross-resource references. They only run when
	// every Basic constraint on the same object passed.
	Extended
)

// DefaultSequence is the group order applied when Validate is called without groups.
var DefaultSequence = []Group{Basic, Extended}

// String returns the group name.
func (g Group) String() string {
	switch g {
	case Basic:
		return "basic"
	case Extended:
		return "extended"
	default:
		return "unknown"
	}
}
