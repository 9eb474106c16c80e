package models

// RefKind tells which refs root a Ref was found under.
type RefKind int

const (
	RefBranch RefKind = iota
	RefTag
)

func (k RefKind) String() string {
	switch k {
	case RefBranch:
		return "branch"
	case RefTag:
		return "tag"
	default:
		return "unknown"
	}
}

// Ref is a local branch or tag, named relative to its refs root
// (e.g. "feature/x" for .git/refs/heads/feature/x).
type Ref struct {
	Name string
	Kind RefKind
}

// FullName returns the fully qualified ref, e.g. "refs/tags/v1.0".
func (r Ref) FullName() string {
	switch r.Kind {
	case RefTag:
		return "refs/tags/" + r.Name
	default:
		return "refs/heads/" + r.Name
	}
}
