package constraint

import "errors"

// Configuration errors. All of them are detected at setup time
// (AddVariable / AddConstraint / Validate), never during solving, so a
// caller can fail fast before paying the search cost. Use errors.Is to
// test wrapped returns.
var (
	// ErrDuplicateVariable is returned when registering a payload whose
	// key collides with an already registered variable.
	ErrDuplicateVariable = errors.New("duplicate variable key")

	// ErrUnknownVariable is returned when a constraint's scope references
	// a payload that was never registered as a variable.
	ErrUnknownVariable = errors.New("unknown variable in constraint scope")

	// ErrEmptyDomain is reported by Validate for variables registered with
	// an empty domain. An empty domain is not a hard registration error:
	// the solver treats it as an immediate "no solutions" fast path.
	ErrEmptyDomain = errors.New("variable has empty domain")
)
