package dotenv

import "fmt"

// View identifies one of the three parts of a Namespace.
type View int

const (
	ViewPrimary   View = iota // First process-scoped store
	ViewSecondary             // Second process-scoped store
	ViewProcess               // Generic environment table
)

var viewNames = [...]string{"primary", "secondary", "process"}

func (v View) String() string {
	if v < 0 || int(v) >= len(viewNames) {
		return fmt.Sprintf("View(%d)", int(v))
	}
	return viewNames[v]
}

// MarshalText encodes the view by name.
func (v View) MarshalText() ([]byte, error) {
	if v < 0 || int(v) >= len(viewNames) {
		return nil, fmt.Errorf("dotenv: unknown view %d", int(v))
	}
	return []byte(viewNames[v]), nil
}

// Assignment is one decoded name=value pair.
type Assignment struct {
	Name    string // Never empty; no quotes, no export prefix
	Value   string // Quotes, comments, escapes and references already resolved
	Line    int    // 1-based line number in the definition file
	Written []View // Views this assignment was actually written to
}

// Result is the outcome of a single load pass.
type Result struct {
	Path        string       // Definition file that was read
	Assignments []Assignment // In file order; repeated names are kept
}

// Vars returns the decoded mapping. When a name appears more than once,
// the last occurrence wins.
func (r *Result) Vars() map[string]string {
	if r == nil {
		return nil
	}

	vars := make(map[string]string, len(r.Assignments))
	for _, a := range r.Assignments {
		vars[a.Name] = a.Value
	}
	return vars
}
