package dotenv

import "sort"

// Provenance describes where a variable's effective value came from.
type Provenance struct {
	Name    string // Variable name
	Path    string // Definition file
	Line    int    // Line of the last assignment to Name
	Written []View // Views the last assignment was written to
}

// Provenance returns one entry per distinct name, taken from the last
// assignment to that name and sorted by name.
func (r *Result) Provenance() []Provenance {
	if r == nil {
		return nil
	}

	last := make(map[string]int, len(r.Assignments))
	for i, a := range r.Assignments {
		last[a.Name] = i
	}

	out := make([]Provenance, 0, len(last))
	for name, i := range last {
		a := r.Assignments[i]
		out = append(out, Provenance{
			Name:    name,
			Path:    r.Path,
			Line:    a.Line,
			Written: a.Written,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
