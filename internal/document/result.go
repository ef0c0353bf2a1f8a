package document

// Result holds the fragments a query selected and their classification.
//
// Runs always has one entry per fragment. Under Raw each entry is the
// fragment itself as a single run; under TamilOnly and NonTamilOnly it is
// the ordered list of maximal matching runs, possibly empty.
type Result struct {
	Filter    Filter
	Fragments []string
	Runs      [][]string
}

// Len returns the number of fragments
func (r Result) Len() int {
	return len(r.Fragments)
}

// Empty reports whether no fragment was selected
func (r Result) Empty() bool {
	return len(r.Fragments) == 0
}

// Flat returns every run in order
func (r Result) Flat() []string {
	out := []string{}
	for _, runs := range r.Runs {
		out = append(out, runs...)
	}
	return out
}
