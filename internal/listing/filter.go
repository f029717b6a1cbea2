package listing

import "strconv"

type Op string

const (
	OpEq  Op = "eq"
	OpGte Op = "gte"
	OpLte Op = "lte"
)

// Predicate is one normalized filter clause. Values are kept as strings;
// the repository layer hands them to the database driver untyped, which
// covers both enum equality and lexicographic date-bound comparisons.
type Predicate struct {
	Column string
	Op     Op
	Value  string
}

// FieldSpec declares one filter field: the query parameter it binds to,
// the column it constrains, the comparison it applies, and the sentinel
// value that means "no constraint". The sentinel must be distinct from
// every real domain value ("All Regions" vs. an actual region).
type FieldSpec struct {
	Param    string
	Column   string
	Op       Op
	Sentinel string
}

// FilterState holds the active values of a fixed set of filter fields.
// Every change bumps a revision; a registered hook fires once per change,
// including Reset, which clears all fields but notifies a single time.
type FilterState struct {
	specs    []FieldSpec
	values   map[string]string
	revision uint64
	onChange func()
}

func NewFilterState(specs ...FieldSpec) *FilterState {
	fs := &FilterState{specs: specs, values: make(map[string]string, len(specs))}
	for _, s := range specs {
		fs.values[s.Param] = s.Sentinel
	}
	return fs
}

// OnChange registers the refresh hook. At most one hook is supported;
// later registrations replace earlier ones.
func (fs *FilterState) OnChange(fn func()) { fs.onChange = fn }

// Params lists the declared filter parameters in declaration order.
func (fs *FilterState) Params() []string {
	out := make([]string, len(fs.specs))
	for i, s := range fs.specs {
		out[i] = s.Param
	}
	return out
}

func (fs *FilterState) Revision() uint64 { return fs.revision }

// Set assigns a field value and fires the change hook. Unknown params are
// ignored so loose query strings cannot smuggle arbitrary columns in.
func (fs *FilterState) Set(param, value string) {
	if _, ok := fs.values[param]; !ok {
		return
	}
	if fs.values[param] == value {
		return
	}
	fs.values[param] = value
	fs.bump()
}

// Reset restores every field to its sentinel and fires the change hook
// exactly once, no matter how many fields were active.
func (fs *FilterState) Reset() {
	changed := false
	for _, s := range fs.specs {
		if fs.values[s.Param] != s.Sentinel {
			fs.values[s.Param] = s.Sentinel
			changed = true
		}
	}
	if changed {
		fs.bump()
	}
}

func (fs *FilterState) bump() {
	fs.revision++
	if fs.onChange != nil {
		fs.onChange()
	}
}

// Snapshot returns the normalized predicate set. Fields sitting at their
// sentinel contribute nothing; the result is derived purely from current
// values, with no memory of earlier snapshots.
func (fs *FilterState) Snapshot() []Predicate {
	preds := make([]Predicate, 0, len(fs.specs))
	for _, s := range fs.specs {
		v := fs.values[s.Param]
		if v == s.Sentinel {
			continue
		}
		preds = append(preds, Predicate{Column: s.Column, Op: s.Op, Value: v})
	}
	return preds
}

// CoerceFloat parses a numeric form value, defaulting to 0 on any parse
// failure. This mirrors the submission forms' parseFloat-or-zero policy
// and is deliberate: malformed numbers are coerced, not rejected.
func CoerceFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
