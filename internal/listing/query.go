package listing

type Scope string

const (
	// ScopeAll reads every row; granted to admins.
	ScopeAll Scope = "all"
	// ScopeOwn restricts reads and writes to rows created by the
	// requesting identity; granted to agents.
	ScopeOwn Scope = "own"
)

// Query is a fully normalized read request against one resource
// collection: ownership clause, filter predicates, and the fixed
// created_at-descending order every list view uses. Generation carries
// the filter revision that produced the query so responses superseded by
// a newer filter change can be told apart downstream.
type Query struct {
	Scope      Scope
	OwnerID    string
	Predicates []Predicate
	Generation uint64
}

// BuildQuery derives a Query from the current filter state. It is a pure
// function of its inputs; repeated calls with unchanged state yield
// equivalent queries.
func BuildQuery(scope Scope, ownerID string, fs *FilterState) Query {
	return Query{
		Scope:      scope,
		OwnerID:    ownerID,
		Predicates: fs.Snapshot(),
		Generation: fs.Revision(),
	}
}
