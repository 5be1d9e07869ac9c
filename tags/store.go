package tags

// Store is a dense array of Tables, one per graph element (node or
// edge), preallocated so traversal hot loops never grow it.
type Store struct {
	tables []Table
}

// NewStore returns a Store with n empty tables.
func NewStore(n int) *Store {
	return &Store{tables: make([]Table, n)}
}

// At returns the table of element i.
func (s *Store) At(i int) *Table { return &s.tables[i] }

// Len returns the element count.
func (s *Store) Len() int { return len(s.tables) }
