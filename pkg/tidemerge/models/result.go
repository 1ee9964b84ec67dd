package models

// Sheet is a named table, one entry of a sensor workbook.
type Sheet struct {
	// Name is the sheet name, unique within its workbook.
	Name string `json:"name"`
	// Table holds the sheet's rows.
	Table *Table `json:"table"`
}

// ResultSet is an ordered mapping from sheet name to merged table.
// Insertion order is preserved so exports are deterministic.
type ResultSet struct {
	names  []string
	tables map[string]*Table
}

// NewResultSet creates an empty result set.
func NewResultSet() *ResultSet {
	return &ResultSet{tables: make(map[string]*Table)}
}

// Add inserts a merged table under the given sheet name, keeping
// first-seen order. Sheet names are unique by source format; a repeated
// name replaces the table without changing the order.
func (r *ResultSet) Add(name string, t *Table) {
	if _, ok := r.tables[name]; !ok {
		r.names = append(r.names, name)
	}
	r.tables[name] = t
}

// Get returns the table stored under name.
func (r *ResultSet) Get(name string) (*Table, bool) {
	t, ok := r.tables[name]
	return t, ok
}

// Names returns the sheet names in first-seen order.
func (r *ResultSet) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len returns the number of sheets in the result set.
func (r *ResultSet) Len() int {
	return len(r.names)
}
