package value

// Database holds one Table per node input for a single evaluation pass.
// Insertion order is kept so Merge is deterministic.
type Database struct {
	ids    []string
	tables map[string]Table
}

// NewDatabase returns an empty database.
func NewDatabase() *Database {
	return &Database{tables: make(map[string]Table)}
}

// Insert sets the table for input id, replacing any previous one but keeping
// the original position.
func (db *Database) Insert(id string, t Table) {
	if db.tables == nil {
		db.tables = make(map[string]Table)
	}
	if _, ok := db.tables[id]; !ok {
		db.ids = append(db.ids, id)
	}
	db.tables[id] = t
}

// Table returns the table for input id, or an empty table.
// A nil database behaves as an empty one.
func (db *Database) Table(id string) Table {
	if db == nil {
		return Table{}
	}
	return db.tables[id]
}

// Has reports whether input id has a table.
func (db *Database) Has(id string) bool {
	if db == nil {
		return false
	}
	_, ok := db.tables[id]
	return ok
}

// IDs returns the input ids in insertion order.
func (db *Database) IDs() []string {
	if db == nil {
		return nil
	}
	out := make([]string, len(db.ids))
	copy(out, db.ids)
	return out
}

// Merge merges every table in insertion order.
func (db *Database) Merge() Table {
	if db == nil {
		return Table{}
	}
	tables := make([]Table, 0, len(db.ids))
	for _, id := range db.ids {
		tables = append(tables, db.tables[id])
	}
	return Merge(tables...)
}
