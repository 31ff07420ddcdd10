package value

// Table is an ordered list of values produced for one input.
//
// Entries are never replaced: Push appends, and Get returns the most recently
// pushed entry of a kind, so later entries shadow earlier ones.
type Table struct {
	values []Value
}

// NewTable returns a table holding vs in order.
func NewTable(vs ...Value) Table {
	t := Table{}
	for _, v := range vs {
		t.Push(v)
	}
	return t
}

// Push appends v. Zero values are dropped.
func (t *Table) Push(v Value) {
	if v.IsZero() {
		return
	}
	t.values = append(t.values, v)
}

// Has reports whether the table holds a value of kind k.
func (t Table) Has(k Kind) bool {
	for i := range t.values {
		if t.values[i].kind == k {
			return true
		}
	}
	return false
}

// Get returns the most recent value of kind k. The second result is false
// when the table holds no such value.
func (t Table) Get(k Kind) (Value, bool) {
	for i := len(t.values) - 1; i >= 0; i-- {
		if t.values[i].kind == k {
			return t.values[i], true
		}
	}
	return Value{}, false
}

// Len returns the number of entries.
func (t Table) Len() int { return len(t.values) }

// IsEmpty reports whether the table has no entries.
func (t Table) IsEmpty() bool { return len(t.values) == 0 }

// Values returns a copy of the entries in push order.
func (t Table) Values() []Value {
	out := make([]Value, len(t.values))
	copy(out, t.values)
	return out
}

// Clone returns an independent copy of the table.
func (t Table) Clone() Table {
	return Table{values: t.Values()}
}

// Merge concatenates tables in order into a new table.
func Merge(tables ...Table) Table {
	n := 0
	for _, t := range tables {
		n += len(t.values)
	}
	out := Table{values: make([]Value, 0, n)}
	for _, t := range tables {
		out.values = append(out.values, t.values...)
	}
	return out
}
