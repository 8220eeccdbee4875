package runtime

// cell is a shared binding slot. Closures capture cells, not values: Put on
// an existing name overwrites the cell contents in place, so every scope
// clone holding the cell observes the update.
type cell struct {
	value Value
}

// Scope maps names onto shared cells. Lookup is deliberately local to the
// scope; the evaluator performs the explicit fallback to the interpreter's
// global scope.
type Scope struct {
	cells map[string]*cell
}

func NewScope() *Scope {
	return &Scope{cells: make(map[string]*cell)}
}

// Put overwrites the existing cell for name in place, or allocates a fresh
// cell when the name is unbound here. Never fails.
func (s *Scope) Put(name string, v Value) {
	if c, ok := s.cells[name]; ok {
		c.value = v
		return
	}
	s.cells[name] = &cell{value: v}
}

func (s *Scope) Has(name string) bool {
	_, ok := s.cells[name]
	return ok
}

// Get reports whether name is bound in this scope and its current value.
func (s *Scope) Get(name string) (Value, bool) {
	c, ok := s.cells[name]
	if !ok {
		return NilValue{}, false
	}
	return c.value, true
}

// Clone copies the name->cell structure while preserving cell identity.
// Names present now keep co-mutating across every clone; names added later
// stay private to the scope they were added in. This is what gives closures
// shared mutable upvalues.
func (s *Scope) Clone() *Scope {
	cells := make(map[string]*cell, len(s.cells))
	for name, c := range s.cells {
		cells[name] = c
	}
	return &Scope{cells: cells}
}

func (s *Scope) Len() int { return len(s.cells) }
