package runtime

import (
	"math"
	"sort"
	"strconv"
)

// Index is a normalized table key: either a name or an integer.
type Index struct {
	name   string
	number int64
	isName bool
}

func NameIndex(name string) Index { return Index{name: name, isName: true} }

func NumberIndex(n int64) Index { return Index{number: n} }

func (ix Index) IsName() bool { return ix.isName }

func (ix Index) Name() string { return ix.name }

func (ix Index) Number() int64 { return ix.number }

func (ix Index) String() string {
	if ix.isName {
		return ix.name
	}
	return strconv.FormatInt(ix.number, 10)
}

// NormalizeIndex maps a runtime value onto a table key. A number with an
// exact integer representation becomes an integer index; any other number
// becomes a name index built from its decimal rendering; a string becomes a
// name index directly. The bool result is false when the value kind cannot
// key a table.
func NormalizeIndex(v Value) (Index, bool) {
	switch key := v.(type) {
	case NumberValue:
		if n, ok := exactInt(key.Val); ok {
			return NumberIndex(n), true
		}
		return NameIndex(FormatNumber(key.Val)), true
	case StringValue:
		return NameIndex(key.Val), true
	default:
		return Index{}, false
	}
}

// exactInt reports whether f has an exact int64 representation. NaN,
// infinities, and magnitudes beyond the int64 range all fail and fall back
// to the decimal-name rule.
func exactInt(f float64) (int64, bool) {
	if math.Trunc(f) != f || math.IsInf(f, 0) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// FormatNumber renders a number as its shortest round-trip decimal without
// exponent notation. This rendering doubles as the name-index form of
// non-integral keys.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// TableValue is the language's single composite structure: a shared mutable
// mapping from normalized indexes to values. Aliasing a table value shares
// this backing store; there is no copy-on-write.
type TableValue struct {
	entries map[Index]Value
}

func NewTable() *TableValue {
	return &TableValue{entries: make(map[Index]Value)}
}

func (*TableValue) Kind() Kind { return KindTable }

func (t *TableValue) Set(ix Index, v Value) {
	t.entries[ix] = v
}

// Get returns nil for a missing key, never an error.
func (t *TableValue) Get(ix Index) Value {
	if v, ok := t.entries[ix]; ok {
		return v
	}
	return NilValue{}
}

func (t *TableValue) Has(ix Index) bool {
	_, ok := t.entries[ix]
	return ok
}

func (t *TableValue) Len() int { return len(t.entries) }

// Indexes returns the table's keys in a deterministic order: integer indexes
// ascending, then name indexes sorted. Display code relies on this.
func (t *TableValue) Indexes() []Index {
	out := make([]Index, 0, len(t.entries))
	for ix := range t.entries {
		out = append(out, ix)
	}
	sort.Slice(out, func(a, b int) bool {
		left, right := out[a], out[b]
		if left.isName != right.isName {
			return !left.isName
		}
		if left.isName {
			return left.name < right.name
		}
		return left.number < right.number
	})
	return out
}
