package runtime

import (
	"math"
	"testing"
)

func TestNormalizeIndex(t *testing.T) {
	cases := []struct {
		name string
		in   Value
		want Index
	}{
		{"integral number", NumberValue{Val: 1}, NumberIndex(1)},
		{"integral float", NumberValue{Val: 1.0}, NumberIndex(1)},
		{"negative zero", NumberValue{Val: math.Copysign(0, -1)}, NumberIndex(0)},
		{"non-integral number", NumberValue{Val: 1.5}, NameIndex("1.5")},
		{"nan", NumberValue{Val: math.NaN()}, NameIndex("NaN")},
		{"string", StringValue{Val: "1"}, NameIndex("1")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ix, ok := NormalizeIndex(tc.in)
			if !ok {
				t.Fatal("NormalizeIndex rejected a valid key")
			}
			if ix != tc.want {
				t.Fatalf("got %#v, want %#v", ix, tc.want)
			}
		})
	}
}

func TestNormalizeIndexRejectsNonKeyKinds(t *testing.T) {
	for _, v := range []Value{NilValue{}, BoolValue{Val: true}, NewTable(), &FunctionValue{}} {
		if _, ok := NormalizeIndex(v); ok {
			t.Errorf("NormalizeIndex accepted a %s key", v.Kind())
		}
	}
}

func TestNumberAndStringKeysAreDistinct(t *testing.T) {
	table := NewTable()
	table.Set(NumberIndex(1), StringValue{Val: "number"})
	table.Set(NameIndex("1"), StringValue{Val: "name"})

	if got := table.Get(NumberIndex(1)).(StringValue).Val; got != "number" {
		t.Fatalf("t[1] = %q", got)
	}
	if got := table.Get(NameIndex("1")).(StringValue).Val; got != "name" {
		t.Fatalf("t[\"1\"] = %q", got)
	}
	if table.Len() != 2 {
		t.Fatalf("len = %d, want 2", table.Len())
	}
}

func TestIntegralFloatCollidesWithInteger(t *testing.T) {
	table := NewTable()
	first, _ := NormalizeIndex(NumberValue{Val: 1})
	second, _ := NormalizeIndex(NumberValue{Val: 1.0})
	table.Set(first, StringValue{Val: "a"})
	table.Set(second, StringValue{Val: "b"})
	if table.Len() != 1 {
		t.Fatalf("len = %d, want 1", table.Len())
	}
	if got := table.Get(first).(StringValue).Val; got != "b" {
		t.Fatalf("got %q, want overwrite to b", got)
	}
}

func TestGetMissIsNil(t *testing.T) {
	table := NewTable()
	if _, ok := table.Get(NameIndex("missing")).(NilValue); !ok {
		t.Fatal("miss did not yield nil")
	}
}

func TestIndexesOrdering(t *testing.T) {
	table := NewTable()
	table.Set(NameIndex("b"), NilValue{})
	table.Set(NumberIndex(10), NilValue{})
	table.Set(NameIndex("a"), NilValue{})
	table.Set(NumberIndex(2), NilValue{})

	got := table.Indexes()
	want := []Index{NumberIndex(2), NumberIndex(10), NameIndex("a"), NameIndex("b")}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Indexes()[%d] = %#v, want %#v", i, got[i], want[i])
		}
	}
}

func TestFormatNumberAvoidsExponent(t *testing.T) {
	cases := map[float64]string{
		3:       "3",
		1.5:     "1.5",
		0.25:    "0.25",
		1000000: "1000000",
	}
	for in, want := range cases {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%v) = %q, want %q", in, got, want)
		}
	}
}
