package runtime

import "testing"

func TestScopePutAndGet(t *testing.T) {
	scope := NewScope()
	if _, ok := scope.Get("x"); ok {
		t.Fatal("unbound name reported as bound")
	}
	scope.Put("x", NumberValue{Val: 1})
	value, ok := scope.Get("x")
	if !ok {
		t.Fatal("bound name reported as unbound")
	}
	if n := value.(NumberValue); n.Val != 1 {
		t.Fatalf("got %v, want 1", n.Val)
	}
	scope.Put("x", NumberValue{Val: 2})
	value, _ = scope.Get("x")
	if n := value.(NumberValue); n.Val != 2 {
		t.Fatalf("got %v after overwrite, want 2", n.Val)
	}
}

func TestCloneSharesExistingCells(t *testing.T) {
	original := NewScope()
	original.Put("count", NumberValue{Val: 0})

	clone := original.Clone()
	clone.Put("count", NumberValue{Val: 5})

	value, _ := original.Get("count")
	if n := value.(NumberValue); n.Val != 5 {
		t.Fatalf("original sees %v after clone write, want 5", n.Val)
	}

	original.Put("count", NumberValue{Val: 9})
	value, _ = clone.Get("count")
	if n := value.(NumberValue); n.Val != 9 {
		t.Fatalf("clone sees %v after original write, want 9", n.Val)
	}
}

func TestCloneDivergesOnNewNames(t *testing.T) {
	original := NewScope()
	clone := original.Clone()

	clone.Put("fresh", NumberValue{Val: 1})
	if original.Has("fresh") {
		t.Fatal("name added after cloning leaked into the original scope")
	}

	original.Put("fresh", NumberValue{Val: 2})
	value, _ := clone.Get("fresh")
	if n := value.(NumberValue); n.Val != 1 {
		t.Fatalf("clone sees %v, want its own 1", n.Val)
	}
}

func TestSiblingClonesShareCells(t *testing.T) {
	base := NewScope()
	base.Put("shared", NumberValue{Val: 0})

	first := base.Clone()
	second := base.Clone()

	first.Put("shared", NumberValue{Val: 7})
	value, _ := second.Get("shared")
	if n := value.(NumberValue); n.Val != 7 {
		t.Fatalf("sibling clone sees %v, want 7", n.Val)
	}
}
