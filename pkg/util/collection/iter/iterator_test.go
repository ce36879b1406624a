package iter

import (
	"testing"
)

func TestIter_Array(t *testing.T) {
	i := NewArrayIterator([]int{1, 2, 3})
	//
	if !i.HasNext() || i.Count() != 3 {
		t.Errorf("expected three items")
	}
	//
	if i.Next() != 1 || i.Next() != 2 || i.Next() != 3 || i.HasNext() {
		t.Errorf("items visited out of order")
	}
}

func TestIter_Clone(t *testing.T) {
	i := NewArrayIterator([]int{1, 2, 3})
	i.Next()
	// Clone is restartable from the cursor
	j := i.Clone()
	i.Next()
	//
	if j.Next() != 2 {
		t.Errorf("clone should resume at cursor")
	}
}

func TestIter_Append(t *testing.T) {
	i := NewArrayIterator([]int{1}).Append(NewArrayIterator([]int{2, 3}))
	//
	items := i.Collect()
	//
	if len(items) != 3 || items[0] != 1 || items[2] != 3 {
		t.Errorf("unexpected items %v", items)
	}
}

func TestIter_Find(t *testing.T) {
	i := NewArrayIterator([]int{4, 5, 6})
	//
	if n, ok := i.Find(func(item int) bool { return item == 5 }); !ok || n != 1 {
		t.Errorf("expected to find item at index 1")
	}
	//
	if _, ok := NewArrayIterator([]int{}).Find(func(int) bool { return true }); ok {
		t.Errorf("expected no match in empty iterator")
	}
}

func TestIter_Nth(t *testing.T) {
	i := NewArrayIterator([]int{1}).Append(NewArrayIterator([]int{2, 3}))
	//
	if i.Nth(2) != 3 {
		t.Errorf("expected third item")
	}
}
