package segtree

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func smallIntArray() []int {
	arr := make([]int, 8)
	for i := range arr {
		arr[i] = 10*(i+1) + i + 1
	}
	return arr
}

func add(x, y int) int { return x + y }

func concat(x, y string) string { return x + y }

func eqInt(a, b int) bool { return a == b }

// fold is the reference implementation queries are compared against.
func fold[T any](items []T, left, right int, op func(T, T) T, dflt T) T {
	if left == right {
		return items[left]
	}
	acc := dflt
	for _, item := range items[left : right+1] {
		acc = op(acc, item)
	}
	return acc
}

func TestQueryTreeConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()
	//
	if _, err := NewQueryTree([]int{1, 2}, Config[int]{}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for missing operation, got %v", err)
	}
	if _, err := NewQueryTree([]int{1, 2}, With[int](nil, 0)); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for nil function, got %v", err)
	}
}

func TestQueryTreeBuild(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	arr := []int{11, 22, 33, 44, 55}
	tree, err := NewQueryTree(arr, With(add, 0))
	if err != nil {
		t.Fatal(err)
	}
	if tree.Leaves() != 8 || len(tree.slots) != 15 {
		t.Errorf("expected 8 leaves in 15 slots, have %d in %d", tree.Leaves(), len(tree.slots))
	}
	if tree.slots[0] != 165 {
		t.Errorf("expected root to hold 165, holds %d", tree.slots[0])
	}
	if err = tree.Check(eqInt); err != nil {
		t.Error(err)
	}
	arr[0] = 99
	if v, _ := tree.Item(0); v != 11 {
		t.Errorf("tree should not share its input slice")
	}
}

func TestQueryTreeScenario(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()
	//
	tree, err := NewQueryTree(smallIntArray(), With(add, 0))
	if err != nil {
		t.Fatal(err)
	}
	if v, err := tree.Query(0, 7); err != nil || v != 396 {
		t.Errorf("expected query(0,7) = 396, is %d (%v)", v, err)
	}
	if v, err := tree.Query(2, 3); err != nil || v != 77 {
		t.Errorf("expected query(2,3) = 77, is %d (%v)", v, err)
	}
	if err = tree.Update(0, 1000); err != nil {
		t.Fatal(err)
	}
	if v, err := tree.Query(0, 1); err != nil || v != 1022 {
		t.Errorf("expected query(0,1) = 1022 after update, is %d (%v)", v, err)
	}
	if err = tree.Check(eqInt); err != nil {
		t.Error(err)
	}
}

func TestQueryTreeInvalidQuery(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()
	//
	arr := []int{11, 22, 33, 44, 55, 66, 77}
	tree, _ := NewQueryTree(arr, With(add, 0))
	for _, q := range [][2]int{{0, 9}, {6, 0}, {0, 7}, {-1, 3}} {
		if _, err := tree.Query(q[0], q[1]); !errors.Is(err, ErrInvalidRange) {
			t.Errorf("expected ErrInvalidRange for query %v, got %v", q, err)
		}
	}
	for _, i := range []int{-1, 7} {
		if err := tree.Update(i, 0); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("expected ErrIndexOutOfRange for update %d, got %v", i, err)
		}
	}
	items := tree.Items()
	for i := range arr {
		if items[i] != arr[i] {
			t.Errorf("rejected operations mutated item %d", i)
		}
	}
}

func TestQueryTreeSingleItem(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()
	//
	tree, err := NewQueryTree([]int{5}, With(add, 0))
	if err != nil {
		t.Fatal(err)
	}
	if v, err := tree.Query(0, 0); err != nil || v != 5 {
		t.Errorf("expected single item tree to answer 5, is %d (%v)", v, err)
	}
}

func TestQueryTreeEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()
	//
	tree, err := NewQueryTree([]int{}, With(add, 0))
	if err != nil {
		t.Fatal(err)
	}
	if tree.Len() != 0 || len(tree.Items()) != 0 {
		t.Errorf("expected empty tree")
	}
	if _, err = tree.Query(0, 0); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected every query on an empty tree to fail, got %v", err)
	}
}

func TestQueryTreeNonCommutative(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()
	//
	chars := []string{"s", "e", "g", "m", "e", "n", "t", "t", "r", "e", "e"}
	tree, err := NewQueryTree(chars, With(concat, ""))
	if err != nil {
		t.Fatal(err)
	}
	for _, q := range [][2]int{{0, 7}, {7, 7}, {6, 7}, {0, 4}, {1, 3}, {2, 3}, {0, 10}, {3, 9}} {
		expected := fold(chars, q[0], q[1], concat, "")
		if v, err := tree.Query(q[0], q[1]); err != nil || v != expected {
			t.Errorf("query %v: expected %q, is %q (%v)", q, expected, v, err)
		}
	}
}

func TestQueryTreeUpdateAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()
	//
	chars := []string{"s", "e", "g", "m", "e", "n", "t", "t", "r", "e", "e"}
	tree, _ := NewQueryTree(chars, With(concat, ""))
	for i := range chars {
		if err := tree.Update(i, chars[len(chars)-1-i]); err != nil {
			t.Fatal(err)
		}
		if v, _ := tree.Query(i, i); v != chars[len(chars)-1-i] {
			t.Errorf("expected query(%d,%d) to return updated value, is %q", i, i, v)
		}
	}
	items := tree.Items()
	for i := range chars {
		if items[i] != chars[len(chars)-1-i] {
			t.Errorf("expected reversed items, have %v", items)
			break
		}
	}
	if v, _ := tree.Query(0, len(chars)-1); v != "eerttnemges" {
		t.Errorf("expected reversed text, have %q", v)
	}
}

func TestQueryTreeRandom(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()
	//
	type operation struct {
		name    string
		combine func(int, int) int
		dflt    int
	}
	ops := []operation{
		{"sum", add, 0},
		{"min", func(x, y int) int { return min(x, y) }, math.MaxInt},
		{"max", func(x, y int) int { return max(x, y) }, math.MinInt},
	}
	rnd := rand.New(rand.NewSource(4711))
	arr := make([]int, 500)
	for i := range arr {
		arr[i] = rnd.Intn(20001) - 10000
	}
	for _, op := range ops {
		tree, err := NewQueryTree(arr, With(op.combine, op.dflt))
		if err != nil {
			t.Fatal(err)
		}
		for range 400 {
			left := rnd.Intn(len(arr))
			right := left + rnd.Intn(len(arr)-left)
			expected := fold(arr, left, right, op.combine, op.dflt)
			if v, _ := tree.Query(left, right); v != expected {
				t.Fatalf("%s over [%d, %d]: expected %d, is %d", op.name, left, right, expected, v)
			}
		}
	}
}

func TestQueryTreeRandomUpdates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()
	//
	rnd := rand.New(rand.NewSource(815))
	words := []string{"a", "b", "c", "xy", "z"}
	arr := make([]string, 37)
	for i := range arr {
		arr[i] = words[rnd.Intn(len(words))]
	}
	tree, _ := NewQueryTree(arr, With(concat, ""))
	for range 300 {
		i := rnd.Intn(len(arr))
		arr[i] = words[rnd.Intn(len(words))]
		if err := tree.Update(i, arr[i]); err != nil {
			t.Fatal(err)
		}
		left := rnd.Intn(len(arr))
		right := left + rnd.Intn(len(arr)-left)
		if v, _ := tree.Query(left, right); v != fold(arr, left, right, concat, "") {
			t.Fatalf("query [%d, %d] after updates: have %q", left, right, v)
		}
	}
	if err := tree.Check(func(a, b string) bool { return a == b }); err != nil {
		t.Error(err)
	}
}

func TestQueryTreeCheckDetectsCorruption(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()
	//
	tree, _ := NewQueryTree(smallIntArray(), With(add, 0))
	tree.slots[3] = -1
	if err := tree.Check(eqInt); !errors.Is(err, ErrBrokenInvariant) {
		t.Errorf("expected corrupted tree to fail check, got %v", err)
	}
}
