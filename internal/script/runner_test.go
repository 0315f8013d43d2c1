package script

import (
	"strings"
	"testing"

	"github.com/jmurray2011/hoard/internal/logging"
	"github.com/jmurray2011/hoard/pkg/lru"
)

func newRunner(t *testing.T, capacity int) (*Runner, *lru.Cache) {
	t.Helper()
	cache, err := lru.New(capacity)
	if err != nil {
		t.Fatalf("lru.New(%d) error: %v", capacity, err)
	}
	t.Cleanup(func() { _ = cache.Close() })
	return NewRunner(cache, logging.Nop{}), cache
}

func runScript(t *testing.T, r *Runner, src string) []Result {
	t.Helper()
	ops, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	results, err := r.Run(ops)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	return results
}

func TestRunner_DemoScenario(t *testing.T) {
	r, _ := newRunner(t, 2)

	results := runScript(t, r, `
put 1 1
put 2 2
get 1
put 3 3
get 2
put 4 4
get 1
get 3
get 4
`)

	type step struct {
		hit     bool
		value   int
		evicted bool
		victim  int
		keys    []int
	}
	want := []step{
		{value: 1, keys: []int{1}},                          // put 1 1
		{value: 2, keys: []int{2, 1}},                       // put 2 2
		{hit: true, value: 1, keys: []int{1, 2}},            // get 1
		{value: 3, evicted: true, victim: 2, keys: []int{3, 1}}, // put 3 3
		{keys: []int{3, 1}},                                 // get 2 (miss)
		{value: 4, evicted: true, victim: 1, keys: []int{4, 3}}, // put 4 4
		{keys: []int{4, 3}},                                 // get 1 (miss)
		{hit: true, value: 3, keys: []int{3, 4}},            // get 3
		{hit: true, value: 4, keys: []int{4, 3}},            // get 4
	}

	if len(results) != len(want) {
		t.Fatalf("got %d results, want %d", len(results), len(want))
	}
	for i, w := range want {
		got := results[i]
		if got.Hit != w.hit {
			t.Errorf("step %d (%s): Hit = %v, want %v", i+1, got.Op, got.Hit, w.hit)
		}
		if w.hit || got.Op.Kind == KindPut {
			if got.Value != w.value {
				t.Errorf("step %d (%s): Value = %d, want %d", i+1, got.Op, got.Value, w.value)
			}
		}
		if got.Evicted != w.evicted {
			t.Errorf("step %d (%s): Evicted = %v, want %v", i+1, got.Op, got.Evicted, w.evicted)
		}
		if w.evicted && got.EvictedKey != w.victim {
			t.Errorf("step %d (%s): EvictedKey = %d, want %d", i+1, got.Op, got.EvictedKey, w.victim)
		}
		if len(got.Keys) != len(w.keys) {
			t.Fatalf("step %d (%s): Keys = %v, want %v", i+1, got.Op, got.Keys, w.keys)
		}
		for j := range w.keys {
			if got.Keys[j] != w.keys[j] {
				t.Errorf("step %d (%s): Keys = %v, want %v", i+1, got.Op, got.Keys, w.keys)
				break
			}
		}
	}
}

func TestRunner_UpdateDoesNotEvict(t *testing.T) {
	r, cache := newRunner(t, 2)

	results := runScript(t, r, "put 1 10\nput 2 20\nput 1 11\n")

	last := results[len(results)-1]
	if last.Evicted {
		t.Error("updating an existing key reported an eviction")
	}
	if last.Len != 2 {
		t.Errorf("Len = %d after update, want 2", last.Len)
	}
	if v, ok := cache.Peek(1); !ok || v != 11 {
		t.Errorf("Peek(1) = (%d, %v), want (11, true)", v, ok)
	}
}

func TestRunner_InspectionOps(t *testing.T) {
	r, _ := newRunner(t, 3)

	results := runScript(t, r, "put 1 10\nput 2 20\nhas 1\nhas 9\npeek 1\nlen\nkeys\noldest\n")

	has1, has9, peek1, lenRes, keysRes, oldest := results[2], results[3], results[4], results[5], results[6], results[7]

	if !has1.Hit {
		t.Error("has 1 should hit")
	}
	if has9.Hit {
		t.Error("has 9 should miss")
	}
	if !peek1.Hit || peek1.Value != 10 {
		t.Errorf("peek 1 = (%d, %v), want (10, true)", peek1.Value, peek1.Hit)
	}
	// peek must not promote: order still 2, 1.
	if peek1.Keys[0] != 2 || peek1.Keys[1] != 1 {
		t.Errorf("order after peek = %v, want [2 1]", peek1.Keys)
	}
	if lenRes.Len != 2 {
		t.Errorf("len = %d, want 2", lenRes.Len)
	}
	if len(keysRes.Keys) != 2 {
		t.Errorf("keys = %v, want two entries", keysRes.Keys)
	}
	if !oldest.Hit || oldest.Key != 1 || oldest.Value != 10 {
		t.Errorf("oldest = (key %d, value %d, hit %v), want (1, 10, true)", oldest.Key, oldest.Value, oldest.Hit)
	}
}

func TestRunner_OldestOnEmptyCache(t *testing.T) {
	r, _ := newRunner(t, 2)

	results := runScript(t, r, "oldest\n")
	if results[0].Hit {
		t.Error("oldest on empty cache should report no entry")
	}
}

func TestRunner_ClosedCache(t *testing.T) {
	cache, err := lru.New(2)
	if err != nil {
		t.Fatalf("lru.New error: %v", err)
	}
	_ = cache.Close()

	r := NewRunner(cache, nil)
	ops, _ := Parse(strings.NewReader("put 1 1\n"))
	if _, err := r.Run(ops); err == nil {
		t.Error("Run against a closed cache should fail")
	}
}
