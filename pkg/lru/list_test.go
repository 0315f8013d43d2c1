package lru

import "testing"

func TestOrderList_New(t *testing.T) {
	l := newOrderList()

	if !l.empty() {
		t.Error("new list should be empty")
	}
	if l.head.next != l.tail {
		t.Error("head should link directly to tail in empty list")
	}
	if l.tail.prev != l.head {
		t.Error("tail should link directly to head in empty list")
	}
	if l.back() != nil {
		t.Error("back() on empty list should be nil")
	}
}

func TestOrderList_PushFront(t *testing.T) {
	l := newOrderList()
	a := &node{key: 1}
	b := &node{key: 2}

	l.pushFront(a)
	if l.head.next != a || l.tail.prev != a {
		t.Fatal("single node should be both front and back")
	}

	l.pushFront(b)
	if l.head.next != b {
		t.Error("newest node should be at the front")
	}
	if l.back() != a {
		t.Error("oldest node should be at the back")
	}
	if b.next != a || a.prev != b {
		t.Error("neighbor links between b and a are wrong")
	}
}

func TestOrderList_Remove(t *testing.T) {
	l := newOrderList()
	a := &node{key: 1}
	b := &node{key: 2}
	c := &node{key: 3}
	l.pushFront(a)
	l.pushFront(b)
	l.pushFront(c)

	// Remove from the middle; neighbors must relink around it.
	l.remove(b)
	if c.next != a || a.prev != c {
		t.Error("removing middle node did not relink neighbors")
	}
	if b.prev != nil || b.next != nil {
		t.Error("removed node should have cleared links")
	}

	l.remove(c)
	l.remove(a)
	if !l.empty() {
		t.Error("list should be empty after removing every node")
	}
}

func TestOrderList_MoveToFront(t *testing.T) {
	l := newOrderList()
	a := &node{key: 1}
	b := &node{key: 2}
	c := &node{key: 3}
	l.pushFront(a)
	l.pushFront(b)
	l.pushFront(c)

	// Order is c, b, a. Promote the back node.
	l.moveToFront(a)
	wantOrder(t, l, []int{1, 3, 2})

	// Promoting the front node changes nothing.
	l.moveToFront(a)
	wantOrder(t, l, []int{1, 3, 2})

	// Promote a middle node.
	l.moveToFront(c)
	wantOrder(t, l, []int{3, 1, 2})
}

func TestOrderList_Detach(t *testing.T) {
	l := newOrderList()
	l.detach()

	if l.head.next != nil || l.tail.prev != nil {
		t.Error("detach should break sentinel links")
	}
	if l.back() != nil {
		t.Error("back() on detached list should be nil")
	}
}

func wantOrder(t *testing.T, l *orderList, want []int) {
	t.Helper()
	var got []int
	for n := l.head.next; n != l.tail; n = n.next {
		got = append(got, n.key)
	}
	if len(got) != len(want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}

	// The reverse walk must agree, or a prev link is stale.
	var rev []int
	for n := l.tail.prev; n != l.head; n = n.prev {
		rev = append(rev, n.key)
	}
	for i := range want {
		if rev[len(rev)-1-i] != want[i] {
			t.Fatalf("reverse order = %v, want forward %v", rev, want)
		}
	}
}
