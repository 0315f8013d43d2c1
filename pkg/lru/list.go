package lru

// node is a single cache entry threaded into the recency list.
// The key is kept on the node because eviction starts from list
// position and must remove the map entry too.
type node struct {
	key   int
	value int
	prev  *node
	next  *node
}

// orderList is a doubly-linked list bounded by two sentinel nodes.
// The sentinels are allocated once, never carry an entry, and never
// move: head.next is the most recently used node, tail.prev the least.
// An empty list is head linked directly to tail.
//
// All operations are pure pointer relinking and never allocate.
type orderList struct {
	head *node
	tail *node
}

// newOrderList allocates the sentinels and links them to each other.
func newOrderList() *orderList {
	l := &orderList{
		head: &node{},
		tail: &node{},
	}
	l.head.next = l.tail
	l.tail.prev = l.head
	return l
}

// pushFront links n immediately after head, making it most recently used.
// n must not currently be linked.
func (l *orderList) pushFront(n *node) {
	n.prev = l.head
	n.next = l.head.next
	l.head.next.prev = n
	l.head.next = n
}

// remove unlinks n from the list. n must currently be linked and must
// not be a sentinel. The node's own links are cleared so a stale node
// can never be used to reach live entries.
func (l *orderList) remove(n *node) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev = nil
	n.next = nil
}

// moveToFront promotes an already-linked node to the front.
func (l *orderList) moveToFront(n *node) {
	if l.head.next == n {
		return
	}
	l.remove(n)
	l.pushFront(n)
}

// back returns the least recently used node, or nil if the list is
// empty or detached.
func (l *orderList) back() *node {
	if l.tail.prev == l.head || l.tail.prev == nil {
		return nil
	}
	return l.tail.prev
}

// empty reports whether the list holds no entries.
func (l *orderList) empty() bool {
	return l.head.next == l.tail
}

// detach breaks the sentinel linkage. Called once on teardown, after
// every entry node has been removed.
func (l *orderList) detach() {
	l.head.next = nil
	l.tail.prev = nil
}
