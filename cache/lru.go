package cache

// lruRing is an intrusive doubly-linked ring ordered by recency: the
// sentinel's next side is the most recently used node, its prev side the
// least. The ring is not safe for concurrent use; shards lock around it.
type lruRing[K comparable] struct {
	sentinel ringNode[K]
	size     int
}

// ringNode is one link of an lruRing. Entries hold their own node, so
// recency moves and removals never search the ring.
type ringNode[K comparable] struct {
	key  K
	prev *ringNode[K]
	next *ringNode[K]
}

// newLRURing creates an empty ring.
func newLRURing[K comparable]() *lruRing[K] {
	r := &lruRing[K]{}
	r.sentinel.prev = &r.sentinel
	r.sentinel.next = &r.sentinel
	return r
}

// Len returns the number of nodes in the ring.
func (r *lruRing[K]) Len() int { return r.size }

// PushFront inserts a new node for key at the recent end and returns it.
func (r *lruRing[K]) PushFront(key K) *ringNode[K] {
	n := &ringNode[K]{key: key}
	r.insertAfter(n, &r.sentinel)
	r.size++
	return n
}

// MoveToFront moves a linked node to the recent end.
func (r *lruRing[K]) MoveToFront(n *ringNode[K]) {
	if r.sentinel.next == n {
		return
	}
	r.unlink(n)
	r.insertAfter(n, &r.sentinel)
}

// Remove unlinks a node from the ring.
func (r *lruRing[K]) Remove(n *ringNode[K]) {
	r.unlink(n)
	r.size--
}

// RemoveOldest unlinks the least recently used node and returns its key.
func (r *lruRing[K]) RemoveOldest() (K, bool) {
	if r.size == 0 {
		var zero K
		return zero, false
	}
	n := r.sentinel.prev
	r.unlink(n)
	r.size--
	return n.key, true
}

// Oldest returns the key of the least recently used node without
// removing it.
func (r *lruRing[K]) Oldest() (K, bool) {
	if r.size == 0 {
		var zero K
		return zero, false
	}
	return r.sentinel.prev.key, true
}

// Clear empties the ring.
func (r *lruRing[K]) Clear() {
	r.sentinel.prev = &r.sentinel
	r.sentinel.next = &r.sentinel
	r.size = 0
}

func (r *lruRing[K]) insertAfter(n, at *ringNode[K]) {
	n.prev = at
	n.next = at.next
	at.next.prev = n
	at.next = n
}

func (r *lruRing[K]) unlink(n *ringNode[K]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev = nil
	n.next = nil
}
