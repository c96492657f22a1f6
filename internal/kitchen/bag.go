package kitchen

// Bag is a fixed-capacity, unordered multiset. Element identity is defined
// by the equality function supplied at construction, so duplicates are
// allowed and removal takes out exactly one matching occurrence.
type Bag[T any] struct {
	items []T
	size  int
	eq    func(a, b T) bool
}

func NewBag[T any](capacity int, eq func(a, b T) bool) *Bag[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Bag[T]{
		items: make([]T, capacity),
		eq:    eq,
	}
}

// Add inserts item at the next free slot. It returns false when the bag is
// already at capacity.
func (b *Bag[T]) Add(item T) bool {
	if b.IsFull() {
		return false
	}
	b.items[b.size] = item
	b.size++
	return true
}

// Remove takes out one occurrence equal to item, filling the vacated slot
// with the last item to keep storage dense. Which of several equal
// occurrences is removed is unspecified.
func (b *Bag[T]) Remove(item T) bool {
	idx := b.indexOf(item)
	if idx < 0 {
		return false
	}
	b.size--
	b.items[idx] = b.items[b.size]
	var zero T
	b.items[b.size] = zero
	return true
}

func (b *Bag[T]) Contains(item T) bool {
	return b.indexOf(item) >= 0
}

func (b *Bag[T]) Size() int     { return b.size }
func (b *Bag[T]) Capacity() int { return len(b.items) }
func (b *Bag[T]) IsEmpty() bool { return b.size == 0 }
func (b *Bag[T]) IsFull() bool  { return b.size >= len(b.items) }

// Items returns a view of the held items in storage order. The order is
// implementation-defined and changes on removal; callers that remove while
// iterating must snapshot first.
func (b *Bag[T]) Items() []T {
	return b.items[:b.size]
}

func (b *Bag[T]) indexOf(item T) int {
	for i := 0; i < b.size; i++ {
		if b.eq(b.items[i], item) {
			return i
		}
	}
	return -1
}
