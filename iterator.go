package partition

import "iter"

// Iterator Enumerates the members of the 'no' subset of one class. Between
// refinement rounds every element sits in the 'no' subset, so this walks the
// whole class. The iterator reads through the partition's links without
// owning them: it must not outlive the partition, and mutating the class
// while iterating invalidates it until Reset is called.
type Iterator struct {
	p     *Partition
	class int
	cur   int
}

// NewIterator returns an iterator positioned at the first member of class c.
func NewIterator(p *Partition, c int) *Iterator {
	return &Iterator{p: p, class: c, cur: p.noHead(c)}
}

// Done reports whether the iterator has run off the end of the list.
func (it *Iterator) Done() bool {
	return it.cur < 0
}

// Value returns the element the iterator is positioned at.
func (it *Iterator) Value() int {
	return it.cur
}

// Next advances to the successor element.
func (it *Iterator) Next() {
	it.cur = it.p.next(it.cur)
}

// Reset rewinds to the class's current head, picking up any mutation of the
// class since the iterator was constructed.
func (it *Iterator) Reset() {
	it.cur = it.p.noHead(it.class)
}

// Elements returns the members of class c's 'no' subset as a range-over-func
// sequence. The same aliasing rules as Iterator apply: do not mutate the
// class while ranging.
func (p *Partition) Elements(c int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for e := p.noHead(c); e >= 0; e = p.next(e) {
			if !yield(e) {
				return
			}
		}
	}
}
