package partition

import "fmt"

// noIndex marks the absence of a link or class. All element and class
// identifiers are non-negative, so any negative value works as a sentinel.
const noIndex = -1

// element holds the per-element bookkeeping. Elements are stored in a flat
// slice and refer to each other by index, never by pointer.
type element struct {
	// class this element currently belongs to, or noIndex if unassigned.
	class int

	// yes is a generation stamp. The element is in the 'yes' subset of its
	// class iff yes == Partition.gen; any other value means 'no'. Bumping
	// gen clears every element's mark at once.
	yes int

	// next and prev link the element into the doubly-linked 'no' or 'yes'
	// list of its class, whichever one its mark selects. noIndex ends a list.
	next int
	prev int
}

// class holds the per-class bookkeeping.
type class struct {
	size    int // total members, 'no' plus 'yes'
	yesSize int // members currently in the 'yes' subset
	noHead  int // head of the 'no' list, or noIndex
	yesHead int // head of the 'yes' list, or noIndex
}

// Partition Maintains a partition of the elements 0..n-1 into numbered
// classes, as used to represent equivalence classes during Hopcroft-style
// automaton minimization. Classes are numbered from zero and created with
// AddClass or AllocateClasses; elements are assigned with Add and reassigned
// with Move.
//
// Each class is further divided into a 'yes' and a 'no' subset; every member
// starts out in 'no'. SplitOn moves one element to the 'yes' subset of its
// class, and FinalizeSplit then turns every class whose two subsets are both
// nonempty into two classes, keeping the larger subset under the old class
// number and giving the smaller one a fresh number. The cost of a split is
// proportional to the smaller subset only, which is what bounds the total
// work of the enclosing minimization at O(n log n).
//
// Precondition violations (adding an element twice, moving a marked element,
// indexing out of range) panic: continuing would corrupt the intrusive lists,
// so none of them are reported as recoverable errors.
//
// Not safe for concurrent use.
type Partition struct {
	elements []element
	classes  []class

	// visited lists the classes with a nonempty 'yes' subset, in the order
	// they were first touched by SplitOn. Cleared by FinalizeSplit.
	visited []int

	// gen is the generation counter that the elements' yes stamps are
	// compared against.
	gen int
}

// New returns a partition over the elements 0..n-1, none of which is assigned
// to a class yet.
func New(n int) *Partition {
	p := &Partition{}
	p.Initialize(n)
	return p
}

// Initialize resets the partition to hold n unassigned elements and no
// classes. Any previous contents are discarded.
func (p *Partition) Initialize(n int) {
	p.elements = make([]element, n)
	for i := range p.elements {
		p.elements[i] = element{class: noIndex, next: noIndex, prev: noIndex}
	}
	p.classes = make([]class, 0, n)
	p.visited = p.visited[:0]
	p.gen = 1
}

// AddClass appends one new empty class and returns its identifier.
func (p *Partition) AddClass() int {
	id := len(p.classes)
	p.classes = append(p.classes, class{noHead: noIndex, yesHead: noIndex})
	return id
}

// AllocateClasses appends n new empty classes at once.
func (p *Partition) AllocateClasses(n int) {
	for i := 0; i < n; i++ {
		p.classes = append(p.classes, class{noHead: noIndex, yesHead: noIndex})
	}
}

// Add assigns element e to class c. The element must not currently belong to
// any class; use Move to transfer an element that has already been added.
func (p *Partition) Add(e, c int) {
	el := &p.elements[e]
	if el.class != noIndex {
		panic(fmt.Sprintf("partition: element %d already assigned to class %d", e, el.class))
	}
	cl := &p.classes[c]
	cl.size++

	// Push onto the head of the class's 'no' list.
	head := cl.noHead
	if head >= 0 {
		p.elements[head].prev = e
	}
	cl.noHead = e

	el.class = c
	el.yes = 0
	el.next = head
	el.prev = noIndex
}

// Move transfers element e from the 'no' subset of its current class to the
// 'no' subset of class c. It must not be called between a SplitOn that marked
// any member of e's class and the following FinalizeSplit.
func (p *Partition) Move(e, c int) {
	el := &p.elements[e]
	if el.yes == p.gen {
		panic(fmt.Sprintf("partition: cannot move element %d with a pending split mark", e))
	}
	old := &p.classes[el.class]
	if old.yesSize != 0 {
		panic(fmt.Sprintf("partition: cannot move element %d out of class %d mid-split", e, el.class))
	}
	old.size--
	p.exciseFromNo(e)
	el.class = noIndex
	p.Add(e, c)
}

// SplitOn moves element e from the 'no' subset of its class to the 'yes'
// subset. If the element is already marked in the current generation this is
// a no-op, so the total cost attributed to a class is bounded by the number
// of distinct elements marked in it.
func (p *Partition) SplitOn(e int) {
	el := &p.elements[e]
	if el.yes == p.gen {
		return
	}
	c := el.class
	cl := &p.classes[c]
	p.exciseFromNo(e)

	// Push onto the 'yes' list; remember the class the first time its 'yes'
	// subset becomes nonempty.
	if cl.yesHead >= 0 {
		p.elements[cl.yesHead].prev = e
	} else {
		p.visited = append(p.visited, c)
	}
	el.yes = p.gen
	el.next = cl.yesHead
	el.prev = noIndex
	cl.yesHead = e
	cl.yesSize++
}

// FinalizeSplit splits every class whose 'yes' and 'no' subsets are both
// nonempty, enqueuing each newly created class identifier on q. A nil q
// performs the splits without enqueuing anything. Afterwards every element is
// back in the 'no' subset of its class and the next round of SplitOn calls
// may begin.
func (p *Partition) FinalizeSplit(q Queue) {
	for _, c := range p.visited {
		if n := p.splitRefine(c); n != noIndex && q != nil {
			q.Enqueue(n)
		}
	}
	p.visited = p.visited[:0]

	// Bumping the generation unmarks every element in O(1).
	p.gen++
}

// splitRefine divides class c, whose 'yes' subset is known to be nonempty.
// The smaller subset becomes the 'no' list of a fresh class and every moved
// element is relabeled; the larger subset stays behind as c's 'no' list. On a
// tie the 'yes' subset is the one that moves. Returns the new class
// identifier, or noIndex when all members were marked and no split happens.
func (p *Partition) splitRefine(c int) int {
	yesSize := p.classes[c].yesSize
	noSize := p.classes[c].size - yesSize
	if noSize == 0 {
		// Everything was marked: fold the 'yes' list back into 'no'.
		cl := &p.classes[c]
		cl.noHead = cl.yesHead
		cl.yesHead = noIndex
		cl.yesSize = 0
		return noIndex
	}

	id := p.AddClass()
	old := &p.classes[c]
	fresh := &p.classes[id]
	if noSize < yesSize {
		fresh.noHead = old.noHead
		fresh.size = noSize
		old.noHead = old.yesHead
		old.size = yesSize
	} else {
		fresh.noHead = old.yesHead
		fresh.size = yesSize
		old.size = noSize
	}
	old.yesHead = noIndex
	old.yesSize = 0

	// Relabel the moved subset only; this walk is what the smaller-half rule
	// keeps cheap.
	for e := fresh.noHead; e >= 0; e = p.elements[e].next {
		p.elements[e].class = id
	}
	return id
}

// exciseFromNo removes element e from the 'no' list of its class without
// touching the class size.
func (p *Partition) exciseFromNo(e int) {
	el := &p.elements[e]
	if el.prev >= 0 {
		p.elements[el.prev].next = el.next
	} else {
		p.classes[el.class].noHead = el.next
	}
	if el.next >= 0 {
		p.elements[el.next].prev = el.prev
	}
}

// ClassID returns the class element e currently belongs to, or -1 if the
// element has not been added to any class.
func (p *Partition) ClassID(e int) int {
	return p.elements[e].class
}

// ClassSize returns the total number of members of class c.
func (p *Partition) ClassSize(c int) int {
	return p.classes[c].size
}

// NumClasses returns the number of classes allocated so far.
func (p *Partition) NumClasses() int {
	return len(p.classes)
}

// NumElements returns the size of the element universe.
func (p *Partition) NumElements() int {
	return len(p.elements)
}

// noHead returns the head of class c's 'no' list; read by Iterator.
func (p *Partition) noHead(c int) int {
	return p.classes[c].noHead
}

// next returns the successor of element e within its current list; read by
// Iterator.
func (p *Partition) next(e int) int {
	return p.elements[e].next
}
