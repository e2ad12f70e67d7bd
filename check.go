package partition

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Check verifies the structural invariants of the partition: every class size
// equals the length of its 'no' list plus its 'yes' list, the links of both
// lists are mutually consistent, every element's mark agrees with the list it
// sits in, and each assigned element is owned by exactly one class. It
// returns nil when the structure is consistent and a description of the first
// violation otherwise. Cost is O(n); intended for tests and debugging, not
// for the refinement hot path.
func (p *Partition) Check() error {
	seen := bitset.New(uint(len(p.elements)))
	for c := range p.classes {
		cl := &p.classes[c]
		noCount, err := p.checkList(c, cl.noHead, false, seen)
		if err != nil {
			return err
		}
		yesCount, err := p.checkList(c, cl.yesHead, true, seen)
		if err != nil {
			return err
		}
		if yesCount != cl.yesSize {
			return fmt.Errorf("class %d yes size is %d but its yes list holds %d", c, cl.yesSize, yesCount)
		}
		if noCount+yesCount != cl.size {
			return fmt.Errorf("class %d size is %d but its lists hold %d", c, cl.size, noCount+yesCount)
		}
	}
	for e := range p.elements {
		if p.elements[e].class != noIndex && !seen.Test(uint(e)) {
			return fmt.Errorf("element %d claims class %d but is not on any list", e, p.elements[e].class)
		}
	}
	return nil
}

// checkList walks one intrusive list, marking every member in seen and
// checking link symmetry, ownership, and the 'yes' stamp.
func (p *Partition) checkList(c, head int, yes bool, seen *bitset.BitSet) (int, error) {
	count := 0
	prev := noIndex
	for e := head; e >= 0; e = p.elements[e].next {
		if count > len(p.elements) {
			return count, fmt.Errorf("class %d list does not terminate", c)
		}
		el := &p.elements[e]
		if el.class != c {
			return count, fmt.Errorf("element %d is on class %d's list but claims class %d", e, c, el.class)
		}
		if el.prev != prev {
			return count, fmt.Errorf("element %d prev link is %d, want %d", e, el.prev, prev)
		}
		if marked := el.yes == p.gen; marked != yes {
			return count, fmt.Errorf("element %d mark does not match the list it is on", e)
		}
		if seen.Test(uint(e)) {
			return count, fmt.Errorf("element %d appears on more than one list", e)
		}
		seen.Set(uint(e))
		prev = e
		count++
	}
	return count, nil
}
