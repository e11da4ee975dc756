package lqueue

import "github.com/mgnsk/lqueue/ringlist"

// Sort sorts the elements in ascending byte-wise order of their values.
// The sort is stable and moves nodes only.
func (q *Queue) Sort() {
	if !q.valid() {
		return
	}

	mergeSort(&q.ring, q.ring.Len())
}

// mergeSort sorts the n nodes of r.
func mergeSort(r *ringlist.Ring[*Element], n int) {
	if n < 2 {
		return
	}

	half := n / 2

	mid := r.Front()
	for i := 1; i < half; i++ {
		mid = mid.Next()
	}

	var left ringlist.Ring[*Element]
	r.CutFront(&left, mid)

	mergeSort(&left, half)
	mergeSort(r, n-half)

	mergeRings(r, &left, false)
}

// mergeRings merges the sorted ring src into the sorted ring dst, leaving src empty.
// Equal values from dst precede those from src when dstFirst is set and follow them otherwise.
func mergeRings(dst, src *ringlist.Ring[*Element], dstFirst bool) {
	c := dst.Cursor()
	p := c.Next()

	for s := src.Front(); s != nil; s = src.Front() {
		for p != nil && before(p, s, dstFirst) {
			p = c.Next()
		}

		if p == nil {
			dst.SpliceBack(src)
			return
		}

		src.Remove(s)
		dst.InsertBefore(s, p)
	}
}

func before(p, s *ringlist.Node[*Element], orEqual bool) bool {
	if orEqual {
		return p.Value.Value <= s.Value.Value
	}
	return p.Value.Value < s.Value.Value
}
