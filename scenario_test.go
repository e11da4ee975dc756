package lqueue_test

import (
	"math/rand"
	"strconv"

	"github.com/mgnsk/lqueue"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

func fill(q *lqueue.Queue, values ...string) {
	for _, v := range values {
		Expect(q.InsertTail(v)).To(Succeed())
	}
}

func expectClosedRing(q *lqueue.Queue) {
	size := q.Size()

	n := 0
	for e := q.Front(); e != nil; e = e.Next() {
		if next := e.Next(); next != nil {
			Expect(next.Prev()).To(BeIdenticalTo(e))
		}
		n++
	}
	Expect(n).To(Equal(size))

	n = 0
	for e := q.Back(); e != nil; e = e.Prev() {
		n++
	}
	Expect(n).To(Equal(size))
}

var _ = Describe("queue scenarios", func() {
	var q *lqueue.Queue

	BeforeEach(func() {
		q = lqueue.New()
	})

	AfterEach(func() {
		expectClosedRing(q)
		q.Free()
		Expect(q.Size()).To(BeZero())
	})

	Specify("sorting fruits", func() {
		fill(q, "banana", "apple", "cherry")
		q.Sort()
		Expect(q.Values()).To(Equal([]string{"apple", "banana", "cherry"}))
	})

	Specify("deleting duplicates", func() {
		fill(q, "1", "1", "2", "3", "3", "3", "4")
		_, err := q.DeleteDup()
		Expect(err).To(Succeed())
		Expect(q.Values()).To(Equal([]string{"2", "4"}))
	})

	Specify("removing dominated elements", func() {
		fill(q, "5", "2", "13", "3", "8")
		Expect(q.Descend()).To(Equal(2))
		Expect(q.Values()).To(Equal([]string{"13", "8"}))
	})

	Specify("reversing in pairs", func() {
		fill(q, "A", "B", "C", "D", "E")
		Expect(q.ReverseK(2)).To(Succeed())
		Expect(q.Values()).To(Equal([]string{"B", "A", "D", "C", "E"}))
	})

	When("the queue has one element", func() {
		BeforeEach(func() {
			fill(q, "only")
		})

		Specify("removing the head empties it", func() {
			e, err := q.RemoveHead(nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(e.Value).To(Equal("only"))
			Expect(q.IsEmpty()).To(BeTrue())
		})

		Specify("removing the tail empties it", func() {
			e, err := q.RemoveTail(nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(e.Value).To(Equal("only"))
			Expect(q.IsEmpty()).To(BeTrue())
		})
	})

	When("the queue is empty", func() {
		Specify("no operation fails hard", func() {
			_, err := q.RemoveHead(nil)
			Expect(err).To(MatchError(lqueue.ErrEmptyQueue))

			_, err = q.RemoveTail(nil)
			Expect(err).To(MatchError(lqueue.ErrEmptyQueue))

			Expect(q.DeleteMid()).To(MatchError(lqueue.ErrEmptyQueue))

			_, err = q.DeleteDup()
			Expect(err).To(MatchError(lqueue.ErrEmptyQueue))

			Expect(q.ReverseK(2)).To(MatchError(lqueue.ErrInvalidArgument))
			Expect(q.Descend()).To(BeZero())
			Expect(q.Ascend()).To(BeZero())

			q.Swap()
			q.Reverse()
			q.Sort()

			Expect(q.IsEmpty()).To(BeTrue())
		})
	})
})

var _ = Describe("queue properties", func() {
	var (
		q      *lqueue.Queue
		values []string
	)

	BeforeEach(func() {
		q = lqueue.New()
		values = make([]string, rand.Intn(64))
		for i := range values {
			values[i] = strconv.Itoa(rand.Intn(16))
		}
		fill(q, values...)
	})

	AfterEach(func() {
		expectClosedRing(q)
	})

	Specify("reversing twice restores the order", func() {
		q.Reverse()
		q.Reverse()
		if len(values) == 0 {
			Expect(q.Values()).To(BeEmpty())
		} else {
			Expect(q.Values()).To(Equal(values))
		}
	})

	Specify("sorting is idempotent", func() {
		q.Sort()
		once := q.Values()
		q.Sort()
		if len(once) == 0 {
			Expect(q.IsEmpty()).To(BeTrue())
		} else {
			Expect(q.Values()).To(Equal(once))
		}
	})

	Specify("inserting grows the queue by one", func() {
		size := q.Size()
		Expect(q.InsertHead("x")).To(Succeed())
		Expect(q.Size()).To(Equal(size + 1))
		Expect(q.InsertTail("y")).To(Succeed())
		Expect(q.Size()).To(Equal(size + 2))
	})

	Specify("deleting shrinks the queue by the number of deleted elements", func() {
		q.Sort()
		size := q.Size()

		removed, err := q.DeleteDup()
		if size == 0 {
			Expect(err).To(MatchError(lqueue.ErrEmptyQueue))
			return
		}

		Expect(err).NotTo(HaveOccurred())
		Expect(q.Size()).To(Equal(size - removed))
	})
})

var _ = DescribeTable("reversing in groups",
	func(k int, values, expect []string) {
		q := lqueue.New()
		defer q.Free()

		fill(q, values...)
		Expect(q.ReverseK(k)).To(Succeed())
		Expect(q.Values()).To(Equal(expect))
		expectClosedRing(q)
	},
	Entry("k=2", 2, []string{"A", "B", "C", "D", "E"}, []string{"B", "A", "D", "C", "E"}),
	Entry("k=3", 3, []string{"A", "B", "C", "D", "E"}, []string{"C", "B", "A", "D", "E"}),
	Entry("k=5", 5, []string{"A", "B", "C", "D", "E"}, []string{"E", "D", "C", "B", "A"}),
	Entry("k=2 even", 2, []string{"A", "B", "C", "D"}, []string{"B", "A", "D", "C"}),
)

var _ = DescribeTable("removing the middle element",
	func(values, expect []string) {
		q := lqueue.New()
		defer q.Free()

		fill(q, values...)
		Expect(q.DeleteMid()).To(Succeed())
		if len(expect) == 0 {
			Expect(q.IsEmpty()).To(BeTrue())
		} else {
			Expect(q.Values()).To(Equal(expect))
		}
	},
	Entry("one", []string{"a"}, nil),
	Entry("two", []string{"a", "b"}, []string{"a"}),
	Entry("five", []string{"a", "b", "c", "d", "e"}, []string{"a", "b", "d", "e"}),
)
