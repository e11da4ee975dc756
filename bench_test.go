package lqueue_test

import (
	"strconv"
	"testing"

	"github.com/mgnsk/lqueue"
	. "github.com/mgnsk/lqueue/internal/testing"
)

func benchQueue(b *testing.B, size int) *lqueue.Queue {
	q := lqueue.New()
	for i := 0; i < size; i++ {
		AssertSuccess(b, q.InsertTail(strconv.Itoa((i*7919)%size)))
	}
	return q
}

func BenchmarkInsertRemove(b *testing.B) {
	q := lqueue.New()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = q.InsertTail("value")
		e, _ := q.RemoveHead(nil)
		e.Release()
	}
}

func BenchmarkSort(b *testing.B) {
	for _, size := range []int{100, 10000} {
		b.Run(strconv.Itoa(size), func(b *testing.B) {
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				b.StopTimer()
				q := benchQueue(b, size)
				b.StartTimer()

				q.Sort()
			}
		})
	}
}

func BenchmarkReverse(b *testing.B) {
	q := benchQueue(b, 10000)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		q.Reverse()
	}
}

func BenchmarkReverseK(b *testing.B) {
	q := benchQueue(b, 10000)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = q.ReverseK(3)
	}
}

func BenchmarkMerge(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		c := lqueue.NewChain()
		for j := 0; j < 8; j++ {
			q := benchQueue(b, 1000)
			q.Sort()
			_ = c.Add(q)
		}
		b.StartTimer()

		_, _ = c.Merge()
	}
}
