package testing

import (
	"reflect"
	"testing"

	"github.com/mgnsk/lqueue"
	"github.com/pkg/errors"
)

// AssertSuccess that error did not occur.
func AssertSuccess(t testing.TB, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("expected success, got '%v'", err)
	}
}

// AssertErrorIs asserts that err matches target.
func AssertErrorIs(t testing.TB, err, target error) {
	t.Helper()

	if !errors.Is(err, target) {
		t.Fatalf("expected error '%v', got '%v'", target, err)
	}
}

// AssertEqual asserts that values are deeply equal.
func AssertEqual[T any](t testing.TB, a, b T) {
	t.Helper()

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected '%v' to be equal to '%v'", a, b)
	}
}

// AssertValues asserts that the queue holds exactly values, from head to tail.
func AssertValues(t testing.TB, q *lqueue.Queue, values ...string) {
	t.Helper()

	got := q.Values()
	if len(got) == 0 && len(values) == 0 {
		return
	}

	AssertEqual(t, got, values)
}

// AssertValidQueue asserts that the queue forms a closed ring: every forward link
// is the inverse of the backward link and both walks visit Size() elements.
func AssertValidQueue(t testing.TB, q *lqueue.Queue) {
	t.Helper()

	size := q.Size()

	if size == 0 {
		if q.Front() != nil || q.Back() != nil || !q.IsEmpty() {
			t.Fatalf("expected empty queue to have no front or back")
		}
		return
	}

	if q.Front().Prev() != nil || q.Back().Next() != nil {
		t.Fatalf("expected the ring to close through the sentinel")
	}

	var forward []string
	for e := q.Front(); e != nil; e = e.Next() {
		if next := e.Next(); next != nil && next.Prev() != e {
			t.Fatalf("broken link after '%s'", e.Value)
		}
		forward = append(forward, e.Value)
	}

	var backward []string
	for e := q.Back(); e != nil; e = e.Prev() {
		if prev := e.Prev(); prev != nil && prev.Next() != e {
			t.Fatalf("broken link before '%s'", e.Value)
		}
		backward = append(backward, e.Value)
	}

	AssertEqual(t, len(forward), size)
	AssertEqual(t, len(backward), size)

	for i := range forward {
		if forward[i] != backward[size-1-i] {
			t.Fatalf("forward and backward walks disagree at %d", i)
		}
	}

	AssertEqual(t, q.IsSingular(), size == 1)
}
