package utils

import (
	"slices"
	"testing"
)

func TestCircularQueueKeepsNewest(t *testing.T) {
	q := NewCircularQueue[int](3)
	if _, ok := q.Last(); ok || q.Len() != 0 {
		t.Fatal("expected a new queue to be empty")
	}

	tests := []struct {
		appended int
		want     []int
	}{
		{1, []int{1}},
		{2, []int{1, 2}},
		{3, []int{1, 2, 3}},
		{4, []int{2, 3, 4}},
		{5, []int{3, 4, 5}},
		{6, []int{4, 5, 6}},
		{7, []int{5, 6, 7}},
	}
	for _, tt := range tests {
		q.Append(tt.appended)
		if got := slices.Collect(q.Iter()); !slices.Equal(got, tt.want) {
			t.Fatalf("after appending %d: expected %v, got %v", tt.appended, tt.want, got)
		}
		if last, ok := q.Last(); !ok || last != tt.appended {
			t.Fatalf("after appending %d: expected it to be last, got %v", tt.appended, last)
		}
	}
}

func TestCircularQueueIterStops(t *testing.T) {
	q := NewCircularQueue[int](4)
	for i := range 4 {
		q.Append(i)
	}
	var seen []int
	for v := range q.Iter() {
		seen = append(seen, v)
		if v == 1 {
			break
		}
	}
	if !slices.Equal(seen, []int{0, 1}) {
		t.Fatalf("expected iteration to stop early, got %v", seen)
	}
}

func TestCircularQueueZeroCapacity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a zero capacity queue to panic")
		}
	}()
	NewCircularQueue[int](0)
}
