package slist

import "golang.org/x/exp/constraints"

// Sorts the list in ascending order
func Sort[T constraints.Ordered](l *List[T]) {
	l.SortFunc(func(a, b T) bool {
		return a < b
	})
}

// Stable merge sort. Nodes are relinked, values are never copied and
// nothing is allocated.
func (l *List[T]) SortFunc(less func(a, b T) bool) {
	l.head = mergeSort(l.head, less)
}

func mergeSort[T any](head *node[T], less func(a, b T) bool) *node[T] {
	if head == nil || head.next == nil {
		return head
	}

	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	right := slow.next
	slow.next = nil

	return merge(mergeSort(head, less), mergeSort(right, less), less)
}

func merge[T any](a, b *node[T], less func(a, b T) bool) *node[T] {
	var sentinel node[T]
	tail := &sentinel
	for a != nil && b != nil {
		// ties go to the left run
		if less(b.value, a.value) {
			tail.next = b
			b = b.next
		} else {
			tail.next = a
			a = a.next
		}
		tail = tail.next
	}
	if a != nil {
		tail.next = a
	} else {
		tail.next = b
	}
	return sentinel.next
}
