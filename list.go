// A generic singly-linked list which owns its values
package slist

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

type node[T any] struct {
	value T
	next  *node[T]
}

// List is not safe for concurrent use. Callers sharing a list between
// goroutines must serialize access to it.
// The zero value is an empty list using the default configuration.
type List[T any] struct {
	config *Configuration[T]
	head   *node[T]
	size   int
}

// Create a new list with the specified configuration
// See slist.Configure() for creating a configuration. A nil configuration
// uses the defaults.
func New[T any](config *Configuration[T]) *List[T] {
	return &List[T]{config: config}
}

// Create a list holding copies of values, in the same order
func FromSlice[T any](config *Configuration[T], values ...T) (*List[T], error) {
	l := New(config)
	head, err := l.build("from_slice", len(values), sliceSource(values))
	if err != nil {
		return nil, err
	}
	l.head, l.size = head, len(values)
	return l, nil
}

func (l *List[T]) Len() int {
	return l.size
}

// Prepends value. O(1)
func (l *List[T]) PushFront(value T) error {
	value, err := l.copy("push_front", 0, value)
	if err != nil {
		return err
	}
	l.head = &node[T]{value: value, next: l.head}
	l.size++
	return nil
}

func (l *List[T]) Front() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmpty
	}
	return l.head.value, nil
}

// A pointer to the value at the head of the list. It remains valid until
// the head is removed.
func (l *List[T]) FrontRef() (*T, error) {
	if l.head == nil {
		return nil, ErrEmpty
	}
	return &l.head.value, nil
}

// Removes the head of the list and returns its value. O(1)
func (l *List[T]) PopFront() (T, error) {
	n := l.head
	if n == nil {
		var zero T
		return zero, ErrEmpty
	}
	l.head = n.next
	n.next = nil
	l.size--
	return n.value, nil
}

// Inserts value before the element currently at pos. pos == Len() appends.
// On error, the list is unchanged. O(pos)
func (l *List[T]) Insert(pos int, value T) error {
	if pos < 0 || pos > l.size {
		return &RangeError{Op: "insert", Pos: pos, Size: l.size, Inclusive: true}
	}
	value, err := l.copy("insert", pos, value)
	if err != nil {
		return err
	}
	if pos == 0 {
		l.head = &node[T]{value: value, next: l.head}
	} else {
		prev := l.nodeAt(pos - 1)
		prev.next = &node[T]{value: value, next: prev.next}
	}
	l.size++
	return nil
}

// The value at pos. O(pos)
func (l *List[T]) At(pos int) (T, error) {
	if err := l.checkIndex("at", pos); err != nil {
		var zero T
		return zero, err
	}
	return l.nodeAt(pos).value, nil
}

// A pointer to the value at pos. It remains valid until that element is
// removed.
func (l *List[T]) Ref(pos int) (*T, error) {
	if err := l.checkIndex("at", pos); err != nil {
		return nil, err
	}
	return &l.nodeAt(pos).value, nil
}

// Replaces the value at pos. On error, the list is unchanged.
func (l *List[T]) Set(pos int, value T) error {
	if err := l.checkIndex("set", pos); err != nil {
		return err
	}
	value, err := l.copy("set", pos, value)
	if err != nil {
		return err
	}
	l.nodeAt(pos).value = value
	return nil
}

// Removes the element at pos and returns its value. O(pos)
func (l *List[T]) Erase(pos int) (T, error) {
	if err := l.checkIndex("erase", pos); err != nil {
		var zero T
		return zero, err
	}
	if pos == 0 {
		return l.PopFront()
	}
	prev := l.nodeAt(pos - 1)
	victim := prev.next
	prev.next = victim.next
	victim.next = nil
	l.size--
	return victim.value, nil
}

// The position of the first value for which match returns true.
// Returns -1, false when there's none.
func (l *List[T]) IndexFunc(match func(T) bool) (int, bool) {
	pos := 0
	for n := l.head; n != nil; n = n.next {
		if match(n.value) {
			return pos, true
		}
		pos++
	}
	return -1, false
}

// The position of the first element equal to value.
// Returns -1, false when value isn't in the list.
func Find[T comparable](l *List[T], value T) (int, bool) {
	return l.IndexFunc(func(v T) bool {
		return v == value
	})
}

// Two lists are equal (same length & same values in the same order)
func Equal[T comparable](a, b *List[T]) bool {
	if a.size != b.size {
		return false
	}
	for x, y := a.head, b.head; x != nil; x, y = x.next, y.next {
		if x.value != y.value {
			return false
		}
	}
	return true
}

// Calls fn for every element, from head to tail, until fn returns false
func (l *List[T]) Each(fn func(pos int, value T) bool) {
	pos := 0
	for n := l.head; n != nil; n = n.next {
		if !fn(pos, n.value) {
			return
		}
		pos++
	}
}

func (l *List[T]) Values() []T {
	values := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		values = append(values, n.value)
	}
	return values
}

// A deep copy of the list, sharing its configuration. Nothing is returned
// if copying any element fails.
func (l *List[T]) Clone() (*List[T], error) {
	c := New(l.config)
	head, err := c.build("clone", l.size, chainSource(l.head))
	if err != nil {
		return nil, err
	}
	c.head, c.size = head, l.size
	return c, nil
}

// Replaces the content of the list with copies of src's values. The copy is
// built aside and swapped in once complete: on error the list is unchanged.
// Assigning a list to itself does nothing.
func (l *List[T]) Assign(src *List[T]) error {
	if src == l {
		return nil
	}
	head, err := l.build("assign", src.size, chainSource(src.head))
	if err != nil {
		return err
	}
	l.replace(head, src.size)
	return nil
}

// Removes every element
func (l *List[T]) Clear() {
	l.replace(nil, 0)
}

// "<count>: <value> <value> ... "
func (l *List[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d: ", l.size)
	for n := l.head; n != nil; n = n.next {
		fmt.Fprintf(&sb, "%v ", n.value)
	}
	return sb.String()
}

func (l *List[T]) replace(head *node[T], size int) {
	old := l.head
	l.head, l.size = head, size
	// unlink the old chain so a retained Ref doesn't pin the rest of it
	for old != nil {
		next := old.next
		old.next = nil
		old = next
	}
}

func (l *List[T]) nodeAt(pos int) *node[T] {
	n := l.head
	for i := 0; i < pos; i++ {
		n = n.next
	}
	return n
}

func (l *List[T]) checkIndex(op string, pos int) error {
	if pos < 0 || pos >= l.size {
		return &RangeError{Op: op, Pos: pos, Size: l.size}
	}
	return nil
}

func (l *List[T]) configuration() *Configuration[T] {
	if l.config == nil {
		l.config = Configure[T]()
	}
	return l.config
}

func (l *List[T]) copy(op string, pos int, value T) (T, error) {
	config := l.configuration()
	copied, err := config.copy(value)
	if err != nil {
		config.logger.Debug("element copy failed",
			zap.String("op", op),
			zap.Int("pos", pos),
			zap.Int("size", l.size),
			zap.Error(err))
		var zero T
		return zero, &ElementError{Op: op, Pos: pos, Err: err}
	}
	return copied, nil
}

// Builds a private chain of n copies of the values produced by next. On
// error, the partial chain is dropped and never reachable from l.
func (l *List[T]) build(op string, n int, next func() T) (*node[T], error) {
	var head, tail *node[T]
	for i := 0; i < n; i++ {
		value, err := l.copy(op, i, next())
		if err != nil {
			return nil, err
		}
		added := &node[T]{value: value}
		if tail == nil {
			head = added
		} else {
			tail.next = added
		}
		tail = added
	}
	return head, nil
}

func chainSource[T any](n *node[T]) func() T {
	return func() T {
		value := n.value
		n = n.next
		return value
	}
}

func sliceSource[T any](values []T) func() T {
	i := 0
	return func() T {
		value := values[i]
		i++
		return value
	}
}
