// stack.go provides a slice backed stack that holds arbitrary data.
// The bottom element is the first entry into the stack, while the top is
// the last entry to be added to the stack.

package util

// Stack is a LIFO stack of elements of type T. The zero value is an empty stack.
type Stack[T any] struct {
	e []T // Elements, bottom first.
}

// Push adds a new element to the top of the stack.
func (s *Stack[T]) Push(e T) {
	s.e = append(s.e, e)
}

// Pop removes and returns the last inserted element on the stack.
// The second return value is false if the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.e) == 0 {
		return zero, false
	}
	e := s.e[len(s.e)-1]
	s.e[len(s.e)-1] = zero
	s.e = s.e[:len(s.e)-1]
	return e, true
}

// Peek works just like Pop, but it does not remove the element from the stack.
func (s *Stack[T]) Peek() (T, bool) {
	var zero T
	if len(s.e) == 0 {
		return zero, false
	}
	return s.e[len(s.e)-1], true
}

// Size returns the number of elements in the stack.
func (s *Stack[T]) Size() int {
	return len(s.e)
}

// Index returns the zero indexed position, counted from the bottom, of the topmost element
// for which match returns true. -1 is returned if no element matches.
func (s *Stack[T]) Index(match func(T) bool) int {
	for i1 := len(s.e) - 1; i1 >= 0; i1-- {
		if match(s.e[i1]) {
			return i1
		}
	}
	return -1
}

// Truncate drops elements from the top until the stack holds at most n elements.
func (s *Stack[T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	var zero T
	for i1 := n; i1 < len(s.e); i1++ {
		s.e[i1] = zero
	}
	if n < len(s.e) {
		s.e = s.e[:n]
	}
}
