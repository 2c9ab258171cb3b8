// Copyright (C) 2019-2024 Algorand, Inc.
// This file is part of go-algorand
//
// go-algorand is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// go-algorand is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with go-algorand.  If not, see <https://www.gnu.org/licenses/>.

// Package doubly implements a doubly linked list with O(1) operations at both
// ends. Nodes removed from a list are kept on a per-list free list and reused
// by later pushes.
package doubly

import (
	"fmt"
	"iter"
)

// node holds one value. next is the owning direction of the chain; prev is a
// back-reference used for traversal only.
type node[T any] struct {
	next, prev *node[T]

	value T
}

// List is a doubly linked list. head and tail are both nil iff the list is
// empty. The zero List is empty and ready to use.
type List[T any] struct {
	head, tail *node[T]
	length     int

	freeList *node[T] // detached nodes, chained through next
	freeLen  int

	drop func(T)
}

// New creates an empty list.
func New[T any]() *List[T] {
	return new(List[T])
}

// Of creates a list holding values, in order.
func Of[T any](values ...T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

// Collect creates a list from the values of seq, in order.
func Collect[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	for v := range seq {
		l.PushBack(v)
	}
	return l
}

// SetDropFunc registers fn to be called once for every element l discards.
func (l *List[T]) SetDropFunc(fn func(T)) {
	l.drop = fn
}

func (l *List[T]) insertNodeToFreeList(n *node[T]) {
	var zero T
	n.next = l.freeList
	n.prev = nil
	n.value = zero

	l.freeList = n
	l.freeLen++
}

func (l *List[T]) getNewNode() *node[T] {
	if l.freeList == nil {
		return new(node[T])
	}
	n := l.freeList
	l.freeList = n.next
	l.freeLen--
	n.next = nil
	return n
}

// AllocateFreeNodes adds numAllocs nodes to the free list, so that the next
// numAllocs pushes do not allocate.
func (l *List[T]) AllocateFreeNodes(numAllocs int) *List[T] {
	for i := 0; i < numAllocs; i++ {
		l.insertNodeToFreeList(new(node[T]))
	}
	return l
}

// FreeNodes returns the number of nodes waiting on the free list.
func (l *List[T]) FreeNodes() int {
	return l.freeLen
}

// Len returns the number of elements in l.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

// IsEmpty reports whether l holds no elements.
func (l *List[T]) IsEmpty() bool {
	return l.Len() == 0
}

// PushFront inserts value at the front of l. O(1).
func (l *List[T]) PushFront(value T) {
	n := l.getNewNode()
	n.value = value
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.length++
}

// PushBack inserts value at the back of l. O(1).
func (l *List[T]) PushBack(value T) {
	n := l.getNewNode()
	n.value = value
	n.prev = l.tail
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.length++
}

// remove unlinks n from l, recycles it and returns its value.
func (l *List[T]) remove(n *node[T]) T {
	if n.prev == nil {
		l.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		l.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	l.length--

	value := n.value
	l.insertNodeToFreeList(n)
	return value
}

// PopFront removes the first element and returns it. O(1).
func (l *List[T]) PopFront() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.remove(l.head), true
}

// PopBack removes the last element and returns it. O(1).
func (l *List[T]) PopBack() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	return l.remove(l.tail), true
}

// RemoveFront removes and drops the first element.
func (l *List[T]) RemoveFront() {
	if v, ok := l.PopFront(); ok && l.drop != nil {
		l.drop(v)
	}
}

// RemoveBack removes and drops the last element.
func (l *List[T]) RemoveBack() {
	if v, ok := l.PopBack(); ok && l.drop != nil {
		l.drop(v)
	}
}

// Front returns the first element.
func (l *List[T]) Front() (T, bool) {
	return valueOf(l.head)
}

// Back returns the last element.
func (l *List[T]) Back() (T, bool) {
	return valueOf(l.tail)
}

// FrontPtr returns a pointer to the first element, or nil if l is empty.
func (l *List[T]) FrontPtr() *T {
	return ptrOf(l.head)
}

// BackPtr returns a pointer to the last element, or nil if l is empty.
func (l *List[T]) BackPtr() *T {
	return ptrOf(l.tail)
}

func valueOf[T any](n *node[T]) (T, bool) {
	if n == nil {
		var zero T
		return zero, false
	}
	return n.value, true
}

func ptrOf[T any](n *node[T]) *T {
	if n == nil {
		return nil
	}
	return &n.value
}

// find returns the node at index, walking from whichever end is closer.
func (l *List[T]) find(index int) *node[T] {
	if index < 0 || index >= l.length {
		return nil
	}
	switch {
	case index == 0:
		return l.head
	case index == l.length-1:
		return l.tail
	case index < l.length/2:
		n := l.head
		for i := 0; i < index; i++ {
			n = n.next
		}
		return n
	default:
		n := l.tail
		for i := l.length - 1; i > index; i-- {
			n = n.prev
		}
		return n
	}
}

// Get returns the element at index. O(n).
func (l *List[T]) Get(index int) (T, bool) {
	return valueOf(l.find(index))
}

// GetPtr returns a pointer to the element at index, or nil if index is out of
// range. The pointer is valid until the element is removed from l.
func (l *List[T]) GetPtr(index int) *T {
	return ptrOf(l.find(index))
}

// GetFromBack returns the element index positions before the tail, walking the
// prev links. GetFromBack(i) is the same element as Get(Len()-1-i).
func (l *List[T]) GetFromBack(index int) (T, bool) {
	if index < 0 || index >= l.length {
		var zero T
		return zero, false
	}
	n := l.tail
	for i := 0; i < index; i++ {
		n = n.prev
	}
	return n.value, true
}

// At returns the element at index. It panics if index is out of range.
func (l *List[T]) At(index int) T {
	n := l.find(index)
	if n == nil {
		panic(fmt.Sprintf("index %d out of bounds (length %d)", index, l.length))
	}
	return n.value
}

// Set replaces the element at index. It panics if index is out of range.
func (l *List[T]) Set(index int, value T) {
	n := l.find(index)
	if n == nil {
		panic(fmt.Sprintf("index %d out of bounds (length %d)", index, l.length))
	}
	n.value = value
}

// Clear unlinks every node, dropping the values front to back, and releases
// the free list. Nodes are released one at a time following next only, so
// no node is visited twice and long lists need no deep call stack.
func (l *List[T]) Clear() {
	n := l.head
	l.head, l.tail = nil, nil
	l.length = 0
	l.freeList = nil
	l.freeLen = 0
	releaseChain(n, l.drop)
}

func releaseChain[T any](n *node[T], drop func(T)) {
	var zero T
	defer func() {
		if n != nil {
			// drop panicked; finish the walk before the panic resumes
			releaseChain(n, drop)
		}
	}()
	for n != nil {
		next := n.next
		value := n.value
		n.next, n.prev = nil, nil // avoid memory leaks
		n.value = zero
		n = next
		if drop != nil {
			drop(value)
		}
	}
}

// All returns a non-consuming iterator over the elements, front to back.
// l must not be modified while iterating.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward returns a non-consuming iterator over the elements, back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.tail; n != nil; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Drain returns a consuming iterator popping from the front. Elements left
// over by an early break, or by a panic in the loop body, are dropped and l
// ends up empty.
func (l *List[T]) Drain() iter.Seq[T] {
	return l.drain(l.PopFront)
}

// DrainBackward is like Drain but pops from the back.
func (l *List[T]) DrainBackward() iter.Seq[T] {
	return l.drain(l.PopBack)
}

func (l *List[T]) drain(pop func() (T, bool)) iter.Seq[T] {
	return func(yield func(T) bool) {
		exhausted := false
		defer func() {
			if !exhausted {
				l.Clear()
			}
		}()
		for {
			v, ok := pop()
			if !ok {
				exhausted = true
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Iter is a double-ended consuming iterator over a List.
type Iter[T any] struct {
	list *List[T]
}

// IntoIter moves the elements of l into a consuming iterator. l is left empty
// and keeps its free list.
func (l *List[T]) IntoIter() *Iter[T] {
	moved := &List[T]{head: l.head, tail: l.tail, length: l.length, drop: l.drop}
	l.head, l.tail = nil, nil
	l.length = 0
	return &Iter[T]{list: moved}
}

// Next pops the element at the front.
func (it *Iter[T]) Next() (T, bool) {
	return it.list.PopFront()
}

// NextBack pops the element at the back.
func (it *Iter[T]) NextBack() (T, bool) {
	return it.list.PopBack()
}

// Len returns the exact number of elements left.
func (it *Iter[T]) Len() int {
	return it.list.Len()
}

// Close drops the elements left in the iterator.
func (it *Iter[T]) Close() {
	it.list.Clear()
}

// Equal reports whether a and b hold equal elements in the same order.
// A nil list equals an empty one.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b *List[T], eq func(T, T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	if a.Len() == 0 {
		return true
	}
	for x, y := a.head, b.head; x != nil && y != nil; x, y = x.next, y.next {
		if !eq(x.value, y.value) {
			return false
		}
	}
	return true
}
