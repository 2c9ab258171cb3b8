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

// Package singly implements a singly linked list.
package singly

import (
	"fmt"
	"iter"
)

// node holds one value and owns the node that follows it.
type node[T any] struct {
	next  *node[T]
	value T
}

// List is a singly linked list. The zero List is empty and ready to use.
type List[T any] struct {
	head   *node[T]
	length int
	drop   func(T)
}

// New creates an empty list.
func New[T any]() *List[T] {
	return new(List[T])
}

// Of creates a list holding values, in order.
func Of[T any](values ...T) *List[T] {
	return Collect(func(yield func(T) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	})
}

// Collect creates a list from the values of seq, in order.
// It keeps a cursor on the last node, so building is linear.
func Collect[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	var last *node[T]
	for v := range seq {
		n := &node[T]{value: v}
		if last == nil {
			l.head = n
		} else {
			last.next = n
		}
		last = n
		l.length++
	}
	return l
}

// SetDropFunc registers fn to be called once for every element l discards.
func (l *List[T]) SetDropFunc(fn func(T)) {
	l.drop = fn
}

// Len returns the number of nodes in l.
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

// PushFront makes value the new head of l. O(1).
func (l *List[T]) PushFront(value T) {
	l.head = &node[T]{next: l.head, value: value}
	l.length++
}

// PushBack appends value after the last node of l. O(n).
func (l *List[T]) PushBack(value T) {
	n := &node[T]{value: value}
	if l.head == nil {
		l.head = n
	} else {
		l.last().next = n
	}
	l.length++
}

// last returns the node whose next is nil. l must not be empty.
func (l *List[T]) last() *node[T] {
	n := l.head
	for n.next != nil {
		n = n.next
	}
	return n
}

// PopFront unlinks the head and returns its value. O(1).
func (l *List[T]) PopFront() (T, bool) {
	var zero T
	n := l.head
	if n == nil {
		return zero, false
	}
	l.head = n.next
	l.length--

	value := n.value
	n.next = nil // avoid memory leaks
	n.value = zero
	return value, true
}

// RemoveFront unlinks the head and drops its value.
func (l *List[T]) RemoveFront() {
	if v, ok := l.PopFront(); ok && l.drop != nil {
		l.drop(v)
	}
}

// Front returns the value at the head. O(1).
func (l *List[T]) Front() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

// FrontPtr returns a pointer to the value at the head, or nil if l is empty.
func (l *List[T]) FrontPtr() *T {
	if l.head == nil {
		return nil
	}
	return &l.head.value
}

// Back returns the value of the last node. O(n).
func (l *List[T]) Back() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.last().value, true
}

// BackPtr returns a pointer to the value of the last node, or nil if l is empty. O(n).
func (l *List[T]) BackPtr() *T {
	if l.head == nil {
		return nil
	}
	return &l.last().value
}

// find returns the node at index, which must be in range.
func (l *List[T]) find(index int) *node[T] {
	n := l.head
	for i := 0; i < index; i++ {
		n = n.next
	}
	return n
}

// Get returns the value at index. O(n).
func (l *List[T]) Get(index int) (T, bool) {
	if p := l.GetPtr(index); p != nil {
		return *p, true
	}
	var zero T
	return zero, false
}

// GetPtr returns a pointer to the value at index, or nil if index is out of
// range. The pointer is valid until the node is removed from l.
func (l *List[T]) GetPtr(index int) *T {
	switch {
	case index < 0 || index >= l.length:
		return nil
	case index == 0:
		return l.FrontPtr()
	case index == l.length-1:
		return l.BackPtr()
	}
	return &l.find(index).value
}

// At returns the value at index. It panics if index is out of range.
func (l *List[T]) At(index int) T {
	p := l.GetPtr(index)
	if p == nil {
		panic(fmt.Sprintf("index %d out of bounds (length %d)", index, l.length))
	}
	return *p
}

// Set replaces the value at index. It panics if index is out of range.
func (l *List[T]) Set(index int, value T) {
	p := l.GetPtr(index)
	if p == nil {
		panic(fmt.Sprintf("index %d out of bounds (length %d)", index, l.length))
	}
	*p = value
}

// Clear unlinks every node, dropping the values front to back. The walk is
// iterative, so arbitrarily long lists can be cleared.
func (l *List[T]) Clear() {
	n := l.head
	l.head = nil
	l.length = 0
	releaseChain(n, l.drop)
}

// releaseChain unlinks the nodes starting at n one at a time. A panicking drop
// does not stop the walk; the panic resumes after the last node.
func releaseChain[T any](n *node[T], drop func(T)) {
	var zero T
	defer func() {
		if n != nil {
			releaseChain(n, drop)
		}
	}()
	for n != nil {
		next := n.next
		value := n.value
		n.next = nil
		n.value = zero
		n = next
		if drop != nil {
			drop(value)
		}
	}
}

// All returns a non-consuming iterator over the values, front to back.
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

// Drain returns a consuming iterator that pops values from the front. Values
// left over by an early break, or by a panic in the loop body, are dropped
// and l ends up empty.
func (l *List[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		exhausted := false
		defer func() {
			if !exhausted {
				l.Clear()
			}
		}()
		for {
			v, ok := l.PopFront()
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

// Iter consumes a List one value at a time.
type Iter[T any] struct {
	list *List[T]
}

// IntoIter moves the contents of l into a consuming iterator. l is left empty.
func (l *List[T]) IntoIter() *Iter[T] {
	moved := &List[T]{head: l.head, length: l.length, drop: l.drop}
	l.head = nil
	l.length = 0
	return &Iter[T]{list: moved}
}

// Next pops the next value.
func (it *Iter[T]) Next() (T, bool) {
	return it.list.PopFront()
}

// Len returns the exact number of values left.
func (it *Iter[T]) Len() int {
	return it.list.Len()
}

// Close drops the values left in the iterator.
func (it *Iter[T]) Close() {
	it.list.Clear()
}

// Equal reports whether a and b hold equal values in the same order.
// A nil list equals an empty one.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares values with eq.
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
