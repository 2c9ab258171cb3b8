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

// Package dynamic implements List, a growable array backed by a single
// contiguous block whose capacity is managed explicitly.
package dynamic

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"unsafe"

	"github.com/algorand/go-lists/serr"
)

const (
	// InitialCapacity is the capacity allocated by the first Push on an empty list.
	InitialCapacity = 4

	// GrowthFactor multiplies the capacity whenever a Push finds the list full.
	GrowthFactor = 2
)

var (
	// ErrZeroSizedElement is returned (or panicked with) for element types of size zero.
	ErrZeroSizedElement = errors.New("zero-sized element types are not supported")
	// ErrNegativeCapacity is returned when a negative capacity is requested.
	ErrNegativeCapacity = errors.New("negative capacity")
	// ErrCapacityOverflow is returned when the block size would not fit in the address space.
	ErrCapacityOverflow = errors.New("capacity overflows the address space")
	// ErrAllocationFailed is returned when the runtime refuses to allocate the block.
	ErrAllocationFailed = errors.New("allocation failed")
	// ErrInvalidPolicy is returned by NewWithPolicy for unusable growth policies.
	ErrInvalidPolicy = errors.New("invalid growth policy")
)

// Policy controls how a List allocates and grows its block.
type Policy struct {
	// InitialCapacity is the number of slots allocated by the first Push.
	InitialCapacity int
	// GrowthFactor multiplies the capacity when the list is full. Must be > 1.
	GrowthFactor float64
}

// DefaultPolicy returns the policy used by New and by the zero List.
func DefaultPolicy() Policy {
	return Policy{InitialCapacity: InitialCapacity, GrowthFactor: GrowthFactor}
}

// Validate checks that p describes a monotonic growth.
func (p Policy) Validate() error {
	if p.InitialCapacity < 1 {
		return serr.Wrap(ErrInvalidPolicy, "initial capacity must be positive", "initialCapacity", p.InitialCapacity)
	}
	if math.IsNaN(p.GrowthFactor) || math.IsInf(p.GrowthFactor, 0) || p.GrowthFactor <= 1 {
		return serr.Wrap(ErrInvalidPolicy, "growth factor must be greater than 1", "growthFactor", p.GrowthFactor)
	}
	return nil
}

// next returns the capacity that follows capacity, never exceeding limit.
// Growth is by at least one slot so that factors close to 1 still make progress.
func (p Policy) next(capacity, limit int) (int, bool) {
	if capacity >= limit {
		return 0, false
	}
	grown := math.Floor(float64(capacity) * p.GrowthFactor)
	if grown >= float64(limit) {
		return 0, false
	}
	n := int(grown)
	if n <= capacity {
		n = capacity + 1
	}
	return n, true
}

// List is a growable array. Slots [0, Len()) hold live elements, slots
// [Len(), Cap()) hold the zero value. A List with no capacity holds no block.
//
// The zero List is empty, unallocated and uses DefaultPolicy.
type List[T any] struct {
	buf    []T // len(buf) is the capacity; nil when nothing is allocated
	length int
	policy Policy
	drop   func(T)
}

// New creates an empty list. It never allocates.
func New[T any]() *List[T] {
	return &List[T]{policy: DefaultPolicy()}
}

// WithCapacity creates an empty list holding a block of exactly n slots.
func WithCapacity[T any](n int) (*List[T], error) {
	if err := checkCapacity[T](n); err != nil {
		return nil, err
	}
	l := New[T]()
	if n == 0 {
		return l, nil
	}
	buf, err := allocate[T](n)
	if err != nil {
		return nil, err
	}
	l.buf = buf
	return l, nil
}

// NewWithPolicy creates an empty list that grows according to p.
func NewWithPolicy[T any](p Policy) (*List[T], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &List[T]{policy: p}, nil
}

// Of creates a list holding values, in order.
func Of[T any](values ...T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.Push(v)
	}
	return l
}

// Collect creates a list from the values of seq, in order.
func Collect[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	for v := range seq {
		l.Push(v)
	}
	return l
}

func elemSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// maxSlots is the largest capacity whose block size fits in an int.
func maxSlots[T any]() int {
	return int(uintptr(math.MaxInt) / elemSize[T]())
}

func checkCapacity[T any](n int) error {
	size := elemSize[T]()
	switch {
	case size == 0:
		return serr.Wrap(ErrZeroSizedElement, "cannot allocate list storage", "capacity", n, "elemSize", size)
	case n < 0:
		return serr.Wrap(ErrNegativeCapacity, "cannot allocate list storage", "capacity", n, "elemSize", size)
	case n > maxSlots[T]():
		return serr.Wrap(ErrCapacityOverflow, "cannot allocate list storage", "capacity", n, "elemSize", size)
	}
	return nil
}

// allocate returns a block of n slots. The runtime rejects oversized blocks by
// panicking; that is reported as ErrAllocationFailed.
func allocate[T any](n int) (buf []T, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = serr.Wrap(ErrAllocationFailed, "cannot allocate list storage",
				"capacity", n, "elemSize", elemSize[T](), "cause", fmt.Sprint(r))
		}
	}()
	return make([]T, n), nil
}

func (l *List[T]) currentPolicy() Policy {
	if l.policy.InitialCapacity == 0 {
		return DefaultPolicy()
	}
	return l.policy
}

// Policy returns the growth policy of l.
func (l *List[T]) Policy() Policy {
	return l.currentPolicy()
}

// SetDropFunc registers fn to be called once for every element l discards.
func (l *List[T]) SetDropFunc(fn func(T)) {
	l.drop = fn
}

// Len returns the number of live elements.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

// Cap returns the number of allocated slots.
func (l *List[T]) Cap() int {
	if l == nil {
		return 0
	}
	return len(l.buf)
}

// IsEmpty reports whether l holds no elements.
func (l *List[T]) IsEmpty() bool {
	return l.Len() == 0
}

// Push appends value at the end of l, allocating or growing the block when it
// is full. It panics if T is zero sized, or if the block cannot grow.
func (l *List[T]) Push(value T) {
	if elemSize[T]() == 0 {
		panic(serr.Wrap(ErrZeroSizedElement, "cannot push"))
	}

	switch {
	case len(l.buf) == 0:
		buf := mustAllocate[T](l.currentPolicy().InitialCapacity)
		buf[0] = value
		l.buf = buf
		l.length = 1

	case l.length < len(l.buf):
		l.buf[l.length] = value
		l.length++

	default:
		capacity, ok := l.currentPolicy().next(len(l.buf), maxSlots[T]())
		if !ok {
			panic(serr.Wrap(ErrCapacityOverflow, "cannot grow list", "capacity", len(l.buf), "elemSize", elemSize[T]()))
		}
		buf := mustAllocate[T](capacity)
		copy(buf, l.buf[:l.length])
		buf[l.length] = value
		l.buf = buf
		l.length++
	}
}

func mustAllocate[T any](n int) []T {
	if err := checkCapacity[T](n); err != nil {
		panic(err)
	}
	buf, err := allocate[T](n)
	if err != nil {
		panic(err)
	}
	return buf
}

// Get returns the element at index, if index is in range.
func (l *List[T]) Get(index int) (T, bool) {
	if index < 0 || index >= l.Len() {
		var zero T
		return zero, false
	}
	return l.buf[index], true
}

// GetPtr returns a pointer to the element at index, or nil if index is out of
// range. The pointer is valid until the next call that modifies l.
func (l *List[T]) GetPtr(index int) *T {
	if index < 0 || index >= l.Len() {
		return nil
	}
	return &l.buf[index]
}

// Front returns the first element.
func (l *List[T]) Front() (T, bool) {
	return l.Get(0)
}

// Back returns the last element.
func (l *List[T]) Back() (T, bool) {
	return l.Get(l.Len() - 1)
}

// FrontPtr returns a pointer to the first element, or nil if l is empty.
func (l *List[T]) FrontPtr() *T {
	return l.GetPtr(0)
}

// BackPtr returns a pointer to the last element, or nil if l is empty.
func (l *List[T]) BackPtr() *T {
	return l.GetPtr(l.Len() - 1)
}

// At returns the element at index. It panics if index is out of range.
func (l *List[T]) At(index int) T {
	if index < 0 || index >= l.Len() {
		panic(outOfBounds(index, l.Len()))
	}
	return l.buf[index]
}

// Set replaces the element at index. It panics if index is out of range.
// The replaced element is not dropped; it is the caller's value to discard.
func (l *List[T]) Set(index int, value T) {
	if index < 0 || index >= l.Len() {
		panic(outOfBounds(index, l.Len()))
	}
	l.buf[index] = value
}

func outOfBounds(index, length int) string {
	return fmt.Sprintf("index %d out of bounds (length %d)", index, length)
}

// Truncate keeps the first n elements and drops the rest. It has no effect if
// n >= Len(). The block is kept.
func (l *List[T]) Truncate(n int) {
	if n < 0 {
		panic(fmt.Sprintf("truncate: negative length %d", n))
	}
	if n >= l.length {
		return
	}
	excised := l.buf[n:l.length]
	// the length shrinks before any drop runs, so a panicking drop can never
	// see (or drop again) an excised element
	l.length = n
	dropSlots(excised, l.drop)
}

// Clear drops every element, keeping the block.
func (l *List[T]) Clear() {
	l.Truncate(0)
}

// Free drops every element and releases the block. l remains usable.
func (l *List[T]) Free() {
	live := l.buf[:l.length]
	l.buf = nil
	l.length = 0
	dropSlots(live, l.drop)
}

// dropSlots zeroes every slot and hands the previous value to drop. If drop
// panics the remaining slots are still processed before the panic resumes.
func dropSlots[T any](slots []T, drop func(T)) {
	if drop == nil {
		clear(slots)
		return
	}
	var zero T
	i := 0
	defer func() {
		if i < len(slots) {
			dropSlots(slots[i+1:], drop)
		}
	}()
	for ; i < len(slots); i++ {
		v := slots[i]
		slots[i] = zero
		drop(v)
	}
}

// All returns a non-consuming iterator over the elements, front to back.
// l must not be modified while iterating.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < l.Len(); i++ {
			if !yield(l.buf[i]) {
				return
			}
		}
	}
}

// Drain returns a consuming iterator. When iteration starts the elements are
// moved out of l, which becomes empty and unallocated, then yielded in order.
// Elements left over by an early break, or by a panic in the loop body, are
// dropped.
func (l *List[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l == nil {
			return
		}
		taken := l.buf[:l.length]
		l.buf = nil
		l.length = 0

		var zero T
		i := 0
		defer func() {
			if i < len(taken) {
				dropSlots(taken[i+1:], l.drop)
			}
		}()
		for ; i < len(taken); i++ {
			v := taken[i]
			taken[i] = zero
			if !yield(v) {
				return
			}
		}
	}
}

// Slice returns a copy of the live elements.
func (l *List[T]) Slice() []T {
	out := make([]T, l.Len())
	if l != nil {
		copy(out, l.buf[:l.length])
	}
	return out
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
	for i := 0; i < a.Len(); i++ {
		if !eq(a.buf[i], b.buf[i]) {
			return false
		}
	}
	return true
}
