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

// Package rapidgen contains rapid generators for scripting container operations.
package rapidgen

import (
	"fmt"

	"pgregory.net/rapid"
)

// OpKind names a single container operation.
type OpKind int

const (
	// PushBack appends Op.Value at the back.
	PushBack OpKind = iota
	// PushFront prepends Op.Value at the front.
	PushFront
	// PopFront removes and returns the front value.
	PopFront
	// PopBack removes and returns the back value.
	PopBack
	// Get reads the value at Op.Index, which may be out of range.
	Get
	// Truncate shortens the container to Op.Index elements.
	Truncate
	// Clear empties the container.
	Clear
)

var opNames = map[OpKind]string{
	PushBack:  "PushBack",
	PushFront: "PushFront",
	PopFront:  "PopFront",
	PopBack:   "PopBack",
	Get:       "Get",
	Truncate:  "Truncate",
	Clear:     "Clear",
}

func (k OpKind) String() string {
	if name, ok := opNames[k]; ok {
		return name
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

// Op is one step of a generated script.
type Op struct {
	Kind  OpKind
	Value int
	Index int
}

func (op Op) String() string {
	switch op.Kind {
	case PushBack, PushFront:
		return fmt.Sprintf("%v(%d)", op.Kind, op.Value)
	case Get, Truncate:
		return fmt.Sprintf("%v(%d)", op.Kind, op.Index)
	default:
		return op.Kind.String() + "()"
	}
}

// maxIndex bounds the indexes drawn for Get and Truncate. It is a little larger
// than the scripts are long so out-of-range lookups are exercised too.
const maxIndex = 80

// Values generates up to maxLen arbitrary ints.
func Values(maxLen int) *rapid.Generator[[]int] {
	assertf(maxLen >= 0, "maximum length (%v) should not be negative", maxLen)
	return rapid.SliceOfN(rapid.Int(), 0, maxLen)
}

// OpOf generates a single operation drawn from kinds.
func OpOf(kinds ...OpKind) *rapid.Generator[Op] {
	assertf(len(kinds) > 0, "at least one operation kind is required")
	kindGen := rapid.SampledFrom(kinds)

	return rapid.Custom(func(t *rapid.T) Op {
		op := Op{Kind: kindGen.Draw(t, "kind")}
		switch op.Kind {
		case PushBack, PushFront:
			op.Value = rapid.IntRange(-1000, 1000).Draw(t, "value")
		case Get, Truncate:
			op.Index = rapid.IntRange(0, maxIndex).Draw(t, "index")
		}
		return op
	})
}

// Script generates a sequence of at most maxLen operations drawn from kinds.
// Push operations are weighted so that scripts build up non-trivial containers.
func Script(maxLen int, kinds ...OpKind) *rapid.Generator[[]Op] {
	assertf(maxLen > 0, "maximum length (%v) should be positive", maxLen)

	weighted := make([]OpKind, 0, 2*len(kinds))
	for _, k := range kinds {
		weighted = append(weighted, k)
		if k == PushBack || k == PushFront {
			weighted = append(weighted, k, k)
		}
	}
	return rapid.SliceOfN(OpOf(weighted...), 0, maxLen)
}

func assertf(ok bool, format string, args ...interface{}) {
	if !ok {
		panic(fmt.Sprintf(format, args...))
	}
}
