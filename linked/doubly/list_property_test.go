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

package doubly

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/algorand/go-lists/test/partitiontest"
	"github.com/algorand/go-lists/test/rapidgen"
)

func TestList_MatchesSliceModel(t *testing.T) {
	partitiontest.PartitionTest(t)

	rapid.Check(t, func(t *rapid.T) {
		script := rapidgen.Script(100,
			rapidgen.PushBack, rapidgen.PushFront, rapidgen.PopFront, rapidgen.PopBack,
			rapidgen.Get, rapidgen.Clear,
		).Draw(t, "script")
		prealloc := rapid.IntRange(0, 8).Draw(t, "prealloc")

		l := New[int]().AllocateFreeNodes(prealloc)
		var model []int
		for _, op := range script {
			switch op.Kind {
			case rapidgen.PushBack:
				l.PushBack(op.Value)
				model = append(model, op.Value)
			case rapidgen.PushFront:
				l.PushFront(op.Value)
				model = slices.Insert(model, 0, op.Value)
			case rapidgen.PopFront:
				v, ok := l.PopFront()
				require.Equal(t, len(model) > 0, ok, "after %v", op)
				if ok {
					require.Equal(t, model[0], v)
					model = model[1:]
				}
			case rapidgen.PopBack:
				v, ok := l.PopBack()
				require.Equal(t, len(model) > 0, ok, "after %v", op)
				if ok {
					require.Equal(t, model[len(model)-1], v)
					model = model[:len(model)-1]
				}
			case rapidgen.Get:
				v, ok := l.Get(op.Index)
				require.Equal(t, op.Index < len(model), ok, "after %v", op)
				if ok {
					require.Equal(t, model[op.Index], v)
					back, _ := l.GetFromBack(len(model) - 1 - op.Index)
					require.Equal(t, v, back)
				}
			case rapidgen.Clear:
				l.Clear()
				model = nil
			}
			checkListPointers(t, l, model)
		}

		reversed := slices.Clone(model)
		slices.Reverse(reversed)
		require.True(t, slices.Equal(reversed, slices.Collect(l.Backward())))
		require.True(t, Equal(l, Collect(slices.Values(model))))
		require.True(t, slices.Equal(model, slices.Collect(l.Drain())))
		require.True(t, l.IsEmpty())
	})
}
