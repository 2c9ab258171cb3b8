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

package dynamic

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/algorand/go-lists/test/partitiontest"
	"github.com/algorand/go-lists/test/rapidgen"
)

// TestList_MatchesSliceModel replays random scripts against a List and a plain
// slice, checking contents and the growth schedule after every step.
func TestList_MatchesSliceModel(t *testing.T) {
	partitiontest.PartitionTest(t)

	rapid.Check(t, func(t *rapid.T) {
		script := rapidgen.Script(100, rapidgen.PushBack, rapidgen.Get, rapidgen.Truncate, rapidgen.Clear).Draw(t, "script")

		l := New[int]()
		var model []int
		for _, op := range script {
			prevCap := l.Cap()
			switch op.Kind {
			case rapidgen.PushBack:
				full := l.Len() == l.Cap()
				l.Push(op.Value)
				model = append(model, op.Value)
				switch {
				case prevCap == 0:
					require.Equal(t, InitialCapacity, l.Cap(), "after %v", op)
				case full:
					require.Equal(t, prevCap*GrowthFactor, l.Cap(), "after %v", op)
				default:
					require.Equal(t, prevCap, l.Cap(), "after %v", op)
				}
			case rapidgen.Get:
				v, ok := l.Get(op.Index)
				require.Equal(t, op.Index < len(model), ok)
				if ok {
					require.Equal(t, model[op.Index], v)
				}
			case rapidgen.Truncate:
				l.Truncate(op.Index)
				if op.Index < len(model) {
					model = model[:op.Index]
				}
				require.Equal(t, prevCap, l.Cap())
			case rapidgen.Clear:
				l.Clear()
				model = model[:0]
				require.Equal(t, prevCap, l.Cap())
			}

			require.Equal(t, len(model), l.Len())
			require.LessOrEqual(t, l.Len(), l.Cap())
			if diff := cmp.Diff(model, l.Slice(), cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("list differs from model after %v (-model +list):\n%s", op, diff)
			}
			for i := l.Len(); i < l.Cap(); i++ {
				require.Zero(t, l.buf[i], "slot %d beyond the length must be cleared", i)
			}
		}
	})
}

func TestList_PushSequenceProperty(t *testing.T) {
	partitiontest.PartitionTest(t)

	rapid.Check(t, func(t *rapid.T) {
		values := rapidgen.Values(200).Draw(t, "values")

		a, b := New[int](), New[int]()
		for _, v := range values {
			a.Push(v)
			b.Push(v)
		}
		require.Equal(t, len(values), a.Len())
		for i, v := range values {
			got, ok := a.Get(i)
			require.True(t, ok)
			require.Equal(t, v, got)
		}
		_, ok := a.Get(len(values))
		require.False(t, ok)
		require.True(t, Equal(a, b))

		if len(values) > 0 {
			b.Set(len(values)-1, values[len(values)-1]+1)
			require.False(t, Equal(a, b))
		}

		var drained []int
		for v := range a.Drain() {
			drained = append(drained, v)
		}
		require.Empty(t, cmp.Diff(values, drained, cmpopts.EquateEmpty()))
		require.True(t, a.IsEmpty())
	})
}
