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

package util

import (
	"errors"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/algorand/go-lists/test/partitiontest"
)

func TestMapErr(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	out, err := MapErr([]string{"1", "2", "3"}, strconv.Atoi)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, out)

	out, err = MapErr([]string{"1", "x"}, strconv.Atoi)
	require.Nil(t, out)
	var numErr *strconv.NumError
	require.True(t, errors.As(err, &numErr))

	out, err = MapErr(nil, strconv.Atoi)
	require.NoError(t, err)
	require.Nil(t, out)
}

func TestSum(t *testing.T) {
	partitiontest.PartitionTest(t)
	t.Parallel()

	require.Equal(t, 15, Sum(slices.Values([]int{1, 2, 3, 4, 5})))
	require.Zero(t, Sum(slices.Values([]int64(nil))))
	require.Equal(t, 1.5, Sum(slices.Values([]float64{0.5, 1})))
	require.Equal(t, uint8(4), Sum(slices.Values([]uint8{255, 5})))
}
