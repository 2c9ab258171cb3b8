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

package partitiontest

import (
	"hash/fnv"
	"os"
	"runtime"
	"strconv"
	"testing"
)

// PartitionTest checks if the current partition should run this test, and skips it if not.
// Partitioning is controlled by the PARTITION_TOTAL and PARTITION_ID environment variables;
// when either is missing or malformed every test runs.
func PartitionTest(t testing.TB) {
	t.Helper()
	total, id, ok := partition()
	if !ok {
		return
	}
	_, file, _, _ := runtime.Caller(1) // get filename of caller to PartitionTest
	idx := nameToPartition(file+":"+t.Name(), total)
	if idx != id {
		t.Skipf("skipping due to partitioning, assigned to partition %d", idx)
	}
}

func partition() (total, id uint64, ok bool) {
	pt, found := os.LookupEnv("PARTITION_TOTAL")
	if !found {
		return 0, 0, false
	}
	partitions, err := strconv.ParseUint(pt, 10, 64)
	if err != nil || partitions == 0 {
		return 0, 0, false
	}
	partitionID, err := strconv.ParseUint(os.Getenv("PARTITION_ID"), 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return partitions, partitionID, true
}

func nameToPartition(name string, partitions uint64) uint64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	return h.Sum64() % partitions
}
