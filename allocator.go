// SPDX-License-Identifier: Apache-2.0

package objid

import "sync/atomic"

// nidAllocator hands out NIDs above the baseline range. The counter is
// advanced atomically, so allocation never contends with the registry lock.
type nidAllocator struct {
	next atomic.Int64
}

// allocate reserves num consecutive NIDs and returns the first. The zero
// value starts the counter at NumNid, just past the compiled-in set.
func (a *nidAllocator) allocate(num int) int {
	a.next.CompareAndSwap(0, NumNid)

	return int(a.next.Add(int64(num))) - num
}

// NewNid reserves num consecutive NIDs for caller-assigned objects and
// returns the first. NIDs are never reused, including across Cleanup.
func (r *Registry) NewNid(num int) int {
	return r.alloc.allocate(num)
}

// NewNid reserves num consecutive NIDs in the default registry.
func NewNid(num int) int {
	return Default().NewNid(num)
}
