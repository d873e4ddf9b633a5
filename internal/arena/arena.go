// Package arena implements Forge's byte-addressable memory region: a
// fixed-size first-fit allocator with free-list coalescing, backed by a
// single contiguous byte slice with sorted-slice free-interval bookkeeping.
package arena

import "fmt"

// DefaultSize is the arena size used when none is configured.
const DefaultSize = 1024

// Op names an arena operation, used to identify the offending call in Error.
type Op string

const (
	OpAlloc Op = "alloc"
	OpFree  Op = "free"
	OpRead  Op = "read"
	OpWrite Op = "write"
)

// Error reports an arena operation that could not be satisfied: allocation
// exhaustion, a free of an unallocated pointer, or an out-of-bounds
// read/write.
type Error struct {
	Op     Op
	Reason string
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// interval is a half-open byte range [Start, Start+Length).
type interval struct {
	Start  int
	Length int
}

// Arena is a fixed-size byte region managed by an explicit first-fit
// allocator. The zero value is not usable; construct with New.
type Arena struct {
	mem         []byte
	freeList    []interval // sorted by Start, no two entries adjacent or overlapping
	allocations map[int]int
}

// New returns an Arena of the given size, entirely free.
func New(size int) *Arena {
	if size <= 0 {
		size = DefaultSize
	}
	return &Arena{
		mem:         make([]byte, size),
		freeList:    []interval{{Start: 0, Length: size}},
		allocations: make(map[int]int),
	}
}

// Size returns the arena's total byte capacity.
func (a *Arena) Size() int { return len(a.mem) }

// Alloc reserves the first free interval with length >= n and returns its
// start offset. Fails if n <= 0 or no interval fits.
func (a *Arena) Alloc(n int) (int, error) {
	if n <= 0 {
		return 0, Error{OpAlloc, "allocation size must be positive"}
	}
	for i, iv := range a.freeList {
		if iv.Length < n {
			continue
		}
		ptr := iv.Start
		a.allocations[ptr] = n
		if iv.Length == n {
			a.freeList = append(a.freeList[:i], a.freeList[i+1:]...)
		} else {
			a.freeList[i] = interval{Start: iv.Start + n, Length: iv.Length - n}
		}
		return ptr, nil
	}
	return 0, Error{OpAlloc, "not enough memory to allocate"}
}

// Free releases the allocation starting at ptr, coalescing it with any
// adjacent free intervals.
func (a *Arena) Free(ptr int) error {
	n, ok := a.allocations[ptr]
	if !ok {
		return Error{OpFree, "invalid free: pointer not allocated"}
	}
	delete(a.allocations, ptr)
	a.insertFree(interval{Start: ptr, Length: n})
	return nil
}

// insertFree inserts iv into the free list in sorted order and coalesces it
// with its neighbors, maintaining the "no two adjacent" invariant.
func (a *Arena) insertFree(iv interval) {
	i := 0
	for i < len(a.freeList) && a.freeList[i].Start < iv.Start {
		i++
	}
	a.freeList = append(a.freeList, interval{})
	copy(a.freeList[i+1:], a.freeList[i:])
	a.freeList[i] = iv

	if i+1 < len(a.freeList) && a.freeList[i].Start+a.freeList[i].Length == a.freeList[i+1].Start {
		a.freeList[i].Length += a.freeList[i+1].Length
		a.freeList = append(a.freeList[:i+1], a.freeList[i+2:]...)
	}
	if i > 0 && a.freeList[i-1].Start+a.freeList[i-1].Length == a.freeList[i].Start {
		a.freeList[i-1].Length += a.freeList[i].Length
		a.freeList = append(a.freeList[:i], a.freeList[i+1:]...)
	}
}

// Write stores a single byte value at ptr. It does not verify that ptr lies
// within a live allocation, only that it lies within the arena — preserved
// deliberately.
func (a *Arena) Write(ptr int, value int) error {
	if ptr < 0 || ptr >= len(a.mem) {
		return Error{OpWrite, "pointer out of bounds"}
	}
	if value < 0 || value > 255 {
		return Error{OpWrite, "value must be between 0 and 255"}
	}
	a.mem[ptr] = byte(value)
	return nil
}

// Read loads a single byte value from ptr, bounds-checked against the arena
// only (see Write).
func (a *Arena) Read(ptr int) (int, error) {
	if ptr < 0 || ptr >= len(a.mem) {
		return 0, Error{OpRead, "pointer out of bounds"}
	}
	return int(a.mem[ptr]), nil
}

// FreeIntervals returns a copy of the free list, for tests that assert
// partition/coalescing invariants.
func (a *Arena) FreeIntervals() [][2]int {
	out := make([][2]int, len(a.freeList))
	for i, iv := range a.freeList {
		out[i] = [2]int{iv.Start, iv.Length}
	}
	return out
}

// Allocations returns a copy of the start->length allocation table, for
// tests.
func (a *Arena) Allocations() map[int]int {
	out := make(map[int]int, len(a.allocations))
	for k, v := range a.allocations {
		out[k] = v
	}
	return out
}
