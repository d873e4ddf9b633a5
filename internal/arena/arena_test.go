package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocFirstFit(t *testing.T) {
	a := New(16)

	p1, err := a.Alloc(4)
	require.NoError(t, err)
	assert.Equal(t, 0, p1)

	p2, err := a.Alloc(4)
	require.NoError(t, err)
	assert.Equal(t, 4, p2)

	assert.Equal(t, [][2]int{{8, 8}}, a.FreeIntervals())
}

func TestAllocExhaustion(t *testing.T) {
	a := New(4)
	_, err := a.Alloc(5)
	require.Error(t, err)
	var aerr Error
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, OpAlloc, aerr.Op)
}

func TestAllocNonPositive(t *testing.T) {
	a := New(4)
	_, err := a.Alloc(0)
	require.Error(t, err)
	_, err = a.Alloc(-1)
	require.Error(t, err)
}

func TestFreeCoalescesNeighbors(t *testing.T) {
	a := New(16)
	p1, _ := a.Alloc(4)
	p2, _ := a.Alloc(4)
	p3, _ := a.Alloc(4)

	require.NoError(t, a.Free(p2))
	assert.Equal(t, [][2]int{{4, 4}, {12, 4}}, a.FreeIntervals())

	require.NoError(t, a.Free(p1))
	assert.Equal(t, [][2]int{{0, 8}, {12, 4}}, a.FreeIntervals())

	require.NoError(t, a.Free(p3))
	assert.Equal(t, [][2]int{{0, 16}}, a.FreeIntervals())
}

func TestFreeInvalidPointer(t *testing.T) {
	a := New(4)
	err := a.Free(0)
	require.Error(t, err)
	var aerr Error
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, OpFree, aerr.Op)
}

func TestWriteReadRoundTrip(t *testing.T) {
	a := New(8)
	ptr, err := a.Alloc(4)
	require.NoError(t, err)

	require.NoError(t, a.Write(ptr, 65))
	v, err := a.Read(ptr)
	require.NoError(t, err)
	assert.Equal(t, 65, v)
}

func TestWriteBoundsAndRange(t *testing.T) {
	a := New(4)
	require.Error(t, a.Write(-1, 0))
	require.Error(t, a.Write(4, 0))
	require.Error(t, a.Write(0, 256))
	require.Error(t, a.Write(0, -1))
	require.NoError(t, a.Write(0, 255))
	require.NoError(t, a.Write(0, 0))
}

func TestReadBounds(t *testing.T) {
	a := New(4)
	_, err := a.Read(-1)
	require.Error(t, err)
	_, err = a.Read(4)
	require.Error(t, err)
}

// WriteReadIgnoresAllocationLiveness exercises the deliberate "low-level"
// stance: write/read only bounds-check against the arena,
// never against live allocations.
func TestWriteReadIgnoresAllocationLiveness(t *testing.T) {
	a := New(8)
	ptr, err := a.Alloc(4)
	require.NoError(t, err)
	require.NoError(t, a.Free(ptr))

	require.NoError(t, a.Write(ptr, 99))
	v, err := a.Read(ptr)
	require.NoError(t, err)
	assert.Equal(t, 99, v)
}

func TestAllocFreeReverseOrderLeavesSingleInterval(t *testing.T) {
	a := New(8)
	p1, err := a.Alloc(5)
	require.NoError(t, err)
	p2, err := a.Alloc(3)
	require.NoError(t, err)

	require.NoError(t, a.Free(p2))
	require.NoError(t, a.Free(p1))

	assert.Equal(t, [][2]int{{0, 8}}, a.FreeIntervals())
}
