package predictable_size

import (
	"math/bits"
	"sync"
)

const (
	maximumPoolCnt = 24
	// minimumClassShift makes the smallest class 64 bytes, the block size of
	// the MD5/SHA-1/SHA-256 family.
	minimumClassShift = 6
)

// PredictablePool contains pools for slices of byte of various capacities.
//
//	pools[0] is for capacities from 0 upto 64
//	pools[1] is for capacities from 65 upto 128
//	pools[2] is for capacities from 129 upto 256
//	...
//	pools[n] is for capacities from 2^(n+5)+1 to 2^(n+6)
//
// Slices are wiped when they are put back, so Get always hands out zeroed
// memory even if the previous owner buffered secret material in it.
type PredictablePool struct {
	pools [maximumPoolCnt]sync.Pool
}

func NewPredictablePool() *PredictablePool {
	return &PredictablePool{}
}

// Get returns an empty, zeroed slice with a capacity of at least dataLen.
func (p *PredictablePool) Get(dataLen int) []byte {
	id, poolCap := getPoolIDAndCapacity(dataLen)
	if dataLen > poolCap {
		// bigger than the largest class, never pooled
		return make([]byte, 0, dataLen)
	}
	if b := p.pools[id].Get(); b != nil {
		return b.([]byte)
	}

	// if the pool is empty, then allocate new poolCap bytes
	return make([]byte, 0, poolCap)
}

// Put wipes buf and hands it back to the pool matching its capacity.
func (p *PredictablePool) Put(buf []byte) {
	capacity := cap(buf)
	id, poolCap := getPoolIDAndCapacity(capacity)
	if capacity != poolCap {
		// only exact class capacities are pooled, otherwise a later Get
		// could receive a slice smaller than requested
		return
	}

	buf = buf[:capacity]
	clear(buf)
	p.pools[id].Put(buf[:0])
}

// getPoolIDAndCapacity predict the poolId from given data size
// and return the pool maximum capacity
func getPoolIDAndCapacity(size int) (int, int) {
	size--
	size = max(size, 0)
	size >>= minimumClassShift
	id := bits.Len(uint(size))
	id = min(id, maximumPoolCnt-1)
	return id, 1 << (id + minimumClassShift)
}
