// Package block provides the fixed-size byte block handed to compression and
// generation functions, and the chunking that turns a byte region into
// non-overlapping block windows.
package block

import (
	"errors"
	"fmt"
	"iter"
)

var ErrLengthMismatch = errors.New("block: length mismatch")

// Block is a contiguous byte region whose length is the block size.
type Block []byte

// New returns a zeroed block of the given size.
func New(size int) Block {
	return make(Block, size)
}

// FromSlice copies data into a new block. It fails if len(data) != size.
func FromSlice(data []byte, size int) (Block, error) {
	if len(data) != size {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrLengthMismatch, len(data), size)
	}
	b := New(size)
	copy(b, data)
	return b, nil
}

// View validates data the same way as FromSlice but borrows it instead of
// copying. Writes through the returned block are visible in data.
func View(data []byte, size int) (Block, error) {
	if len(data) != size {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrLengthMismatch, len(data), size)
	}
	return Block(data[:size:size]), nil
}

func (b Block) Len() int {
	return len(b)
}

func (b Block) Clone() Block {
	c := make(Block, len(b))
	copy(c, b)
	return c
}

// Blocks is a view of n consecutive blocks of equal size backed by a single
// byte slice. Writes through At or Bytes land in the backing slice.
type Blocks struct {
	data []byte
	size int
}

// Split partitions data into as many whole blocks of the given size as fit,
// plus the remaining tail of less than size bytes. Both results borrow data.
// size must be positive.
func Split(data []byte, size int) (Blocks, []byte) {
	if size <= 0 {
		panic(fmt.Sprintf("block: non-positive block size %d", size))
	}
	return SplitAt(data, size, len(data)/size)
}

// SplitAt is Split with an explicit number of blocks n, which must satisfy
// n*size <= len(data).
func SplitAt(data []byte, size, n int) (Blocks, []byte) {
	blocksLen := n * size
	if n < 0 || blocksLen > len(data) {
		panic(fmt.Sprintf("block: cannot take %d blocks of %d bytes out of %d", n, size, len(data)))
	}
	return Blocks{data: data[:blocksLen:blocksLen], size: size}, data[blocksLen:]
}

// Single wraps one block as a one-element Blocks.
func Single(b Block) Blocks {
	return Blocks{data: b[:len(b):len(b)], size: len(b)}
}

// Len returns the number of blocks.
func (bs Blocks) Len() int {
	if bs.size == 0 {
		return 0
	}
	return len(bs.data) / bs.size
}

// Size returns the size of a single block.
func (bs Blocks) Size() int {
	return bs.size
}

// At returns the i-th block. Its capacity is capped to the block size so an
// append can never spill into the next block.
func (bs Blocks) At(i int) Block {
	lo, hi := i*bs.size, (i+1)*bs.size
	return Block(bs.data[lo:hi:hi])
}

// Bytes returns the concatenation of all blocks.
func (bs Blocks) Bytes() []byte {
	return bs.data
}

// All yields every block in order.
func (bs Blocks) All() iter.Seq2[int, Block] {
	return func(yield func(int, Block) bool) {
		for i := 0; i < bs.Len(); i++ {
			if !yield(i, bs.At(i)) {
				return
			}
		}
	}
}
