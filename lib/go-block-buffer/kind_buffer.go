package go_block_buffer

import "github.com/datnguyenzzz/nogodb/lib/go-block-buffer/block"

// EagerBuffer is a Buffer whose cursor always stays below the block size. Only
// eager buffers can generate output.
type EagerBuffer struct {
	Buffer
}

// LazyBuffer is a Buffer that keeps a complete block buffered until more data
// arrives or the buffer gets padded.
type LazyBuffer struct {
	Buffer
}

func NewEager(blockSize int, opts ...OptionFn) (*EagerBuffer, error) {
	return NewEagerFromSlice(blockSize, nil, opts...)
}

func NewEagerFromSlice(blockSize int, data []byte, opts ...OptionFn) (*EagerBuffer, error) {
	b, err := NewFromSlice(Eager, blockSize, data, opts...)
	if err != nil {
		return nil, err
	}
	return &EagerBuffer{Buffer: *b}, nil
}

func NewLazy(blockSize int, opts ...OptionFn) (*LazyBuffer, error) {
	return NewLazyFromSlice(blockSize, nil, opts...)
}

func NewLazyFromSlice(blockSize int, data []byte, opts ...OptionFn) (*LazyBuffer, error) {
	b, err := NewFromSlice(Lazy, blockSize, data, opts...)
	if err != nil {
		return nil, err
	}
	return &LazyBuffer{Buffer: *b}, nil
}

func (b *EagerBuffer) Clone() *EagerBuffer {
	return &EagerBuffer{Buffer: *b.Buffer.Clone()}
}

func (b *LazyBuffer) Clone() *LazyBuffer {
	return &LazyBuffer{Buffer: *b.Buffer.Clone()}
}

// SetData fills data with generated output. Bytes left over from the
// previous call are used first, then generate writes whole blocks straight
// into data. If data does not end on a block boundary, one more block is
// generated into the buffer storage, its head goes to data and the rest is
// kept for the next call. generate receives zeroed blocks only when they
// live in the buffer storage, blocks inside data hold whatever was there.
//
// For output generation the cursor counts the consumed bytes of the buffered
// block, so Data returns the part that was already handed out.
func (b *EagerBuffer) SetData(data []byte, generate func(blocks block.Blocks)) {
	pos := b.getPos()
	r := b.Remaining()
	n := len(data)
	if pos != 0 {
		if n < r {
			copy(data, b.buf[pos:pos+n])
			b.setPos(pos + n)
			return
		}
		left, right := data[:r], data[r:]
		data = right
		copy(left, b.buf[pos:])
	}

	blocks, leftover := block.Split(data, b.size)
	if blocks.Len() > 0 {
		generate(blocks)
	}

	n = len(leftover)
	if n != 0 {
		clear(b.buf)
		generate(block.Single(b.buf))
		copy(leftover, b.buf[:n])
	}
	b.setPos(n)
}
