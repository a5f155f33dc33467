// Package go_block_buffer accumulates arbitrary byte streams into fixed-size
// blocks for block-oriented primitives such as hash functions, MACs and
// extendable-output functions.
//
// A Buffer owns one block of storage and a cursor. Complete blocks are handed
// to a caller supplied function, batched where possible, and the trailing
// bytes stay buffered until the next call. Padding and output generation
// follow the same bookkeeping.
//
// Buffers are not safe for concurrent use.
package go_block_buffer

import (
	"fmt"

	"github.com/datnguyenzzz/nogodb/lib/go-block-buffer/block"
	"go.uber.org/zap"
)

// Buffer is a block buffer with a runtime chosen block size and discipline.
// Use New, NewEager or NewLazy to create one, the zero value is not usable.
type Buffer struct {
	kind Kind
	d    discipline

	size int
	buf  block.Block
	pos  int

	opts options
}

// New creates an empty buffer of the given discipline and block size.
func New(kind Kind, blockSize int, opts ...OptionFn) (*Buffer, error) {
	return NewFromSlice(kind, blockSize, nil, opts...)
}

// NewFromSlice creates a buffer which already holds data. len(data) has to be
// a legal cursor for the discipline: below blockSize for Eager, at most
// blockSize for Lazy.
func NewFromSlice(kind Kind, blockSize int, data []byte, opts ...OptionFn) (*Buffer, error) {
	if !kind.valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	if blockSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBlockSize, blockSize)
	}
	d := kind.discipline()
	if !d.invariant(len(data), blockSize) {
		return nil, fmt.Errorf("%w: %d bytes do not fit a %s buffer of block size %d",
			ErrInvalidLength, len(data), kind, blockSize)
	}

	o := defaultOptions
	for _, opt := range opts {
		opt(&o)
	}

	b := &Buffer{
		kind: kind,
		d:    d,
		size: blockSize,
		buf:  block.Block(o.bufferPool.Get(blockSize)[:blockSize]),
		opts: o,
	}
	b.setPos(copy(b.buf, data))
	return b, nil
}

// DigestBlocks consumes input completely. Every block that becomes complete
// and may be processed under the discipline is passed to compress, full
// blocks inside input are handed over in a single batch without copying.
// compress borrows the blocks for the duration of the call only.
func (b *Buffer) DigestBlocks(input []byte, compress func(blocks block.Blocks)) {
	pos := b.getPos()
	rem := b.size - pos
	n := len(input)
	// The new bytes still fit without completing a block that has to be
	// processed now.
	if b.d.invariant(n, rem) {
		copy(b.buf[pos:pos+n], input)
		b.setPos(pos + n)
		return
	}

	if pos != 0 {
		left, right := input[:rem], input[rem:]
		input = right
		copy(b.buf[pos:], left)
		compress(block.Single(b.buf))
	}

	blocks, tail := b.d.splitBlocks(input, b.size)
	if blocks.Len() > 0 {
		compress(blocks)
	}

	b.setPos(copy(b.buf, tail))
}

// Reset brings the cursor back to 0.
func (b *Buffer) Reset() {
	b.truncate()
}

// Set replaces the whole block storage with buf and moves the cursor to pos.
// buf must be exactly one block long and pos must be legal for the
// discipline, otherwise the buffer is left untouched.
func (b *Buffer) Set(buf []byte, pos int) error {
	if len(buf) != b.size {
		return fmt.Errorf("%w: got %d bytes, want a block of %d", ErrInvalidLength, len(buf), b.size)
	}
	if !b.d.invariant(pos, b.size) {
		return fmt.Errorf("%w: %d for a %s buffer of block size %d", ErrInvalidPosition, pos, b.kind, b.size)
	}
	copy(b.buf, buf)
	b.setPos(pos)
	return nil
}

// Data returns the buffered bytes. The slice aliases the buffer storage and
// is only valid until the next mutating call.
func (b *Buffer) Data() []byte {
	return b.buf[:b.getPos()]
}

// Pos returns the cursor, the number of buffered bytes.
func (b *Buffer) Pos() int {
	return b.getPos()
}

// Size returns the block size in bytes.
func (b *Buffer) Size() int {
	return b.size
}

// Remaining returns how many bytes fit into the block storage before it is
// full.
func (b *Buffer) Remaining() int {
	return b.size - b.getPos()
}

// Kind returns the buffering discipline.
func (b *Buffer) Kind() Kind {
	return b.kind
}

// Clone returns an independent copy with its own storage.
func (b *Buffer) Clone() *Buffer {
	c := *b
	c.buf = block.Block(b.opts.bufferPool.Get(b.size)[:b.size])
	copy(c.buf, b.buf)
	return &c
}

// Release wipes the storage and returns it to the buffer pool. The buffer
// must not be used afterwards.
func (b *Buffer) Release() {
	if b.buf == nil {
		return
	}
	b.opts.bufferPool.Put(b.buf)
	b.buf = nil
	b.pos = 0
}

// truncate sets the cursor to 0, wiping the storage if configured to.
func (b *Buffer) truncate() {
	if b.opts.wipeOnReset {
		clear(b.buf)
	}
	b.setPos(0)
}

func (b *Buffer) getPos() int {
	if !b.d.invariant(b.pos, b.size) {
		b.invariantViolated(b.pos)
	}
	return b.pos
}

func (b *Buffer) setPos(pos int) {
	if !b.d.invariant(pos, b.size) {
		b.invariantViolated(pos)
	}
	b.pos = pos
}

// invariantViolated reports a cursor outside of its legal range. It can only
// be reached through a bug in this package, so it never returns.
func (b *Buffer) invariantViolated(pos int) {
	msg := fmt.Sprintf("block buffer cursor %d is out of range for a %s buffer of block size %d", pos, b.kind, b.size)
	logger := b.opts.logger
	if logger == nil {
		logger = zap.L()
	}
	logger.Error(msg, zap.Stringer("kind", b.kind), zap.Int("pos", pos), zap.Int("block_size", b.size))
	panic(msg)
}
