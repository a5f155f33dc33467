package digest

import (
	go_block_buffer "github.com/datnguyenzzz/nogodb/lib/go-block-buffer"
	"github.com/datnguyenzzz/nogodb/lib/go-block-buffer/block"
)

// XofReader exposes the output of an XofReaderCore as an io.Reader. Blocks
// are generated straight into the destination whenever they fit, only the
// block that straddles the end of a read is kept for the next one.
type XofReader[R XofReaderCore[R]] struct {
	core   R
	buffer *go_block_buffer.EagerBuffer
}

func NewXofReader[R XofReaderCore[R]](core R, opts ...go_block_buffer.OptionFn) (*XofReader[R], error) {
	buffer, err := go_block_buffer.NewEager(core.BlockSize(), opts...)
	if err != nil {
		return nil, err
	}
	return &XofReader[R]{core: core, buffer: buffer}, nil
}

// Read always fills p completely and never returns an error.
func (r *XofReader[R]) Read(p []byte) (int, error) {
	r.buffer.SetData(p, r.generate)
	return len(p), nil
}

func (r *XofReader[R]) generate(blocks block.Blocks) {
	for _, b := range blocks.All() {
		r.core.ReadBlock(b)
	}
}

func (r *XofReader[R]) Clone() *XofReader[R] {
	return &XofReader[R]{
		core:   r.core.Clone(),
		buffer: r.buffer.Clone(),
	}
}

func (r *XofReader[R]) Release() {
	r.buffer.Release()
}

// XofHasher absorbs input through the engine and hands out an XofReader once
// finalized.
type XofHasher[C ExtendableOutputCore[C, R], R XofReaderCore[R]] struct {
	core   C
	buffer *go_block_buffer.Buffer
	opts   []go_block_buffer.OptionFn
}

// NewXofHasher creates a hasher around core. opts apply to both the input
// buffer and the buffer of every reader it produces.
func NewXofHasher[C ExtendableOutputCore[C, R], R XofReaderCore[R]](core C, opts ...go_block_buffer.OptionFn) (*XofHasher[C, R], error) {
	buffer, err := go_block_buffer.New(core.BufferKind(), core.BlockSize(), opts...)
	if err != nil {
		return nil, err
	}
	return &XofHasher[C, R]{core: core, buffer: buffer, opts: opts}, nil
}

func (h *XofHasher[C, R]) Write(p []byte) (int, error) {
	h.buffer.DigestBlocks(p, h.core.UpdateBlocks)
	return len(p), nil
}

// FinalizeXof returns a reader over the output stream and resets the hasher.
func (h *XofHasher[C, R]) FinalizeXof() (*XofReader[R], error) {
	reader := h.core.FinalizeXofCore(h.buffer)
	h.Reset()
	return NewXofReader(reader, h.opts...)
}

func (h *XofHasher[C, R]) Reset() {
	h.core.Reset()
	h.buffer.Reset()
}

func (h *XofHasher[C, R]) BlockSize() int {
	return h.buffer.Size()
}

func (h *XofHasher[C, R]) Clone() *XofHasher[C, R] {
	return &XofHasher[C, R]{
		core:   h.core.Clone(),
		buffer: h.buffer.Clone(),
		opts:   h.opts,
	}
}

func (h *XofHasher[C, R]) Release() {
	h.buffer.Release()
}
