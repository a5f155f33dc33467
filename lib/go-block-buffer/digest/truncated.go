package digest

import (
	"fmt"

	go_block_buffer "github.com/datnguyenzzz/nogodb/lib/go-block-buffer"
	"github.com/datnguyenzzz/nogodb/lib/go-block-buffer/block"
)

// Truncated fixes the output size of a VariableOutputCore, which makes it a
// FixedOutputCore usable with Hasher.
type Truncated[C VariableOutputCore[C]] struct {
	initial C
	inner   C
	size    int
}

// NewTruncated wraps inner so that it outputs size bytes. inner has to be in
// its initial state, Reset goes back to a copy of it.
func NewTruncated[C VariableOutputCore[C]](inner C, size int) (*Truncated[C], error) {
	if size <= 0 || size > inner.MaxOutputSize() {
		return nil, fmt.Errorf("%w: %d is not in (0, %d]", ErrInvalidOutputSize, size, inner.MaxOutputSize())
	}
	return &Truncated[C]{
		initial: inner.Clone(),
		inner:   inner,
		size:    size,
	}, nil
}

func (t *Truncated[C]) BlockSize() int {
	return t.inner.BlockSize()
}

func (t *Truncated[C]) BufferKind() go_block_buffer.Kind {
	return t.inner.BufferKind()
}

func (t *Truncated[C]) UpdateBlocks(blocks block.Blocks) {
	t.inner.UpdateBlocks(blocks)
}

func (t *Truncated[C]) OutputSize() int {
	return t.size
}

func (t *Truncated[C]) FinalizeFixedCore(buf *go_block_buffer.Buffer, out []byte) {
	full := make([]byte, t.inner.MaxOutputSize())
	t.inner.FinalizeVariableCore(buf, full)

	switch t.inner.TruncSide() {
	case TruncRight:
		copy(out, full[len(full)-t.size:])
	default:
		copy(out, full[:t.size])
	}
}

func (t *Truncated[C]) Reset() {
	t.inner = t.initial.Clone()
}

func (t *Truncated[C]) Clone() *Truncated[C] {
	return &Truncated[C]{
		initial: t.initial,
		inner:   t.inner.Clone(),
		size:    t.size,
	}
}
