// Package digest drives block-oriented cores through a go_block_buffer
// engine. A core only ever sees whole blocks, the wrappers here take care of
// buffering, finalization and output generation.
package digest

import (
	go_block_buffer "github.com/datnguyenzzz/nogodb/lib/go-block-buffer"
	"github.com/datnguyenzzz/nogodb/lib/go-block-buffer/block"
)

// UpdateCore consumes input one or more whole blocks at a time.
type UpdateCore interface {
	BlockSize() int
	// BufferKind selects the discipline of the engine buffer in front of the
	// core. Cores that must treat the last block specially want Lazy.
	BufferKind() go_block_buffer.Kind
	UpdateBlocks(blocks block.Blocks)
}

// FixedOutputCore is a core with an output size known up front.
type FixedOutputCore[C any] interface {
	UpdateCore
	OutputSize() int
	// FinalizeFixedCore pads whatever is left in buf, processes the final
	// block(s) and writes exactly OutputSize bytes into out. The caller resets
	// both the core and the buffer before reuse.
	FinalizeFixedCore(buf *go_block_buffer.Buffer, out []byte)
	Reset()
	Clone() C
}

type TruncSide uint8

const (
	// TruncLeft keeps the leading bytes of the full output.
	TruncLeft TruncSide = iota
	// TruncRight keeps the trailing bytes of the full output.
	TruncRight
)

// VariableOutputCore is a core whose output size is picked when the core is
// built, up to MaxOutputSize.
type VariableOutputCore[C any] interface {
	UpdateCore
	MaxOutputSize() int
	TruncSide() TruncSide
	// FinalizeVariableCore writes MaxOutputSize bytes into out.
	FinalizeVariableCore(buf *go_block_buffer.Buffer, out []byte)
	Clone() C
}

// XofReaderCore produces the output stream of an extendable-output function
// one block at a time.
type XofReaderCore[C any] interface {
	BlockSize() int
	ReadBlock(b block.Block)
	Clone() C
}

// ExtendableOutputCore absorbs input and turns into an XofReaderCore once
// finalized.
type ExtendableOutputCore[C any, R XofReaderCore[R]] interface {
	UpdateCore
	FinalizeXofCore(buf *go_block_buffer.Buffer) R
	Reset()
	Clone() C
}
