package go_block_buffer

import (
	"fmt"

	"github.com/datnguyenzzz/nogodb/lib/go-block-buffer/block"
)

// Kind selects the buffering discipline of a Buffer. The set is closed: only
// Eager and Lazy exist.
type Kind uint8

const (
	unknownKind Kind = iota
	// Eager compresses a block as soon as it is complete, the cursor always
	// lies in [0, blockSize).
	Eager
	// Lazy keeps a complete block around until more data arrives or the
	// buffer gets padded, the cursor lies in [0, blockSize].
	Lazy
)

func (k Kind) String() string {
	switch k {
	case Eager:
		return "eager"
	case Lazy:
		return "lazy"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

func (k Kind) valid() bool {
	return k.discipline() != nil
}

func (k Kind) discipline() discipline {
	switch k {
	case Eager:
		return eager{}
	case Lazy:
		return lazy{}
	default:
		return nil
	}
}

// discipline is the strategy attached to a Kind. Its methods are unexported,
// so no implementation can live outside this package.
type discipline interface {
	// invariant reports whether pos is a legal cursor for the block size.
	// With correct buffer code it always returns true.
	invariant(pos, blockSize int) bool

	// splitBlocks partitions data into blocks that can be compressed right
	// away and a tail that has to stay buffered.
	splitBlocks(data []byte, blockSize int) (block.Blocks, []byte)
}

type eager struct{}

func (eager) invariant(pos, blockSize int) bool {
	return pos >= 0 && pos < blockSize
}

func (eager) splitBlocks(data []byte, blockSize int) (block.Blocks, []byte) {
	return block.Split(data, blockSize)
}

type lazy struct{}

func (lazy) invariant(pos, blockSize int) bool {
	return pos >= 0 && pos <= blockSize
}

// splitBlocks never hands out the last whole block of data: whether it is the
// final (padded) block is only known once more input arrives or the buffer
// gets padded.
func (lazy) splitBlocks(data []byte, blockSize int) (block.Blocks, []byte) {
	if len(data) == 0 {
		return block.SplitAt(data, blockSize, 0)
	}
	nb := len(data) / blockSize
	if len(data)%blockSize == 0 {
		nb--
	}
	return block.SplitAt(data, blockSize, nb)
}

var (
	_ discipline = eager{}
	_ discipline = lazy{}
)
