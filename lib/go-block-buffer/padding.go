package go_block_buffer

import (
	"encoding/binary"
	"fmt"

	"github.com/datnguyenzzz/nogodb/lib/go-block-buffer/block"
)

// lengthDelimiter is the byte that terminates the message in Merkle–Damgård
// length padding.
const lengthDelimiter = 0x80

// DigestPad finishes the message: it writes delim at the cursor, zeroes the
// rest of the block and places suffix in the last len(suffix) bytes. When
// the suffix does not fit behind the delimiter, compress is called on the
// delimited block and then on a second block holding only the suffix.
// The cursor is 0 afterwards.
//
// A Lazy buffer holding a complete block compresses it first and pads a
// fresh block.
func (b *Buffer) DigestPad(delim byte, suffix []byte, compress func(block.Block)) error {
	if len(suffix) > b.size {
		return fmt.Errorf("%w: %d bytes for a block of %d", ErrSuffixTooLong, len(suffix), b.size)
	}

	pos := b.getPos()
	if pos == b.size {
		compress(b.buf)
		pos = 0
	}

	b.buf[pos] = delim
	clear(b.buf[pos+1:])

	n := b.size - len(suffix)
	if b.size-pos-1 < len(suffix) {
		compress(b.buf)
		clear(b.buf)
		copy(b.buf[n:], suffix)
		compress(b.buf)
	} else {
		copy(b.buf[n:], suffix)
		compress(b.buf)
	}

	b.truncate()
	return nil
}

// Len64PaddingBE pads with 0x80, zeros and the 64-bit message length in
// big-endian byte order, the SHA-1 and SHA-256 footer.
func (b *Buffer) Len64PaddingBE(dataLen uint64, compress func(block.Block)) error {
	var suffix [8]byte
	binary.BigEndian.PutUint64(suffix[:], dataLen)
	return b.DigestPad(lengthDelimiter, suffix[:], compress)
}

// Len64PaddingLE pads with 0x80, zeros and the 64-bit message length in
// little-endian byte order, the MD5 footer.
func (b *Buffer) Len64PaddingLE(dataLen uint64, compress func(block.Block)) error {
	var suffix [8]byte
	binary.LittleEndian.PutUint64(suffix[:], dataLen)
	return b.DigestPad(lengthDelimiter, suffix[:], compress)
}

// Len128PaddingBE pads with 0x80, zeros and the 128-bit message length
// hi<<64 | lo in big-endian byte order, the SHA-512 footer.
func (b *Buffer) Len128PaddingBE(hi, lo uint64, compress func(block.Block)) error {
	var suffix [16]byte
	binary.BigEndian.PutUint64(suffix[:8], hi)
	binary.BigEndian.PutUint64(suffix[8:], lo)
	return b.DigestPad(lengthDelimiter, suffix[:], compress)
}

// PadWithZeros zeroes everything behind the cursor, resets the cursor and
// returns the storage block for a final caller driven step. The block aliases
// the buffer storage and is only valid until the next mutating call.
func (b *Buffer) PadWithZeros() block.Block {
	pos := b.getPos()
	clear(b.buf[pos:])
	b.setPos(0)
	return b.buf
}
