package digest

import (
	"encoding/binary"
	"math/bits"

	go_block_buffer "github.com/datnguyenzzz/nogodb/lib/go-block-buffer"
	"github.com/datnguyenzzz/nogodb/lib/go-block-buffer/block"
	"golang.org/x/crypto/sha3"
)

var sha256K = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

var sha256IV = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a, 0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

// sha256Core is a plain SHA-256 compression function, only the engine does
// the buffering and padding.
type sha256Core struct {
	kind   go_block_buffer.Kind
	h      [8]uint32
	blocks uint64
}

func newSha256Core(kind go_block_buffer.Kind) *sha256Core {
	return &sha256Core{kind: kind, h: sha256IV}
}

func (s *sha256Core) BlockSize() int                   { return 64 }
func (s *sha256Core) BufferKind() go_block_buffer.Kind { return s.kind }
func (s *sha256Core) OutputSize() int                  { return 32 }
func (s *sha256Core) MaxOutputSize() int               { return 32 }

func (s *sha256Core) Reset() {
	s.h = sha256IV
	s.blocks = 0
}

func (s *sha256Core) Clone() *sha256Core {
	c := *s
	return &c
}

func (s *sha256Core) UpdateBlocks(blocks block.Blocks) {
	for _, b := range blocks.All() {
		s.compress(b)
	}
}

func (s *sha256Core) FinalizeFixedCore(buf *go_block_buffer.Buffer, out []byte) {
	bitLen := (s.blocks*64 + uint64(buf.Pos())) * 8
	if err := buf.Len64PaddingBE(bitLen, s.compress); err != nil {
		panic(err)
	}
	for i, v := range s.h {
		binary.BigEndian.PutUint32(out[4*i:], v)
	}
}

func (s *sha256Core) compress(p block.Block) {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(p[4*i:])
	}
	for i := 16; i < 64; i++ {
		v1 := w[i-2]
		t1 := bits.RotateLeft32(v1, -17) ^ bits.RotateLeft32(v1, -19) ^ (v1 >> 10)
		v2 := w[i-15]
		t2 := bits.RotateLeft32(v2, -7) ^ bits.RotateLeft32(v2, -18) ^ (v2 >> 3)
		w[i] = t1 + w[i-7] + t2 + w[i-16]
	}

	a, b, c, d, e, f, g, h := s.h[0], s.h[1], s.h[2], s.h[3], s.h[4], s.h[5], s.h[6], s.h[7]
	for i := 0; i < 64; i++ {
		t1 := h + (bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)) +
			((e & f) ^ (^e & g)) + sha256K[i] + w[i]
		t2 := (bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)) +
			((a & b) ^ (a & c) ^ (b & c))
		h, g, f, e, d, c, b, a = g, f, e, d+t1, c, b, a, t1+t2
	}
	s.h[0] += a
	s.h[1] += b
	s.h[2] += c
	s.h[3] += d
	s.h[4] += e
	s.h[5] += f
	s.h[6] += g
	s.h[7] += h
	s.blocks++
}

// variableSha256Core exposes sha256Core as a variable output core.
type variableSha256Core struct {
	*sha256Core
	side TruncSide
}

func (v *variableSha256Core) TruncSide() TruncSide { return v.side }

func (v *variableSha256Core) FinalizeVariableCore(buf *go_block_buffer.Buffer, out []byte) {
	v.FinalizeFixedCore(buf, out)
}

func (v *variableSha256Core) Clone() *variableSha256Core {
	return &variableSha256Core{sha256Core: v.sha256Core.Clone(), side: v.side}
}

const shake128Rate = 168

// shakeCore absorbs whole blocks into a SHAKE128 sponge.
type shakeCore struct {
	state sha3.ShakeHash
}

func newShakeCore() *shakeCore {
	return &shakeCore{state: sha3.NewShake128()}
}

func (s *shakeCore) BlockSize() int                   { return shake128Rate }
func (s *shakeCore) BufferKind() go_block_buffer.Kind { return go_block_buffer.Eager }
func (s *shakeCore) Reset()                           { s.state.Reset() }
func (s *shakeCore) Clone() *shakeCore                { return &shakeCore{state: s.state.Clone()} }

func (s *shakeCore) UpdateBlocks(blocks block.Blocks) {
	_, _ = s.state.Write(blocks.Bytes())
}

func (s *shakeCore) FinalizeXofCore(buf *go_block_buffer.Buffer) *shakeReaderCore {
	state := s.state.Clone()
	_, _ = state.Write(buf.Data())
	return &shakeReaderCore{state: state}
}

type shakeReaderCore struct {
	state sha3.ShakeHash
	reads int
}

func (r *shakeReaderCore) BlockSize() int { return shake128Rate }

func (r *shakeReaderCore) ReadBlock(b block.Block) {
	r.reads++
	_, _ = r.state.Read(b)
}

func (r *shakeReaderCore) Clone() *shakeReaderCore {
	return &shakeReaderCore{state: r.state.Clone(), reads: r.reads}
}
