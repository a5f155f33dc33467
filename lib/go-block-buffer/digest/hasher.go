package digest

import (
	"fmt"

	go_block_buffer "github.com/datnguyenzzz/nogodb/lib/go-block-buffer"
)

// Hasher turns a FixedOutputCore into a hash.Hash.
type Hasher[C FixedOutputCore[C]] struct {
	core   C
	buffer *go_block_buffer.Buffer
}

func NewHasher[C FixedOutputCore[C]](core C, opts ...go_block_buffer.OptionFn) (*Hasher[C], error) {
	buffer, err := go_block_buffer.New(core.BufferKind(), core.BlockSize(), opts...)
	if err != nil {
		return nil, err
	}
	return &Hasher[C]{core: core, buffer: buffer}, nil
}

// Write never fails.
func (h *Hasher[C]) Write(p []byte) (int, error) {
	h.buffer.DigestBlocks(p, h.core.UpdateBlocks)
	return len(p), nil
}

// Sum appends the digest of everything written so far to b. The running state
// is left untouched.
func (h *Hasher[C]) Sum(b []byte) []byte {
	core := h.core.Clone()
	buffer := h.buffer.Clone()
	defer buffer.Release()

	out := make([]byte, core.OutputSize())
	core.FinalizeFixedCore(buffer, out)
	return append(b, out...)
}

// Finalize returns the digest. The hasher is reset afterwards and can take a
// new message right away.
func (h *Hasher[C]) Finalize() []byte {
	out := make([]byte, h.core.OutputSize())
	h.finalizeInto(out)
	return out
}

// FinalizeReset is Finalize, for callers that want the reset spelled out.
func (h *Hasher[C]) FinalizeReset() []byte {
	return h.Finalize()
}

// FinalizeInto writes the digest into out, which must be exactly Size bytes
// long, and resets the hasher.
func (h *Hasher[C]) FinalizeInto(out []byte) error {
	if len(out) != h.core.OutputSize() {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidOutputSize, len(out), h.core.OutputSize())
	}
	h.finalizeInto(out)
	return nil
}

func (h *Hasher[C]) finalizeInto(out []byte) {
	h.core.FinalizeFixedCore(h.buffer, out)
	h.Reset()
}

func (h *Hasher[C]) Reset() {
	h.core.Reset()
	h.buffer.Reset()
}

func (h *Hasher[C]) Size() int {
	return h.core.OutputSize()
}

func (h *Hasher[C]) BlockSize() int {
	return h.buffer.Size()
}

func (h *Hasher[C]) Clone() *Hasher[C] {
	return &Hasher[C]{
		core:   h.core.Clone(),
		buffer: h.buffer.Clone(),
	}
}

// Release hands the buffer storage back to its pool. The hasher must not be
// used afterwards.
func (h *Hasher[C]) Release() {
	h.buffer.Release()
}

// Sum computes the digest of data in one go. core is consumed.
func Sum[C FixedOutputCore[C]](core C, data []byte, opts ...go_block_buffer.OptionFn) ([]byte, error) {
	h, err := NewHasher(core, opts...)
	if err != nil {
		return nil, err
	}
	defer h.Release()

	_, _ = h.Write(data)
	return h.Finalize(), nil
}
