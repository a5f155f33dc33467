package go_block_buffer

import (
	"fmt"
	"testing"

	"github.com/datnguyenzzz/nogodb/lib/go-block-buffer/block"
)

var sink byte

func benchCompress(blocks block.Blocks) {
	for _, b := range blocks.All() {
		sink ^= b[0]
	}
}

func Benchmark_DigestBlocks(b *testing.B) {
	for _, kind := range []Kind{Eager, Lazy} {
		for _, chunk := range []int{1, 7, 64, 1000, 16 * 1024} {
			b.Run(fmt.Sprintf("%s/chunk=%d", kind, chunk), func(b *testing.B) {
				buf, err := New(kind, 64)
				if err != nil {
					b.Fatal(err)
				}
				data := make([]byte, chunk)
				b.SetBytes(int64(chunk))
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					buf.DigestBlocks(data, benchCompress)
				}
			})
		}
	}
}

func Benchmark_SetData(b *testing.B) {
	for _, chunk := range []int{1, 32, 168, 4096} {
		b.Run(fmt.Sprintf("chunk=%d", chunk), func(b *testing.B) {
			buf, err := NewEager(168)
			if err != nil {
				b.Fatal(err)
			}
			out := make([]byte, chunk)
			b.SetBytes(int64(chunk))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				buf.SetData(out, func(blocks block.Blocks) {
					for _, blk := range blocks.All() {
						blk[0] = byte(i)
					}
				})
			}
		})
	}
}

func Benchmark_Len64PaddingBE(b *testing.B) {
	buf, err := NewEager(64)
	if err != nil {
		b.Fatal(err)
	}
	data := make([]byte, 60)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.DigestBlocks(data, benchCompress)
		_ = buf.Len64PaddingBE(uint64(i), func(blk block.Block) { sink ^= blk[63] })
	}
}
