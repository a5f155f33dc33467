package go_block_buffer

import (
	"github.com/datnguyenzzz/nogodb/lib/go-bytesbufferpool/predictable_size"
	"go.uber.org/zap"
)

// defaultBufferPool backs every buffer created without WithBufferPool.
var defaultBufferPool = predictable_size.NewPredictablePool()

type OptionFn func(*options)

type options struct {
	// logger receives invariant violations right before the panic.
	// If nil, the global zap logger at the time of the failure is used.
	logger *zap.Logger

	// wipeOnReset zeroes the whole block storage whenever the cursor is
	// brought back to 0 by Reset or by padding, instead of leaving the
	// bytes as don't-care.
	wipeOnReset bool

	// bufferPool provides the block storage at construction and takes it
	// back on Release.
	bufferPool *predictable_size.PredictablePool
}

var defaultOptions = options{
	logger:      nil,
	wipeOnReset: true,
	bufferPool:  defaultBufferPool,
}

func WithLogger(logger *zap.Logger) OptionFn {
	return func(o *options) {
		o.logger = logger
	}
}

func WithWipeOnReset(wipe bool) OptionFn {
	return func(o *options) {
		o.wipeOnReset = wipe
	}
}

func WithBufferPool(pool *predictable_size.PredictablePool) OptionFn {
	return func(o *options) {
		if pool != nil {
			o.bufferPool = pool
		}
	}
}
