package go_block_buffer

import "errors"

var (
	ErrInvalidBlockSize = errors.New("block buffer: block size must be positive")
	ErrUnknownKind      = errors.New("block buffer: unknown buffer kind")
	ErrInvalidLength    = errors.New("block buffer: invalid data length")
	ErrInvalidPosition  = errors.New("block buffer: cursor position out of range")
	ErrSuffixTooLong    = errors.New("block buffer: padding suffix is longer than the block")
)
