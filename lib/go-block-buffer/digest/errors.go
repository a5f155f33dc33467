package digest

import "errors"

var (
	ErrInvalidOutputSize = errors.New("digest: invalid output size")
)
