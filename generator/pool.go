package generator

import (
	"bytes"
	"sync"
)

// Tiered buffer sizes by declaration count
const (
	smallBufferSize  = 4 * 1024  // 4KB for <20 declarations
	mediumBufferSize = 32 * 1024 // 32KB for 20-200 declarations
	largeBufferSize  = 128 * 1024
)

var smallBufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, smallBufferSize))
	},
}

var mediumBufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, mediumBufferSize))
	},
}

var largeBufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, largeBufferSize))
	},
}

func poolFor(declCount int) *sync.Pool {
	switch {
	case declCount < 20:
		return &smallBufferPool
	case declCount < 200:
		return &mediumBufferPool
	default:
		return &largeBufferPool
	}
}

// getTemplateBuffer returns an empty buffer sized for declCount declarations.
func getTemplateBuffer(declCount int) *bytes.Buffer {
	buf := poolFor(declCount).Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// putTemplateBuffer returns a buffer to the pool it was taken from.
func putTemplateBuffer(buf *bytes.Buffer, declCount int) {
	if buf == nil {
		return
	}
	// Don't pool oversized buffers
	if buf.Cap() > 4<<20 {
		return
	}
	poolFor(declCount).Put(buf)
}
