package generator

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateBufferPool_TieredSizes(t *testing.T) {
	small := getTemplateBuffer(5)
	assert.GreaterOrEqual(t, small.Cap(), smallBufferSize)
	assert.Zero(t, small.Len())
	putTemplateBuffer(small, 5)

	medium := getTemplateBuffer(50)
	assert.GreaterOrEqual(t, medium.Cap(), mediumBufferSize)
	putTemplateBuffer(medium, 50)

	large := getTemplateBuffer(500)
	assert.GreaterOrEqual(t, large.Cap(), largeBufferSize)
	putTemplateBuffer(large, 500)
}

func TestTemplateBufferPool_Reset(t *testing.T) {
	buf := getTemplateBuffer(1)
	buf.WriteString("export type A = string;\n")
	putTemplateBuffer(buf, 1)

	again := getTemplateBuffer(1)
	assert.Zero(t, again.Len())
	putTemplateBuffer(again, 1)
	putTemplateBuffer(nil, 1)
}

func BenchmarkTemplateBuffer_WithPool(b *testing.B) {
	for b.Loop() {
		buf := getTemplateBuffer(25)
		buf.WriteString("export type A = string;\n")
		putTemplateBuffer(buf, 25)
	}
}

func BenchmarkTemplateBuffer_WithoutPool(b *testing.B) {
	for b.Loop() {
		buf := bytes.NewBuffer(make([]byte, 0, mediumBufferSize))
		buf.WriteString("export type A = string;\n")
	}
}
