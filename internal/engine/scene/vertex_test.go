package scene

import (
	"testing"
	"unsafe"
)

func TestVertexStrideMatchesLayout(t *testing.T) {
	if got := unsafe.Sizeof(Vertex{}); got != vertexFloats*4 {
		t.Errorf("Vertex size = %d bytes, want %d", got, vertexFloats*4)
	}
}
