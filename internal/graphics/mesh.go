package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

const floatSize = 4

// Attribute describes one float vertex attribute inside an interleaved buffer
type Attribute struct {
	Index  uint32
	Size   int32 // components
	Offset int   // in floats
}

// Layout assigns consecutive attribute indices and offsets for the given
// component counts. It also returns the stride in floats.
func Layout(sizes ...int32) ([]Attribute, int) {
	attrs := make([]Attribute, len(sizes))
	offset := 0
	for i, size := range sizes {
		attrs[i] = Attribute{Index: uint32(i), Size: size, Offset: offset}
		offset += int(size)
	}
	return attrs, offset
}

// Mesh is an indexed triangle list living in a VAO
type Mesh struct {
	VAO        uint32
	VBO        uint32
	EBO        uint32
	IndexCount int32
}

// NewMesh uploads interleaved vertices and indices. stride is in floats.
func NewMesh(vertices []float32, indices []uint32, stride int, attrs []Attribute) *Mesh {
	m := &Mesh{IndexCount: int32(len(indices))}

	gl.GenVertexArrays(1, &m.VAO)
	gl.GenBuffers(1, &m.VBO)
	gl.GenBuffers(1, &m.EBO)

	gl.BindVertexArray(m.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*floatSize, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	for _, a := range attrs {
		gl.VertexAttribPointerWithOffset(a.Index, a.Size, gl.FLOAT, false, int32(stride*floatSize), uintptr(a.Offset*floatSize))
		gl.EnableVertexAttribArray(a.Index)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	// the element buffer binding is VAO state; unbind the VAO first
	gl.BindVertexArray(0)

	return m
}

// Draw issues the indexed draw call
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.VAO)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.IndexCount, gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)
}

// Delete releases the GPU buffers
func (m *Mesh) Delete() {
	if m.VBO != 0 {
		gl.DeleteBuffers(1, &m.VBO)
	}
	if m.EBO != 0 {
		gl.DeleteBuffers(1, &m.EBO)
	}
	if m.VAO != 0 {
		gl.DeleteVertexArrays(1, &m.VAO)
	}
	*m = Mesh{}
}
