package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"
)

// Quad is a full-screen rectangle in clip space, drawn as two triangles.
// Vertex layout: position (2 floats) at location 0, coordinates (2 floats) at location 1.
type Quad struct {
	vao *VertexArrayObject
	vbo *BufferObject
	ebo *BufferObject
}

var quadVertices = []float32{
	// position    coordinates
	-1.0, 1.0, 0.0, 1.0, // Top-left
	1.0, 1.0, 1.0, 1.0, // Top-right
	-1.0, -1.0, 0.0, 0.0, // Bottom-left
	1.0, -1.0, 1.0, 0.0, // Bottom-right
}

var quadIndices = []uint32{
	0, 1, 2,
	1, 3, 2,
}

// NewQuad uploads the full-screen quad
func NewQuad() *Quad {
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(quadVertices, StaticDraw)
	ebo := NewEBO(quadIndices, StaticDraw)

	vao.SetVertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, 0)
	vao.SetVertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, 2*4)

	vao.Unbind()
	vbo.Unbind()

	return &Quad{vao: vao, vbo: vbo, ebo: ebo}
}

// Draw renders the quad with whatever program is in use
func (q *Quad) Draw() {
	q.vao.Bind()
	gl.DrawElements(gl.TRIANGLES, int32(len(quadIndices)), gl.UNSIGNED_INT, nil)
	q.vao.Unbind()
}

// Delete releases all resources
func (q *Quad) Delete() {
	q.vao.Delete()
	q.vbo.Delete()
	q.ebo.Delete()
}
